package neon

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEntityDecoding struct{}
type identSourceEncoding struct{}
type identDocumentVersion struct{}
type identDocumentEncoding struct{}
type identDocumentStandalone struct{}

// ParseOption is an option accepted by the parse entry points.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// DocumentOption is an option accepted by CreateDocument.
type DocumentOption interface {
	Option
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}

// WithEntityDecoding controls substitution of entity references
// (&amp; and friends, in named, decimal, or hexadecimal form) inside
// element content. It is enabled by default; disabling it makes parsing
// of reference-heavy documents cheaper and leaves the raw references in
// place.
func WithEntityDecoding(v bool) ParseOption {
	return &parseOption{option.New(identEntityDecoding{}, v)}
}

// WithSourceEncoding forces the character encoding assumed by
// ParseReader and ParseFile instead of BOM detection. Only the Unicode
// family is supported (utf-8, utf-16le/be, utf-32le/be). The option is
// ignored by the in-memory entry points, whose input is already a
// buffer of code units.
func WithSourceEncoding(name string) ParseOption {
	return &parseOption{option.New(identSourceEncoding{}, name)}
}

// WithVersion specifies the XML version of a newly created document.
func WithVersion(v string) DocumentOption {
	return &documentOption{option.New(identDocumentVersion{}, v)}
}

// WithEncoding specifies the declared encoding of a newly created
// document.
func WithEncoding(v string) DocumentOption {
	return &documentOption{option.New(identDocumentEncoding{}, v)}
}

// WithStandalone specifies the standalone field ("yes" or "no") of a
// newly created document.
func WithStandalone(v string) DocumentOption {
	return &documentOption{option.New(identDocumentStandalone{}, v)}
}
