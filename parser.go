package neon

import (
	"io"
	"os"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"

	"github.com/lestrrat-go/neon/encoding"
)

// parseCtx carries the state of one parse: the immutable buffer, the
// width profile, and the option snapshot. A fresh context is created
// per call, so a single profile can serve any number of concurrent
// parses.
type parseCtx[T CodeUnit] struct {
	buf             []T
	prof            *profile[T]
	replaceEntities bool
	doc             *Document
}

// error wraps a structural failure with line/column information derived
// from the offset at which it was detected.
func (ctx *parseCtx[T]) error(err error, off int) error {
	if _, ok := err.(ErrParseError); ok {
		return err
	}

	line, col := 1, 1
	lineStart := 0
	for i := 0; i < off && i < len(ctx.buf); i++ {
		if ctx.buf[i] == '\n' {
			line++
			col = 1
			lineStart = i + 1
		} else {
			col++
		}
	}
	lineEnd := off
	for lineEnd < len(ctx.buf) && ctx.buf[lineEnd] != '\n' {
		lineEnd++
	}
	return ErrParseError{
		Err:        err,
		Offset:     off,
		LineNumber: line,
		Column:     col,
		Line:       ctx.prof.str(ctx.buf[lineStart:lineEnd]),
	}
}

// Parse parses a buffer of UTF-8 code units into a Document.
func Parse(data []byte, options ...ParseOption) (*Document, error) {
	return parseUnits(data, profile8, options)
}

// ParseString parses a string into a Document.
func ParseString(s string, options ...ParseOption) (*Document, error) {
	return parseUnits([]byte(s), profile8, options)
}

// Parse16 parses a buffer of UTF-16 code units into a Document.
func Parse16(data []uint16, options ...ParseOption) (*Document, error) {
	return parseUnits(data, profile16, options)
}

// Parse32 parses a buffer of UTF-32 code units into a Document.
func Parse32(data []rune, options ...ParseOption) (*Document, error) {
	return parseUnits(data, profile32, options)
}

// ParseReader drains r completely, resolves the byte order of the
// input (see encoding.Detect), and parses the result. No partial reads:
// the core never runs against a stream.
func ParseReader(r io.Reader, options ...ParseOption) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, `failed to drain input`)
	}

	name := ""
	for _, o := range options {
		if _, ok := o.Ident().(identSourceEncoding); ok {
			name = o.Value().(string)
		}
	}
	var bomLen int
	if name == "" {
		name, bomLen = encoding.Detect(data)
	} else {
		bomLen = encoding.BOMLen(name, data)
	}

	enc := encoding.Load(name)
	if enc == nil {
		return nil, errors.Errorf(`unsupported encoding %q`, name)
	}
	decoded, err := enc.NewDecoder().Bytes(data[bomLen:])
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode %s input`, name)
	}

	return parseUnits(decoded, profile8, options)
}

// ParseFile reads the named file in full and parses it.
func ParseFile(path string, options ...ParseOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to open %s`, path)
	}
	defer f.Close()

	doc, err := ParseReader(f, options...)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to parse %s`, path)
	}
	return doc, nil
}

func parseUnits[T CodeUnit](buf []T, prof *profile[T], options []ParseOption) (*Document, error) {
	ctx := &parseCtx[T]{
		buf:             buf,
		prof:            prof,
		replaceEntities: true,
	}
	for _, o := range options {
		switch o.Ident().(type) {
		case identEntityDecoding:
			ctx.replaceEntities = o.Value().(bool)
		}
	}

	if err := ctx.parseDocument(); err != nil {
		return nil, errors.Wrap(err, `failed to parse document`)
	}
	return ctx.doc, nil
}

// parseDocument runs the pipeline: tokenize, filter gaps and comments,
// strip the declaration, then hand the stream to the tree builder.
func (ctx *parseCtx[T]) parseDocument() error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	bounds := tokenize(ctx.buf)
	bounds = removeGaps(ctx.buf, bounds, ctx.prof.isSpace)
	bounds, at, err := removeComments(ctx.buf, bounds)
	if err != nil {
		return ctx.error(err, at)
	}
	bounds = ctx.skipComments(bounds)

	if len(bounds) < 2 {
		return ErrEmptyDocument
	}
	if ctx.buf[bounds[0]] != '<' {
		return ctx.error(ErrStartTagRequired, bounds[0])
	}

	ctx.doc = &Document{}
	if hasPrefix(ctx.buf, bounds[0], bounds[1], "<?xml") {
		ctx.parseDeclaration(bounds[0], bounds[1])
		bounds = ctx.skipComments(bounds[1:])
		if len(bounds) < 2 {
			return ErrEmptyDocument
		}
		if ctx.buf[bounds[0]] != '<' {
			return ctx.error(ErrStartTagRequired, bounds[0])
		}
	}
	if bounds[0]+1 < bounds[1] && ctx.buf[bounds[0]+1] == '?' {
		// a processing instruction is not a start tag
		return ctx.error(ErrStartTagRequired, bounds[0])
	}

	root, err := ctx.buildTree(bounds)
	if err != nil {
		return err
	}
	ctx.doc.root = root
	return nil
}

// skipComments drops comment tokens off the front of the stream. The
// tree builder never sees a comment between elements, but one can
// still precede the declaration or the root element.
func (ctx *parseCtx[T]) skipComments(bounds []int) []int {
	for len(bounds) >= 2 && determineToken(ctx.buf, bounds[0], bounds[1]) == tokenComment {
		bounds = bounds[1:]
	}
	return bounds
}

// parseDeclaration reads the version/encoding/standalone fields out of
// the leading `<?xml ... ?>` token with the regular attribute scanner.
// Unrecognized keys are ignored.
func (ctx *parseCtx[T]) parseDeclaration(start, end int) {
	for _, pair := range extractAttributes(ctx.buf, start, end, ctx.prof) {
		switch pair.name {
		case "version":
			ctx.doc.version = pair.value
		case "encoding":
			ctx.doc.encoding = pair.value
		case "standalone":
			ctx.doc.standalone = pair.value
		}
	}
}
