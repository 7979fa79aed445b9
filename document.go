package neon

import (
	"bytes"
	"io"
)

// CreateDocument builds a Document for programmatic tree construction,
// with a root element of the given name. Declaration fields are set
// through options; a document with no declaration fields serializes
// without a declaration line.
func CreateDocument(rootName string, options ...DocumentOption) *Document {
	doc := &Document{root: newElement(rootName)}
	for _, o := range options {
		switch o.Ident().(type) {
		case identDocumentVersion:
			doc.version = o.Value().(string)
		case identDocumentEncoding:
			doc.encoding = o.Value().(string)
		case identDocumentStandalone:
			doc.standalone = o.Value().(string)
		}
	}
	return doc
}

// Root returns the root element. Every document has exactly one.
func (d *Document) Root() *Element {
	return d.root
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) SetVersion(v string) {
	d.version = v
}

func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) SetEncoding(v string) {
	d.encoding = v
}

func (d *Document) Standalone() string {
	return d.standalone
}

func (d *Document) SetStandalone(v string) {
	d.standalone = v
}

// Dump serializes the document to out.
func (d *Document) Dump(out io.Writer) error {
	dumper := &Dumper{}
	return dumper.DumpDoc(out, d)
}

// XMLString serializes the document and returns it as a string.
func (d *Document) XMLString() (string, error) {
	var buf bytes.Buffer
	if err := d.Dump(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Clone returns a deep copy of the document, duplicating the whole
// element tree.
func (d *Document) Clone() *Document {
	return &Document{
		root:       d.root.Clone(),
		version:    d.version,
		encoding:   d.encoding,
		standalone: d.standalone,
	}
}
