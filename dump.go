package neon

import (
	"io"
	"strings"
)

// Dumper serializes a Document or a single element subtree back to XML
// text. The zero value emits compact output; setting Indent (e.g. two
// spaces) pretty-prints child elements on their own lines. Indentation
// is pure inter-tag whitespace, which the parser's gap filter discards,
// so formatted output re-parses to the same tree.
type Dumper struct {
	Indent string
}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// DumpDoc emits the declaration line, if the document carries one, and
// then the element tree.
func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if doc.version != "" || doc.encoding != "" || doc.standalone != "" {
		var decl strings.Builder
		decl.WriteString("<?xml")
		for _, f := range [][2]string{
			{"version", doc.version},
			{"encoding", doc.encoding},
			{"standalone", doc.standalone},
		} {
			if f[1] == "" {
				continue
			}
			decl.WriteString(" " + f[0] + `="` + f[1] + `"`)
		}
		decl.WriteString("?>\n")
		if err := d.writeString(out, decl.String()); err != nil {
			return err
		}
	}

	if err := d.DumpNode(out, doc.root); err != nil {
		return err
	}
	if d.Indent != "" {
		return d.writeString(out, "\n")
	}
	return nil
}

// DumpNode emits a single element and its subtree.
func (d *Dumper) DumpNode(out io.Writer, el *Element) error {
	return d.dumpNode(out, el, 0)
}

func (d *Dumper) dumpNode(out io.Writer, el *Element, depth int) error {
	var open strings.Builder
	open.WriteString("<")
	open.WriteString(el.name)
	for name, value := range el.attrs.Range() {
		open.WriteString(" " + name + "=" + quoteAttr(value))
	}

	// no content and no children: a single self-closing tag
	if el.content == "" && len(el.children) == 0 {
		open.WriteString("/>")
		return d.writeString(out, open.String())
	}

	open.WriteString(">")
	if err := d.writeString(out, open.String()); err != nil {
		return err
	}

	if len(el.children) > 0 {
		for _, c := range el.children {
			if err := d.indent(out, depth+1); err != nil {
				return err
			}
			if err := d.dumpNode(out, c, depth+1); err != nil {
				return err
			}
		}
		if err := d.indent(out, depth); err != nil {
			return err
		}
	} else {
		if err := d.writeString(out, encodeEntities(el.content)); err != nil {
			return err
		}
	}

	return d.writeString(out, "</"+el.name+">")
}

// quoteAttr picks the quote character for an attribute value the same
// way the scanner accepts either: double quotes by default, single
// quotes when the value itself contains a double quote. The value is
// emitted verbatim; attribute values are never entity-encoded,
// mirroring the parser, which does not decode them.
func quoteAttr(value string) string {
	if strings.Contains(value, `"`) {
		return "'" + value + "'"
	}
	return `"` + value + `"`
}

func (d *Dumper) indent(out io.Writer, depth int) error {
	if d.Indent == "" {
		return nil
	}
	return d.writeString(out, "\n"+strings.Repeat(d.Indent, depth))
}
