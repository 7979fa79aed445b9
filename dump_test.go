package neon

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpCompact(t *testing.T) {
	const input = `<root>Hello, World!</root>`
	doc, err := ParseString(input)
	require.NoError(t, err, "Parse(...) succeeds")

	str, err := doc.XMLString()
	require.NoError(t, err, "XMLString(doc) succeeds")

	assert.Equal(t, input, str, "roundtrip works")
}

func TestDumpSelfClosing(t *testing.T) {
	doc := CreateDocument("root")
	_, err := doc.Root().AddChild("empty")
	require.NoError(t, err)

	str, err := doc.XMLString()
	require.NoError(t, err)
	assert.Equal(t, `<root><empty/></root>`, str, "childless, contentless elements collapse to one tag")
}

func TestDumpEntityEncoding(t *testing.T) {
	doc := CreateDocument("root")
	require.NoError(t, doc.Root().SetContent(`Maple&Apple <"'> done`))

	str, err := doc.XMLString()
	require.NoError(t, err)
	assert.Equal(t, `<root>Maple&amp;Apple &lt;&quot;&apos;&gt; done</root>`, str)

	// and the encoded form decodes right back
	reparsed, err := ParseString(str)
	require.NoError(t, err)
	assert.Equal(t, `Maple&Apple <"'> done`, reparsed.Root().Content())
}

func TestDumpAttributeQuotes(t *testing.T) {
	doc, err := ParseString(`<root a="plain" c='with "inner" quotes'/>`)
	require.NoError(t, err)

	str, err := doc.XMLString()
	require.NoError(t, err)
	assert.Equal(t, `<root a="plain" c='with "inner" quotes'/>`, str,
		"values containing a double quote come out single-quoted")

	reparsed, err := ParseString(str)
	require.NoError(t, err)
	v, err := reparsed.Root().Attribute("c")
	require.NoError(t, err)
	assert.Equal(t, `with "inner" quotes`, v)
}

func TestDumpDeclarationSuppressed(t *testing.T) {
	doc, err := ParseString(`<root/>`)
	require.NoError(t, err, "document without declaration")

	str, err := doc.XMLString()
	require.NoError(t, err)
	assert.Equal(t, `<root/>`, str, "no declaration line is emitted")
}

func TestDumpRoundTrip(t *testing.T) {
	inputs := []string{
		sampleXML,
		`<root/>`,
		`<a><b><c>deep</c></b><d x="1" y="2"/></a>`,
		`<root c='with "inner" quotes'><a x="1"/></root>`,
		`<root>multi
line content</root>`,
	}

	for _, input := range inputs {
		doc, err := ParseString(input)
		require.NoError(t, err, "first parse of %q", input)

		str, err := doc.XMLString()
		require.NoError(t, err)

		again, err := ParseString(str)
		require.NoError(t, err, "reparse of %q", str)

		if diff := cmp.Diff(doc, again, cmpopts()...); diff != "" {
			t.Errorf("serialize-reparse changed the tree for %q:\n%s", input, diff)
		}
	}
}

func TestDumpIndented(t *testing.T) {
	doc, err := ParseString(`<a><b><c>deep</c></b><d/></a>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	d := Dumper{Indent: "  "}
	require.NoError(t, d.DumpDoc(&buf, doc))

	const expected = `<a>
  <b>
    <c>deep</c>
  </b>
  <d/>
</a>
`
	assert.Equal(t, expected, buf.String())

	// formatting only adds inter-tag whitespace, which parses away
	again, err := ParseString(buf.String())
	require.NoError(t, err)
	if diff := cmp.Diff(doc, again, cmpopts()...); diff != "" {
		t.Errorf("indented output changed the tree:\n%s", diff)
	}
}

func TestDumpNodeSubtree(t *testing.T) {
	doc, err := ParseString(`<root><branch n="1"><leaf/></branch></root>`)
	require.NoError(t, err)

	branch, err := doc.Root().Child(0)
	require.NoError(t, err)

	var buf bytes.Buffer
	d := Dumper{}
	require.NoError(t, d.DumpNode(&buf, branch))
	assert.Equal(t, `<branch n="1"><leaf/></branch>`, buf.String())
}
