package neon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocument(t *testing.T) {
	doc := CreateDocument("root",
		WithVersion("1.0"),
		WithEncoding("UTF-8"),
		WithStandalone("yes"),
	)

	assert.Equal(t, "1.0", doc.Version())
	assert.Equal(t, "UTF-8", doc.Encoding())
	assert.Equal(t, "yes", doc.Standalone())
	require.NotNil(t, doc.Root())
	assert.Equal(t, "root", doc.Root().Name())
}

func TestBuildAndSerialize(t *testing.T) {
	doc := CreateDocument("root", WithVersion("1.0"), WithEncoding("UTF-8"), WithStandalone("yes"))
	root := doc.Root()
	root.SetAttribute("attr1", "vaLue1")
	root.SetAttribute("attr2", "value2")

	child1, err := root.AddChild("child")
	require.NoError(t, err)
	require.NoError(t, child1.SetContent("Content goes here"))

	child2, err := root.AddChild("last")
	require.NoError(t, err)
	child2.SetAttribute("last", "True")

	str, err := doc.XMLString()
	require.NoError(t, err, "XMLString should succeed")

	const expected = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<root attr1="vaLue1" attr2="value2"><child>Content goes here</child><last last="True"/></root>`
	assert.Equal(t, expected, str)
}

func TestDocumentSetters(t *testing.T) {
	doc := CreateDocument("root")
	assert.Equal(t, "", doc.Version())

	doc.SetVersion("1.0")
	doc.SetEncoding("UTF-8")
	doc.SetStandalone("no")

	assert.Equal(t, "1.0", doc.Version())
	assert.Equal(t, "UTF-8", doc.Encoding())
	assert.Equal(t, "no", doc.Standalone())
}

func TestDocumentClone(t *testing.T) {
	orig, err := ParseString(sampleXML)
	require.NoError(t, err)

	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone, cmpopts()...); diff != "" {
		t.Fatalf("clone differs from original:\n%s", diff)
	}

	// the trees must be fully independent
	item, err := clone.Root().Child(0)
	require.NoError(t, err)
	item.SetAttribute("id", "9999")

	origItem, err := orig.Root().Child(0)
	require.NoError(t, err)
	id, err := origItem.Attribute("id")
	require.NoError(t, err)
	assert.Equal(t, "0001", id)
}
