package neon

import "github.com/lestrrat-go/neon/internal/orderedmap"

// CodeUnit is the set of code-unit widths the scanner can be
// instantiated with: UTF-8 bytes, UTF-16 code units, or full runes.
type CodeUnit interface {
	~byte | ~uint16 | ~rune
}

// Element is a single node in the parsed tree. An element carries either
// text content or child elements, never both; mutators enforce this.
type Element struct {
	name     string
	content  string
	attrs    *orderedmap.Map[string, string]
	children []*Element
}

// Document represents a whole XML document: exactly one root element,
// plus the version/encoding/standalone fields of the leading
// `<?xml ... ?>` declaration, all empty when no declaration was present.
type Document struct {
	root       *Element
	version    string
	encoding   string
	standalone string
}

type tokenType int

// Token classification. OPEN and CLOSE are bit flags so that a
// self-closing tag can be both at once.
const (
	tokenError   tokenType = 0x00
	tokenOpen    tokenType = 0x01
	tokenClose   tokenType = 0x02
	tokenContent tokenType = 0x04
	tokenComment tokenType = 0x08
)
