// Package neon implements a small, non-validating, in-memory XML
// reader/writer. It parses raw text into a tree of elements carrying a
// name, an attribute map, text content, and child elements, and can
// serialize such a tree back to text.
//
// neon deliberately does not aim for W3C conformance: there is no DTD
// handling, no CDATA sections, no processing instructions other than the
// leading XML declaration, and no namespace resolution beyond splitting
// an element name on its first ':'. Malformed markup makes the whole
// parse fail; there is no error recovery.
//
// The scanner is parametrized over the code-unit width of its input.
// Parse and ParseString operate on UTF-8 bytes, Parse16 on UTF-16 code
// units, and Parse32 on UTF-32 (rune) buffers. All three share one
// generic implementation.
//
// A Document exclusively owns its element tree. Concurrent mutation of
// the same tree is not supported; callers that share a Document across
// goroutines must serialize access themselves, or hand each goroutine
// its own Clone.
package neon

// Version describes the version of this library.
const Version = "0.1.0"
