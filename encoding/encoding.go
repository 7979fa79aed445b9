// Package encoding resolves the byte order of raw XML input. It wraps
// the relevant pieces of golang.org/x/text/encoding so the parser
// package does not have to deal with the name clashes against the
// stdlib unicode packages.
//
// Only the Unicode family is handled. neon parametrizes over the
// code-unit width of its input; converting between arbitrary character
// sets is deliberately out of scope.
package encoding

import (
	"bytes"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const (
	UTF8    = "utf-8"
	UTF16LE = "utf-16le"
	UTF16BE = "utf-16be"
	UTF32LE = "utf-32le"
	UTF32BE = "utf-32be"
)

// BOM and first-character patterns, longest first. A document starting
// with '<' or the "<?xm" of a declaration betrays its byte order even
// without a BOM.
var (
	patUTF32BEBOM = []byte{0x00, 0x00, 0xFE, 0xFF}
	patUTF32LEBOM = []byte{0xFF, 0xFE, 0x00, 0x00}
	patUTF32BE    = []byte{0x00, 0x00, 0x00, 0x3C}
	patUTF32LE    = []byte{0x3C, 0x00, 0x00, 0x00}
	patUTF16LE4B  = []byte{0x3C, 0x00, 0x3F, 0x00}
	patUTF16BE4B  = []byte{0x00, 0x3C, 0x00, 0x3F}
	patUTF8BOM    = []byte{0xEF, 0xBB, 0xBF}
	patUTF16BEBOM = []byte{0xFE, 0xFF}
	patUTF16LEBOM = []byte{0xFF, 0xFE}
)

// Detect inspects the head of the buffer and reports the encoding name
// along with the length of the byte order mark to strip, if one is
// present. Unrecognizable input is reported as UTF-8, which also covers
// plain ASCII documents with no declaration.
func Detect(b []byte) (string, int) {
	if len(b) >= 4 {
		switch {
		case bytes.Equal(b[:4], patUTF32BEBOM):
			return UTF32BE, 4
		case bytes.Equal(b[:4], patUTF32LEBOM):
			return UTF32LE, 4
		case bytes.Equal(b[:4], patUTF32BE):
			return UTF32BE, 0
		case bytes.Equal(b[:4], patUTF32LE):
			return UTF32LE, 0
		case bytes.Equal(b[:4], patUTF16LE4B):
			return UTF16LE, 0
		case bytes.Equal(b[:4], patUTF16BE4B):
			return UTF16BE, 0
		}
	}
	if len(b) >= 3 && bytes.Equal(b[:3], patUTF8BOM) {
		return UTF8, 3
	}
	if len(b) >= 2 {
		switch {
		case bytes.Equal(b[:2], patUTF16BEBOM):
			return UTF16BE, 2
		case bytes.Equal(b[:2], patUTF16LEBOM):
			return UTF16LE, 2
		}
	}
	return UTF8, 0
}

// BOMLen reports the length of the byte order mark at the head of b,
// if one matching the named encoding is present. Callers that force an
// encoding instead of relying on Detect still have to strip the BOM.
func BOMLen(name string, b []byte) int {
	switch strings.ToLower(name) {
	case "utf8", UTF8:
		if len(b) >= 3 && bytes.Equal(b[:3], patUTF8BOM) {
			return 3
		}
	case "utf16le", UTF16LE:
		if len(b) >= 2 && bytes.Equal(b[:2], patUTF16LEBOM) {
			return 2
		}
	case "utf16be", UTF16BE, "utf16", "utf-16":
		if len(b) >= 2 && bytes.Equal(b[:2], patUTF16BEBOM) {
			return 2
		}
	case "utf32le", UTF32LE:
		if len(b) >= 4 && bytes.Equal(b[:4], patUTF32LEBOM) {
			return 4
		}
	case "utf32be", UTF32BE, "utf32", "utf-32":
		if len(b) >= 4 && bytes.Equal(b[:4], patUTF32BEBOM) {
			return 4
		}
	}
	return 0
}

// Load returns the Encoding for a detected or caller-supplied name, or
// nil when the name is not part of the supported Unicode family.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", UTF8:
		return unicode.UTF8
	case "utf16le", UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be", UTF16BE, "utf16", "utf-16":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf32le", UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case "utf32be", UTF32BE, "utf32", "utf-32":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	}
	return nil
}
