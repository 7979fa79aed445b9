package neon

import (
	"unicode"
	"unicode/utf16"
)

// profile bundles the per-width pieces of the scanner: character
// classification, conversion of code-unit slices to Go strings, and the
// immutable entity reference table. One profile exists per instantiated
// width, constructed once at package init.
type profile[T CodeUnit] struct {
	isSpace  func(T) bool
	isAlpha  func(T) bool
	str      func([]T) string
	entities *entityTable[T]
}

var (
	profile8 = &profile[byte]{
		isSpace:  isSpaceByte,
		isAlpha:  isAlphaByte,
		str:      func(b []byte) string { return string(b) },
		entities: newEntityTable[byte](),
	}
	profile16 = &profile[uint16]{
		isSpace:  isSpaceWide[uint16],
		isAlpha:  isAlphaWide[uint16],
		str:      func(b []uint16) string { return string(utf16.Decode(b)) },
		entities: newEntityTable[uint16](),
	}
	profile32 = &profile[rune]{
		isSpace:  isSpaceWide[rune],
		isAlpha:  isAlphaWide[rune],
		str:      func(b []rune) string { return string(b) },
		entities: newEntityTable[rune](),
	}
)

func isSpaceByte(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

func isAlphaByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isSpaceWide[T ~uint16 | ~rune](c T) bool {
	return unicode.IsSpace(rune(c))
}

func isAlphaWide[T ~uint16 | ~rune](c T) bool {
	return unicode.IsLetter(rune(c))
}

// widen converts an ASCII string literal to a slice of code units. It
// is only used to build the static lookup tables.
func widen[T CodeUnit](s string) []T {
	out := make([]T, 0, len(s))
	for _, r := range s {
		out = append(out, T(r))
	}
	return out
}

// hasPrefix reports whether buf[off:end] starts with the given ASCII
// marker.
func hasPrefix[T CodeUnit](buf []T, off, end int, marker string) bool {
	if end > len(buf) {
		end = len(buf)
	}
	if end-off < len(marker) {
		return false
	}
	for i := 0; i < len(marker); i++ {
		if buf[off+i] != T(marker[i]) {
			return false
		}
	}
	return true
}
