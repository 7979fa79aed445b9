package neon

import "strings"

// The entity codec handles the five reserved XML characters. Decoding
// recognizes the named, decimal, and hexadecimal reference forms;
// encoding always emits the named form, so decode-encode round trips
// are stable by character identity even though the textual form may
// normalize.

type entityRef[T CodeUnit] struct {
	named []T
	dec   []T
	hex   []T
	repl  T
}

func (e *entityRef[T]) forms() [3][]T {
	return [3][]T{e.named, e.dec, e.hex}
}

type entityTable[T CodeUnit] [5]entityRef[T]

func newEntityTable[T CodeUnit]() *entityTable[T] {
	return &entityTable[T]{
		{widen[T]("&amp;"), widen[T]("&#38;"), widen[T]("&#x26;"), '&'},
		{widen[T]("&lt;"), widen[T]("&#60;"), widen[T]("&#x3C;"), '<'},
		{widen[T]("&gt;"), widen[T]("&#62;"), widen[T]("&#x3E;"), '>'},
		{widen[T]("&quot;"), widen[T]("&#34;"), widen[T]("&#x22;"), '"'},
		{widen[T]("&apos;"), widen[T]("&#39;"), widen[T]("&#x27;"), '\''},
	}
}

// match tests whether any reference form of any table row begins at the
// start of buf, returning the replacement character and the length of
// the matched reference.
func (tab *entityTable[T]) match(buf []T) (T, int, bool) {
	for row := range tab {
		for _, form := range tab[row].forms() {
			if len(buf) < len(form) {
				continue
			}
			equal := true
			for i := range form {
				if buf[i] != form[i] {
					equal = false
					break
				}
			}
			if equal {
				return tab[row].repl, len(form), true
			}
		}
	}
	var zero T
	return zero, 0, false
}

// decodeEntities replaces every entity reference in the content span by
// its literal character in a single left-to-right pass. Scanning
// resumes directly behind the substituted character, so adjacent
// references are caught, but characters produced by a substitution are
// never themselves re-interpreted; this keeps decode(encode(s)) == s
// for content that spells out references literally. The input slice is
// not modified.
func decodeEntities[T CodeUnit](in []T, tab *entityTable[T]) []T {
	out := make([]T, 0, len(in))
	for i := 0; i < len(in); {
		repl, n, ok := tab.match(in[i:])
		if !ok {
			out = append(out, in[i])
			i++
			continue
		}
		out = append(out, repl)
		i += n
	}
	return out
}

// encodeEntities replaces the five reserved characters in s by their
// named entity references. Serialization applies this to element
// content only, mirroring the decoder.
func encodeEntities(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
