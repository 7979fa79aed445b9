package neon

// Tag-level scanning: classification of a single token span, and
// extraction of the element name and attribute pairs from an opening
// tag.

// determineToken classifies the token buf[start:end]. The result is a
// bitmask: a self-closing tag is both tokenOpen and tokenClose.
func determineToken[T CodeUnit](buf []T, start, end int) tokenType {
	if buf[start] != '<' {
		return tokenContent
	}
	if start+1 < end && buf[start+1] == '/' {
		return tokenClose
	}
	if isCommentStart(buf, start, end) {
		return tokenComment
	}

	// roll forward until the terminating '>'
	i := start
	for i < end && buf[i] != '>' {
		i++
	}
	if i == end {
		return tokenError
	}

	what := tokenOpen
	if buf[i-1] == '/' {
		what |= tokenClose
	}
	return what
}

// extractName reads the element name out of a tag token. start must
// point at the '<'; a '/' right behind it (closing tag) is skipped. The
// name runs up to the first whitespace, '>' or '/'. A ':' stays in the
// name; prefix splitting is an accessor-level concern.
func extractName[T CodeUnit](buf []T, start, end int, p *profile[T]) string {
	i := start + 1
	if i < end && buf[i] == '/' {
		i++
	}
	nameStart := i
	for i < end && !p.isSpace(buf[i]) && buf[i] != '>' && buf[i] != '/' {
		i++
	}
	return p.str(buf[nameStart:i])
}

type attrPair struct {
	name  string
	value string
}

// extractAttributes scans the body of the tag token buf[start:end] for
// key="value" pairs and returns them in document order. A key starts at
// the first alphabetic code unit after the previous pair and runs up to
// the '='; the value is delimited by whichever quote character opens
// it, double or single. Pairs with no quote behind the '=' are skipped.
func extractAttributes[T CodeUnit](buf []T, start, end int, p *profile[T]) []attrPair {
	i := start
	// skip the element name
	for i < end && !p.isSpace(buf[i]) && buf[i] != '>' {
		i++
	}

	var pairs []attrPair
	keyBegin, keyEnd, valBegin := -1, -1, -1
	var quote T
	for ; i < end && buf[i] != '>'; i++ {
		c := buf[i]
		switch {
		case keyBegin < 0 && p.isAlpha(c):
			keyBegin = i
		case keyBegin >= 0 && valBegin < 0 && c == '=':
			keyEnd = i
			for keyEnd > keyBegin && p.isSpace(buf[keyEnd-1]) {
				keyEnd--
			}
			j := i + 1
			for j < end && p.isSpace(buf[j]) {
				j++
			}
			if j < end && (buf[j] == '"' || buf[j] == '\'') {
				quote = buf[j]
				valBegin = j + 1
				i = j
			} else {
				// not a quoted value, drop the pair
				keyBegin, keyEnd = -1, -1
			}
		case valBegin >= 0 && c == quote:
			pairs = append(pairs, attrPair{
				name:  p.str(buf[keyBegin:keyEnd]),
				value: p.str(buf[valBegin:i]),
			})
			keyBegin, keyEnd, valBegin = -1, -1, -1
		}
	}
	return pairs
}
