package neon

// This file implements the boundary scanner and the two boundary
// filters. A "boundary" is an offset into the buffer that either points
// at a '<' or sits immediately behind a '>'; the span between two
// consecutive boundaries is one token. The boundary list always starts
// at offset 0 and always ends with a sentinel at len(buf), so token i
// is buf[bounds[i]:bounds[i+1]].

// tokenize performs a single linear scan over buf and emits the
// boundary list.
func tokenize[T CodeUnit](buf []T) []int {
	bounds := make([]int, 1, 16)
	bounds[0] = 0
	for i := 1; i < len(buf); i++ {
		if buf[i] == '<' || buf[i-1] == '>' {
			bounds = append(bounds, i)
		}
	}
	if len(buf) > 0 {
		// sentinel one past the last code unit
		bounds = append(bounds, len(buf))
	}
	return bounds
}

// removeGaps drops the opening boundary of every token that consists
// entirely of whitespace, merging the gap into the preceding token.
// Inter-tag indentation disappears here, before classification; tokens
// that mix whitespace with anything else are left alone.
func removeGaps[T CodeUnit](buf []T, bounds []int, isSpace func(T) bool) []int {
	out := bounds[:0]
	for j := 0; j+1 < len(bounds); j++ {
		wspaceOnly := true
		for i := bounds[j]; i < bounds[j+1]; i++ {
			if !isSpace(buf[i]) {
				wspaceOnly = false
				break
			}
		}
		if !wspaceOnly {
			out = append(out, bounds[j])
		}
	}
	if len(bounds) > 0 {
		out = append(out, bounds[len(bounds)-1])
	}
	return out
}

func isCommentStart[T CodeUnit](buf []T, i, end int) bool {
	return hasPrefix(buf, i, end, "<!--")
}

func isCommentEnd[T CodeUnit](buf []T, i int) bool {
	return i >= 2 && buf[i] == '>' && buf[i-1] == '-' && buf[i-2] == '-'
}

// removeComments erases every boundary strictly inside a comment, so
// that each `<!--` ... `-->` range collapses into a single token no
// matter how many raw tokens it spans. The first `-->` terminates the
// comment; a comment still open at end of input is a structural error.
func removeComments[T CodeUnit](buf []T, bounds []int) ([]int, int, error) {
	out := bounds[:0]
	inComment := false
	commentAt := 0
	for j := 0; j+1 < len(bounds); j++ {
		start, end := bounds[j], bounds[j+1]
		if !inComment {
			out = append(out, start)
		}
		for i := start; i < end; i++ {
			if !inComment {
				if isCommentStart(buf, i, end) {
					inComment = true
					commentAt = i
					i += 3 // the marker was checked wholesale
				}
			} else if isCommentEnd(buf, i) && i-2 >= commentAt+4 {
				inComment = false
			}
		}
	}
	if inComment {
		return nil, commentAt, ErrInvalidComment
	}
	if len(bounds) > 0 {
		out = append(out, bounds[len(bounds)-1])
	}
	return out, 0, nil
}
