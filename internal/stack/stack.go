// Package stack provides a minimal LIFO used by the tree builder to
// track the currently open elements.
package stack

type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top of the stack. The second return
// value is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	v := (*s)[len(*s)-1]
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return v, true
}

// Peek returns the top of the stack without removing it.
func (s Stack[T]) Peek() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

func (s Stack[T]) Len() int {
	return len(s)
}
