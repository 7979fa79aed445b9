package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s Stack[string]

	_, ok := s.Peek()
	assert.False(t, ok, "peek on empty stack")
	_, ok = s.Pop()
	assert.False(t, ok, "pop on empty stack")

	s.Push("a")
	s.Push("b")
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len(), "peek does not remove")

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 0, s.Len())
}
