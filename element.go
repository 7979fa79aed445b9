package neon

import (
	"strings"

	"github.com/lestrrat-go/neon/internal/orderedmap"
)

func newElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, string](),
	}
}

// NewElement creates a free-standing element, for programmatic tree
// construction.
func NewElement(name string) *Element {
	return newElement(name)
}

// Name returns the full element name, including a namespace prefix if
// one was present.
func (e *Element) Name() string {
	return e.name
}

// Prefix returns the namespace prefix of the element name, or an empty
// string. No resolution is performed; this is purely the part of the
// name before the first ':'.
func (e *Element) Prefix() string {
	if i := strings.IndexByte(e.name, ':'); i >= 0 {
		return e.name[:i]
	}
	return ""
}

// LocalName returns the element name with its namespace prefix, if
// any, removed.
func (e *Element) LocalName() string {
	if i := strings.IndexByte(e.name, ':'); i >= 0 {
		return e.name[i+1:]
	}
	return e.name
}

// Content returns the text content of the element. Elements with
// children have no content.
func (e *Element) Content() string {
	return e.content
}

// SetContent replaces the text content. It fails with
// ErrInvalidOperation when the element already has children.
func (e *Element) SetContent(s string) error {
	if len(e.children) > 0 {
		return ErrInvalidOperation
	}
	e.content = s
	return nil
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, error) {
	v, ok := e.attrs.Get(name)
	if !ok {
		return "", ErrAttrNotFound{Token: name}
	}
	return v, nil
}

// AttributeByIndex returns the i-th attribute name/value pair in
// document (or insertion) order.
func (e *Element) AttributeByIndex(i int) (string, string, error) {
	name, value, ok := e.attrs.At(i)
	if !ok {
		return "", "", ErrAttrNotFound{Index: i}
	}
	return name, value, nil
}

func (e *Element) AttributeCount() int {
	return e.attrs.Len()
}

// SetAttribute adds the attribute, overwriting the value of an
// existing key.
func (e *Element) SetAttribute(name, value string) {
	e.attrs.Set(name, value)
}

func (e *Element) ChildCount() int {
	return len(e.children)
}

// Child returns the i-th child element.
func (e *Element) Child(i int) (*Element, error) {
	if i < 0 || i >= len(e.children) {
		return nil, ErrChildNotFound{Index: i}
	}
	return e.children[i], nil
}

// ChildByName returns the first child element with the given name.
func (e *Element) ChildByName(name string) (*Element, error) {
	for _, c := range e.children {
		if c.name == name {
			return c, nil
		}
	}
	return nil, ErrChildNotFound{Name: name}
}

// AddChild appends a new child element and returns it. It fails with
// ErrInvalidOperation when the element carries text content.
func (e *Element) AddChild(name string) (*Element, error) {
	return e.AddChildAt(len(e.children), name)
}

// AddChildAt inserts a new child element at position i, shifting later
// children right, and returns it. It fails with ErrInvalidOperation
// when the element carries text content or i is out of range.
func (e *Element) AddChildAt(i int, name string) (*Element, error) {
	if e.content != "" {
		return nil, ErrInvalidOperation
	}
	if i < 0 || i > len(e.children) {
		return nil, ErrInvalidOperation
	}
	c := newElement(name)
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = c
	return c, nil
}

// Clone returns a deep copy of the element: the attribute map and every
// descendant are duplicated, so mutating the copy never touches the
// original.
func (e *Element) Clone() *Element {
	c := &Element{
		name:    e.name,
		content: e.content,
		attrs:   e.attrs.Clone(),
	}
	if len(e.children) > 0 {
		c.children = make([]*Element, len(e.children))
		for i, child := range e.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}
