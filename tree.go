package neon

import (
	"github.com/lestrrat-go/pdebug/v3"

	"github.com/lestrrat-go/neon/internal/stack"
)

// buildFrame is one entry of the open-element stack. Content spans are
// accumulated in code units and only decoded and attached when the
// element closes, so references split across tokens by an interleaved
// comment still decode as one run.
type buildFrame[T CodeUnit] struct {
	el      *Element
	content []T
}

// buildTree runs the stack machine over the filtered, classified token
// stream. bounds must no longer contain the declaration token. The
// root element is popped last; everything after that point is ignored,
// while running out of tokens with open elements is a structural
// failure.
func (ctx *parseCtx[T]) buildTree(bounds []int) (*Element, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	buf := ctx.buf
	prof := ctx.prof

	start, end := bounds[0], bounds[1]
	what := determineToken(buf, start, end)
	if what == tokenError {
		return nil, ctx.error(ErrGtRequired, start)
	}
	if what&tokenOpen == 0 {
		return nil, ctx.error(ErrStartTagRequired, start)
	}

	root := ctx.newElement(start, end)
	if what&tokenClose != 0 {
		// self-closing root, the document is complete
		return root, nil
	}

	var tree stack.Stack[*buildFrame[T]]
	tree.Push(&buildFrame[T]{el: root})

	for j := 1; j+1 < len(bounds) && tree.Len() > 0; j++ {
		start, end := bounds[j], bounds[j+1]
		what := determineToken(buf, start, end)
		top, _ := tree.Peek()

		switch {
		case what == tokenError:
			return nil, ctx.error(ErrGtRequired, start)

		case what&tokenOpen != 0:
			el := ctx.newElement(start, end)
			top.el.children = append(top.el.children, el)
			if what&tokenClose == 0 {
				tree.Push(&buildFrame[T]{el: el})
			}
			if pdebug.Enabled {
				pdebug.Printf("open element %s (depth %d)", el.name, tree.Len())
			}

		case what == tokenClose:
			if buf[end-1] != '>' {
				return nil, ctx.error(ErrGtRequired, start)
			}
			if name := extractName(buf, start, end, prof); name != top.el.name {
				return nil, ctx.error(ErrTagNameMismatch, start)
			}
			ctx.finishElement(top)
			tree.Pop()

		case what == tokenContent:
			top.content = append(top.content, buf[start:end]...)

		case what == tokenComment:
			// invisible to the tree
		}
	}

	if tree.Len() > 0 {
		return nil, ctx.error(ErrPrematureEOF, len(buf))
	}
	return root, nil
}

func (ctx *parseCtx[T]) newElement(start, end int) *Element {
	el := newElement(extractName(ctx.buf, start, end, ctx.prof))
	for _, pair := range extractAttributes(ctx.buf, start, end, ctx.prof) {
		// duplicate keys: the last occurrence wins
		el.attrs.Set(pair.name, pair.value)
	}
	return el
}

// finishElement decodes and attaches the accumulated content. Elements
// that acquired children keep the content/children exclusivity: any
// stray inter-child text was already whitespace-filtered, and mixed
// content is out of scope, so content only lands on childless elements.
func (ctx *parseCtx[T]) finishElement(f *buildFrame[T]) {
	if len(f.content) == 0 {
		return
	}
	if len(f.el.children) > 0 {
		return
	}
	units := f.content
	if ctx.replaceEntities {
		units = decodeEntities(units, ctx.prof.entities)
	}
	f.el.content = ctx.prof.str(units)
}
