package markup

import (
	"strings"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
)

// Wrapper renders an element from its already rendered children
type Wrapper[T any] func(children []T) T

// Renderer maps parse trees to caller owned output values. Wrappers are
// read, never modified, during Render.
type Renderer[T any] struct {
	text     func(string) T
	wrappers map[string]Wrapper[T]
	fallback Wrapper[T]
}

// NewRenderer creates a renderer. text converts leaf text into T and
// wrappers holds one Wrapper per tag name.
func NewRenderer[T any](text func(string) T, wrappers map[string]Wrapper[T]) *Renderer[T] {
	if wrappers == nil {
		wrappers = map[string]Wrapper[T]{}
	}
	return &Renderer[T]{text: text, wrappers: wrappers}
}

// WithFallback sets the wrapper used for tags that have no entry
func (r *Renderer[T]) WithFallback(w Wrapper[T]) *Renderer[T] {
	r.fallback = w
	return r
}

// Render renders nodes depth first in document order. A tag without a
// wrapper and no fallback yields a RENDERER_MISSING error.
func (r *Renderer[T]) Render(nodes []Node) ([]T, error) {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case Leaf:
			out = append(out, r.text(string(v)))
		case Element:
			children, err := r.Render(v.Children)
			if err != nil {
				return nil, err
			}
			wrap, ok := r.wrappers[v.Tag]
			if !ok {
				if r.fallback == nil {
					return nil, errors.Newf(errors.ErrRendererMissing, "no renderer for tag %q", v.Tag).
						WithDetail("tag", v.Tag)
				}
				wrap = r.fallback
			}
			out = append(out, wrap(children))
		}
	}
	return out, nil
}

// Identity is the leaf conversion for string output
func Identity(s string) string { return s }

// Join concatenates rendered string children
func Join(children []string) string {
	return strings.Join(children, "")
}

// Wrap lifts a whole-string transform, such as a lipgloss style's Render
// method, into a string Wrapper.
func Wrap(fn func(string) string) Wrapper[string] {
	return func(children []string) string {
		return fn(Join(children))
	}
}

// RenderString parses input and renders it with string wrappers
func RenderString(input string, wrappers map[string]Wrapper[string]) (string, error) {
	out, err := NewRenderer(Identity, wrappers).Render(Parse(input))
	if err != nil {
		return "", err
	}
	return Join(out), nil
}

// Tags returns the distinct tag names used in nodes, in first-seen order
func Tags(nodes []Node) []string {
	seen := map[string]bool{}
	var tags []string
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if el, ok := n.(Element); ok {
				if !seen[el.Tag] {
					seen[el.Tag] = true
					tags = append(tags, el.Tag)
				}
				walk(el.Children)
			}
		}
	}
	walk(nodes)
	return tags
}
