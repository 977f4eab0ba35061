/*
Package markup parses brace-tagged text into a tree and renders that tree
through caller supplied wrappers.

# Syntax

A tag is one or more ASCII letters wrapped in braces. Closing tags carry a
leading slash:

	hello {b}bold {i}and italic{/i}{/b} world

Anything that does not match that shape, such as "{b1}" or "{ b }", is plain
text. There are no attributes and no escape sequences.

# Pipeline

Parse runs four stages, each usable on its own:
  - Tokenize: string -> flat []Token (text, open, close)
  - MergeAdjacentText: joins neighbouring text tokens
  - RemoveOrphanTokens: drops tags without a counterpart, keeping all text
  - ConstructTree: well-nested tokens -> []Node

Malformed markup never fails. Unmatched or crossing tags are dropped and
their surrounding text is merged back together:

	Parse("{b}hello{/r} world")  // [Leaf("hello world")]

# Rendering

Renderer maps each Element's tag to a Wrapper over the already rendered
children. The output type is chosen by the caller:

	r := markup.NewRenderer(markup.Identity, map[string]markup.Wrapper[string]{
		"b": markup.Wrap(strings.ToUpper),
	})
	out, err := r.Render(markup.Parse("hello {b}world{/b}"))

A tag without a wrapper is an error unless a fallback was configured.
*/
package markup
