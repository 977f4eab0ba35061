package markup

// Node is a parsed tree node: either Leaf or Element
type Node interface {
	isNode()
}

// Leaf is literal text. It serialises as a plain JSON string.
type Leaf string

// Element is a matched tag pair and everything nested inside it
type Element struct {
	Tag      string `json:"tag"`
	Children []Node `json:"children"`
}

func (Leaf) isNode()    {}
func (Element) isNode() {}

// treeCursor walks a well-nested token slice in place. Nested elements
// share the cursor so no sub-slices are copied.
type treeCursor struct {
	tokens []Token
	pos    int
}

// children collects nodes until a close tag or the end of input. The close
// tag is left for the caller to step over.
func (c *treeCursor) children() []Node {
	nodes := []Node{}
	for c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		switch tok.Type {
		case TokenText:
			nodes = append(nodes, Leaf(tok.Value))
			c.pos++
		case TokenOpen:
			c.pos++
			nested := c.children()
			nodes = append(nodes, Element{Tag: tok.Value, Children: nested})
			// step over the close tag
			c.pos++
		case TokenClose:
			return nodes
		}
	}
	return nodes
}

// ConstructTree builds the node tree for a well-nested token sequence, as
// produced by RemoveOrphanTokens, and reports how many tokens were consumed.
// Open/close names are not checked against each other. A close tag at the
// top level stops construction.
func ConstructTree(tokens []Token) ([]Node, int) {
	c := &treeCursor{tokens: tokens}
	nodes := c.children()
	if c.pos > len(tokens) {
		// an open tag without its close tag ran off the end
		c.pos = len(tokens)
	}
	return nodes, c.pos
}

// PlainText concatenates all leaf text in document order
func PlainText(nodes []Node) string {
	var buf []byte
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch v := n.(type) {
			case Leaf:
				buf = append(buf, v...)
			case Element:
				walk(v.Children)
			}
		}
	}
	walk(nodes)
	return string(buf)
}
