package markup

// Parser runs the parsing pipeline. The zero value is not usable; use
// NewParser. A Parser holds no per-call state and is safe for concurrent use
// as long as its Tracer is.
type Parser struct {
	tracer Tracer
}

// Option configures a Parser
type Option func(*Parser)

// WithTracer installs a tracer for orphan resolution events
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}

// NewParser creates a parser with the given options
func NewParser(opts ...Option) *Parser {
	p := &Parser{tracer: nopTracer{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Tokens runs the token stages and returns the validated token sequence
func (p *Parser) Tokens(input string) []Token {
	return p.RemoveOrphanTokens(MergeAdjacentText(Tokenize(input)))
}

// Parse turns input into a tree of nodes
func (p *Parser) Parse(input string) []Node {
	nodes, _ := ConstructTree(p.Tokens(input))
	return nodes
}

// Parse turns input into a tree of nodes using the default Parser
func Parse(input string) []Node {
	return defaultParser.Parse(input)
}

// StripTags returns the text of input with all markup removed. Text at seams
// left by removed tags follows the same space rule as MergeAdjacentText.
func StripTags(input string) string {
	return PlainText(Parse(input))
}
