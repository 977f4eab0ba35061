package markup

import "fmt"

// TokenType identifies the kind of a Token
type TokenType int

const (
	// TokenText is literal text
	TokenText TokenType = iota
	// TokenOpen is an opening tag such as {b}
	TokenOpen
	// TokenClose is a closing tag such as {/b}
	TokenClose
)

// String returns the string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name written by MarshalText
func (t *TokenType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*t = TokenText
	case "open":
		*t = TokenOpen
	case "close":
		*t = TokenClose
	default:
		return fmt.Errorf("unknown token type %q", b)
	}
	return nil
}

// Token is a single lexical unit. For TokenText, Value is the literal text;
// for tags it is the tag name without braces or slash.
type Token struct {
	Type  TokenType `json:"type"`
	Value string    `json:"value"`
}

// Text returns a text token
func Text(value string) Token { return Token{Type: TokenText, Value: value} }

// Open returns an opening tag token
func Open(tag string) Token { return Token{Type: TokenOpen, Value: tag} }

// Close returns a closing tag token
func Close(tag string) Token { return Token{Type: TokenClose, Value: tag} }

// IsTag reports whether the token is an opening or closing tag
func (t Token) IsTag() bool {
	return t.Type == TokenOpen || t.Type == TokenClose
}

func (t Token) String() string {
	switch t.Type {
	case TokenOpen:
		return fmt.Sprintf("Open(%s)", t.Value)
	case TokenClose:
		return fmt.Sprintf("Close(%s)", t.Value)
	default:
		return fmt.Sprintf("Text(%q)", t.Value)
	}
}

// TextContent concatenates the values of all text tokens, ignoring tags.
func TextContent(tokens []Token) string {
	var n int
	for _, tok := range tokens {
		if tok.Type == TokenText {
			n += len(tok.Value)
		}
	}
	buf := make([]byte, 0, n)
	for _, tok := range tokens {
		if tok.Type == TokenText {
			buf = append(buf, tok.Value...)
		}
	}
	return string(buf)
}
