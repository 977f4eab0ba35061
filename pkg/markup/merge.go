package markup

import (
	"strings"
	"unicode"
)

// MergeAdjacentText joins runs of consecutive text tokens into one token.
//
// Where the text accumulated so far ends in a space and the next fragment
// starts with one, all trailing whitespace of the accumulated text is
// trimmed so the seam holds the next fragment's space only. Only seams between separate tokens are touched.
// Empty text is never emitted and tag tokens pass through unchanged.
func MergeAdjacentText(tokens []Token) []Token {
	merged := make([]Token, 0, len(tokens))
	var text strings.Builder
	pending := false

	flush := func() {
		if text.Len() > 0 {
			merged = append(merged, Text(text.String()))
		}
		text.Reset()
		pending = false
	}

	for _, tok := range tokens {
		if tok.Type != TokenText {
			flush()
			merged = append(merged, tok)
			continue
		}

		if pending && strings.HasPrefix(tok.Value, " ") {
			if acc := text.String(); strings.HasSuffix(acc, " ") {
				text.Reset()
				text.WriteString(strings.TrimRightFunc(acc, unicode.IsSpace))
			}
		}
		text.WriteString(tok.Value)
		pending = true
	}
	flush()

	return merged
}
