package markup

import "regexp"

var tagPattern = regexp.MustCompile(`\{/?[a-zA-Z]+\}`)

// Tokenize splits input into text and tag tokens in document order.
// Text between tags is kept verbatim; an empty input yields no tokens.
func Tokenize(input string) []Token {
	if input == "" {
		return []Token{}
	}

	matches := tagPattern.FindAllStringIndex(input, -1)
	tokens := make([]Token, 0, 2*len(matches)+1)
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			tokens = append(tokens, Text(input[last:start]))
		}

		// strip the braces
		name := input[start+1 : end-1]
		if name[0] == '/' {
			tokens = append(tokens, Close(name[1:]))
		} else {
			tokens = append(tokens, Open(name))
		}
		last = end
	}

	if last < len(input) {
		tokens = append(tokens, Text(input[last:]))
	}

	return tokens
}
