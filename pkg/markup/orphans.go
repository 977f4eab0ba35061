package markup

// RemoveOrphanTokens drops every tag token without a counterpart and
// re-merges the text around it, using the default Parser.
func RemoveOrphanTokens(tokens []Token) []Token {
	return defaultParser.RemoveOrphanTokens(tokens)
}

// RemoveOrphanTokens returns tokens reduced to a well-nested sequence.
//
// Open tags are stacked as they are seen. A close tag pops the stack until
// it finds the nearest open tag of the same name; open tags popped on the
// way are crossed and dropped. A close tag whose name is nowhere on the
// stack is dropped and unwinds the whole stack, so every pending open tag
// is dropped with it. Open tags left at the end are dropped too. Text tokens
// are never removed.
func (p *Parser) RemoveOrphanTokens(tokens []Token) []Token {
	orphaned := make([]bool, len(tokens))
	stack := make([]int, 0, 8)

	for i, tok := range tokens {
		switch tok.Type {
		case TokenOpen:
			stack = append(stack, i)
		case TokenClose:
			match := -1
			for j := len(stack) - 1; j >= 0; j-- {
				if tokens[stack[j]].Value == tok.Value {
					match = j
					break
				}
			}
			if match < 0 {
				orphaned[i] = true
				p.tracer.TagOrphaned(tok, i, ReasonNoOpen)
				for j := len(stack) - 1; j >= 0; j-- {
					orphaned[stack[j]] = true
					p.tracer.TagOrphaned(tokens[stack[j]], stack[j], ReasonUnwound)
				}
				stack = stack[:0]
				continue
			}
			for _, idx := range stack[match+1:] {
				orphaned[idx] = true
				p.tracer.TagOrphaned(tokens[idx], idx, ReasonCrossed)
			}
			p.tracer.TagMatched(tok.Value, stack[match], i)
			stack = stack[:match]
		}
	}

	for _, idx := range stack {
		orphaned[idx] = true
		p.tracer.TagOrphaned(tokens[idx], idx, ReasonUnclosed)
	}

	kept := make([]Token, 0, len(tokens))
	for i, tok := range tokens {
		if !orphaned[i] {
			kept = append(kept, tok)
		}
	}

	return MergeAdjacentText(kept)
}
