package parser

import (
	"github.com/quill-lang/quill/internal/compiler/operators"
	"github.com/quill-lang/quill/internal/compiler/token"
)

// matchOperator inspects the tokens at offset, offset+1 and (for ternary
// symbols like `**=`) offset+2 past the cursor and reports which single
// operator they encode, along with how many tokens the operator itself
// spans. It never moves the cursor: callers that accept the operator must
// advance offset+width tokens themselves. Longest match wins, so `==` is
// never read as two assignments and `**=` is never read as `**` `=`.
func (p *Parser) matchOperator(offset int) (operators.Operator, int, bool) {
	tok := p.lex.Peek(offset)
	switch tok.Kind {
	case token.KindSymbol:
		return p.matchSymbolOperator(offset, tok.Symbol)
	case token.KindKeyword:
		return p.matchKeywordOperator(offset, tok.Keyword)
	default:
		return 0, 0, false
	}
}

func (p *Parser) matchSymbolOperator(offset int, sym token.Symbol) (operators.Operator, int, bool) {
	followedByEquals := p.lex.Peek(offset + 1).Is(token.SymEquals)

	switch sym {
	case token.SymEquals:
		if followedByEquals {
			return operators.Equality, 2, true
		}
		return operators.SimpleAssignment, 1, true
	case token.SymPlus:
		if followedByEquals {
			return operators.AdditionAssignment, 2, true
		}
		return operators.Addition, 1, true
	case token.SymMinus:
		if followedByEquals {
			return operators.SubtractionAssignment, 2, true
		}
		return operators.Subtraction, 1, true
	case token.SymAsterisk:
		if followedByEquals {
			return operators.MultiplicationAssignment, 2, true
		}
		if p.lex.Peek(offset + 1).Is(token.SymAsterisk) {
			if p.lex.Peek(offset + 2).Is(token.SymEquals) {
				return operators.ExponentiationAssignment, 3, true
			}
			return operators.Exponentiation, 2, true
		}
		return operators.Multiplication, 1, true
	case token.SymSlash:
		if followedByEquals {
			return operators.DivisionAssignment, 2, true
		}
		return operators.Division, 1, true
	case token.SymPercent:
		if followedByEquals {
			return operators.ModuloAssignment, 2, true
		}
		return operators.Modulo, 1, true
	case token.SymBang:
		if followedByEquals {
			return operators.Inequality, 2, true
		}
		return operators.Not, 1, true
	case token.SymGreater:
		if followedByEquals {
			return operators.GreaterThanOrEquals, 2, true
		}
		return operators.GreaterThan, 1, true
	case token.SymLess:
		if followedByEquals {
			return operators.LessThanOrEquals, 2, true
		}
		return operators.LessThan, 1, true
	default:
		return 0, 0, false
	}
}

func (p *Parser) matchKeywordOperator(offset int, kw token.Keyword) (operators.Operator, int, bool) {
	switch kw {
	case token.KwIs:
		if p.lex.Peek(offset + 1).IsKeyword(token.KwNot) {
			return operators.Inequality, 2, true
		}
		return operators.Equality, 1, true
	case token.KwAnd:
		return operators.And, 1, true
	case token.KwOr:
		return operators.Or, 1, true
	case token.KwNot:
		return operators.Not, 1, true
	case token.KwXor:
		return operators.Xor, 1, true
	default:
		return 0, 0, false
	}
}
