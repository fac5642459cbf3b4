package parser

import (
	"github.com/quill-lang/quill/internal/compiler/ast"
	"github.com/quill-lang/quill/internal/compiler/diagnostics"
	"github.com/quill-lang/quill/internal/compiler/lexer"
	"github.com/quill-lang/quill/internal/compiler/scope"
	"github.com/quill-lang/quill/internal/compiler/token"
)

// Parser turns a token stream into an AST, resolving identifier mutability
// through the scope chain while it goes. It is single-threaded: the lexer
// cursor is advanced only from here, in order.
type Parser struct {
	lex   *lexer.Lexer
	diags *diagnostics.Collector
}

func New(lex *lexer.Lexer, diags *diagnostics.Collector) *Parser {
	return &Parser{lex: lex, diags: diags}
}

// Parse tokenizes the input if that has not happened yet, then parses
// top-level statements into a fresh global block until end of file.
func (p *Parser) Parse() (*scope.Block, error) {
	global := scope.NewBlock()
	if err := p.ParseInto(global); err != nil {
		return nil, err
	}
	return global, nil
}

// ParseInto parses top-level statements into an existing global block. The
// REPL uses it to carry bindings across lines.
func (p *Parser) ParseInto(global *scope.Block) error {
	if p.lex.Count() == 0 {
		if err := p.lex.Tokenize(); err != nil {
			return err
		}
	}
	for p.lex.Current().Kind != token.KindEOF {
		stmt, err := p.parseStatement(global)
		if err != nil {
			return err
		}
		global.Append(stmt)
	}
	return nil
}

// parseStatement dispatches one statement: a `{ ... }` opens a nested
// block, anything else is an expression.
func (p *Parser) parseStatement(block *scope.Block) (ast.Node, error) {
	if p.lex.Current().Is(token.SymOpenBrace) {
		return p.ParseBlock(block)
	}
	return p.parseExpression(block)
}

// ParseBlock parses a `{ ... }` scope chained to parent. A missing brace is
// absorbed as a placeholder token (recorded on the diagnostics collector)
// and parsing proceeds.
func (p *Parser) ParseBlock(parent *scope.Block) (*scope.Block, error) {
	p.matchToken(token.KindSymbol, token.SymOpenBrace)
	block := scope.NewChild(parent)
	for !p.lex.Current().Is(token.SymCloseBrace) && p.lex.Current().Kind != token.KindEOF {
		stmt, err := p.parseStatement(block)
		if err != nil {
			return nil, err
		}
		block.Append(stmt)
	}
	p.matchToken(token.KindSymbol, token.SymCloseBrace)
	return block, nil
}

// matchToken consumes and returns the current token when it matches the
// expected kind (and symbol, for symbol tokens). On a mismatch nothing is
// consumed and no error is raised: the caller gets a synthetic placeholder
// token carrying the mismatched token's position, and the mismatch is
// recorded as a non-fatal diagnostic.
func (p *Parser) matchToken(kind token.Kind, sym token.Symbol) token.Token {
	cur := p.lex.Current()
	if cur.Kind == kind && (kind != token.KindSymbol || cur.Symbol == sym) {
		p.lex.Advance()
		return cur
	}
	if kind == token.KindSymbol {
		p.diags.Warnf("%d:%d: expected '%s', found %s", cur.Line, cur.Column, sym, cur)
	} else {
		p.diags.Warnf("%d:%d: expected %s, found %s", cur.Line, cur.Column, kind, cur)
	}
	return token.Placeholder(cur.Line, cur.Column)
}

func (p *Parser) parseExpression(block *scope.Block) (ast.Node, error) {
	return p.parseAssignmentExpression(block)
}

// parseAssignmentExpression handles the three statement-level shapes:
// `mutable` declarations, `name <assign-op> expr`, and plain arithmetic.
// Assignment is right-associative. Plain (non-mutable) assignment binds the
// existing name without touching the symbol table; only the `mutable` path
// does scope bookkeeping.
func (p *Parser) parseAssignmentExpression(block *scope.Block) (ast.Node, error) {
	cur := p.lex.Current()
	switch cur.Kind {
	case token.KindKeyword:
		if cur.Keyword == token.KwMutable {
			return p.handleMutableKeyword(block)
		}
		return p.parseArithmeticExpression(0, block)
	case token.KindIdentifier:
		op, width, ok := p.matchOperator(1)
		if !ok || !op.IsAssignment() {
			return p.parseArithmeticExpression(0, block)
		}
		p.advanceN(1 + width) // name + operator tokens
		expr, err := p.parseAssignmentExpression(block)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Name: cur.Name, Operator: op, Value: expr}, nil
	default:
		return p.parseArithmeticExpression(0, block)
	}
}

// parseArithmeticExpression is the precedence-climbing core. A unary
// operator is taken only when it has a unary meaning and binds at least as
// tightly as the current floor; binary operators fold left-associatively
// while they bind strictly tighter than the floor.
func (p *Parser) parseArithmeticExpression(parentPrecedence int, block *scope.Block) (ast.Node, error) {
	var left ast.Node
	var err error

	if op, _, ok := p.matchOperator(0); ok && op.UnaryPrecedence() > 0 && op.UnaryPrecedence() >= parentPrecedence {
		p.lex.Advance()
		operand, err := p.parseArithmeticExpression(op.UnaryPrecedence(), block)
		if err != nil {
			return nil, err
		}
		left = &ast.UnaryExpression{Operator: op, Operand: operand}
	} else {
		left, err = p.parseFactor(block)
		if err != nil {
			return nil, err
		}
	}

	for {
		op, width, ok := p.matchOperator(0)
		if !ok {
			break
		}
		precedence := op.BinaryPrecedence()
		if precedence <= parentPrecedence {
			break
		}
		p.advanceN(width)
		right, err := p.parseArithmeticExpression(precedence, block)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseFactor consumes exactly one token and classifies it as a primary
// expression term.
func (p *Parser) parseFactor(block *scope.Block) (ast.Node, error) {
	tok := p.lex.CurrentAndAdvance()
	switch tok.Kind {
	case token.KindLiteral:
		return &ast.Literal{Value: tok.Value}, nil
	case token.KindIdentifier:
		return &ast.Identifier{Name: tok.Name}, nil
	case token.KindSymbol:
		switch tok.Symbol {
		case token.SymOpenParen:
			inner, err := p.parseExpression(block)
			if err != nil {
				return nil, err
			}
			next := p.lex.CurrentAndAdvance()
			if next.Is(token.SymCloseParen) {
				return &ast.ParenthesizedExpression{Inner: inner}, nil
			}
			return nil, &UnexpectedTokenError{
				Kind:   token.KindSymbol,
				Symbol: token.SymCloseParen,
				Line:   tok.Line,
				Column: tok.Column,
			}
		case token.SymCloseParen:
			return nil, &UnexpectedTokenError{
				Kind:   token.KindSymbol,
				Symbol: token.SymCloseParen,
				Line:   tok.Line,
				Column: tok.Column,
			}
		default:
			return nil, &UnsupportedTokenError{Symbol: tok.Symbol, Line: tok.Line, Column: tok.Column}
		}
	default:
		return nil, &UnexpectedTokenError{Kind: tok.Kind, Line: tok.Line, Column: tok.Column}
	}
}

func (p *Parser) advanceN(n int) {
	for i := 0; i < n; i++ {
		p.lex.Advance()
	}
}
