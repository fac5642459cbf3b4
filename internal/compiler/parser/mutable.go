package parser

import (
	"github.com/quill-lang/quill/internal/compiler/ast"
	"github.com/quill-lang/quill/internal/compiler/operators"
	"github.com/quill-lang/quill/internal/compiler/scope"
	"github.com/quill-lang/quill/internal/compiler/symbols"
	"github.com/quill-lang/quill/internal/compiler/token"
	"github.com/quill-lang/quill/internal/compiler/value"
)

const redundantMutableWarning = "'%s' is already mutable; once declared mutable a binding stays mutable"

// handleMutableKeyword parses a statement beginning with the `mutable`
// keyword: either `mutable name <op> expr` or the (always invalid) bare
// `mutable name`.
func (p *Parser) handleMutableKeyword(block *scope.Block) (ast.Node, error) {
	nameTok := p.lex.Peek(1)
	if nameTok.Kind != token.KindIdentifier {
		return nil, ErrInvalidUseOfMutableKeyword
	}
	name := nameTok.Name

	op, width, ok := p.matchOperator(2)
	if !ok {
		// Bare `mutable name`: re-declaring an existing binding this way is
		// a conversion attempt, a fresh one lacks its initializer.
		if block.Contains(name) {
			return nil, ErrCannotConvertFromImmutableToMutable
		}
		return nil, &UninitializedVariableError{Name: name}
	}

	p.advanceN(2 + width) // `mutable` + name + operator tokens
	expr, err := p.parseAssignmentExpression(block)
	if err != nil {
		return nil, err
	}
	return p.applyMutableAssignment(name, op, expr, block)
}

// applyMutableAssignment does the scope bookkeeping for `mutable name <op>
// expr`. Lookup climbs the scope chain; insertion always targets the
// current block's own table.
func (p *Parser) applyMutableAssignment(name string, op operators.Operator, expr ast.Node, block *scope.Block) (ast.Node, error) {
	switch {
	case op == operators.SimpleAssignment:
		if existing, ok := block.Lookup(name); ok {
			if !existing.Mutable {
				return nil, ErrCannotConvertFromImmutableToMutable
			}
			p.diags.Warnf(redundantMutableWarning, name)
		}
		block.Define(name, symbols.NewMutable(value.Undefined()))

	case op.IsAssignment():
		// Compound assignment needs a prior value to combine with, so the
		// binding is carried forward instead of reset to a placeholder.
		existing, ok := block.Lookup(name)
		if !ok {
			return nil, &UndefinedVariableError{Name: name}
		}
		if !existing.Mutable {
			return nil, ErrCannotConvertFromImmutableToMutable
		}
		p.diags.Warnf(redundantMutableWarning, name)
		block.Define(name, symbols.NewMutable(existing.Value))

	default:
		return nil, ErrInvalidOperationAsAssignmentOperation
	}

	return &ast.AssignmentExpression{Name: name, Operator: op, Value: expr}, nil
}
