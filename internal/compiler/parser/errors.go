package parser

import (
	"errors"
	"fmt"

	"github.com/quill-lang/quill/internal/compiler/token"
)

// Fatal parse errors. The first one raised aborts the current statement's
// parse and propagates to the caller; accumulated warnings stay on the
// diagnostics collector regardless.
var (
	ErrCannotConvertFromImmutableToMutable   = errors.New("cannot convert an immutable binding to mutable")
	ErrInvalidUseOfMutableKeyword            = errors.New("'mutable' must be followed by an identifier")
	ErrInvalidOperationAsAssignmentOperation = errors.New("only an assignment operator may follow 'mutable <name>'")
)

// UnexpectedTokenError names the token kind that was expected or found at a
// position where no rule applied.
type UnexpectedTokenError struct {
	Kind   token.Kind
	Symbol token.Symbol // set when Kind is token.KindSymbol
	Line   int
	Column int
}

func (e *UnexpectedTokenError) Error() string {
	if e.Kind == token.KindSymbol {
		return fmt.Sprintf("%d:%d: unexpected token %s '%s'", e.Line, e.Column, e.Kind, e.Symbol)
	}
	return fmt.Sprintf("%d:%d: unexpected token %s", e.Line, e.Column, e.Kind)
}

// UninitializedVariableError reports a bare `mutable name` declaration: a
// mutable declaration must be paired with an initializer.
type UninitializedVariableError struct {
	Name string
}

func (e *UninitializedVariableError) Error() string {
	return fmt.Sprintf("mutable declaration of '%s' has no initializer", e.Name)
}

// UndefinedVariableError reports a compound mutable assignment to a name
// with no prior binding to combine with.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// UnsupportedTokenError marks a symbol the grammar has no factor-position
// rule for yet. It exists so the gap is observable instead of unreachable.
type UnsupportedTokenError struct {
	Symbol token.Symbol
	Line   int
	Column int
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("%d:%d: symbol '%s' is not yet supported in this position", e.Line, e.Column, e.Symbol)
}
