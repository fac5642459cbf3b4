package ast

import (
	"fmt"

	"github.com/quill-lang/quill/internal/compiler/operators"
	"github.com/quill-lang/quill/internal/compiler/value"
)

// Node is implemented by every AST variant. Nodes exclusively own their
// children: the parser never shares a subtree between two parents.
type Node interface {
	String() string
}

// Literal -> 42, 3.14, "hi", true
type Literal struct {
	Value value.Value
}

func (l *Literal) String() string { return l.Value.String() }

// Identifier -> x
type Identifier struct {
	Name string
}

func (i *Identifier) String() string { return i.Name }

// UnaryExpression -> -x, not ready
type UnaryExpression struct {
	Operator operators.Operator
	Operand  Node
}

func (u *UnaryExpression) String() string {
	return fmt.Sprintf("(%s %s)", u.Operator, u.Operand)
}

// BinaryExpression -> a + b
type BinaryExpression struct {
	Left     Node
	Operator operators.Operator
	Right    Node
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

// ParenthesizedExpression -> (a + b)
type ParenthesizedExpression struct {
	Inner Node
}

func (p *ParenthesizedExpression) String() string {
	return fmt.Sprintf("(%s)", p.Inner)
}

// AssignmentExpression -> x = expr, x += expr, mutable x = expr
type AssignmentExpression struct {
	Name     string
	Operator operators.Operator
	Value    Node
}

func (a *AssignmentExpression) String() string {
	return fmt.Sprintf("%s %s %s", a.Name, a.Operator, a.Value)
}
