package ast

import (
	"testing"

	"github.com/quill-lang/quill/internal/compiler/operators"
	"github.com/quill-lang/quill/internal/compiler/value"
)

func TestNodeStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Literal{Value: value.Integer(42)}, "42"},
		{&Literal{Value: value.String("hi")}, `"hi"`},
		{&Identifier{Name: "total"}, "total"},
		{
			&UnaryExpression{Operator: operators.Subtraction, Operand: &Identifier{Name: "x"}},
			"(- x)",
		},
		{
			&BinaryExpression{
				Left:     &Identifier{Name: "a"},
				Operator: operators.Addition,
				Right: &BinaryExpression{
					Left:     &Identifier{Name: "b"},
					Operator: operators.Multiplication,
					Right:    &Identifier{Name: "c"},
				},
			},
			"(a + (b * c))",
		},
		{
			&ParenthesizedExpression{Inner: &Identifier{Name: "x"}},
			"(x)",
		},
		{
			&AssignmentExpression{
				Name:     "x",
				Operator: operators.AdditionAssignment,
				Value:    &Literal{Value: value.Integer(1)},
			},
			"x += 1",
		},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() expected=%q, got=%q", tt.want, got)
		}
	}
}
