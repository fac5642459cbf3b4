package parser

import (
	"testing"

	"github.com/quill-lang/quill/internal/compiler/diagnostics"
	"github.com/quill-lang/quill/internal/compiler/lexer"
	"github.com/quill-lang/quill/internal/compiler/operators"
)

func resolverFor(t *testing.T, src string) *Parser {
	t.Helper()
	lex := lexer.New(src)
	if err := lex.Tokenize(); err != nil {
		t.Fatalf("tokenize of %q failed: %v", src, err)
	}
	return New(lex, diagnostics.NewCollector())
}

func TestMatchOperatorTable(t *testing.T) {
	tests := []struct {
		src   string
		want  operators.Operator
		width int
	}{
		// two-character forms
		{"==", operators.Equality, 2},
		{"+=", operators.AdditionAssignment, 2},
		{"-=", operators.SubtractionAssignment, 2},
		{"*=", operators.MultiplicationAssignment, 2},
		{"**", operators.Exponentiation, 2},
		{"/=", operators.DivisionAssignment, 2},
		{"%=", operators.ModuloAssignment, 2},
		{"!=", operators.Inequality, 2},
		{">=", operators.GreaterThanOrEquals, 2},
		{"<=", operators.LessThanOrEquals, 2},
		// the one three-character form
		{"**=", operators.ExponentiationAssignment, 3},
		// single-character fallbacks at end of input
		{"=", operators.SimpleAssignment, 1},
		{"+", operators.Addition, 1},
		{"-", operators.Subtraction, 1},
		{"*", operators.Multiplication, 1},
		{"/", operators.Division, 1},
		{"%", operators.Modulo, 1},
		{"!", operators.Not, 1},
		{">", operators.GreaterThan, 1},
		{"<", operators.LessThan, 1},
		// single-character fallbacks with an unrelated token following
		{"= x", operators.SimpleAssignment, 1},
		{"+ 1", operators.Addition, 1},
		{"* y", operators.Multiplication, 1},
		{"! done", operators.Not, 1},
		// keyword forms
		{"is not", operators.Inequality, 2},
		{"is", operators.Equality, 1},
		{"is x", operators.Equality, 1},
		{"and", operators.And, 1},
		{"or", operators.Or, 1},
		{"not", operators.Not, 1},
		{"xor", operators.Xor, 1},
	}

	for _, tt := range tests {
		p := resolverFor(t, tt.src)
		op, width, ok := p.matchOperator(0)
		if !ok {
			t.Errorf("%q: expected an operator, got none", tt.src)
			continue
		}
		if op != tt.want {
			t.Errorf("%q: operator expected=%s, got=%s", tt.src, tt.want, op)
		}
		if width != tt.width {
			t.Errorf("%q: width expected=%d, got=%d", tt.src, tt.width, width)
		}
	}
}

func TestMatchOperatorNone(t *testing.T) {
	for _, src := range []string{"(", ")", "{", "}", "mutable", "42", "name", `"str"`} {
		p := resolverFor(t, src)
		if op, _, ok := p.matchOperator(0); ok {
			t.Errorf("%q: expected no operator, got %s", src, op)
		}
	}
}

func TestMatchOperatorAtOffset(t *testing.T) {
	p := resolverFor(t, "x += 1")
	op, width, ok := p.matchOperator(1)
	if !ok {
		t.Fatal("expected an operator at offset 1")
	}
	if op != operators.AdditionAssignment || width != 2 {
		t.Errorf("expected += with width 2, got %s with width %d", op, width)
	}
}

// The resolver is pure lookahead: calling it must not move the cursor.
func TestMatchOperatorDoesNotConsume(t *testing.T) {
	p := resolverFor(t, "** 2")
	before := p.lex.Current()
	for i := 0; i < 3; i++ {
		p.matchOperator(0)
	}
	after := p.lex.Current()
	if before != after {
		t.Errorf("cursor moved: before=%v after=%v", before, after)
	}
}
