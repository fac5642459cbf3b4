package scope

import (
	"testing"

	"github.com/quill-lang/quill/internal/compiler/ast"
	"github.com/quill-lang/quill/internal/compiler/symbols"
	"github.com/quill-lang/quill/internal/compiler/value"
)

func TestDefineTargetsOwnTable(t *testing.T) {
	parent := NewBlock()
	child := NewChild(parent)

	child.Define("x", symbols.NewMutable(value.Integer(1)))

	if !child.Symbols.Contains("x") {
		t.Error("'x' expected in child table")
	}
	if parent.Symbols.Contains("x") {
		t.Error("'x' must not appear in parent table")
	}
}

func TestLookupClimbsParentChain(t *testing.T) {
	grand := NewBlock()
	parent := NewChild(grand)
	child := NewChild(parent)

	grand.Define("g", symbols.NewImmutable(value.Integer(7)))

	v, ok := child.Lookup("g")
	if !ok {
		t.Fatal("'g' expected visible from grandchild")
	}
	if v.Value != value.Integer(7) || v.Mutable {
		t.Errorf("unexpected binding %+v", v)
	}
	if child.Symbols.Contains("g") || parent.Symbols.Contains("g") {
		t.Error("lookup must not copy bindings down the chain")
	}
}

func TestLookupPrefersNearestBinding(t *testing.T) {
	parent := NewBlock()
	child := NewChild(parent)

	parent.Define("x", symbols.NewImmutable(value.Integer(1)))
	child.Define("x", symbols.NewMutable(value.Integer(2)))

	v, _ := child.Lookup("x")
	if v.Value != value.Integer(2) || !v.Mutable {
		t.Errorf("nearest binding expected, got %+v", v)
	}
}

func TestLookupMiss(t *testing.T) {
	b := NewBlock()
	if _, ok := b.Lookup("nope"); ok {
		t.Error("lookup of unbound name expected to miss")
	}
	if b.Contains("nope") {
		t.Error("Contains of unbound name expected false")
	}
}

// The symbol table is shared by reference: every handle to the same block
// observes the same bindings.
func TestTableSharedByReference(t *testing.T) {
	b := NewBlock()
	table := b.Symbols

	b.Define("x", symbols.NewMutable(value.Undefined()))

	if !table.Contains("x") {
		t.Error("binding expected visible through the earlier table handle")
	}
}

func TestBlockString(t *testing.T) {
	b := NewBlock()
	b.Append(&ast.Identifier{Name: "x"})
	b.Append(&ast.Literal{Value: value.Integer(1)})

	if got, want := b.String(), "{ x; 1; }"; got != want {
		t.Errorf("String() expected=%q, got=%q", want, got)
	}
}
