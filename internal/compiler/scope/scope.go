package scope

import (
	"strings"

	"github.com/quill-lang/quill/internal/compiler/ast"
	"github.com/quill-lang/quill/internal/compiler/symbols"
)

// Block is a lexical scope: it owns one symbol table, an ordered statement
// list, and a reference to its parent scope. Parent is nil only for the
// top-level block. Block implements ast.Node so a nested `{ ... }` can sit
// directly in a statement list.
type Block struct {
	Symbols    *symbols.Table
	Statements []ast.Node
	Parent     *Block
}

func NewBlock() *Block {
	return &Block{Symbols: symbols.NewTable()}
}

func NewChild(parent *Block) *Block {
	return &Block{Symbols: symbols.NewTable(), Parent: parent}
}

func (b *Block) Append(stmt ast.Node) {
	b.Statements = append(b.Statements, stmt)
}

// Define binds a name in this block's own table, never an ancestor's.
func (b *Block) Define(name string, v symbols.Variable) {
	b.Symbols.Set(name, v)
}

// Lookup resolves a name against the nearest enclosing binding, climbing
// the parent chain without copying ancestor tables.
func (b *Block) Lookup(name string) (symbols.Variable, bool) {
	for blk := b; blk != nil; blk = blk.Parent {
		if v, ok := blk.Symbols.Get(name); ok {
			return v, true
		}
	}
	return symbols.Variable{}, false
}

// Contains reports whether the name is bound in this block or any ancestor.
func (b *Block) Contains(name string) bool {
	_, ok := b.Lookup(name)
	return ok
}

func (b *Block) String() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, stmt := range b.Statements {
		out.WriteString(stmt.String())
		out.WriteString("; ")
	}
	out.WriteString("}")
	return out.String()
}
