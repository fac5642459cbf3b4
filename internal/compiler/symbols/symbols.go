package symbols

import "github.com/quill-lang/quill/internal/compiler/value"

// Variable is a value plus its mutability flag. Mutability is monotonic:
// the parser only ever rebinds mutable variables as mutable again.
type Variable struct {
	Value   value.Value
	Mutable bool
}

func NewMutable(v value.Value) Variable {
	return Variable{Value: v, Mutable: true}
}

func NewImmutable(v value.Value) Variable {
	return Variable{Value: v, Mutable: false}
}

// Table maps variable names to their current record. It is scoped to
// exactly one block and shared by reference, so every handle to the scope
// observes the same bindings.
type Table struct {
	vars map[string]Variable
}

func NewTable() *Table {
	return &Table{vars: make(map[string]Variable)}
}

// Set binds or rebinds a name in this table.
func (t *Table) Set(name string, v Variable) {
	t.vars[name] = v
}

func (t *Table) Get(name string) (Variable, bool) {
	v, ok := t.vars[name]
	return v, ok
}

func (t *Table) Contains(name string) bool {
	_, ok := t.vars[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.vars)
}
