package value

import "strconv"

type Kind int

const (
	KindUndefined Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
)

// Value is the literal/runtime value variant carried by literal tokens and
// symbol-table entries. The zero Value is Undefined.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

// Undefined is the placeholder bound by a mutable declaration before any
// evaluation has happened.
func Undefined() Value {
	return Value{Kind: KindUndefined}
}

func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

func Integer(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func (v Value) String() string {
	switch v.Kind {
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	default:
		return "undefined"
	}
}
