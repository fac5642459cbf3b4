package operators

// Operator is the closed set of Quill operators, grouped by category.
type Operator int

const (
	// Arithmetic
	Addition Operator = iota
	Subtraction
	Multiplication
	Division
	Modulo
	Exponentiation

	// Assignment
	SimpleAssignment
	AdditionAssignment
	SubtractionAssignment
	MultiplicationAssignment
	DivisionAssignment
	ModuloAssignment
	ExponentiationAssignment

	// Relational
	Equality
	Inequality
	LessThan
	LessThanOrEquals
	GreaterThan
	GreaterThanOrEquals

	// Logical
	And
	Or
	Not
	Xor
)

func (op Operator) IsArithmetic() bool {
	return op >= Addition && op <= Exponentiation
}

func (op Operator) IsAssignment() bool {
	return op >= SimpleAssignment && op <= ExponentiationAssignment
}

func (op Operator) IsRelational() bool {
	return op >= Equality && op <= GreaterThanOrEquals
}

func (op Operator) IsLogical() bool {
	return op >= And && op <= Xor
}

// Precedence levels. Higher binds tighter; assignment operators sit at zero
// so the precedence-climbing loop never folds them.
const (
	PrecNone       = 0
	PrecOrXor      = 1
	PrecAnd        = 2
	PrecRelational = 3
	PrecSum        = 4
	PrecProduct    = 5
	PrecUnary      = 6
	PrecPower      = 7
)

// UnaryPrecedence returns the operator's binding strength in prefix
// position, or PrecNone for operators with no unary meaning.
func (op Operator) UnaryPrecedence() int {
	switch op {
	case Addition, Subtraction, Not:
		return PrecUnary
	default:
		return PrecNone
	}
}

// BinaryPrecedence returns the operator's binding strength in infix
// position, or PrecNone for operators with no binary meaning.
func (op Operator) BinaryPrecedence() int {
	switch op {
	case Exponentiation:
		return PrecPower
	case Multiplication, Division, Modulo:
		return PrecProduct
	case Addition, Subtraction:
		return PrecSum
	case Equality, Inequality, LessThan, LessThanOrEquals, GreaterThan, GreaterThanOrEquals:
		return PrecRelational
	case And:
		return PrecAnd
	case Or, Xor:
		return PrecOrXor
	default:
		return PrecNone
	}
}

func (op Operator) String() string {
	switch op {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case Modulo:
		return "%"
	case Exponentiation:
		return "**"
	case SimpleAssignment:
		return "="
	case AdditionAssignment:
		return "+="
	case SubtractionAssignment:
		return "-="
	case MultiplicationAssignment:
		return "*="
	case DivisionAssignment:
		return "/="
	case ModuloAssignment:
		return "%="
	case ExponentiationAssignment:
		return "**="
	case Equality:
		return "=="
	case Inequality:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEquals:
		return ">="
	case And:
		return "and"
	case Or:
		return "or"
	case Not:
		return "not"
	case Xor:
		return "xor"
	default:
		return "?"
	}
}
