package token

import (
	"fmt"

	"github.com/quill-lang/quill/internal/compiler/value"
)

type Kind string

const (
	KindLiteral    Kind = "LITERAL"    // literal value (number, string, boolean)
	KindWhitespace Kind = "WHITESPACE" // run of whitespace (Count holds the length)
	KindNewline    Kind = "NEWLINE"
	KindKeyword    Kind = "KEYWORD"
	KindSymbol     Kind = "SYMBOL"
	KindIdentifier Kind = "IDENT"
	KindEOF        Kind = "EOF"

	// KindPlaceholder marks a synthetic token substituted by the parser when
	// an expected token was missing. The lexer never produces it.
	KindPlaceholder Kind = "PLACEHOLDER"
)

type Symbol string

const (
	SymPlus       Symbol = "+"
	SymMinus      Symbol = "-"
	SymAsterisk   Symbol = "*"
	SymSlash      Symbol = "/"
	SymPercent    Symbol = "%"
	SymEquals     Symbol = "="
	SymBang       Symbol = "!"
	SymLess       Symbol = "<"
	SymGreater    Symbol = ">"
	SymOpenParen  Symbol = "("
	SymCloseParen Symbol = ")"
	SymOpenBrace  Symbol = "{"
	SymCloseBrace Symbol = "}"
)

type Keyword string

const (
	KwMutable Keyword = "mutable"
	KwAnd     Keyword = "and"
	KwOr      Keyword = "or"
	KwNot     Keyword = "not"
	KwXor     Keyword = "xor"
	KwIs      Keyword = "is"
)

// Keywords maps source spellings to keyword tokens, used by the lexer to
// classify identifiers.
var Keywords = map[string]Keyword{
	"mutable": KwMutable,
	"and":     KwAnd,
	"or":      KwOr,
	"not":     KwNot,
	"xor":     KwXor,
	"is":      KwIs,
}

// Token is immutable once produced. Line and Column are 1-based and used
// only for diagnostics. At most one of the payload fields is meaningful,
// selected by Kind.
type Token struct {
	Kind    Kind
	Symbol  Symbol      // Kind == KindSymbol
	Keyword Keyword     // Kind == KindKeyword
	Name    string      // Kind == KindIdentifier
	Value   value.Value // Kind == KindLiteral
	Count   int         // Kind == KindWhitespace
	Line    int
	Column  int
}

func Sym(s Symbol, line, column int) Token {
	return Token{Kind: KindSymbol, Symbol: s, Line: line, Column: column}
}

func Kw(k Keyword, line, column int) Token {
	return Token{Kind: KindKeyword, Keyword: k, Line: line, Column: column}
}

func Ident(name string, line, column int) Token {
	return Token{Kind: KindIdentifier, Name: name, Line: line, Column: column}
}

func Lit(v value.Value, line, column int) Token {
	return Token{Kind: KindLiteral, Value: v, Line: line, Column: column}
}

func EOF(line, column int) Token {
	return Token{Kind: KindEOF, Line: line, Column: column}
}

// Placeholder builds the synthetic token the parser substitutes for a
// missing one, carrying the position of the token actually found there.
func Placeholder(line, column int) Token {
	return Token{Kind: KindPlaceholder, Line: line, Column: column}
}

// Is reports whether the token is the given symbol.
func (t Token) Is(s Symbol) bool {
	return t.Kind == KindSymbol && t.Symbol == s
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(k Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == k
}

func (t Token) String() string {
	switch t.Kind {
	case KindSymbol:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Symbol)
	case KindKeyword:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Keyword)
	case KindIdentifier:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Name)
	case KindLiteral:
		return fmt.Sprintf("%s %s", t.Kind, t.Value)
	default:
		return string(t.Kind)
	}
}
