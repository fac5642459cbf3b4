package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quill-lang/quill/internal/compiler/token"
	"github.com/quill-lang/quill/internal/compiler/value"
)

// LexError reports a character the lexer could not classify. Line and Col
// are 1-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer scans Quill source into a token vector and exposes a random-access
// cursor over it. The cursor is advanced exclusively by the parser; Peek
// never errors and returns the end-of-file token for any offset past the
// end. Whitespace and newlines are tracked for positions but not emitted
// into the stream.
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)

	tokens  []token.Token
	eof     token.Token
	cursor  int
	scanned bool
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the scanner's position and updates the current
// character, tracking line/column. ch == 0 means end of input.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Tokenize scans the whole input once. Calling it again after a successful
// scan is a no-op.
func (l *Lexer) Tokenize() error {
	if l.scanned {
		return nil
	}
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		if tok.Kind == token.KindEOF {
			l.eof = tok
			l.scanned = true
			return nil
		}
		l.tokens = append(l.tokens, tok)
	}
}

// Count returns how many tokens the scan produced, excluding end-of-file.
func (l *Lexer) Count() int {
	return len(l.tokens)
}

// Current returns the token at the cursor, or the end-of-file token once
// the cursor has moved past the last token.
func (l *Lexer) Current() token.Token {
	return l.Peek(0)
}

// Peek returns the token at cursor+offset without moving the cursor.
func (l *Lexer) Peek(offset int) token.Token {
	i := l.cursor + offset
	if i >= len(l.tokens) {
		return l.eofToken()
	}
	return l.tokens[i]
}

// Advance moves the cursor forward one token. Past the end it is a no-op.
func (l *Lexer) Advance() {
	if l.cursor < len(l.tokens) {
		l.cursor++
	}
}

// CurrentAndAdvance reads the token at the cursor and moves past it.
func (l *Lexer) CurrentAndAdvance() token.Token {
	tok := l.Current()
	l.Advance()
	return tok
}

func (l *Lexer) eofToken() token.Token {
	if l.eof.Kind == "" {
		return token.EOF(l.line, l.column)
	}
	return l.eof
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

const symbolChars = "+-*/%=!<>(){}"

// next scans one token. Multi-character operators are not combined here:
// each symbol character is its own token, and the parser's operator
// resolver decides whether adjacent symbols form one operator.
func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespace()
	for l.ch == '#' {
		l.skipComment()
		l.skipWhitespace()
	}

	startLine := l.line
	startCol := l.column

	switch {
	case l.ch == 0:
		return token.EOF(startLine, startCol), nil
	case strings.IndexByte(symbolChars, l.ch) >= 0:
		sym := token.Symbol(l.ch)
		l.readChar()
		return token.Sym(sym, startLine, startCol), nil
	case l.ch == '"':
		return l.readString(startLine, startCol)
	case isDigit(l.ch):
		return l.readNumber(startLine, startCol)
	case isIdentStart(l.ch):
		return l.readIdentifier(startLine, startCol), nil
	default:
		return token.Token{}, &LexError{
			Line: startLine,
			Col:  startCol,
			Msg:  fmt.Sprintf("unexpected character %q", l.ch),
		}
	}
}

func (l *Lexer) readString(startLine, startCol int) (token.Token, error) {
	var out strings.Builder
	l.readChar() // opening quote
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, &LexError{Line: startLine, Col: startCol, Msg: "unterminated string literal"}
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			default:
				return token.Token{}, &LexError{
					Line: l.line,
					Col:  l.column,
					Msg:  fmt.Sprintf("unknown escape sequence '\\%c'", l.ch),
				}
			}
			l.readChar()
			continue
		}
		out.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // closing quote
	return token.Lit(value.String(out.String()), startLine, startCol), nil
}

func (l *Lexer) readNumber(startLine, startCol int) (token.Token, error) {
	start := l.position
	isFloat := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	text := l.input[start:l.position]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, &LexError{Line: startLine, Col: startCol, Msg: fmt.Sprintf("invalid number %q", text)}
		}
		return token.Lit(value.Float(f), startLine, startCol), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, &LexError{Line: startLine, Col: startCol, Msg: fmt.Sprintf("invalid number %q", text)}
	}
	return token.Lit(value.Integer(n), startLine, startCol), nil
}

func (l *Lexer) readIdentifier(startLine, startCol int) token.Token {
	start := l.position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	name := l.input[start:l.position]

	switch name {
	case "true":
		return token.Lit(value.Boolean(true), startLine, startCol)
	case "false":
		return token.Lit(value.Boolean(false), startLine, startCol)
	}
	if kw, ok := token.Keywords[name]; ok {
		return token.Kw(kw, startLine, startCol)
	}
	return token.Ident(name, startLine, startCol)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
