package pvl

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokEquals
	tokOpen
	tokClose
	tokComma
	tokUnit
)

type token struct {
	kind tokenKind
	text string
	line int
}

// SyntaxError reports a malformed label with the offending line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pvl: line %d: %s", e.Line, e.Msg)
}

type lexer struct {
	src  []rune
	pos  int
	line int
}

func newLexer(data string) *lexer {
	return &lexer{src: []rune(data), line: 1}
}

func (l *lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++

	if r == '\n' {
		l.line++
	}

	return r
}

// skip consumes whitespace, comments and hyphen line continuations.
func (l *lexer) skip() error {
	for l.pos < len(l.src) {
		r := l.peek(0)

		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '#':
			for l.pos < len(l.src) && l.peek(0) != '\n' {
				l.advance()
			}
		case r == '/' && l.peek(1) == '*':
			start := l.line
			l.advance()
			l.advance()

			for {
				if l.pos >= len(l.src) {
					return &SyntaxError{Line: start, Msg: "unterminated comment"}
				}

				if l.peek(0) == '*' && l.peek(1) == '/' {
					l.advance()
					l.advance()

					break
				}

				l.advance()
			}
		default:
			return nil
		}
	}

	return nil
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`=(){},<>"'`, r)
}

func (l *lexer) next() (token, error) {
	if err := l.skip(); err != nil {
		return token{}, err
	}

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	line := l.line
	r := l.peek(0)

	switch r {
	case '=':
		l.advance()
		return token{kind: tokEquals, text: "=", line: line}, nil
	case '(', '{':
		l.advance()
		return token{kind: tokOpen, text: string(r), line: line}, nil
	case ')', '}':
		l.advance()
		return token{kind: tokClose, text: string(r), line: line}, nil
	case ',':
		l.advance()
		return token{kind: tokComma, text: ",", line: line}, nil
	case '<':
		l.advance()

		var b strings.Builder

		for {
			if l.pos >= len(l.src) {
				return token{}, &SyntaxError{Line: line, Msg: "unterminated unit"}
			}

			c := l.advance()
			if c == '>' {
				break
			}

			b.WriteRune(c)
		}

		return token{kind: tokUnit, text: strings.TrimSpace(b.String()), line: line}, nil
	case '"', '\'':
		quote := l.advance()

		var b strings.Builder

		for {
			if l.pos >= len(l.src) {
				return token{}, &SyntaxError{Line: line, Msg: "unterminated quoted string"}
			}

			c := l.advance()
			if c == quote {
				break
			}

			b.WriteRune(c)
		}

		return token{kind: tokString, text: collapseLines(b.String()), line: line}, nil
	case '>':
		return token{}, &SyntaxError{Line: line, Msg: "unexpected '>'"}
	}

	start := l.pos
	for l.pos < len(l.src) && !isDelimiter(l.peek(0)) {
		if l.peek(0) == '/' && l.peek(1) == '*' {
			break
		}

		l.advance()
	}

	word := string(l.src[start:l.pos])

	// A trailing hyphen continues an unquoted value on the next line.
	for len(word) > 1 && strings.HasSuffix(word, "-") && l.continuesOnNextLine() {
		if err := l.skip(); err != nil {
			return token{}, err
		}

		start = l.pos
		for l.pos < len(l.src) && !isDelimiter(l.peek(0)) {
			l.advance()
		}

		word = strings.TrimSuffix(word, "-") + string(l.src[start:l.pos])
	}

	return token{kind: tokWord, text: word, line: line}, nil
}

func (l *lexer) continuesOnNextLine() bool {
	for i := l.pos; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}

	return false
}

// collapseLines folds a line break and its surrounding indentation into a
// single space, so multi-line quoted text reads as one line.
func collapseLines(s string) string {
	if !strings.ContainsRune(s, '\n') {
		return s
	}

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, " ")
}
