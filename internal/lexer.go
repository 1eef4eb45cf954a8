package internal

import (
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// scan fills state.tokens, always ending with tkEOF. Errors are collected
// in state and never stop the scan.
func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, token{
		token: tkEOF,
		line:  l.line,
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected()
		}
	}
}

func (l *lexer) unexpected() {
	// Report the whole UTF-8 sequence, not just its first byte
	r, size := utf8.DecodeRuneInString(l.state.source[l.start:])
	l.current = l.start + size
	l.state.setError(errUnexpectedChar, l.line, string(r))
}

func (l *lexer) string() {
	startLine := l.line
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(errUnterminatedString, startLine, "")
		return
	}

	// Consume ending "
	l.advance()

	literal := l.state.source[l.start+1 : l.current-1]
	l.emit(tkString, loxString(literal))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		// Consume .
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.state.source[l.start:l.current]
	literal, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.state.setError(errInvalidNumber, l.line, text)
		return
	}

	l.emit(tkNumber, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
