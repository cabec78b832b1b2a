package internal

import "unicode/utf8"

type lexer struct {
	source  string
	start   int
	current int
	line    int
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
	}
}

// nextToken returns the next token in the source. Once the end of the
// source is reached it keeps returning EOF.
func (l *lexer) nextToken() token {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return token{token: tkEOF, line: l.line}
	}

	c := l.advance()
	switch c {
	case '[':
		return l.emit(tkLeftBrace)
	case ']':
		return l.emit(tkRightBrace)
	case '{':
		return l.emit(tkLeftCurlyBrace)
	case '}':
		return l.emit(tkRightCurlyBrace)
	case '(':
		return l.emit(tkLeftParen)
	case ')':
		return l.emit(tkRightParen)
	case ',':
		return l.emit(tkComma)
	case ';':
		return l.emit(tkSemicolon)
	case '-':
		return l.emit(tkMinus)
	case '+':
		return l.emit(tkPlus)
	case '/':
		return l.emit(tkSlash)
	case '*':
		return l.emit(tkStar)
	case '<':
		return l.emit(tkLess)
	case '>':
		return l.emit(tkGreater)
	case '!':
		if l.match('=') {
			return l.emit(tkBangEqual)
		}
		return l.emit(tkBang)
	case '=':
		if l.match('=') {
			return l.emit(tkEqualEqual)
		}
		return l.emit(tkAssign)
	case '"':
		return l.string()
	}

	if isDigit(c) {
		return l.number()
	}
	if isAlpha(c) {
		return l.identifier()
	}

	// Multi-byte characters are reported whole
	if c >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(l.source[l.start:])
		l.current = l.start + size
	}
	return l.emit(tkIllegal)
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.current++
		case '\n':
			l.line++
			l.current++
		default:
			return
		}
	}
}

// string reads up to the closing quote. No escape sequences are processed
// and an unterminated string runs to the end of the source.
func (l *lexer) string() token {
	line := l.line
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.current++
	}

	literal := l.source[l.start+1 : l.current]

	// Consume ending "
	l.match('"')

	return token{token: tkString, lexeme: literal, line: line}
}

func (l *lexer) number() token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.current++
	}
	return l.emit(tkInt)
}

func (l *lexer) identifier() token {
	for !l.isAtEnd() && isAlpha(l.peek()) {
		l.current++
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	return l.emit(tokenType)
}

func (l *lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *lexer) peek() byte {
	return l.source[l.current]
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) emit(tk tokenType) token {
	return token{
		token:  tk,
		lexeme: l.source[l.start:l.current],
		line:   l.line,
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
