package internal

type tokenType int

const (
	tkIllegal tokenType = iota
	tkEOF

	// Identifiers and literals.
	// *variable*, 1343456, "string"
	tkIdentifier
	tkInt
	tkString

	// Operators.
	// =, +, -, !, *, /, <, >, ==, !=
	tkAssign
	tkPlus
	tkMinus
	tkBang
	tkStar
	tkSlash
	tkLess
	tkGreater
	tkEqualEqual
	tkBangEqual

	// Delimiters.
	// ',', ;, (, ), {, }, [, ]
	tkComma
	tkSemicolon
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkLeftBrace
	tkRightBrace

	// Keywords.
	// fn, let, true, false, if, else, return, while
	tkFn
	tkLet
	tkTrue
	tkFalse
	tkIf
	tkElse
	tkReturn
	tkWhile
)

var tokenNames = [...]string{
	tkIllegal:         "ILLEGAL",
	tkEOF:             "EOF",
	tkIdentifier:      "IDENT",
	tkInt:             "INT",
	tkString:          "STRING",
	tkAssign:          "=",
	tkPlus:            "+",
	tkMinus:           "-",
	tkBang:            "!",
	tkStar:            "*",
	tkSlash:           "/",
	tkLess:            "<",
	tkGreater:         ">",
	tkEqualEqual:      "==",
	tkBangEqual:       "!=",
	tkComma:           ",",
	tkSemicolon:       ";",
	tkLeftParen:       "(",
	tkRightParen:      ")",
	tkLeftCurlyBrace:  "{",
	tkRightCurlyBrace: "}",
	tkLeftBrace:       "[",
	tkRightBrace:      "]",
	tkFn:              "FUNCTION",
	tkLet:             "LET",
	tkTrue:            "TRUE",
	tkFalse:           "FALSE",
	tkIf:              "IF",
	tkElse:            "ELSE",
	tkReturn:          "RETURN",
	tkWhile:           "WHILE",
}

func (t tokenType) String() string {
	if int(t) < 0 || int(t) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[t]
}

var keywords = map[string]tokenType{
	"fn":     tkFn,
	"let":    tkLet,
	"true":   tkTrue,
	"false":  tkFalse,
	"if":     tkIf,
	"else":   tkElse,
	"return": tkReturn,
	"while":  tkWhile,
}

type token struct {
	token  tokenType
	lexeme string
	line   int
}
