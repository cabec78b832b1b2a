package internal

import "testing"

type expectedToken struct {
	token  tokenType
	lexeme string
}

func checkTokens(t *testing.T, source string, expected []expectedToken) {
	l := newLexer(source)
	for i, e := range expected {
		tk := l.nextToken()
		if tk.token != e.token || tk.lexeme != e.lexeme {
			t.Errorf(
				"Error on: \n%s\n\ttoken %d should be %s %q instead of %s %q",
				source, i, e.token, e.lexeme, tk.token, tk.lexeme,
			)
			return
		}
	}
}

func TestNextToken(t *testing.T) {
	source := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
while (i) { i = 0 }
`
	checkTokens(t, source, []expectedToken{
		{tkLet, "let"}, {tkIdentifier, "five"}, {tkAssign, "="}, {tkInt, "5"}, {tkSemicolon, ";"},
		{tkLet, "let"}, {tkIdentifier, "ten"}, {tkAssign, "="}, {tkInt, "10"}, {tkSemicolon, ";"},
		{tkLet, "let"}, {tkIdentifier, "add"}, {tkAssign, "="}, {tkFn, "fn"},
		{tkLeftParen, "("}, {tkIdentifier, "x"}, {tkComma, ","}, {tkIdentifier, "y"}, {tkRightParen, ")"},
		{tkLeftCurlyBrace, "{"}, {tkIdentifier, "x"}, {tkPlus, "+"}, {tkIdentifier, "y"}, {tkSemicolon, ";"},
		{tkRightCurlyBrace, "}"}, {tkSemicolon, ";"},
		{tkLet, "let"}, {tkIdentifier, "result"}, {tkAssign, "="}, {tkIdentifier, "add"},
		{tkLeftParen, "("}, {tkIdentifier, "five"}, {tkComma, ","}, {tkIdentifier, "ten"}, {tkRightParen, ")"},
		{tkSemicolon, ";"},
		{tkBang, "!"}, {tkMinus, "-"}, {tkSlash, "/"}, {tkStar, "*"}, {tkInt, "5"}, {tkSemicolon, ";"},
		{tkInt, "5"}, {tkLess, "<"}, {tkInt, "10"}, {tkGreater, ">"}, {tkInt, "5"}, {tkSemicolon, ";"},
		{tkIf, "if"}, {tkLeftParen, "("}, {tkInt, "5"}, {tkLess, "<"}, {tkInt, "10"}, {tkRightParen, ")"},
		{tkLeftCurlyBrace, "{"}, {tkReturn, "return"}, {tkTrue, "true"}, {tkSemicolon, ";"},
		{tkRightCurlyBrace, "}"}, {tkElse, "else"}, {tkLeftCurlyBrace, "{"},
		{tkReturn, "return"}, {tkFalse, "false"}, {tkSemicolon, ";"}, {tkRightCurlyBrace, "}"},
		{tkInt, "10"}, {tkEqualEqual, "=="}, {tkInt, "10"}, {tkSemicolon, ";"},
		{tkInt, "10"}, {tkBangEqual, "!="}, {tkInt, "9"}, {tkSemicolon, ";"},
		{tkString, "foobar"},
		{tkString, "foo bar"},
		{tkLeftBrace, "["}, {tkInt, "1"}, {tkComma, ","}, {tkInt, "2"}, {tkRightBrace, "]"}, {tkSemicolon, ";"},
		{tkWhile, "while"}, {tkLeftParen, "("}, {tkIdentifier, "i"}, {tkRightParen, ")"},
		{tkLeftCurlyBrace, "{"}, {tkIdentifier, "i"}, {tkAssign, "="}, {tkInt, "0"}, {tkRightCurlyBrace, "}"},
		{tkEOF, ""},
	})
}

func TestIllegalCharacters(t *testing.T) {
	checkTokens(t, "a @ b", []expectedToken{
		{tkIdentifier, "a"}, {tkIllegal, "@"}, {tkIdentifier, "b"}, {tkEOF, ""},
	})

	// Multi-byte characters are one token
	checkTokens(t, "é;", []expectedToken{
		{tkIllegal, "é"}, {tkSemicolon, ";"}, {tkEOF, ""},
	})
}

func TestUnterminatedString(t *testing.T) {
	checkTokens(t, `"abc`, []expectedToken{
		{tkString, "abc"}, {tkEOF, ""},
	})
	checkTokens(t, `""`, []expectedToken{
		{tkString, ""}, {tkEOF, ""},
	})
}

func TestEOFRepeats(t *testing.T) {
	l := newLexer("x")
	l.nextToken()
	for i := 0; i < 3; i++ {
		if tk := l.nextToken(); tk.token != tkEOF {
			t.Errorf("expected EOF after end of input, got %s", tk.token)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	l := newLexer("a\nb\n\n\"x\ny\" c")
	for _, line := range []int{1, 2, 4, 5} {
		if tk := l.nextToken(); tk.line != line {
			t.Errorf("token %q should be on line %d instead of %d", tk.lexeme, line, tk.line)
		}
	}
}
