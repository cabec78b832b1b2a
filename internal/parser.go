package internal

import (
	"fmt"
	"strconv"
)

type precedence int

const (
	_ precedence = iota
	precLowest
	precAssign      // =
	precEquals      // ==, !=
	precLessGreater // <, >
	precSum         // +, -
	precProduct     // *, /
	precPrefix      // -x, !x
	precCall        // f(x), a[i]
)

var precedences = map[tokenType]precedence{
	tkAssign:     precAssign,
	tkEqualEqual: precEquals,
	tkBangEqual:  precEquals,
	tkLess:       precLessGreater,
	tkGreater:    precLessGreater,
	tkPlus:       precSum,
	tkMinus:      precSum,
	tkSlash:      precProduct,
	tkStar:       precProduct,
	tkLeftParen:  precCall,
	tkLeftBrace:  precCall,
}

type (
	prefixParseFn func() expr
	infixParseFn  func(left expr) expr
)

// parser stores parser data
type parser struct {
	lexer *lexer
	state *interpreterState

	curToken  token
	peekToken token

	prefixParseFns map[tokenType]prefixParseFn
	infixParseFns  map[tokenType]infixParseFn
}

func newParser(state *interpreterState) *parser {
	p := &parser{
		lexer: newLexer(state.source),
		state: state,
	}

	p.prefixParseFns = map[tokenType]prefixParseFn{
		tkIdentifier: p.identifier,
		tkInt:        p.integer,
		tkString:     p.str,
		tkTrue:       p.boolean,
		tkFalse:      p.boolean,
		tkLeftBrace:  p.array,
		tkLeftParen:  p.grouping,
		tkBang:       p.prefix,
		tkMinus:      p.prefix,
		tkIf:         p.ifExpr,
		tkWhile:      p.whileExpr,
		tkFn:         p.fnExpr,
	}

	p.infixParseFns = map[tokenType]infixParseFn{
		tkPlus:       p.infix,
		tkMinus:      p.infix,
		tkSlash:      p.infix,
		tkStar:       p.infix,
		tkEqualEqual: p.infix,
		tkBangEqual:  p.infix,
		tkLess:       p.infix,
		tkGreater:    p.infix,
		tkAssign:     p.assignment,
		tkLeftParen:  p.call,
		tkLeftBrace:  p.index,
	}

	// Fill both curToken and peekToken
	p.advance()
	p.advance()

	return p
}

func (p *parser) parse() *Program {
	program := &Program{stmts: make([]stmt, 0)}
	for !p.curTokenIs(tkEOF) {
		// Malformed statements come back as nil, they are dropped
		// and parsing goes on with the next token
		if st := p.parseStmt(); st != nil {
			program.stmts = append(program.stmts, st)
		}
		p.advance()
	}
	return program
}

func (p *parser) parseStmt() stmt {
	switch p.curToken.token {
	case tkLet:
		return p.let()
	case tkReturn:
		return p.ret()
	default:
		return p.expressionStmt()
	}
}

func (p *parser) let() stmt {
	if !p.consume(tkIdentifier) {
		return nil
	}
	name := &identifierExpr{name: p.current()}

	if !p.consume(tkAssign) {
		return nil
	}
	p.advance()

	value := p.expression(precLowest)
	if value == nil {
		return nil
	}

	if p.peekTokenIs(tkSemicolon) {
		p.advance()
	}

	return &letStmt{
		name:  name,
		value: value,
	}
}

func (p *parser) ret() stmt {
	st := &returnStmt{keyword: p.current()}

	if p.peekTokenIs(tkSemicolon) {
		p.advance()
		return st
	}
	if p.peekTokenIs(tkRightCurlyBrace) || p.peekTokenIs(tkEOF) {
		return st
	}
	p.advance()

	st.value = p.expression(precLowest)
	if st.value == nil {
		return nil
	}

	if p.peekTokenIs(tkSemicolon) {
		p.advance()
	}
	return st
}

func (p *parser) expressionStmt() stmt {
	expression := p.expression(precLowest)
	if expression == nil {
		return nil
	}

	if p.peekTokenIs(tkSemicolon) {
		p.advance()
	}

	return &exprStmt{
		last:       p.current(),
		expression: expression,
	}
}

// block is called with curToken on '{' and returns with curToken on '}'
// or EOF.
func (p *parser) block() *blockStmt {
	block := &blockStmt{stmts: make([]stmt, 0)}
	p.advance()
	for !p.curTokenIs(tkRightCurlyBrace) && !p.curTokenIs(tkEOF) {
		if st := p.parseStmt(); st != nil {
			block.stmts = append(block.stmts, st)
		}
		p.advance()
	}
	return block
}

// expression returns nil when there is no prefix parse function for the
// current token.
func (p *parser) expression(prec precedence) expr {
	prefix, ok := p.prefixParseFns[p.curToken.token]
	if !ok {
		return nil
	}
	left := prefix()

	for left != nil && !p.peekTokenIs(tkSemicolon) && prec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.token]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *parser) identifier() expr {
	return &identifierExpr{name: p.current()}
}

func (p *parser) integer() expr {
	literal := p.current()
	value, err := strconv.ParseInt(literal.lexeme, 10, 64)
	if err != nil {
		p.state.setError(fmt.Errorf("could not parse %s as integer", literal.lexeme), literal.line)
		return nil
	}
	return &integerExpr{
		literal: literal,
		value:   value,
	}
}

func (p *parser) str() expr {
	return &stringExpr{value: p.curToken.lexeme}
}

func (p *parser) boolean() expr {
	return &booleanExpr{value: p.curTokenIs(tkTrue)}
}

func (p *parser) array() expr {
	brace := p.current()
	elements, ok := p.expressionList(tkRightBrace)
	if !ok {
		return nil
	}
	return &arrayExpr{
		brace:    brace,
		elements: elements,
	}
}

func (p *parser) grouping() expr {
	p.advance()
	expression := p.expression(precLowest)
	if !p.consume(tkRightParen) || expression == nil {
		return nil
	}
	return expression
}

func (p *parser) prefix() expr {
	operator := p.current()
	p.advance()
	right := p.expression(precPrefix)
	if right == nil {
		return nil
	}
	return &prefixExpr{
		operator: operator,
		right:    right,
	}
}

func (p *parser) ifExpr() expr {
	keyword := p.current()

	condition, ok := p.condition()
	if !ok {
		return nil
	}

	if !p.consume(tkLeftCurlyBrace) {
		return nil
	}
	expression := &ifExpr{
		keyword:     keyword,
		condition:   condition,
		consequence: p.block(),
	}

	if p.peekTokenIs(tkElse) {
		p.advance()
		if !p.consume(tkLeftCurlyBrace) {
			return nil
		}
		expression.alternative = p.block()
	}

	return expression
}

func (p *parser) whileExpr() expr {
	keyword := p.current()

	condition, ok := p.condition()
	if !ok {
		return nil
	}

	if !p.consume(tkLeftCurlyBrace) {
		return nil
	}
	return &whileExpr{
		keyword:   keyword,
		condition: condition,
		body:      p.block(),
	}
}

// condition parses a parenthesized condition following 'if' or 'while'
func (p *parser) condition() (expr, bool) {
	if !p.consume(tkLeftParen) {
		return nil, false
	}
	p.advance()
	condition := p.expression(precLowest)
	if !p.consume(tkRightParen) || condition == nil {
		return nil, false
	}
	return condition, true
}

func (p *parser) fnExpr() expr {
	keyword := p.current()

	if !p.consume(tkLeftParen) {
		return nil
	}
	params, ok := p.params()
	if !ok {
		return nil
	}

	if !p.consume(tkLeftCurlyBrace) {
		return nil
	}
	return &functionExpr{
		keyword: keyword,
		params:  params,
		body:    p.block(),
	}
}

func (p *parser) params() ([]*identifierExpr, bool) {
	params := make([]*identifierExpr, 0)

	if p.peekTokenIs(tkRightParen) {
		p.advance()
		return params, true
	}

	if !p.consume(tkIdentifier) {
		return nil, false
	}
	params = append(params, &identifierExpr{name: p.current()})

	for p.peekTokenIs(tkComma) {
		p.advance()
		if !p.consume(tkIdentifier) {
			return nil, false
		}
		params = append(params, &identifierExpr{name: p.current()})
	}

	if !p.consume(tkRightParen) {
		return nil, false
	}
	return params, true
}

func (p *parser) infix(left expr) expr {
	operator := p.current()
	prec := p.curPrecedence()
	p.advance()
	right := p.expression(prec)
	if right == nil {
		return nil
	}
	return &infixExpr{
		left:     left,
		operator: operator,
		right:    right,
	}
}

// assignment binds to the right: a = b = 1 is a = (b = 1)
func (p *parser) assignment(left expr) expr {
	equal := p.current()
	p.advance()
	value := p.expression(precAssign - 1)

	name, ok := left.(*identifierExpr)
	if !ok {
		p.state.setError(&invalidAssignmentError{target: stringVisitor{}.expr(left)}, equal.line)
		return nil
	}
	if value == nil {
		return nil
	}
	return &assignExpr{
		name:  name,
		value: value,
	}
}

func (p *parser) call(callee expr) expr {
	paren := p.current()
	arguments, ok := p.expressionList(tkRightParen)
	if !ok {
		return nil
	}
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) index(collection expr) expr {
	brace := p.current()
	p.advance()
	index := p.expression(precLowest)
	if !p.consume(tkRightBrace) || index == nil {
		return nil
	}
	return &indexExpr{
		collection: collection,
		brace:      brace,
		index:      index,
	}
}

// expressionList parses comma separated expressions up to the end token,
// the opening token is the current one.
func (p *parser) expressionList(end tokenType) ([]expr, bool) {
	list := make([]expr, 0)

	if p.peekTokenIs(end) {
		p.advance()
		return list, true
	}

	p.advance()
	element := p.expression(precLowest)
	list = append(list, element)

	for element != nil && p.peekTokenIs(tkComma) {
		p.advance()
		p.advance()
		element = p.expression(precLowest)
		list = append(list, element)
	}

	// The end token is checked even after a missing element, that is
	// what reports it
	if !p.consume(end) || element == nil {
		return nil, false
	}
	return list, true
}

// consume advances when the next token is the expected one, otherwise it
// records a diagnostic and leaves the position untouched.
func (p *parser) consume(tk tokenType) bool {
	if p.peekTokenIs(tk) {
		p.advance()
		return true
	}
	p.state.setError(&unexpectedTokenError{expected: tk, got: p.peekToken.token}, p.peekToken.line)
	return false
}

func (p *parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.nextToken()
}

func (p *parser) current() *token {
	tk := p.curToken
	return &tk
}

func (p *parser) curTokenIs(tk tokenType) bool {
	return p.curToken.token == tk
}

func (p *parser) peekTokenIs(tk tokenType) bool {
	return p.peekToken.token == tk
}

func (p *parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peekToken.token]; ok {
		return prec
	}
	return precLowest
}

func (p *parser) curPrecedence() precedence {
	if prec, ok := precedences[p.curToken.token]; ok {
		return prec
	}
	return precLowest
}
