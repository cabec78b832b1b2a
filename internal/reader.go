package internal

import (
	"strings"
)

//R generic type
type R interface{}

// Program is the ordered list of top-level statements of one unit of source
type Program struct {
	stmts []stmt
}

// String renders the program in its canonical fully-parenthesized form
func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.stmts {
		out.WriteString(s.accept(stringVisitor{}).(string))
	}
	return out.String()
}

// PrintTree prints every top-level statement on its own line
func (p *Program) PrintTree(printer IPrinter) {
	for _, s := range p.stmts {
		printer.Println(s.accept(stringVisitor{}))
	}
}

type stringVisitor struct{}

func (v stringVisitor) expr(e expr) string {
	if e == nil {
		return ""
	}
	return e.accept(v).(string)
}

func (v stringVisitor) exprs(list []expr) string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = v.expr(e)
	}
	return strings.Join(out, ", ")
}

func (v stringVisitor) visitLetStmt(stmt *letStmt) R {
	return "let " + stmt.name.name.lexeme + " = " + v.expr(stmt.value) + ";"
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return "return;"
	}
	return "return " + v.expr(stmt.value) + ";"
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return v.expr(stmt.expression)
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	var out strings.Builder
	for _, s := range stmt.stmts {
		out.WriteString(s.accept(v).(string))
	}
	return out.String()
}

func (v stringVisitor) visitIdentifierExpr(expr *identifierExpr) R {
	return expr.name.lexeme
}

func (v stringVisitor) visitIntegerExpr(expr *integerExpr) R {
	return expr.literal.lexeme
}

func (v stringVisitor) visitStringExpr(expr *stringExpr) R {
	return "\"" + expr.value + "\""
}

func (v stringVisitor) visitBooleanExpr(expr *booleanExpr) R {
	if expr.value {
		return "true"
	}
	return "false"
}

func (v stringVisitor) visitArrayExpr(expr *arrayExpr) R {
	return "[" + v.exprs(expr.elements) + "]"
}

func (v stringVisitor) visitPrefixExpr(expr *prefixExpr) R {
	return "(" + expr.operator.lexeme + v.expr(expr.right) + ")"
}

func (v stringVisitor) visitInfixExpr(expr *infixExpr) R {
	return "(" + v.expr(expr.left) + " " + expr.operator.lexeme + " " + v.expr(expr.right) + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return "(" + expr.name.name.lexeme + " = " + v.expr(expr.value) + ")"
}

func (v stringVisitor) visitIfExpr(expr *ifExpr) R {
	out := "if" + v.expr(expr.condition) + " " + v.visitBlockStmt(expr.consequence).(string)
	if expr.alternative != nil {
		out += "else " + v.visitBlockStmt(expr.alternative).(string)
	}
	return out
}

func (v stringVisitor) visitWhileExpr(expr *whileExpr) R {
	return "while" + v.expr(expr.condition) + " " + v.visitBlockStmt(expr.body).(string)
}

func (v stringVisitor) visitFunctionExpr(expr *functionExpr) R {
	params := make([]string, len(expr.params))
	for i, param := range expr.params {
		params[i] = param.name.lexeme
	}
	return "fn(" + strings.Join(params, ", ") + ") " + v.visitBlockStmt(expr.body).(string)
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	return v.expr(expr.callee) + "(" + v.exprs(expr.arguments) + ")"
}

func (v stringVisitor) visitIndexExpr(expr *indexExpr) R {
	return "(" + v.expr(expr.collection) + "[" + v.expr(expr.index) + "])"
}
