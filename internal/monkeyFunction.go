package internal

import (
	"strings"
)

type callable interface {
	call(exec *exec, arguments []Object) Object
}

type monkeyFunction struct {
	params  []*identifierExpr
	body    *blockStmt
	closure *Env
}

func (f *monkeyFunction) arity() int {
	return len(f.params)
}

// call evaluates the body in a new scope enclosed by the scope the
// function was defined in.
func (f *monkeyFunction) call(exec *exec, arguments []Object) Object {
	if len(arguments) != f.arity() {
		return newError("wrong number of arguments: want=%d, got=%d", f.arity(), len(arguments))
	}

	env := newEnv(f.closure)
	for i, param := range f.params {
		env.define(param.name.lexeme, arguments[i])
	}

	result := exec.executeBlock(f.body, env)
	if ret, isReturn := result.(*returnValue); isReturn {
		return ret.value
	}
	if isError(result) || f.hasTailValue() {
		return result
	}
	return VOID
}

// hasTailValue reports whether the body ends with an expression statement
// that is not terminated by a semicolon.
func (f *monkeyFunction) hasTailValue() bool {
	if len(f.body.stmts) == 0 {
		return false
	}
	last, ok := f.body.stmts[len(f.body.stmts)-1].(*exprStmt)
	return ok && last.last.token != tkSemicolon
}

func (f *monkeyFunction) Type() ObjectType { return FUNCTION_OBJ }

func (f *monkeyFunction) Inspect() string {
	params := make([]string, len(f.params))
	for i, param := range f.params {
		params[i] = param.name.lexeme
	}
	return "fn(" + strings.Join(params, ", ") + ") {\n" + stringVisitor{}.visitBlockStmt(f.body).(string) + "\n}"
}

type nativeFn struct {
	name string
	// arityValue is -1 for functions that check their own arguments
	arityValue int
	callFn     func(arguments []Object) (Object, error)
}

func (n *nativeFn) call(exec *exec, arguments []Object) Object {
	if n.arityValue >= 0 && len(arguments) != n.arityValue {
		return newError("wrong number of arguments: want=%d, got=%d", n.arityValue, len(arguments))
	}
	result, err := n.callFn(arguments)
	if err != nil {
		return newError("%s", err.Error())
	}
	return result
}

func (n *nativeFn) Type() ObjectType { return BUILTIN_OBJ }
func (n *nativeFn) Inspect() string  { return "builtin function" }
