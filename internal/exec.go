package internal

// maxCallDepth bounds nested calls well below the point where the Go
// stack would overflow
const maxCallDepth = 10000

type exec struct {
	builtins map[string]*nativeFn

	env   *Env
	depth int
}

func (e *exec) interpret(program *Program) Object {
	var result Object = VOID
	for _, s := range program.stmts {
		result = e.execute(s)
		if ret, isReturn := result.(*returnValue); isReturn {
			return ret.value
		}
		if isError(result) {
			return result
		}
	}
	return result
}

func (e *exec) execute(s stmt) Object {
	return s.accept(e).(Object)
}

func (e *exec) eval(ex expr) Object {
	return ex.accept(e).(Object)
}

// executeBlock runs a block in env and restores the previous scope
func (e *exec) executeBlock(block *blockStmt, env *Env) Object {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.visitBlockStmt(block).(Object)
}

// abrupt values stop the evaluation of whatever sequence produced them
func abrupt(obj Object) bool {
	switch obj.Type() {
	case ERROR_OBJ, RETURN_VALUE_OBJ:
		return true
	}
	return false
}

// evalExprs evaluates left to right, the second result is the first
// abrupt value found, if any
func (e *exec) evalExprs(exprs []expr) ([]Object, Object) {
	out := make([]Object, len(exprs))
	for i, ex := range exprs {
		out[i] = e.eval(ex)
		if abrupt(out[i]) {
			return nil, out[i]
		}
	}
	return out, nil
}

func (e *exec) visitLetStmt(stmt *letStmt) R {
	value := e.eval(stmt.value)
	if abrupt(value) {
		return value
	}
	name := stmt.name.name.lexeme
	if e.env.declared(name) {
		return newError("identifier has declaration: %s", name)
	}
	e.env.define(name, value)
	return value
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return &returnValue{value: VOID}
	}
	value := e.eval(stmt.value)
	if abrupt(value) {
		return value
	}
	return &returnValue{value: value}
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return e.eval(stmt.expression)
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	var result Object = VOID
	for _, s := range stmt.stmts {
		result = e.execute(s)
		if abrupt(result) {
			return result
		}
	}
	return result
}

func (e *exec) visitIdentifierExpr(expr *identifierExpr) R {
	name := expr.name.lexeme
	if value, ok := e.env.get(name); ok {
		return value
	}
	if builtin, ok := e.builtins[name]; ok {
		return builtin
	}
	return newError("identifier not found: %s", name)
}

func (e *exec) visitIntegerExpr(expr *integerExpr) R {
	return &monkeyInteger{value: expr.value}
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return &monkeyString{value: expr.value}
}

func (e *exec) visitBooleanExpr(expr *booleanExpr) R {
	return nativeBoolToBooleanObject(expr.value)
}

func (e *exec) visitArrayExpr(expr *arrayExpr) R {
	elements, stop := e.evalExprs(expr.elements)
	if stop != nil {
		return stop
	}
	return &monkeyArray{elements: elements}
}

func (e *exec) visitPrefixExpr(expr *prefixExpr) R {
	right := e.eval(expr.right)
	if abrupt(right) {
		return right
	}
	switch operator(expr.operator.lexeme) {
	case opNot:
		return nativeBoolToBooleanObject(!truthy(right))
	case opSub:
		if integer, ok := right.(*monkeyInteger); ok {
			return &monkeyInteger{value: -integer.value}
		}
	}
	return newError("%s: %s%s", errUndefinedOp, expr.operator.lexeme, right.Type())
}

func (e *exec) visitInfixExpr(expr *infixExpr) R {
	left := e.eval(expr.left)
	if abrupt(left) {
		return left
	}
	right := e.eval(expr.right)
	if abrupt(right) {
		return right
	}
	return e.infix(operator(expr.operator.lexeme), left, right)
}

// infix compares anything but integers by identity. Booleans are shared
// instances so this works for them, other values are only equal to
// themselves.
func (e *exec) infix(op operator, left, right Object) Object {
	switch {
	case left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ:
		return e.applyOperator(op, left, right)
	case op == opEq:
		return nativeBoolToBooleanObject(left == right)
	case op == opNeq:
		return nativeBoolToBooleanObject(left != right)
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	default:
		return e.applyOperator(op, left, right)
	}
}

func (e *exec) applyOperator(op operator, left, right Object) Object {
	if value, ok := left.(operable); ok {
		if apply, err := value.getOperator(op); err == nil {
			return apply(right)
		}
	}
	return newError("%s: %s %s %s", errUndefinedOp, left.Type(), op, right.Type())
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	value := e.eval(expr.value)
	if abrupt(value) {
		return value
	}
	if !e.env.assign(expr.name.name.lexeme, value) {
		return newError("identifier not found: %s", expr.name.name.lexeme)
	}
	return value
}

func (e *exec) visitIfExpr(expr *ifExpr) R {
	condition := e.eval(expr.condition)
	if abrupt(condition) {
		return condition
	}
	if truthy(condition) {
		return e.visitBlockStmt(expr.consequence)
	}
	if expr.alternative != nil {
		return e.visitBlockStmt(expr.alternative)
	}
	return VOID
}

// visitWhileExpr runs the body in the current scope, so bindings made by
// one iteration are seen by the next condition check.
func (e *exec) visitWhileExpr(expr *whileExpr) R {
	for {
		condition := e.eval(expr.condition)
		if abrupt(condition) {
			return condition
		}
		if !truthy(condition) {
			return VOID
		}
		result := e.visitBlockStmt(expr.body).(Object)
		if abrupt(result) {
			return result
		}
	}
}

func (e *exec) visitFunctionExpr(expr *functionExpr) R {
	return &monkeyFunction{
		params:  expr.params,
		body:    expr.body,
		closure: e.env,
	}
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.eval(expr.callee)
	if abrupt(callee) {
		return callee
	}

	fn, isFn := callee.(callable)
	if !isFn {
		return newError("not a function: %s", callee.Type())
	}

	arguments, stop := e.evalExprs(expr.arguments)
	if stop != nil {
		return stop
	}

	if e.depth >= maxCallDepth {
		return newError("stack overflow")
	}
	e.depth++
	defer func() {
		e.depth--
	}()
	return fn.call(e, arguments)
}

func (e *exec) visitIndexExpr(expr *indexExpr) R {
	collection := e.eval(expr.collection)
	if abrupt(collection) {
		return collection
	}
	index := e.eval(expr.index)
	if abrupt(index) {
		return index
	}

	array, isArray := collection.(*monkeyArray)
	position, isInt := index.(*monkeyInteger)
	if !isArray || !isInt {
		return newError("index operator not supported: %s[%s]", collection.Type(), index.Type())
	}
	return array.at(position.value)
}
