package internal

import "errors"

type operator string

const (
	opAdd operator = "+"
	opSub operator = "-"
	opDiv operator = "/"
	opMul operator = "*"
	opNot operator = "!"
	opEq  operator = "=="
	opNeq operator = "!="
	opLt  operator = "<"
	opGt  operator = ">"
)

// operatorApply applies a binary operator whose left operand is already bound
type operatorApply func(right Object) Object

// operable is implemented by values that carry their own operator table
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

var errUndefinedOp = errors.New("unknown operator")
