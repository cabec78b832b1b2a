package internal

import "strconv"

type monkeyInteger struct {
	value int64
}

// Division truncates toward zero. Overflow wraps around.
var integerOperations = map[operator]func(x, y int64) Object{
	opAdd: func(x, y int64) Object {
		return &monkeyInteger{value: x + y}
	},
	opSub: func(x, y int64) Object {
		return &monkeyInteger{value: x - y}
	},
	opMul: func(x, y int64) Object {
		return &monkeyInteger{value: x * y}
	},
	opDiv: func(x, y int64) Object {
		if y == 0 {
			return newError("division by zero")
		}
		return &monkeyInteger{value: x / y}
	},
	opLt: func(x, y int64) Object {
		return nativeBoolToBooleanObject(x < y)
	},
	opGt: func(x, y int64) Object {
		return nativeBoolToBooleanObject(x > y)
	},
	opEq: func(x, y int64) Object {
		return nativeBoolToBooleanObject(x == y)
	},
	opNeq: func(x, y int64) Object {
		return nativeBoolToBooleanObject(x != y)
	},
}

func (i *monkeyInteger) Type() ObjectType { return INTEGER_OBJ }

func (i *monkeyInteger) Inspect() string {
	return strconv.FormatInt(i.value, 10)
}

func (i *monkeyInteger) getOperator(op operator) (operatorApply, error) {
	if apply, ok := integerOperations[op]; ok {
		return func(right Object) Object {
			y, ok := right.(*monkeyInteger)
			if !ok {
				return newError("type mismatch: %s %s %s", i.Type(), op, right.Type())
			}
			return apply(i.value, y.value)
		}, nil
	}
	return nil, errUndefinedOp
}
