package internal

type monkeyString struct {
	value string
}

var stringBinaryOperations = map[operator]func(x, y string) Object{
	opAdd: func(x, y string) Object {
		return &monkeyString{value: x + y}
	},
}

func (s *monkeyString) Type() ObjectType { return STRING_OBJ }
func (s *monkeyString) Inspect() string  { return s.value }

func (s *monkeyString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(right Object) Object {
			y, ok := right.(*monkeyString)
			if !ok {
				return newError("type mismatch: %s %s %s", s.Type(), op, right.Type())
			}
			return apply(s.value, y.value)
		}, nil
	}
	return nil, errUndefinedOp
}
