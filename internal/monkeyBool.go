package internal

type monkeyBool struct {
	value bool
}

func nativeBoolToBooleanObject(value bool) *monkeyBool {
	if value {
		return TRUE
	}
	return FALSE
}

func (b *monkeyBool) Type() ObjectType { return BOOLEAN_OBJ }

func (b *monkeyBool) Inspect() string {
	if b.value {
		return "true"
	}
	return "false"
}
