package internal

import "fmt"

// ObjectType is the type tag of a runtime value
type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	STRING_OBJ       ObjectType = "STRING"
	ARRAY_OBJ        ObjectType = "ARRAY"
	FUNCTION_OBJ     ObjectType = "FUNCTION"
	BUILTIN_OBJ      ObjectType = "BUILTIN"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	ERROR_OBJ        ObjectType = "ERROR"
	NULL_OBJ         ObjectType = "NULL"
	VOID_OBJ         ObjectType = "VOID"
)

// Object is a runtime value
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Shared instances. Booleans are only ever TRUE or FALSE so they can be
// compared by identity.
var (
	TRUE  = &monkeyBool{value: true}
	FALSE = &monkeyBool{value: false}
	NULL  = &monkeyNull{}
	VOID  = &monkeyVoid{}
)

type monkeyNull struct{}

func (n *monkeyNull) Type() ObjectType { return NULL_OBJ }
func (n *monkeyNull) Inspect() string  { return "null" }

// monkeyVoid is the result of evaluations that produce no value
type monkeyVoid struct{}

func (v *monkeyVoid) Type() ObjectType { return VOID_OBJ }
func (v *monkeyVoid) Inspect() string  { return "" }

type monkeyError struct {
	message string
}

func newError(format string, a ...interface{}) *monkeyError {
	return &monkeyError{message: fmt.Sprintf(format, a...)}
}

func (e *monkeyError) Type() ObjectType { return ERROR_OBJ }
func (e *monkeyError) Inspect() string  { return "ERROR: " + e.message }

// Message returns the error text without prefix
func (e *monkeyError) Message() string { return e.message }

// returnValue carries the value of a return statement up to the
// enclosing call. It never escapes a call or a program.
type returnValue struct {
	value Object
}

func (r *returnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (r *returnValue) Inspect() string  { return r.value.Inspect() }

func isError(obj Object) bool {
	return obj != nil && obj.Type() == ERROR_OBJ
}

// IsError reports whether obj is a runtime error
func IsError(obj Object) bool {
	return isError(obj)
}

// truthy is false only for FALSE and NULL
func truthy(obj Object) bool {
	switch obj {
	case FALSE, NULL:
		return false
	default:
		return true
	}
}
