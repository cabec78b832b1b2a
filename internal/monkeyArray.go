package internal

import "strings"

type monkeyArray struct {
	elements []Object
}

func (a *monkeyArray) Type() ObjectType { return ARRAY_OBJ }

func (a *monkeyArray) Inspect() string {
	elements := make([]string, len(a.elements))
	for i, el := range a.elements {
		elements[i] = el.Inspect()
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// at returns NULL for any index outside the array
func (a *monkeyArray) at(index int64) Object {
	if index < 0 || index >= int64(len(a.elements)) {
		return NULL
	}
	return a.elements[index]
}
