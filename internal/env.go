package internal

// Env is a scope mapping names to values. Scopes are chained through
// enclosing and shared by every function value that captured them.
type Env struct {
	enclosing *Env
	values    map[string]Object
}

// NewEnv creates a top-level environment
func NewEnv() *Env {
	return newEnv(nil)
}

func newEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Object),
	}
}

func (e *Env) get(name string) (Object, bool) {
	if value, ok := e.values[name]; ok {
		return value, true
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, false
}

// declared only looks at the current scope
func (e *Env) declared(name string) bool {
	_, ok := e.values[name]
	return ok
}

func (e *Env) define(name string, value Object) {
	e.values[name] = value
}

// assign overwrites name in the nearest scope that binds it
func (e *Env) assign(name string, value Object) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return false
}
