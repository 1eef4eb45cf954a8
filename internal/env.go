package internal

import "fmt"

// env is a scope frame. enclosing is fixed at creation.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func undefinedVar(name string) error {
	return fmt.Errorf("%w '%s'.", errUndefinedVar, name)
}

func (e *env) get(name string) (interface{}, error) {
	for frame := e; frame != nil; frame = frame.enclosing {
		if value, ok := frame.values[name]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

// define always binds in this frame, replacing any previous binding here
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

// assign updates the innermost frame holding name; it never creates a binding
func (e *env) assign(name string, value interface{}) error {
	for frame := e; frame != nil; frame = frame.enclosing {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = value
			return nil
		}
	}
	return undefinedVar(name)
}

func (e *env) depth() int {
	d := 0
	for frame := e.enclosing; frame != nil; frame = frame.enclosing {
		d++
	}
	return d
}
