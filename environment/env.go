package env

import (
	"fmt"

	"github.com/havrydotdev/lox/value"
)

// UndefinedError is returned when a name is not bound in any frame of
// the chain.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Env is one scope frame. Frames are linked to the frame that was
// active when they were created; outer frames outlive their children.
type Env struct {
	outer *Env

	values map[string]value.Value
}

func New() *Env {
	return &Env{values: make(map[string]value.Value), outer: nil}
}

func NewChild(outer *Env) *Env {
	return &Env{values: make(map[string]value.Value), outer: outer}
}

func (e *Env) Outer() *Env {
	return e.outer
}

// Define binds name in this frame, replacing any earlier binding here.
func (e *Env) Define(name string, v value.Value) {
	e.values[name] = v
}

// Assign rebinds the nearest existing name. It never creates a binding.
func (e *Env) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}

	if e.outer != nil {
		return e.outer.Assign(name, v)
	}

	return &UndefinedError{Name: name}
}

func (e *Env) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}

	if e.outer != nil {
		return e.outer.Get(name)
	}

	return value.Nil, &UndefinedError{Name: name}
}
