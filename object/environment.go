package object

// Environment provides lexical scoping for runtime values. An environment may be
// the outer scope of any number of closures at once.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates a new environment, optionally nested under outer.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		outer:  outer,
	}
}

// Outer exposes the enclosing scope (nil at the top level).
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Define binds name in this scope only, shadowing any outer binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Extend creates a child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

// Snapshot copies the bindings of this scope, not of any outer one.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for name, v := range e.values {
		out[name] = v
	}
	return out
}

// Restore replaces the bindings of this scope with a copy of a snapshot.
// Closures that captured e keep seeing e, now with the restored bindings.
func (e *Environment) Restore(snapshot map[string]Value) {
	e.values = make(map[string]Value, len(snapshot))
	for name, v := range snapshot {
		e.values[name] = v
	}
}
