package eval

import "github.com/wisp-lang/wisp/pkg/value"

// PrimitiveBinding is one entry of the host-supplied primitive table: a
// name paired with the host operation it names.
type PrimitiveBinding struct {
	Name value.Symbol
	Fn   func(args []*value.Value) (*value.Value, error)
}

// SetupEnvironment wraps each host operation in the table in a Primitive
// value and binds it to its name in a single fresh frame prepended to base.
func SetupEnvironment(table []PrimitiveBinding, base *value.Environment) *value.Environment {
	env := value.NewFrame(base)
	for _, binding := range table {
		value.Define(binding.Name, value.NewPrimitive(binding.Name, binding.Fn), env)
	}
	return env
}

// MakeGlobalEnvironment returns a fresh environment seeded with the
// standard primitive table (Primitives, in builtins.go) and the bindings
// true -> Boolean True and false -> Boolean False.
func MakeGlobalEnvironment() *value.Environment {
	env := SetupEnvironment(Primitives, nil)
	value.Define("true", value.True(), env)
	value.Define("false", value.False(), env)
	return env
}
