package value

// Environment is one frame of a lexical scope chain: a mapping from symbol
// to value plus a pointer to the enclosing frame. A nil *Environment is the
// distinguished empty environment terminator — it holds no frame and every
// lookup against it fails.
type Environment struct {
	frame  map[Symbol]*Value
	parent *Environment
}

// NewFrame creates a single empty frame chained onto parent. This is used
// directly by top-level setup (make-global-environment); most callers
// should prefer Extend, which also binds parameters.
func NewFrame(parent *Environment) *Environment {
	return &Environment{frame: make(map[Symbol]*Value), parent: parent}
}

// Extend creates a fresh frame binding each parameter to the corresponding
// argument and prepends it to base. It fails with an arity-mismatch error —
// distinguishing too many arguments from too few — when the lists differ
// in length.
func Extend(parameters []Symbol, arguments []*Value, base *Environment) (*Environment, error) {
	if len(arguments) != len(parameters) {
		direction := ArityTooFew
		if len(arguments) > len(parameters) {
			direction = ArityTooMany
		}
		return nil, &EvalError{
			Kind:      KindArityMismatch,
			Params:    len(parameters),
			Args:      len(arguments),
			Direction: direction,
		}
	}

	env := NewFrame(base)
	for i, p := range parameters {
		env.frame[p] = arguments[i]
	}
	return env, nil
}

// Lookup walks the frame chain head-to-tail and returns the value bound to
// sym in the first frame that contains it.
func Lookup(sym Symbol, env *Environment) (*Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.frame[sym]; ok {
			return v, nil
		}
	}
	return nil, &EvalError{Kind: KindUnboundVariable, Symbol: sym}
}

// Assign walks the frame chain head-to-tail and mutates the first frame
// containing sym to hold value. It never creates a new binding — this is
// the sole mechanism for mutating a variable captured by an enclosing
// closure.
func Assign(sym Symbol, val *Value, env *Environment) error {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.frame[sym]; ok {
			e.frame[sym] = val
			return nil
		}
	}
	return &EvalError{Kind: KindUnboundVariable, Symbol: sym}
}

// Define acts only on env's own frame: if sym is already bound there it is
// overwritten, otherwise a new binding is added. It never traverses
// enclosing frames — this is what makes a nested define introduce a local
// binding in the current activation frame rather than reaching outward.
func Define(sym Symbol, val *Value, env *Environment) {
	env.frame[sym] = val
}
