// Package eval implements the evaluator core: the mutually recursive
// Evaluate/apply pair, driven by the syntax classifier and operating over
// the value package's Environment and Value types.
//
// The core never panics on a malformed or ill-typed program — every
// failure path returns a *value.EvalError, which unwinds the in-flight
// Evaluate call exactly once; there is no recovery within an evaluation.
//
// Evaluate and Apply recurse directly into each other on the Go call stack,
// with no trampolining and no tail-call optimization, so the practical
// recursion limit is the goroutine's maximum stack size (1 GB by default on
// 64-bit platforms, adjustable with runtime/debug.SetMaxStack).
package eval

import (
	"github.com/wisp-lang/wisp/pkg/syntax"
	"github.com/wisp-lang/wisp/pkg/value"
)

// Evaluate is the evaluator's single entry point: evaluate expr against
// env and return its value, or the error that aborted evaluation.
//
// Each case below is checked in order; the first matching case wins.
func Evaluate(expr *value.Value, env *value.Environment) (*value.Value, error) {
	// A special form too short for its projectors is a syntax error.
	if expr.IsPair() && expr.Pair.First.Kind == value.KindSymbol {
		need := 0
		switch expr.Pair.First.Sym {
		case syntax.Quote, syntax.Lambda:
			need = 2
		case syntax.SetBang, syntax.Define, syntax.If:
			need = 3
		}
		n := 0
		for rest := expr; rest.IsPair() && n < need; rest = rest.Pair.Rest {
			n++
		}
		if n < need {
			return nil, value.NewSyntaxError(expr)
		}
	}

	switch {
	case syntax.IsSelfEvaluating(expr):
		return expr, nil

	case syntax.IsVariable(expr):
		return value.Lookup(expr.Sym, env)

	case syntax.IsQuoted(expr):
		return syntax.QuotedDatum(expr), nil

	case syntax.IsAssignment(expr):
		return evalAssignment(expr, env)

	case syntax.IsDefinition(expr):
		return evalDefinition(expr, env)

	case syntax.IsIf(expr):
		return evalIf(expr, env)

	case syntax.IsLambda(expr):
		return value.NewCompound(syntax.LambdaParameters(expr), syntax.LambdaBody(expr), env), nil

	case syntax.IsBegin(expr):
		return evalSequence(syntax.BeginActions(expr), env, expr)

	case syntax.IsApplication(expr):
		return evalApplication(expr, env)

	default:
		return nil, value.NewSyntaxError(expr)
	}
}

// ok is the unit value returned by set! and define.
var ok = value.NewSymbol("ok")

func evalAssignment(expr *value.Value, env *value.Environment) (*value.Value, error) {
	v, err := Evaluate(syntax.AssignmentValue(expr), env)
	if err != nil {
		return nil, err
	}
	if err := value.Assign(syntax.AssignmentVariable(expr), v, env); err != nil {
		return nil, err
	}
	return ok, nil
}

func evalDefinition(expr *value.Value, env *value.Environment) (*value.Value, error) {
	v, err := Evaluate(syntax.DefinitionValue(expr), env)
	if err != nil {
		return nil, err
	}
	value.Define(syntax.DefinitionVariable(expr), v, env)
	return ok, nil
}

func evalIf(expr *value.Value, env *value.Environment) (*value.Value, error) {
	predicate, err := Evaluate(syntax.IfPredicate(expr), env)
	if err != nil {
		return nil, err
	}
	if predicate.IsTruthy() {
		return Evaluate(syntax.IfConsequent(expr), env)
	}
	if syntax.HasAlternative(expr) {
		return Evaluate(syntax.IfAlternative(expr), env)
	}
	return value.False(), nil
}

// evalSequence evaluates each action in order against env, returning the
// last one's value. A nil/empty sequence is ill-formed; context is the
// originating begin/lambda-body expression, reported in the resulting
// syntax error.
func evalSequence(actions []*value.Value, env *value.Environment, context *value.Value) (*value.Value, error) {
	if len(actions) == 0 {
		return nil, value.NewSyntaxError(context)
	}
	var result *value.Value
	var err error
	for _, action := range actions {
		result, err = Evaluate(action, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalApplication(expr *value.Value, env *value.Environment) (*value.Value, error) {
	procedure, err := Evaluate(syntax.Operator(expr), env)
	if err != nil {
		return nil, err
	}

	operands := syntax.Operands(expr)
	// Argument evaluation order is fixed left-to-right, even though the
	// family of languages this evaluates permits any order.
	args := make([]*value.Value, len(operands))
	for i, operand := range operands {
		args[i], err = Evaluate(operand, env)
		if err != nil {
			return nil, err
		}
	}

	return Apply(procedure, args)
}

// Apply invokes procedure with the already-evaluated arguments.
func Apply(procedure *value.Value, args []*value.Value) (*value.Value, error) {
	switch procedure.Kind {
	case value.KindPrimitive:
		v, err := procedure.Primitive.Fn(args)
		if err != nil {
			if _, ok := err.(*value.EvalError); ok {
				return nil, err
			}
			return nil, value.NewPrimitiveError(procedure.Primitive.Name, "%s", err.Error())
		}
		return v, nil

	case value.KindCompound:
		c := procedure.Compound
		bodyEnv, err := value.Extend(c.Parameters, args, c.Env)
		if err != nil {
			return nil, err
		}
		return evalSequence(c.Body, bodyEnv, procedure)

	default:
		return nil, value.NewNotAProcedureError(procedure)
	}
}
