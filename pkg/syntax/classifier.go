// Package syntax classifies a Value viewed as source code: it decides which
// special form (if any) a pair-shaped expression represents, and projects
// out each form's sub-expressions. It performs no evaluation — pure
// inspection of syntactic shape.
package syntax

import "github.com/wisp-lang/wisp/pkg/value"

// Leading-symbol tags recognized by the classifier.
const (
	Quote   value.Symbol = "quote"
	SetBang value.Symbol = "set!"
	Define  value.Symbol = "define"
	If      value.Symbol = "if"
	Lambda  value.Symbol = "lambda"
	Begin   value.Symbol = "begin"
)

// taggedPair reports whether expr is a pair whose first element is the
// given leading symbol.
func taggedPair(expr *value.Value, tag value.Symbol) bool {
	if !expr.IsPair() {
		return false
	}
	first := expr.Pair.First
	return first.Kind == value.KindSymbol && first.Sym == tag
}

// IsSelfEvaluating reports whether expr evaluates to itself: numbers,
// strings, and booleans.
func IsSelfEvaluating(expr *value.Value) bool {
	switch expr.Kind {
	case value.KindNumber, value.KindString, value.KindBoolean:
		return true
	default:
		return false
	}
}

// IsVariable reports whether expr is a variable reference (a bare symbol).
func IsVariable(expr *value.Value) bool {
	return expr.Kind == value.KindSymbol
}

// IsQuoted reports whether expr is a (quote datum) form.
func IsQuoted(expr *value.Value) bool { return taggedPair(expr, Quote) }

// QuotedDatum projects the unevaluated datum out of a (quote datum) form.
func QuotedDatum(expr *value.Value) *value.Value {
	return cadr(expr)
}

// IsAssignment reports whether expr is a (set! symbol value-expr) form.
func IsAssignment(expr *value.Value) bool { return taggedPair(expr, SetBang) }

// AssignmentVariable projects the target symbol out of a set! form.
func AssignmentVariable(expr *value.Value) value.Symbol {
	return cadr(expr).Sym
}

// AssignmentValue projects the value expression out of a set! form.
func AssignmentValue(expr *value.Value) *value.Value {
	return caddr(expr)
}

// IsDefinition reports whether expr is a define form, in either of its two
// accepted shapes: (define name value-expr) or
// (define (name . formals) body...).
func IsDefinition(expr *value.Value) bool { return taggedPair(expr, Define) }

// DefinitionVariable projects the name being defined out of either
// define shape.
func DefinitionVariable(expr *value.Value) value.Symbol {
	target := cadr(expr)
	if target.IsPair() {
		// (define (name . formals) body...) — the name is the car of the
		// nested list.
		return target.Pair.First.Sym
	}
	return target.Sym
}

// DefinitionValue projects the value expression a definition binds its name
// to, synthesizing a lambda form for the sugared
// (define (name . formals) body...) shape.
func DefinitionValue(expr *value.Value) *value.Value {
	target := cadr(expr)
	if target.IsPair() {
		formals := target.Pair.Rest
		body := cddr(expr)
		return MakeLambda(formals, body)
	}
	return caddr(expr)
}

// IsIf reports whether expr is an if form.
func IsIf(expr *value.Value) bool { return taggedPair(expr, If) }

// IfPredicate projects the predicate out of an if form.
func IfPredicate(expr *value.Value) *value.Value { return cadr(expr) }

// IfConsequent projects the consequent (then-branch) out of an if form.
func IfConsequent(expr *value.Value) *value.Value { return caddr(expr) }

// IfAlternative projects the alternative (else-branch) out of an if form.
// When absent, evaluation of a false predicate yields Boolean False;
// HasAlternative tells the caller which case applies.
func IfAlternative(expr *value.Value) *value.Value {
	rest := cdddr(expr)
	return rest.Pair.First
}

// HasAlternative reports whether an if form supplies an else-branch.
func HasAlternative(expr *value.Value) bool {
	return cdddr(expr).IsPair()
}

// IsLambda reports whether expr is a lambda form: (lambda formals body...).
func IsLambda(expr *value.Value) bool { return taggedPair(expr, Lambda) }

// LambdaParameters projects the formal parameter list out of a lambda form.
// A dotted/variadic formals list is not supported — every formal is a plain
// symbol bound positionally, per value.Extend's contract.
func LambdaParameters(expr *value.Value) []value.Symbol {
	return symbolList(cadr(expr))
}

// LambdaBody projects the (non-empty) body sequence out of a lambda form.
func LambdaBody(expr *value.Value) []*value.Value {
	return toSlice(cddr(expr))
}

// MakeLambda synthesizes a (lambda formals body...) expression, used both
// by DefinitionValue's sugar and directly by callers that build expressions
// programmatically.
func MakeLambda(formals *value.Value, body *value.Value) *value.Value {
	return value.Cons(value.NewSymbol(Lambda), value.Cons(formals, body))
}

// IsBegin reports whether expr is a (begin expression...) form.
func IsBegin(expr *value.Value) bool { return taggedPair(expr, Begin) }

// BeginActions projects the action sequence out of a begin form.
func BeginActions(expr *value.Value) []*value.Value {
	return toSlice(cdr(expr))
}

// IsApplication reports whether expr is a procedure application: any pair
// whose leading symbol (if any) doesn't match one of the special forms
// above.
func IsApplication(expr *value.Value) bool {
	if !expr.IsPair() {
		return false
	}
	switch {
	case IsQuoted(expr), IsAssignment(expr), IsDefinition(expr), IsIf(expr), IsLambda(expr), IsBegin(expr):
		return false
	}
	return true
}

// Operator projects the operator sub-expression out of an application.
func Operator(expr *value.Value) *value.Value { return car(expr) }

// Operands projects the operand sub-expressions, in source order, out of an
// application.
func Operands(expr *value.Value) []*value.Value {
	return toSlice(cdr(expr))
}

// --- low-level pair accessors -------------------------------------------

func car(v *value.Value) *value.Value   { return v.Pair.First }
func cdr(v *value.Value) *value.Value   { return v.Pair.Rest }
func cadr(v *value.Value) *value.Value  { return car(cdr(v)) }
func cddr(v *value.Value) *value.Value  { return cdr(cdr(v)) }
func caddr(v *value.Value) *value.Value { return car(cddr(v)) }
func cdddr(v *value.Value) *value.Value { return cdr(cddr(v)) }

// toSlice flattens a proper list into a Go slice of its elements.
func toSlice(list *value.Value) []*value.Value {
	var out []*value.Value
	for list.IsPair() {
		out = append(out, list.Pair.First)
		list = list.Pair.Rest
	}
	return out
}

// symbolList flattens a proper list of symbols into a []value.Symbol.
func symbolList(list *value.Value) []value.Symbol {
	var out []value.Symbol
	for list.IsPair() {
		out = append(out, list.Pair.First.Sym)
		list = list.Pair.Rest
	}
	return out
}
