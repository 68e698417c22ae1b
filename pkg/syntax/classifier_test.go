package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisp-lang/wisp/pkg/value"
)

func list(elements ...*value.Value) *value.Value { return value.List(elements...) }

func sym(s string) *value.Value { return value.NewSymbol(value.Symbol(s)) }

func TestIsSelfEvaluating(t *testing.T) {
	require.True(t, IsSelfEvaluating(value.NewNumber(1)))
	require.True(t, IsSelfEvaluating(value.NewString("x")))
	require.True(t, IsSelfEvaluating(value.True()))
	require.False(t, IsSelfEvaluating(sym("x")))
	require.False(t, IsSelfEvaluating(value.EmptyList()))
}

func TestIsVariable(t *testing.T) {
	require.True(t, IsVariable(sym("x")))
	require.False(t, IsVariable(value.NewNumber(1)))
}

func TestQuoteForm(t *testing.T) {
	expr := list(sym("quote"), list(value.NewNumber(1), value.NewNumber(2)))
	require.True(t, IsQuoted(expr))
	datum := QuotedDatum(expr)
	require.Equal(t, 1.0, datum.Pair.First.Number)
}

func TestAssignmentForm(t *testing.T) {
	expr := list(sym("set!"), sym("x"), value.NewNumber(5))
	require.True(t, IsAssignment(expr))
	require.Equal(t, value.Symbol("x"), AssignmentVariable(expr))
	require.Equal(t, 5.0, AssignmentValue(expr).Number)
}

func TestDefinitionSimpleForm(t *testing.T) {
	expr := list(sym("define"), sym("x"), value.NewNumber(10))
	require.True(t, IsDefinition(expr))
	require.Equal(t, value.Symbol("x"), DefinitionVariable(expr))
	require.Equal(t, 10.0, DefinitionValue(expr).Number)
}

func TestDefinitionProcedureSugarForm(t *testing.T) {
	// (define (square x) (* x x))
	expr := list(sym("define"), list(sym("square"), sym("x")), list(sym("*"), sym("x"), sym("x")))
	require.True(t, IsDefinition(expr))
	require.Equal(t, value.Symbol("square"), DefinitionVariable(expr))

	synthesized := DefinitionValue(expr)
	require.True(t, IsLambda(synthesized))
	require.Equal(t, []value.Symbol{"x"}, LambdaParameters(synthesized))
	require.Len(t, LambdaBody(synthesized), 1)
}

func TestIfFormWithAlternative(t *testing.T) {
	expr := list(sym("if"), sym("p"), value.NewNumber(1), value.NewNumber(2))
	require.True(t, IsIf(expr))
	require.True(t, HasAlternative(expr))
	require.Equal(t, value.Symbol("p"), IfPredicate(expr).Sym)
	require.Equal(t, 1.0, IfConsequent(expr).Number)
	require.Equal(t, 2.0, IfAlternative(expr).Number)
}

func TestIfFormWithoutAlternative(t *testing.T) {
	expr := list(sym("if"), sym("p"), value.NewNumber(1))
	require.False(t, HasAlternative(expr))
}

func TestLambdaForm(t *testing.T) {
	expr := list(sym("lambda"), list(sym("x"), sym("y")), sym("x"), sym("y"))
	require.True(t, IsLambda(expr))
	require.Equal(t, []value.Symbol{"x", "y"}, LambdaParameters(expr))
	require.Len(t, LambdaBody(expr), 2)
}

func TestBeginForm(t *testing.T) {
	expr := list(sym("begin"), value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))
	require.True(t, IsBegin(expr))
	require.Len(t, BeginActions(expr), 3)
}

func TestApplicationForm(t *testing.T) {
	expr := list(sym("+"), value.NewNumber(1), value.NewNumber(2))
	require.True(t, IsApplication(expr))
	require.Equal(t, value.Symbol("+"), Operator(expr).Sym)
	require.Len(t, Operands(expr), 2)
}

func TestMakeLambdaRoundTrips(t *testing.T) {
	formals := list(sym("x"))
	body := list(sym("x"))
	lambda := MakeLambda(formals, body)
	require.True(t, IsLambda(lambda))
	require.Equal(t, []value.Symbol{"x"}, LambdaParameters(lambda))
}
