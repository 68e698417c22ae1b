package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArityDirectionString(t *testing.T) {
	assert.Equal(t, "too many", ArityTooMany.String())
	assert.Equal(t, "too few", ArityTooFew.String())
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"unbound", &EvalError{Kind: KindUnboundVariable, Symbol: "x"}},
		{"arity", &EvalError{Kind: KindArityMismatch, Params: 1, Args: 2, Direction: ArityTooMany}},
		{"not-a-procedure", NewNotAProcedureError(NewNumber(1))},
		{"syntax", NewSyntaxError(NewSymbol("bogus"))},
		{"primitive", NewPrimitiveError("car", "expected a pair, got %s", "number")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.NotEmpty(t, c.err.Error())
		})
	}
}
