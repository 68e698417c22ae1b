package reader

import (
	"strings"
	"testing"

	assert "github.com/alecthomas/assert/v2"

	"github.com/wisp-lang/wisp/pkg/value"
)

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *value.Value
	}{
		{"number", "42", value.NewNumber(42)},
		{"negative", "-7", value.NewNumber(-7)},
		{"float", "3.5", value.NewNumber(3.5)},
		{"string", `"hello"`, value.NewString("hello")},
		{"symbol", "foo", value.NewSymbol("foo")},
		{"symbol-bang", "set!", value.NewSymbol("set!")},
		{"bool-true", "#t", value.True()},
		{"bool-false", "#f", value.False()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Read(test.src)
			assert.NoError(t, err)
			assert.Equal(t, test.want.Kind, got.Kind)
			switch test.want.Kind {
			case value.KindNumber:
				assert.Equal(t, test.want.Number, got.Number)
			case value.KindString:
				assert.Equal(t, test.want.Str, got.Str)
			case value.KindSymbol:
				assert.Equal(t, test.want.Sym, got.Sym)
			case value.KindBoolean:
				assert.Equal(t, test.want.Bool, got.Bool)
			}
		})
	}
}

func TestReadEmptyList(t *testing.T) {
	got, err := Read("()")
	assert.NoError(t, err)
	assert.True(t, got.IsEmptyList())
}

func TestReadProperList(t *testing.T) {
	got, err := Read("(1 2 3)")
	assert.NoError(t, err)
	assert.True(t, got.IsPair())
	assert.Equal(t, 1.0, got.Pair.First.Number)
	assert.Equal(t, 2.0, got.Pair.Rest.Pair.First.Number)
	assert.Equal(t, 3.0, got.Pair.Rest.Pair.Rest.Pair.First.Number)
	assert.True(t, got.Pair.Rest.Pair.Rest.Pair.Rest.IsEmptyList())
}

func TestReadNestedList(t *testing.T) {
	got, err := Read("(+ 1 (* 2 3))")
	assert.NoError(t, err)
	assert.Equal(t, value.Symbol("+"), got.Pair.First.Sym)
	nested := got.Pair.Rest.Pair.Rest.Pair.First
	assert.True(t, nested.IsPair())
	assert.Equal(t, value.Symbol("*"), nested.Pair.First.Sym)
}

func TestReadQuoteShorthandDesugarsToQuoteForm(t *testing.T) {
	got, err := Read("'(1 2)")
	assert.NoError(t, err)
	assert.True(t, got.IsPair())
	assert.Equal(t, value.Symbol("quote"), got.Pair.First.Sym)
	quoted := got.Pair.Rest.Pair.First
	assert.Equal(t, 1.0, quoted.Pair.First.Number)
}

func TestReadSymbolIsCaseFolded(t *testing.T) {
	got, err := Read("CAR")
	assert.NoError(t, err)
	assert.Equal(t, value.Symbol("car"), got.Sym)
}

func TestReadAllParsesMultipleTopLevelForms(t *testing.T) {
	forms, err := ReadAll("test.wisp", strings.NewReader("(define x 1)\n(+ x 2)"))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(forms))
	assert.Equal(t, value.Symbol("define"), forms[0].Pair.First.Sym)
}

func TestReadRejectsMultipleTopLevelForms(t *testing.T) {
	_, err := Read("1 2")
	assert.Error(t, err)
}
