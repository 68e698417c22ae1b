package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisp-lang/wisp/pkg/eval"
)

func TestRunFileEvaluatesDefinitionsInOrder(t *testing.T) {
	env := eval.MakeGlobalEnvironment()
	src := `
(define x 1)
(define y (+ x 1))
(set! x (+ x y))
`
	err := RunFile(src, env)
	require.NoError(t, err)
}

func TestRunFileStopsAtFirstError(t *testing.T) {
	env := eval.MakeGlobalEnvironment()
	err := RunFile("(+ undefined-name 1)", env)
	require.Error(t, err)
}

func TestREPLEvaluatesAndPrintsResults(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("(+ 1 2)\n:quit\n")
	r := New(in, &out, eval.MakeGlobalEnvironment())
	r.Start()
	require.Contains(t, out.String(), "3")
}

func TestREPLHandlesMultilineContinuation(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("(+ 1\n   2)\n:quit\n")
	r := New(in, &out, eval.MakeGlobalEnvironment())
	r.Start()
	require.Contains(t, out.String(), "3")
}

func TestNeedsMoreInput(t *testing.T) {
	require.True(t, needsMoreInput("(+ 1"))
	require.False(t, needsMoreInput("(+ 1 2)"))
}
