// Package repl implements the interactive read-eval-print loop: a local,
// terminal-driven loop and a network-facing Server built on the same
// evaluation core. Both share one responsibility — read a form, evaluate
// it against a live environment, print the result.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wisp-lang/wisp/pkg/eval"
	"github.com/wisp-lang/wisp/pkg/printer"
	"github.com/wisp-lang/wisp/pkg/reader"
	"github.com/wisp-lang/wisp/pkg/value"
)

const prompt = "wisp> "
const continuationPrompt = "  ... "

// REPL is a terminal-driven read-eval-print loop over a single, persistent
// global environment.
type REPL struct {
	scanner *bufio.Scanner
	output  io.Writer
	env     *value.Environment
}

// New creates a REPL reading from input and writing to output, evaluating
// against env.
func New(input io.Reader, output io.Writer, env *value.Environment) *REPL {
	return &REPL{
		scanner: bufio.NewScanner(input),
		output:  output,
		env:     env,
	}
}

// Start runs the loop until input is exhausted or a :quit command is seen.
func (r *REPL) Start() {
	fmt.Fprintln(r.output, "wisp — a small Scheme. :quit to exit.")

	for {
		fmt.Fprint(r.output, prompt)
		if !r.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if r.handleCommand(line) {
				break
			}
			continue
		}

		input := line
		for needsMoreInput(input) {
			fmt.Fprint(r.output, continuationPrompt)
			if !r.scanner.Scan() {
				break
			}
			next := r.scanner.Text()
			if strings.TrimSpace(next) == "" {
				break
			}
			input += "\n" + next
		}

		r.evalAndPrint(input)
	}

	fmt.Fprintln(r.output, "\ngoodbye")
}

// handleCommand handles a ":"-prefixed meta-command, reporting whether the
// loop should stop.
func (r *REPL) handleCommand(line string) (quit bool) {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":env":
		fmt.Fprintln(r.output, "(global environment — bindings not individually listed)")
	default:
		fmt.Fprintf(r.output, "unknown command: %s\n", line)
	}
	return false
}

// needsMoreInput reports whether input has unbalanced parens, the only
// continuation condition this language's syntax can produce.
func needsMoreInput(input string) bool {
	open := strings.Count(input, "(")
	close_ := strings.Count(input, ")")
	return open > close_
}

func (r *REPL) evalAndPrint(input string) {
	forms, err := reader.ReadAll("repl", strings.NewReader(input))
	if err != nil {
		fmt.Fprintf(r.output, "parse error: %v\n", err)
		return
	}
	for _, form := range forms {
		result, err := eval.Evaluate(form, r.env)
		if err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
			return
		}
		fmt.Fprintln(r.output, printer.Write(result))
	}
}

// RunFile evaluates every top-level form in src against env in order,
// returning the first error encountered, if any.
func RunFile(src string, env *value.Environment) error {
	forms, err := reader.ReadAll("file", strings.NewReader(src))
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := eval.Evaluate(form, env); err != nil {
			return err
		}
	}
	return nil
}
