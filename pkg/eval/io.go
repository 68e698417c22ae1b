package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/wisp-lang/wisp/pkg/printer"
	"github.com/wisp-lang/wisp/pkg/value"
)

// Stdout is where the display/newline primitives write. Tests substitute a
// buffer here instead of writing to the process's real stdout.
var Stdout io.Writer = os.Stdout

func displayFn(v *value.Value) {
	fmt.Fprint(Stdout, printer.Write(v))
}

func newlineFn() {
	fmt.Fprintln(Stdout)
}
