// Package reader turns source text into the *value.Value trees the
// evaluator core consumes. The language is homoiconic, so reading is the
// only place a textual grammar exists at all — once a Datum becomes a
// *value.Value it is indistinguishable from any other expression the
// evaluator builds at runtime.
package reader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/wisp-lang/wisp/pkg/syntax"
	"github.com/wisp-lang/wisp/pkg/value"
)

var schemeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Comment", `;[^\n]*`},
	{"String", `"(\\"|[^"])*"`},
	{"Number", `[-+]?\d+(\.\d+)?`},
	{"Bool", `#t|#f`},
	{"Quote", `'`},
	{"LParen", `\(`},
	{"RParen", `\)`},
	{"Symbol", `[a-zA-Z!$%&*/:<=>?^_~+\-][a-zA-Z0-9!$%&*/:<=>?^_~+\-]*`},
	{"whitespace", `[ \t\r\n]+`},
})

// Datum is the single recursive grammar node: an atom or a parenthesized
// list of datums, optionally prefixed by the quote shorthand.
type Datum struct {
	Quoted *Datum `  "'" @@`
	List   *List  `| @@`
	Atom   *Atom  `| @@`
}

type List struct {
	Elements []*Datum `"(" @@* ")"`
}

type Atom struct {
	Number *string `  @Number`
	String *string `| @String`
	Bool   *string `| @Bool`
	Symbol *string `| @Symbol`
}

// Program is the root: zero or more top-level datums, e.g. a whole file.
type Program struct {
	Datums []*Datum `@@*`
}

var datumParser = participle.MustBuild[Program](
	participle.Lexer(schemeLexer),
	participle.Unquote("String"),
	participle.Elide("whitespace", "Comment"),
)

// ReadAll parses every top-level datum in r and converts each to a
// *value.Value, in source order.
func ReadAll(filename string, r io.Reader) ([]*value.Value, error) {
	program, err := datumParser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	values := make([]*value.Value, len(program.Datums))
	for i, d := range program.Datums {
		values[i] = convert(d)
	}
	return values, nil
}

// Read parses the single expression in src and converts it to a
// *value.Value. It is an error for src to contain anything other than
// exactly one top-level datum.
func Read(src string) (*value.Value, error) {
	program, err := datumParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	if len(program.Datums) != 1 {
		return nil, fmt.Errorf("reader: expected exactly one expression, got %d", len(program.Datums))
	}
	return convert(program.Datums[0]), nil
}

func convert(d *Datum) *value.Value {
	switch {
	case d.Quoted != nil:
		return value.List(value.NewSymbol(syntax.Quote), convert(d.Quoted))
	case d.List != nil:
		return convertList(d.List.Elements)
	case d.Atom != nil:
		return convertAtom(d.Atom)
	default:
		return value.EmptyList()
	}
}

func convertList(elements []*Datum) *value.Value {
	result := value.EmptyList()
	for i := len(elements) - 1; i >= 0; i-- {
		result = value.Cons(convert(elements[i]), result)
	}
	return result
}

func convertAtom(a *Atom) *value.Value {
	switch {
	case a.Number != nil:
		n, _ := strconv.ParseFloat(*a.Number, 64)
		return value.NewNumber(n)
	case a.String != nil:
		return value.NewString(*a.String)
	case a.Bool != nil:
		return value.Bool(*a.Bool == "#t")
	case a.Symbol != nil:
		return value.NewSymbol(value.Symbol(strings.ToLower(*a.Symbol)))
	default:
		return value.EmptyList()
	}
}
