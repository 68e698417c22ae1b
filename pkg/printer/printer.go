// Package printer renders value.Value trees to their standard written
// form, kept external to the evaluator core. Compound procedures render as
// "(compound-procedure parameters body <procedure-env>)" without dumping
// the captured environment; every other value prints in standard written
// form.
package printer

import (
	"strconv"
	"strings"

	"github.com/wisp-lang/wisp/pkg/value"
)

// Write renders v in standard written form.
func Write(v *value.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v *value.Value) {
	if v == nil {
		b.WriteString("#[nil]")
		return
	}
	switch v.Kind {
	case value.KindNumber:
		writeNumber(b, v.Number)
	case value.KindString:
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
	case value.KindSymbol:
		b.WriteString(string(v.Sym))
	case value.KindBoolean:
		if v.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case value.KindEmptyList:
		b.WriteString("()")
	case value.KindPair:
		writePair(b, v)
	case value.KindCompound:
		writeCompound(b, v)
	case value.KindPrimitive:
		b.WriteString("#[compiled-procedure ")
		b.WriteString(string(v.Primitive.Name))
		b.WriteByte(']')
	default:
		b.WriteString("#[unknown]")
	}
}

func writeNumber(b *strings.Builder, n float64) {
	if n == float64(int64(n)) {
		b.WriteString(strconv.FormatInt(int64(n), 10))
		return
	}
	b.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
}

func writePair(b *strings.Builder, v *value.Value) {
	b.WriteByte('(')
	write(b, v.Pair.First)
	rest := v.Pair.Rest
	for rest.IsPair() {
		b.WriteByte(' ')
		write(b, rest.Pair.First)
		rest = rest.Pair.Rest
	}
	if !rest.IsEmptyList() {
		b.WriteString(" . ")
		write(b, rest)
	}
	b.WriteByte(')')
}

// writeCompound renders a closure without dumping its captured environment.
func writeCompound(b *strings.Builder, v *value.Value) {
	b.WriteString("(compound-procedure (")
	for i, p := range v.Compound.Parameters {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(p))
	}
	b.WriteString(") (")
	for i, expr := range v.Compound.Body {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, expr)
	}
	b.WriteString(") <procedure-env>)")
}
