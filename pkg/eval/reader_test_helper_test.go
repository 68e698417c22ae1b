package eval

import (
	"testing"

	"github.com/wisp-lang/wisp/pkg/reader"
	"github.com/wisp-lang/wisp/pkg/value"
)

func mustParse(t *testing.T, src string) *value.Value {
	t.Helper()
	v, err := reader.Read(src)
	if err != nil {
		t.Fatalf("reader.Read(%q): %v", src, err)
	}
	return v
}
