package calc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("(1+2)*-3")
	f.Add("2^3^2")
	f.Add("()")
	f.Add(".5%5.")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := calc.ParseString(s)
		if err != nil {
			return
		}
		r := a.String()
		if strings.Contains(r, "Inf") {
			// Out of range literals don't render as numbers.
			return
		}
		b, err := calc.ParseString(r)
		if err != nil {
			t.Fatalf("rendering %q of %q doesn't parse: %v", r, s, err)
		}
		if !a.Root().Equal(b.Root()) {
			t.Errorf("%q rendered as %q parses differently: %v", s, r, b)
		}
	})
}
