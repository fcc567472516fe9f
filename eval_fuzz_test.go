package calc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("1/0")
	f.Add("2^128")
	f.Add("((1)+(2))%3")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.EvalString(s)
		if err != nil {
			return
		}
		if math.IsNaN(float64(r)) || math.IsInf(float64(r), 0) {
			t.Errorf("%q evaluated to %g without error", s, r)
		}
	})
}
