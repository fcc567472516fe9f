package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// MathError is an error returned when an arithmetic operation produces a
// value that the calculator refuses to return.
type MathError int8

const (
	mathOK MathError = iota

	DivisionBy0      // divisor is zero, of either sign
	Overflow         // result is the largest finite float32
	Underflow        // result is the most negative finite float32
	Infinity         // result is +Inf
	NegativeInfinity // result is -Inf
	NaN              // result is not a number
)

func (err MathError) Error() string {
	switch err {
	case DivisionBy0:
		return "division by zero"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case Infinity:
		return "result is infinite"
	case NegativeInfinity:
		return "result is negative infinity"
	case NaN:
		return "result is not a number"
	default:
		return "MathError(" + strconv.Itoa(int(err)) + ")"
	}
}

// Check classifies a computed value. The result is nil if v is an ordinary
// value and a MathError otherwise.
//
// Overflow and Underflow are reported by exact comparison with the finite
// extremes of float32. A sum that passes math.MaxFloat32 by less than half
// an ulp rounds back to it. A computation that legitimately produces exactly
// ±math.MaxFloat32 is reported the same way.
func Check(v float32) error {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return Infinity
	case math.IsInf(f, -1):
		return NegativeInfinity
	case v == math.MaxFloat32:
		return Overflow
	case v == -math.MaxFloat32:
		return Underflow
	}
	return nil
}

// Apply computes left op right and classifies the result with Check. Division
// by a zero of either sign is DivisionBy0 before anything is computed.
func (op Operator) Apply(left, right float32) (float32, error) {
	var r float32
	switch op {
	case Add:
		r = left + right
	case Subtract:
		r = left - right
	case Multiply:
		r = left * right
	case Divide:
		if right == 0 {
			return 0, DivisionBy0
		}
		r = left / right
	case Remainder:
		r = float32(math.Mod(float64(left), float64(right)))
	case Power:
		r = pow(left, right)
	default:
		panic("calc: invalid operator " + op.String())
	}
	if err := Check(r); err != nil {
		return 0, err
	}
	return r, nil
}

// powprec is the precision in bits of the intermediate power computation.
const powprec = 64

// powrange bounds |y log2(x)| for the extended-precision power. Beyond it,
// the float32 result is certainly zero or infinite.
const powrange = 256

// pow computes x^y rounded once to float32. Positive bases go through an
// extended-precision exp(y ln x); everything else, including negative bases
// with integer exponents, uses math.Pow.
func pow(x, y float32) float32 {
	if x <= 0 || y == 0 || x == 1 {
		return float32(math.Pow(float64(x), float64(y)))
	}
	if e := float64(y) * math.Log2(float64(x)); math.Abs(e) > powrange {
		return float32(math.Pow(float64(x), float64(y)))
	}
	l := new(big.Float).SetPrec(powprec).SetFloat64(float64(x))
	r := new(big.Float).SetPrec(powprec).SetFloat64(float64(y))
	bigfloat.Pow(l, l, r)
	v, _ := l.Float32()
	return v
}
