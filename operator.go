package calc

import (
	"strconv"
	"strings"
)

// Operator is one of the six binary arithmetic operators.
type Operator int8

const (
	opNone Operator = iota

	Add       // +
	Subtract  // -
	Multiply  // *
	Divide    // /
	Power     // ^
	Remainder // %
)

// Operators contains the runes which are considered to be operators, in the
// order of the Operator constants.
const Operators = "+-*/^%"

// ParseOperator gets the operator for a rune. If r is not in Operators, the
// result is false.
func ParseOperator(r rune) (Operator, bool) {
	k := strings.IndexRune(Operators, r)
	if k < 0 {
		return opNone, false
	}
	return Operator(k + 1), true
}

// Rune returns the source character of the operator.
func (op Operator) Rune() rune {
	if op <= opNone || int(op) > len(Operators) {
		panic("calc: invalid operator " + strconv.Itoa(int(op)))
	}
	return rune(Operators[op-1])
}

func (op Operator) String() string {
	if op <= opNone || int(op) > len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// Tier returns the precedence tier of the operator. Tiers are reduced in
// increasing order: 0 is ^, 1 is * / %, and 2 is + -.
func (op Operator) Tier() int {
	switch op {
	case Power:
		return 0
	case Multiply, Divide, Remainder:
		return 1
	case Add, Subtract:
		return 2
	default:
		panic("calc: invalid operator " + op.String())
	}
}

// tiers is the number of precedence tiers.
const tiers = 3
