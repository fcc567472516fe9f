package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperator(t *testing.T) {
	want := []Operator{Add, Subtract, Multiply, Divide, Power, Remainder}
	for i, r := range Operators {
		op, ok := ParseOperator(r)
		if !ok {
			t.Errorf("no operator for %c", r)
			continue
		}
		assert.Equal(t, want[i], op)
		assert.Equal(t, r, op.Rune())
		assert.Equal(t, string(r), op.String())
	}
	for _, r := range " ()0.x×÷" {
		_, ok := ParseOperator(r)
		assert.False(t, ok, "%q parsed as an operator", r)
	}
}

func TestOperatorTiers(t *testing.T) {
	cases := []struct {
		op   Operator
		tier int
	}{
		{Power, 0},
		{Multiply, 1},
		{Divide, 1},
		{Remainder, 1},
		{Add, 2},
		{Subtract, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.tier, c.op.Tier(), "tier of %v", c.op)
		assert.Less(t, c.op.Tier(), tiers)
	}
	assert.Panics(t, func() { opNone.Tier() })
}

func TestInvalidOperator(t *testing.T) {
	assert.Equal(t, "Operator(0)", opNone.String())
	assert.Equal(t, "Operator(7)", Operator(7).String())
	assert.Panics(t, func() { Operator(7).Rune() })
	assert.Panics(t, func() { Op(opNone) })
}
