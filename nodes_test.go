package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemString(t *testing.T) {
	cases := []struct {
		name string
		it   Item
		want string
	}{
		{"int", Operand(1), "1"},
		{"frac", Operand(1.5), "1.5"},
		{"neg", Operand(-0.25), "-0.25"},
		{"tenth", Operand(0.1), "0.1"},
		{"negzero", Operand(float32(negzero())), "-0"},
		{"op", Op(Power), "^"},
		{"empty", Group(), "()"},
		{"group", Group(Operand(1), Op(Add), Group(Operand(2), Op(Remainder), Operand(-3))), "(1+(2%-3))"},
		{"invalid", Item{}, "$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.it.String())
		})
	}
}

func TestItemAccessors(t *testing.T) {
	v, ok := Operand(2).Value()
	assert.True(t, ok)
	assert.Equal(t, float32(2), v)
	_, ok = Op(Add).Value()
	assert.False(t, ok)

	op, ok := Op(Divide).Operator()
	assert.True(t, ok)
	assert.Equal(t, Divide, op)
	_, ok = Group().Operator()
	assert.False(t, ok)

	assert.Equal(t, OperandItem, Operand(0).Kind())
	assert.Equal(t, OperatorItem, Op(Add).Kind())
	assert.Equal(t, GroupItem, Group().Kind())
	assert.Equal(t, "Group", GroupItem.String())
	assert.Nil(t, Operand(1).Items())
}

func TestGroupOwnsItems(t *testing.T) {
	src := []Item{Operand(1), Op(Add), Operand(2)}
	g := Group(src...)
	src[0] = Operand(5)
	assert.Equal(t, "(1+2)", g.String())

	items := g.Items()
	items[2] = Operand(7)
	assert.Equal(t, "(1+2)", g.String())
	assert.Equal(t, 3, g.Len())
}

func TestItemEqual(t *testing.T) {
	a := Group(Operand(1), Op(Add), Group(Operand(2)))
	assert.True(t, a.Equal(Group(Operand(1), Op(Add), Group(Operand(2)))))
	assert.False(t, a.Equal(Group(Operand(1), Op(Subtract), Group(Operand(2)))))
	assert.False(t, a.Equal(Group(Operand(1), Op(Add), Operand(2))))
	assert.False(t, a.Equal(Group(Operand(1), Op(Add))))
	assert.False(t, Group().Equal(Operand(0)))
	assert.True(t, Group().Equal(Group()))
	assert.True(t, Operand(0).Equal(Operand(float32(negzero()))))
}
