package calc

import (
	"strconv"
	"strings"
)

// Item is a node in an expression tree: an operand, an operator, or a
// parenthesized group of items. The zero Item is invalid.
type Item struct {
	kind ItemKind

	val float32
	op  Operator

	// items is owned by the Item. It is never modified after construction.
	items []Item
}

// ItemKind identifies the variant of an Item.
type ItemKind int8

const (
	itemNone ItemKind = iota

	OperandItem  // literal number
	OperatorItem // binary operator
	GroupItem    // parenthesized sequence of items
)

func (k ItemKind) String() string {
	switch k {
	case itemNone:
		return "None"
	case OperandItem:
		return "Operand"
	case OperatorItem:
		return "Operator"
	case GroupItem:
		return "Group"
	default:
		return "ItemKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operand creates an operand item.
func Operand(v float32) Item {
	return Item{kind: OperandItem, val: v}
}

// Op creates an operator item. Panics if op is not one of the Operator
// constants.
func Op(op Operator) Item {
	op.Rune()
	return Item{kind: OperatorItem, op: op}
}

// Group creates a group item holding a copy of items. Group does not check
// that operands and operators alternate; the parser never builds a group
// where they don't, but evaluating a hand-built one can fail.
func Group(items ...Item) Item {
	return Item{kind: GroupItem, items: append([]Item(nil), items...)}
}

// Kind returns the variant of the item.
func (it Item) Kind() ItemKind {
	return it.kind
}

// Value returns the value of an operand item. ok is false for other kinds.
func (it Item) Value() (v float32, ok bool) {
	return it.val, it.kind == OperandItem
}

// Operator returns the operator of an operator item. ok is false for other
// kinds.
func (it Item) Operator() (op Operator, ok bool) {
	return it.op, it.kind == OperatorItem
}

// Items returns a copy of the children of a group item. The result is nil
// for other kinds.
func (it Item) Items() []Item {
	if it.kind != GroupItem {
		return nil
	}
	return append([]Item(nil), it.items...)
}

// Len returns the number of children of a group item, or 0 for other kinds.
func (it Item) Len() int {
	return len(it.items)
}

// Equal reports whether two trees have the same shape and values.
func (it Item) Equal(other Item) bool {
	if it.kind != other.kind {
		return false
	}
	switch it.kind {
	case OperandItem:
		return it.val == other.val
	case OperatorItem:
		return it.op == other.op
	case GroupItem:
		if len(it.items) != len(other.items) {
			return false
		}
		for i := range it.items {
			if !it.items[i].Equal(other.items[i]) {
				return false
			}
		}
	}
	return true
}

func (it Item) String() string {
	var b strings.Builder
	it.fmt(&b)
	return b.String()
}

func (it Item) fmt(b *strings.Builder) {
	switch it.kind {
	case itemNone:
		// Invalid items use invalid characters.
		b.WriteByte('$')
	case OperandItem:
		b.WriteString(formatFloat(it.val))
	case OperatorItem:
		b.WriteRune(it.op.Rune())
	case GroupItem:
		b.WriteByte('(')
		fmtitems(b, it.items)
		b.WriteByte(')')
	default:
		panic("calc: invalid item kind " + it.kind.String() + " after writing " + b.String())
	}
}

func fmtitems(b *strings.Builder, items []Item) {
	for _, c := range items {
		c.fmt(b)
	}
}

// formatFloat renders v as the shortest decimal that parses back to v.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
