package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = Term { Operator Term }
// Term = Number | '(' Expr ')'
// Number = [ '+' | '-' ] { digit } [ '.' ] { digit }   (at least one digit)
// Operator = '+' | '-' | '*' | '/' | '^' | '%'

// Expr is a parsed expression. Its root is the implicit group around the
// whole input.
type Expr struct {
	root Item
}

// position is what the parser expects next in a sequence of items.
type position int8

const (
	// expectOperand is the position at the start of a sequence and after an
	// operator.
	expectOperand position = iota
	// expectOperator is the position after an operand or group.
	expectOperator
)

// after returns the position following an item.
func after(it Item) position {
	if it.kind == OperatorItem {
		return expectOperand
	}
	return expectOperator
}

// Parse parses an expression. The given options are applied in order.
//
// Without options, Parse reads src to EOF. If src returns an error other
// than io.EOF, Parse returns that error.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src)
	scan.wseof = p.wseof
	items, err := parseitems(scan, false)
	if scan.err != nil {
		return nil, scan.err
	}
	if err != nil {
		return nil, err
	}
	return &Expr{root: Item{kind: GroupItem, items: items}}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseitems parses a sequence of items. If nested is true, the sequence is
// the content of a group whose open parenthesis has been consumed, and
// parseitems consumes the closing parenthesis.
func parseitems(scan *scanner, nested bool) ([]Item, error) {
	var items []Item
	pos := expectOperand
	for {
		scan.skipSpace(pos == expectOperator)
		r, ok := scan.peek()
		if !ok {
			break
		}
		if nested && r == ')' {
			if pos == expectOperand && len(items) != 0 {
				// (1+)
				return nil, &ParseError{Col: scan.col, Err: ErrExpectedOperand}
			}
			scan.readRune()
			return items, nil
		}
		it, err := parsenext(scan, pos)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		pos = after(it)
	}
	if nested {
		return nil, &ParseError{Col: scan.col, Err: ErrExpectedClosingParentheses}
	}
	if pos == expectOperand {
		// Empty input or trailing operator.
		return nil, &ParseError{Col: scan.col, Err: ErrExpectedOperand}
	}
	return items, nil
}

// parsenext parses the single item expected at pos.
func parsenext(scan *scanner, pos position) (Item, error) {
	col := scan.col
	switch pos {
	case expectOperand:
		text, used := scan.scanNum()
		if text != "" {
			return Operand(parsenum(text)), nil
		}
		// A sign or point that isn't part of a number can't start a group.
		if !used && scan.nextIs('(') {
			items, err := parseitems(scan, true)
			if err != nil {
				return Item{}, err
			}
			return Item{kind: GroupItem, items: items}, nil
		}
		return Item{}, &ParseError{Col: col, Err: ErrExpectedOperand}
	case expectOperator:
		r, ok := scan.nextIf(isOperator)
		if !ok {
			return Item{}, &ParseError{Col: col, Err: ErrExpectedOperator}
		}
		op, _ := ParseOperator(r)
		return Op(op), nil
	default:
		panic("calc: invalid parser position " + strconv.Itoa(int(pos)))
	}
}

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// parsenum converts the text of a number literal. Literals beyond the range
// of float32 become infinities.
func parsenum(text string) float32 {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: invalid number: " + text + " (" + err.Error() + ")")
	}
	return float32(f)
}

// Root returns the implicit group around the whole expression.
func (e *Expr) Root() Item {
	return e.root
}

// Items returns a copy of the top-level items of the expression.
func (e *Expr) Items() []Item {
	return e.root.Items()
}

// String renders the expression without the implicit outer parentheses, so
// that parsing the result gives the same tree.
func (e *Expr) String() string {
	var b strings.Builder
	fmtitems(&b, e.root.items)
	return b.String()
}
