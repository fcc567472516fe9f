package calc

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates an item. Operands evaluate to their values and groups to the
// value of their contents. Evaluating an operator item fails.
//
// The error is an *EvalError if the tree is malformed, an *OpError if an
// operation failed, or an *OperandError if an operand is out of range.
func Eval(it Item) (float32, error) {
	switch it.kind {
	case OperandItem:
		return operand(it.val)
	case GroupItem:
		return evalgroup(it.items)
	default:
		return 0, &EvalError{Err: ErrExpectedOperand}
	}
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float32, error) {
	return Eval(e.root)
}

// EvalReader is a shortcut to parse an expression and return its result.
func EvalReader(src io.RuneScanner, opts ...ParseOption) (float32, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float32, error) {
	return EvalReader(strings.NewReader(src), opts...)
}

// operand checks a literal value. Only infinities are rejected; a literal
// equal to ±math.MaxFloat32 is fine until arithmetic lands on it.
func operand(v float32) (float32, error) {
	if f := float64(v); math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &OperandError{Value: v, Err: Check(v).(MathError)}
	}
	return v, nil
}

// evalgroup evaluates the children of a group. Nested groups are resolved
// first, then each precedence tier is reduced in one left-to-right pass.
func evalgroup(items []Item) (float32, error) {
	flat := make([]Item, len(items))
	for i, it := range items {
		switch it.kind {
		case OperandItem:
			v, err := operand(it.val)
			if err != nil {
				return 0, err
			}
			flat[i] = Operand(v)
		case GroupItem:
			v, err := evalgroup(it.items)
			if err != nil {
				return 0, err
			}
			flat[i] = Operand(v)
		case OperatorItem:
			flat[i] = it
		default:
			return 0, &EvalError{Err: ErrExpectedOperand}
		}
	}
	// Each tier's output is at most as long as its input, so the passes can
	// alternate between two buffers.
	buf := make([]Item, 0, len(flat))
	for tier := 0; tier < tiers; tier++ {
		out, err := reduce(buf[:0], flat, tier)
		if err != nil {
			return 0, err
		}
		flat, buf = out, flat
	}
	switch {
	case len(flat) == 0:
		return 0, &EvalError{Err: ErrExpectedOperand}
	case len(flat) > 1 || flat[0].kind != OperandItem:
		return 0, &EvalError{Err: ErrExpectedOperator}
	}
	return flat[0].val, nil
}

// reduce applies every operator of one tier in a flat sequence of operands
// and operators, appending the survivors to out.
func reduce(out, flat []Item, tier int) ([]Item, error) {
	if len(flat) == 0 || flat[0].kind != OperandItem {
		return nil, &EvalError{Err: ErrExpectedOperand}
	}
	out = append(out, flat[0])
	for i := 1; i < len(flat); i += 2 {
		op, ok := flat[i].Operator()
		if !ok {
			// 1 2
			return nil, &EvalError{Err: ErrExpectedOperator}
		}
		if i+1 >= len(flat) || flat[i+1].kind != OperandItem {
			// 1 + or 1 + +
			return nil, &EvalError{Err: ErrExpectedOperand}
		}
		right := flat[i+1].val
		if op.Tier() != tier {
			out = append(out, flat[i], flat[i+1])
			continue
		}
		left := out[len(out)-1].val
		v, err := op.Apply(left, right)
		if err != nil {
			return nil, &OpError{Left: left, Op: op, Right: right, Err: err.(MathError)}
		}
		out[len(out)-1] = Operand(v)
	}
	return out, nil
}

// EvalError is an error indicating a malformed expression tree found during
// evaluation, such as an empty group.
type EvalError struct {
	// Err is ErrExpectedOperand or ErrExpectedOperator.
	Err error
}

func (err *EvalError) Error() string {
	return "evaluating: " + err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// OpError is an error indicating that an operation produced a value the
// calculator refuses to return. OpError unwraps to its MathError.
type OpError struct {
	// Left and Right are the operands.
	Left, Right float32
	// Op is the operator.
	Op Operator
	// Err is the classification of the result.
	Err MathError
}

func (err *OpError) Error() string {
	return formatFloat(err.Left) + " " + err.Op.String() + " " + formatFloat(err.Right) + ": " + err.Err.Error()
}

func (err *OpError) Unwrap() error {
	return err.Err
}

// OperandError is an error indicating a literal too large for float32, or an
// operand item holding a value that no literal produces.
type OperandError struct {
	// Value is the infinity the literal was rounded to, or NaN.
	Value float32
	// Err is Infinity, NegativeInfinity, or NaN.
	Err MathError
}

func (err *OperandError) Error() string {
	return "operand out of range: " + err.Err.Error()
}

func (err *OperandError) Unwrap() error {
	return err.Err
}
