// Package calc implements a single-precision calculator that refuses to
// produce IEEE-754 sentinel values.
//
// Expressions are operands and the binary operators + - * / ^ %, with any
// nesting of parentheses. "-2^2" is (-2)^2, since a sign directly before a
// digit belongs to the number. Precedence is ^ first, then * / %, then + -,
// and every tier associates to the left, so "2^3^2" is 64.
//
// Instead of returning NaN, infinities, or results pinned at the largest
// finite float32, evaluation fails with a MathError.
//
package calc
