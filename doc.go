// Package rpncalc implements a floating-point calculator for infix arithmetic.
//
// Expressions are made of decimal numbers, the binary operators + - * / and ^,
// unary minus, parentheses, and whitespace. An expression is first converted
// to Reverse Polish Notation with a shunting-yard scan, then evaluated on a
// stack. Every operator groups left to right by default, so "2^3^2" is
// "(2^3)^2"; RightAssoc changes that for a Calculator.
//
// Failures are reported as typed errors which all implement InputError. An
// expression with no tokens at all produces an *EmptyExpressionError, which
// callers usually treat as "no output" rather than as a failure.
//
package rpncalc
