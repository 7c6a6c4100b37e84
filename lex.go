package rpncalc

import (
	"errors"
	"strconv"
	"strings"
)

// lexer holds the lexical state threaded through the scan of one expression.
// Together the flags encode whether the scan is awaiting an operand, inside a
// number literal, or awaiting an operator.
type lexer struct {
	// expectOperand is true when the next meaningful rune must begin a
	// number, be a unary minus, or be an open parenthesis, and false when an
	// operator or close parenthesis is expected.
	expectOperand bool
	// inDecimal is true once the current number has a decimal point.
	inDecimal bool
	// inNegative is true once the current number has a leading minus.
	inNegative bool
	// num accumulates the text of the current number.
	num strings.Builder
	// start is the column of the first rune of the current number.
	start int
	// col is the column of the rune being scanned, counting from 1.
	col int
}

func lex() *lexer {
	return &lexer{expectOperand: true}
}

// mark records the start of the current number if it has not begun yet.
func (l *lexer) mark() {
	if l.num.Len() == 0 {
		l.start = l.col
	}
}

// digit appends a digit to the current number.
func (l *lexer) digit(r rune) {
	l.mark()
	l.num.WriteRune(r)
}

// point appends a decimal point to the current number.
func (l *lexer) point() error {
	if l.inDecimal {
		return &PointError{Col: l.col, Text: l.num.String() + "."}
	}
	l.mark()
	l.inDecimal = true
	l.num.WriteByte('.')
	return nil
}

// negate applies a unary minus to the current number.
func (l *lexer) negate() error {
	if l.inNegative {
		return &SignError{Col: l.col}
	}
	l.mark()
	l.inNegative = true
	l.num.WriteByte('-')
	return nil
}

// pending reports whether the current number has anything other than a sign.
func (l *lexer) pending() bool {
	return l.num.Len() > 0 && l.num.String() != "-"
}

// take parses the current number and resets the number state. The scan then
// expects an operator.
func (l *lexer) take() (float64, error) {
	text := l.num.String()
	if !l.expectOperand {
		return 0, &DigitError{Col: l.start, Text: text}
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Huge literals parse to ±Inf with ErrRange, which is the value we
		// want. Anything else is a literal without digits, like "." or "-.".
		if !errors.Is(err, strconv.ErrRange) {
			return 0, &PointError{Col: l.start, Text: text}
		}
	}
	l.num.Reset()
	l.inDecimal = false
	l.inNegative = false
	l.expectOperand = false
	return x, nil
}
