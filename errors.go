package rpncalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the errors that evaluating an expression can produce.
type ErrorKind int8

const (
	// KindNone is the classification of nil and of errors from outside this
	// package.
	KindNone ErrorKind = iota
	// KindParentheses is an unmatched or misplaced parenthesis.
	KindParentheses
	// KindOperator is an operator where an operand was expected.
	KindOperator
	// KindDigit is a number where an operator was expected.
	KindDigit
	// KindNegativeSign is a second unary minus on one number.
	KindNegativeSign
	// KindFloatingPoint is a second decimal point in one number, or a number
	// with no digits.
	KindFloatingPoint
	// KindToken is an unrecognized character.
	KindToken
	// KindDivisionByZero is a division whose divisor is zero.
	KindDivisionByZero
	// KindEmptyExpression is an input containing no tokens.
	KindEmptyExpression
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindParentheses:
		return "Parentheses"
	case KindOperator:
		return "Operator"
	case KindDigit:
		return "Digit"
	case KindNegativeSign:
		return "NegativeSign"
	case KindFloatingPoint:
		return "FloatingPoint"
	case KindToken:
		return "Token"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindEmptyExpression:
		return "EmptyExpression"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// BracketError is an error indicating a closing parenthesis with no matching
// open parenthesis, an open parenthesis that is never closed, or an open
// parenthesis directly after an operand. It implements InputError.
type BracketError struct {
	// Col is the position of the parenthesis.
	Col int
	// Bracket is the offending parenthesis.
	Bracket string
	// Misplaced indicates an open parenthesis where an operator was expected.
	Misplaced bool
}

func (err *BracketError) Error() string {
	switch {
	case err.Misplaced:
		return errpos(err.Col, "unexpected "+err.Bracket+" after operand")
	case err.Bracket == "(":
		return errpos(err.Col, "mismatched parentheses: ( with no close parenthesis")
	default:
		return errpos(err.Col, "mismatched parentheses: ) with no open parenthesis")
	}
}

func (err *BracketError) Pos() int        { return err.Col }
func (err *BracketError) Kind() ErrorKind { return KindParentheses }

// OperatorError is an error indicating an operator where an operand was
// expected: at the start of an expression, after another operator, or at the
// end. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the unexpected operator.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unexpected operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int        { return err.Col }
func (err *OperatorError) Kind() ErrorKind { return KindOperator }

// DigitError is an error indicating a number where an operator was expected,
// i.e. two numbers with no operator between them. It implements InputError.
type DigitError struct {
	// Col is the position of the start of the number.
	Col int
	// Text is the number.
	Text string
}

func (err *DigitError) Error() string {
	return errpos(err.Col, "unexpected number "+err.Text+", expected an operator")
}

func (err *DigitError) Pos() int        { return err.Col }
func (err *DigitError) Kind() ErrorKind { return KindDigit }

// SignError is an error indicating a second unary minus applied to the same
// number. It implements InputError.
type SignError struct {
	// Col is the position of the second minus.
	Col int
}

func (err *SignError) Error() string {
	return errpos(err.Col, "repeated negative sign")
}

func (err *SignError) Pos() int        { return err.Col }
func (err *SignError) Kind() ErrorKind { return KindNegativeSign }

// PointError is an error indicating a second decimal point in a number, or a
// number with no digits. It implements InputError.
type PointError struct {
	// Col is the position of the offending decimal point.
	Col int
	// Text is the number scanned so far, including the offending point.
	Text string
}

func (err *PointError) Error() string {
	return errpos(err.Col, "invalid decimal point in number "+strconv.Quote(err.Text))
}

func (err *PointError) Pos() int        { return err.Col }
func (err *PointError) Kind() ErrorKind { return KindFloatingPoint }

// TokenError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type TokenError struct {
	// Col is the position of the character.
	Col int
	// Rune is the character.
	Rune rune
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.QuoteRune(err.Rune))
}

func (err *TokenError) Pos() int        { return err.Col }
func (err *TokenError) Kind() ErrorKind { return KindToken }

// DivisionError is an error indicating division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the index of the dividing operator in the RPN sequence, counting
	// from 1.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.X, 'g', -1, 64) + "/0"
}

func (err *DivisionError) Pos() int        { return err.Col }
func (err *DivisionError) Kind() ErrorKind { return KindDivisionByZero }

// EmptyExpressionError is an error indicating that an expression contains no
// tokens. It is not a user-facing failure; callers that print results should
// print nothing for it.
type EmptyExpressionError struct {
	// Col is the number of runes in the input plus one.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int        { return err.Col }
func (err *EmptyExpressionError) Kind() ErrorKind { return KindEmptyExpression }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information and a classification.
// Every error resulting from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
	// Kind classifies the error.
	Kind() ErrorKind
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DigitError)(nil)
	_ InputError = (*SignError)(nil)
	_ InputError = (*PointError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// KindOf classifies err. The result is KindNone if err is nil or does not wrap
// an InputError.
func KindOf(err error) ErrorKind {
	var ie InputError
	if errors.As(err, &ie) {
		return ie.Kind()
	}
	return KindNone
}

// IsEmpty returns whether err indicates an expression with no tokens.
func IsEmpty(err error) bool {
	return KindOf(err) == KindEmptyExpression
}
