package rpncalc

import (
	"math"
	"strconv"
	"strings"
)

// Op is a binary operator symbol.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

// Operators contains the symbols which are considered to be operators.
const Operators = "+-*/^"

// Valid returns whether op is one of the known operators.
func (op Op) Valid() bool {
	return op != 0 && strings.IndexByte(Operators, byte(op)) >= 0
}

func (op Op) String() string {
	return string(rune(op))
}

// apply computes a op b. The only error is division by zero.
func (op Op) apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, &DivisionError{X: a}
		}
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		panic("rpncalc: unknown operator " + strconv.QuoteRune(rune(op)))
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// yields reports whether an operator p already on the stack must be emitted
// before the incoming operator in is pushed.
func (p operator) yields(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// opTable maps operator symbols to precedence entries. Tables are never
// modified once a Calculator holds them.
type opTable map[Op]operator

// defaultOps is the table used by the package-level functions. Every operator
// is left-associative, including ^.
var defaultOps = opTable{
	OpAdd: {prec: 1},
	OpSub: {prec: 1},
	OpMul: {prec: 2},
	OpDiv: {prec: 2},
	OpPow: {prec: 3},
}

func (t opTable) clone() opTable {
	n := make(opTable, len(t))
	for k, v := range t {
		n[k] = v
	}
	return n
}
