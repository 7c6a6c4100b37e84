package rpncalc

import (
	"strconv"
)

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption(*Calculator)
}

type (
	assocopt []Op
	decopt   int
)

// RightAssoc makes the given operators group right to left, so that with
// RightAssoc(OpPow), "2^3^2" is "2^(3^2)". Panics if any op is not a known
// operator.
func RightAssoc(ops ...Op) Option {
	for _, op := range ops {
		if !op.Valid() {
			panic("rpncalc: cannot make " + strconv.QuoteRune(rune(op)) + " right-associative")
		}
	}
	return assocopt(append([]Op(nil), ops...))
}

func (o assocopt) calcOption(c *Calculator) {
	for _, op := range o {
		e := c.ops[op]
		e.right = true
		c.ops[op] = e
	}
}

// Decimals sets the number of fractional digits results are rounded to before
// trailing zeros are trimmed. A negative count formats the shortest
// representation that reads back as the same number.
func Decimals(n int) Option {
	return decopt(n)
}

func (o decopt) calcOption(c *Calculator) {
	c.f.Decimals = int(o)
}
