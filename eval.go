package rpncalc

import (
	"strconv"
)

// machine is the evaluation stack for one RPN sequence.
type machine struct {
	stack []float64
}

func (m *machine) push(x float64) {
	m.stack = append(m.stack, x)
}

// pop removes the top from the stack and returns it. Panics on underflow,
// which only a hand-built sequence can cause.
func (m *machine) pop() float64 {
	if len(m.stack) == 0 {
		panic("rpncalc: stack underflow (bad RPN?)")
	}
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// result returns the sole value left on the stack.
func (m *machine) result() float64 {
	if len(m.stack) != 1 {
		panic("rpncalc: inconsistent stack: " + strconv.Itoa(len(m.stack)) + " items (bad RPN?)")
	}
	return m.stack[0]
}

// Eval evaluates an RPN sequence. The only possible error is a
// *DivisionError. rpn must be well-formed, as produced by Convert; Eval panics
// if the sequence leaves the stack with other than one value.
func Eval(rpn RPN) (float64, error) {
	m := machine{stack: make([]float64, 0, len(rpn)/2+1)}
	for i, t := range rpn {
		switch t.Kind {
		case TokenNum:
			m.push(t.Num)
		case TokenOp:
			b := m.pop()
			a := m.pop()
			r, err := t.Op.apply(a, b)
			if err != nil {
				if de, ok := err.(*DivisionError); ok {
					de.Col = i + 1
				}
				return 0, err
			}
			m.push(r)
		default:
			panic("rpncalc: invalid token " + t.String())
		}
	}
	return m.result(), nil
}
