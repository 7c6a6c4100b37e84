package rpncalc

import (
	"strings"
	"unicode"
)

// openParen marks an open parenthesis on the operator stack.
const openParen Op = '('

// pending is an entry of the operator stack.
type pending struct {
	op  Op
	col int
}

// shunter converts infix tokens to RPN with an operator stack.
type shunter struct {
	ops   opTable
	out   RPN
	stack []pending
}

func (s *shunter) push(op Op, col int) {
	s.stack = append(s.stack, pending{op, col})
}

func (s *shunter) pop() pending {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return p
}

func (s *shunter) top() pending {
	return s.stack[len(s.stack)-1]
}

// emit appends an operator to the output.
func (s *shunter) emit(op Op) {
	s.out = append(s.out, Token{Kind: TokenOp, Op: op})
}

// flush emits the lexer's current number, if it has one.
func (s *shunter) flush(l *lexer) error {
	if !l.pending() {
		return nil
	}
	x, err := l.take()
	if err != nil {
		return err
	}
	s.out = append(s.out, Num(x))
	return nil
}

// dangling returns the error for an expression that ends where an operand is
// expected.
func (s *shunter) dangling(l *lexer) error {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if p := s.stack[i]; p.op != openParen {
			return &OperatorError{Col: p.col, Operator: p.op.String()}
		}
	}
	return &OperatorError{Col: l.col}
}

// operator handles an operator symbol.
func (s *shunter) operator(l *lexer, op Op) error {
	if op == OpSub && l.expectOperand {
		return l.negate()
	}
	if l.expectOperand {
		return &OperatorError{Col: l.col, Operator: op.String()}
	}
	in := s.ops[op]
	for len(s.stack) > 0 {
		p := s.top()
		if p.op == openParen || !s.ops[p.op].yields(in) {
			break
		}
		s.emit(s.pop().op)
	}
	s.push(op, l.col)
	l.expectOperand = true
	return nil
}

// open handles an open parenthesis.
func (s *shunter) open(l *lexer) error {
	if !l.expectOperand {
		return &BracketError{Col: l.col, Bracket: "(", Misplaced: true}
	}
	s.push(openParen, l.col)
	return nil
}

// close handles a close parenthesis. Operators are emitted down to the
// matching open parenthesis. If an operand was still expected, the first of
// them is missing its right operand.
func (s *shunter) close(l *lexer) error {
	var first *pending
	for len(s.stack) > 0 && s.top().op != openParen {
		p := s.pop()
		if first == nil {
			first = &p
		}
		s.emit(p.op)
	}
	if len(s.stack) == 0 {
		return &BracketError{Col: l.col, Bracket: ")"}
	}
	s.pop()
	if l.inNegative {
		return &OperatorError{Col: l.start, Operator: "-"}
	}
	if first != nil && l.expectOperand {
		return &OperatorError{Col: first.col, Operator: first.op.String()}
	}
	return nil
}

// finish flushes the last number and drains the operator stack.
func (s *shunter) finish(l *lexer) (RPN, error) {
	if err := s.flush(l); err != nil {
		return nil, err
	}
	if l.inNegative {
		return nil, &OperatorError{Col: l.start, Operator: "-"}
	}
	if len(s.out) > 0 && l.expectOperand {
		return nil, s.dangling(l)
	}
	for len(s.stack) > 0 {
		p := s.pop()
		if p.op == openParen {
			return nil, &BracketError{Col: p.col, Bracket: "("}
		}
		s.emit(p.op)
	}
	if len(s.out) == 0 {
		return nil, &EmptyExpressionError{Col: l.col}
	}
	return s.out, nil
}

// convert scans src once, left to right, producing its RPN sequence.
func convert(src string, ops opTable) (RPN, error) {
	l := lex()
	s := shunter{ops: ops}
	for _, r := range src {
		l.col++
		var err error
		switch {
		case '0' <= r && r <= '9':
			l.digit(r)
		case r == '.':
			err = l.point()
		default:
			if err = s.flush(l); err != nil {
				break
			}
			switch {
			case strings.ContainsRune(Operators, r):
				err = s.operator(l, Op(r))
			case r == '(':
				err = s.open(l)
			case r == ')':
				err = s.close(l)
			case unicode.IsSpace(r):
				// ignore
			default:
				err = &TokenError{Col: l.col, Rune: r}
			}
		}
		if err != nil {
			return nil, err
		}
	}
	l.col++
	return s.finish(l)
}
