package rpncalc

import (
	"strconv"
	"strings"
)

// Token is a single element of an RPN sequence. It is either a number or an
// operator, as indicated by Kind.
type Token struct {
	// Kind selects which of Num and Op is meaningful.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num float64
	// Op is the operator of a TokenOp.
	Op Op
}

// TokenKind discriminates the cases of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a number token.
func Num(x float64) Token {
	return Token{Kind: TokenNum, Num: x}
}

// Oper creates an operator token. Panics if op is not a known operator.
func Oper(op Op) Token {
	if !op.Valid() {
		panic("rpncalc: invalid operator " + strconv.QuoteRune(rune(op)))
	}
	return Token{Kind: TokenOp, Op: op}
}

func (t Token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t Token) fmt(b *strings.Builder) {
	switch t.Kind {
	case TokenNum:
		b.WriteString(strconv.FormatFloat(t.Num, 'g', -1, 64))
	case TokenOp:
		b.WriteByte(byte(t.Op))
	default:
		// Invalid tokens use invalid characters.
		b.WriteString("$" + t.Kind.String() + "$")
	}
}

// RPN is a sequence of tokens in Reverse Polish Notation: every operator
// follows both of its operands.
type RPN []Token

// String formats the sequence with tokens separated by spaces, e.g. "1 2 +".
func (r RPN) String() string {
	var b strings.Builder
	for i, t := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmt(&b)
	}
	return b.String()
}
