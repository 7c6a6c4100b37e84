package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/zephyrtronium/rpncalc"
)

// session evaluates expressions and prints one line for each.
type session struct {
	calc   *rpncalc.Calculator
	log    *zap.Logger
	out    io.Writer
	prompt string
	echo   bool
}

// eval evaluates one expression and prints its result or error. Empty
// expressions print nothing.
func (s *session) eval(src string) {
	rpn, err := s.calc.Convert(src)
	if rpncalc.IsEmpty(err) {
		return
	}
	if err != nil {
		s.fail(src, err)
		return
	}
	s.log.Debug("converted", zap.String("src", src), zap.Stringer("rpn", rpn))
	if s.echo {
		fmt.Fprintln(s.out, "RPN:", rpn)
	}
	x, err := rpncalc.Eval(rpn)
	if err != nil {
		s.fail(src, err)
		return
	}
	r := s.calc.Format(x)
	s.log.Debug("evaluated", zap.String("src", src), zap.Float64("value", x), zap.String("result", r))
	fmt.Fprintln(s.out, "Result:", r)
}

func (s *session) fail(src string, err error) {
	s.log.Info("expression failed",
		zap.String("src", src),
		zap.Stringer("kind", rpncalc.KindOf(err)),
		zap.Error(err),
	)
	fmt.Fprintln(s.out, "Error:", err)
}

// run reads and evaluates lines until EOF. Lines may be any length. Only read
// errors end the loop.
func (s *session) run(in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		line, err := r.ReadString('\n')
		if line != "" {
			s.eval(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
	return nil
}
