package rpncalc_test

import (
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func FuzzCalculate(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-(2)^-0.5")
	f.Add("((1)")
	f.Add("1.2.3")
	f.Add("--5")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := rpncalc.Calculate(s)
		if err != nil && rpncalc.KindOf(err) == rpncalc.KindNone {
			t.Errorf("%q: unclassified error %v", s, err)
		}
		if err == nil && r == "" {
			t.Errorf("%q: empty result", s)
		}
	})
}
