package dvrf

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHashToCurve(t *testing.T) {
	c := qt.New(t)

	h := HashToCurve("another generator", []byte("second generator h"))
	c.Assert(h.IsOnCurve(), qt.IsTrue)
	c.Assert(h.IsInfinity(), qt.IsFalse)

	c.Run("deterministic", func(c *qt.C) {
		a := HashToCurve(EvalDomainPrefix, []byte("input"))
		b := HashToCurve(EvalDomainPrefix, []byte("input"))
		c.Assert(a.Equal(&b), qt.IsTrue)
	})

	c.Run("input separation", func(c *qt.C) {
		a := HashToCurve(EvalDomainPrefix, []byte("input a"))
		b := HashToCurve(EvalDomainPrefix, []byte("input b"))
		c.Assert(a.Equal(&b), qt.IsFalse)
	})

	c.Run("domain separation", func(c *qt.C) {
		a := HashToCurve(EvalDomainPrefix, []byte("input"))
		b := HashToCurve("another use site", []byte("input"))
		c.Assert(a.Equal(&b), qt.IsFalse)
	})

	c.Run("empty input", func(c *qt.C) {
		p := HashToCurve(EvalDomainPrefix, nil)
		c.Assert(p.IsOnCurve(), qt.IsTrue)
	})
}
