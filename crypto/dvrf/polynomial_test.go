package dvrf

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

func TestPolynomialShares(t *testing.T) {
	c := qt.New(t)
	rng := testRNG(t, 42)

	const (
		threshold = 5
		members   = 8
	)
	poly, err := RandomPolynomial(threshold, rng)
	c.Assert(err, qt.IsNil)
	c.Assert(poly, qt.HasLen, threshold)

	shares := poly.Shares(members)
	c.Assert(shares, qt.HasLen, members)

	// The first share is the coefficient sum, which is f(1).
	var sum bn254.Scalar
	for i := range poly {
		sum.Add(&sum, &poly[i])
	}
	c.Assert(shares[0].Equal(&sum), qt.IsTrue)
	eval1 := poly.Evaluate(1)
	c.Assert(shares[0].Equal(&eval1), qt.IsTrue)

	// Every other share is the polynomial evaluated at its index.
	for i := 2; i <= members; i++ {
		eval := poly.Evaluate(uint64(i))
		c.Assert(shares[i-1].Equal(&eval), qt.IsTrue, qt.Commentf("share %d", i))
	}

	// The constant term is the secret.
	secret := poly.Secret()
	c.Assert(secret.Equal(&poly[0]), qt.IsTrue)
}

func TestPolynomialDegenerate(t *testing.T) {
	c := qt.New(t)
	rng := testRNG(t, 1)

	_, err := RandomPolynomial(0, rng)
	var cfgErr *InvalidConfigError
	c.Assert(err, qt.ErrorAs, &cfgErr)

	// A degree-zero polynomial shares the secret itself with everyone.
	poly, err := RandomPolynomial(1, rng)
	c.Assert(err, qt.IsNil)
	shares := poly.Shares(3)
	for i := range shares {
		c.Assert(shares[i].Equal(&poly[0]), qt.IsTrue, qt.Commentf("share %d", i+1))
	}
}

func TestPolynomialZeroize(t *testing.T) {
	c := qt.New(t)
	rng := testRNG(t, 2)

	poly, err := RandomPolynomial(3, rng)
	c.Assert(err, qt.IsNil)
	poly.Zeroize()
	for i := range poly {
		c.Assert(poly[i].IsZero(), qt.IsTrue)
	}
}
