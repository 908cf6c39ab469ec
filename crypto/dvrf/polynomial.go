package dvrf

import (
	"io"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

// Polynomial holds the coefficients of a secret polynomial over the BN254
// scalar field, constant term first. The constant term is the master
// secret; the whole value is ephemeral and must be wiped once shares have
// been derived.
type Polynomial []bn254.Scalar

// RandomPolynomial samples threshold uniform coefficients from rng,
// defining a polynomial of degree threshold−1.
func RandomPolynomial(threshold int, rng io.Reader) (Polynomial, error) {
	if threshold < 1 {
		return nil, &InvalidConfigError{Threshold: threshold, Members: threshold}
	}
	coeffs := make(Polynomial, threshold)
	for i := range coeffs {
		s, err := bn254.SampleScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	return coeffs, nil
}

// Evaluate computes f(i) with Horner's rule. Shares are only ever derived
// at member indices, so i = 0 (the secret itself) is a programming error.
func (f Polynomial) Evaluate(i uint64) bn254.Scalar {
	if len(f) == 0 {
		panic("dvrf: evaluate on empty polynomial")
	}
	if i == 0 {
		panic("dvrf: polynomial evaluated at zero")
	}
	var x bn254.Scalar
	x.SetUint64(i)
	eval := f[len(f)-1]
	for k := len(f) - 2; k >= 0; k-- {
		eval.Mul(&eval, &x)
		eval.Add(&eval, &f[k])
	}
	return eval
}

// Shares evaluates the polynomial at 1..members. The first share is
// computed as the plain coefficient sum, which equals f(1).
func (f Polynomial) Shares(members int) []bn254.Scalar {
	shares := make([]bn254.Scalar, members)
	var s1 bn254.Scalar
	for k := range f {
		s1.Add(&s1, &f[k])
	}
	shares[0] = s1
	for i := 2; i <= members; i++ {
		shares[i-1] = f.Evaluate(uint64(i))
	}
	return shares
}

// Secret returns the master secret f(0).
func (f Polynomial) Secret() bn254.Scalar {
	return f[0]
}

// Zeroize wipes the coefficients in place.
func (f Polynomial) Zeroize() {
	for i := range f {
		f[i].SetZero()
	}
}
