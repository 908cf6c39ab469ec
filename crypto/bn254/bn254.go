// Package bn254 wraps the gnark-crypto BN254 primitives used by the
// randomness beacon: group generators, canonical compressed encodings,
// scalar sampling and the pairing product check.
package bn254

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Short names for the group and field elements the protocol moves around.
// G1 and G2 are affine points of the two pairing source groups, Scalar is
// an element of the r-order scalar field and Base an element of the curve
// base field.
type (
	G1     = bn254.G1Affine
	G1Jac  = bn254.G1Jac
	G2     = bn254.G2Affine
	Scalar = fr.Element
	Base   = fp.Element
)

// Canonical encoding sizes in bytes.
const (
	G1CompressedSize = bn254.SizeOfG1AffineCompressed
	G2CompressedSize = bn254.SizeOfG2AffineCompressed
	ScalarSize       = fr.Bytes
)

var (
	g1Gen bn254.G1Affine
	g2Gen bn254.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bn254.Generators()
}

// G1Generator returns the canonical G1 generator g.
func G1Generator() G1 { return g1Gen }

// G2Generator returns the canonical G2 generator g2.
func G2Generator() G2 { return g2Gen }

// Order returns the order of the BN254 groups.
func Order() *big.Int { return fr.Modulus() }

// SampleScalar draws a uniform nonzero scalar from rng. It reads 64 bytes
// and reduces them modulo the group order, so both crypto/rand.Reader and
// a deterministic test stream work.
func SampleScalar(rng io.Reader) (Scalar, error) {
	var s Scalar
	var buf [64]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return s, fmt.Errorf("sample scalar: %w", err)
		}
		s.SetBytes(buf[:])
		if !s.IsZero() {
			return s, nil
		}
	}
}

// ScalarFromUniformBytes reduces 64 uniform bytes into a scalar.
func ScalarFromUniformBytes(buf [64]byte) Scalar {
	var s Scalar
	s.SetBytes(buf[:])
	return s
}

// BaseFromUniformBytes reduces 64 uniform bytes into a base field element.
func BaseFromUniformBytes(buf [64]byte) Base {
	var e Base
	e.SetBytes(buf[:])
	return e
}

// MapToG1 applies the Shallue–van de Woestijne map (Z = 1 on BN254) to a
// base field element. The result is on the curve; G1 has cofactor one so
// it also lies in the prime-order subgroup.
func MapToG1(u Base) G1 {
	return bn254.MapToCurve1(&u)
}

// CompressG1 returns the 32-byte compressed encoding of p.
func CompressG1(p *G1) []byte {
	b := p.Bytes()
	return b[:]
}

// DecompressG1 decodes a 32-byte compressed G1 point. Decoding fails on
// malformed input and on points not on the curve.
func DecompressG1(buf []byte) (G1, error) {
	var p G1
	if len(buf) != G1CompressedSize {
		return p, fmt.Errorf("compressed G1 point must be %d bytes, got %d", G1CompressedSize, len(buf))
	}
	if _, err := p.SetBytes(buf); err != nil {
		return p, fmt.Errorf("decode G1 point: %w", err)
	}
	return p, nil
}

// CompressG2 returns the 64-byte compressed encoding of p.
func CompressG2(p *G2) []byte {
	b := p.Bytes()
	return b[:]
}

// DecompressG2 decodes a 64-byte compressed G2 point.
func DecompressG2(buf []byte) (G2, error) {
	var p G2
	if len(buf) != G2CompressedSize {
		return p, fmt.Errorf("compressed G2 point must be %d bytes, got %d", G2CompressedSize, len(buf))
	}
	if _, err := p.SetBytes(buf); err != nil {
		return p, fmt.Errorf("decode G2 point: %w", err)
	}
	return p, nil
}

// ScalarBytes returns the 32-byte canonical big-endian encoding of s.
func ScalarBytes(s *Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

// ScalarFromBytes decodes a canonical 32-byte scalar, rejecting values
// outside the field.
func ScalarFromBytes(buf []byte) (Scalar, error) {
	var s Scalar
	if len(buf) != ScalarSize {
		return s, fmt.Errorf("scalar must be %d bytes, got %d", ScalarSize, len(buf))
	}
	if err := s.SetBytesCanonical(buf); err != nil {
		return s, fmt.Errorf("decode scalar: %w", err)
	}
	return s, nil
}

// PairingEqual reports whether e(p1, q1) == e(p2, q2).
func PairingEqual(p1 *G1, q1 *G2, p2 *G1, q2 *G2) (bool, error) {
	var negP2 G1
	negP2.Neg(p2)
	return bn254.PairingCheck([]G1{*p1, negP2}, []G2{*q1, *q2})
}
