package dvrf

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
	"github.com/vocdoni/dvrf-node/types"
)

// PartialEval is one member's contribution to a beacon round: the point
// v = H(x)^{s_index} and the DLEQ proof (z, c) tying v to the member's
// verification key. It is self-describing and safe to transmit; the
// share is not recoverable from it.
type PartialEval struct {
	Index int
	V     bn254.G1
	Z     bn254.Scalar
	C     bn254.Scalar
}

// Verify checks the proof against the member's public verification key
// for input x. members bounds the acceptable index range. Verification
// is stateless and safe to run concurrently.
//
// The verifier recomputes the prover's commitments from the response,
// r1 = g^z · vk^{−c} and r2 = h^z · v^{−c}, rebuilds the challenge over
// the same transcript and accepts only on an exact match.
func (p *PartialEval) Verify(x []byte, vk *bn254.G1, members int) error {
	if p.Index < 1 || p.Index > members {
		return &InvalidIndexError{Index: p.Index}
	}

	h := HashToCurve(EvalDomainPrefix, x)
	g := bn254.G1Generator()

	zBig := p.Z.BigInt(new(big.Int))
	cBig := p.C.BigInt(new(big.Int))

	var gz, vkc, r1 bn254.G1
	gz.ScalarMultiplication(&g, zBig)
	vkc.ScalarMultiplication(vk, cBig)
	vkc.Neg(&vkc)
	r1.Add(&gz, &vkc)

	var hz, vc, r2 bn254.G1
	hz.ScalarMultiplication(&h, zBig)
	vc.ScalarMultiplication(&p.V, cBig)
	vc.Neg(&vc)
	r2.Add(&hz, &vc)

	c := challenge(&g, &h, &r1, &r2, vk, &p.V)
	if !c.Equal(&p.C) {
		return ErrVerifyFailed
	}
	return nil
}

// partialEvalSize is the length of the binary encoding:
// 4-byte little-endian index, compressed v, then z and c.
const partialEvalSize = 4 + bn254.G1CompressedSize + 2*bn254.ScalarSize

// MarshalBinary encodes the partial evaluation as
// u32 LE index || 32B compressed v || 32B z || 32B c.
func (p *PartialEval) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4, partialEvalSize)
	binary.LittleEndian.PutUint32(buf, uint32(p.Index))
	buf = append(buf, bn254.CompressG1(&p.V)...)
	buf = append(buf, bn254.ScalarBytes(&p.Z)...)
	buf = append(buf, bn254.ScalarBytes(&p.C)...)
	return buf, nil
}

// UnmarshalBinary decodes the binary layout. The point is decompressed
// with an on-curve check, which on BN254 G1 (cofactor one) also implies
// prime-order subgroup membership.
func (p *PartialEval) UnmarshalBinary(buf []byte) error {
	if len(buf) != partialEvalSize {
		return fmt.Errorf("dvrf: partial evaluation must be %d bytes, got %d", partialEvalSize, len(buf))
	}
	p.Index = int(binary.LittleEndian.Uint32(buf[:4]))
	off := 4
	v, err := bn254.DecompressG1(buf[off : off+bn254.G1CompressedSize])
	if err != nil {
		return fmt.Errorf("dvrf: decode v: %w", err)
	}
	off += bn254.G1CompressedSize
	z, err := bn254.ScalarFromBytes(buf[off : off+bn254.ScalarSize])
	if err != nil {
		return fmt.Errorf("dvrf: decode z: %w", err)
	}
	off += bn254.ScalarSize
	c, err := bn254.ScalarFromBytes(buf[off : off+bn254.ScalarSize])
	if err != nil {
		return fmt.Errorf("dvrf: decode c: %w", err)
	}
	p.V, p.Z, p.C = v, z, c
	return nil
}

// partialEvalWire mirrors PartialEval with encoding-friendly fields.
type partialEvalWire struct {
	Index int            `json:"index"`
	V     types.HexBytes `json:"v"`
	Z     types.HexBytes `json:"z"`
	C     types.HexBytes `json:"c"`
}

func (p *PartialEval) wire() partialEvalWire {
	return partialEvalWire{
		Index: p.Index,
		V:     bn254.CompressG1(&p.V),
		Z:     bn254.ScalarBytes(&p.Z),
		C:     bn254.ScalarBytes(&p.C),
	}
}

func (p *PartialEval) fromWire(w partialEvalWire) error {
	v, err := bn254.DecompressG1(w.V)
	if err != nil {
		return fmt.Errorf("dvrf: decode v: %w", err)
	}
	z, err := bn254.ScalarFromBytes(w.Z)
	if err != nil {
		return fmt.Errorf("dvrf: decode z: %w", err)
	}
	c, err := bn254.ScalarFromBytes(w.C)
	if err != nil {
		return fmt.Errorf("dvrf: decode c: %w", err)
	}
	p.Index, p.V, p.Z, p.C = w.Index, v, z, c
	return nil
}

// MarshalJSON serializes the partial evaluation with hex-encoded fields.
func (p *PartialEval) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// UnmarshalJSON deserializes and validates the curve point.
func (p *PartialEval) UnmarshalJSON(buf []byte) error {
	var w partialEvalWire
	if err := json.Unmarshal(buf, &w); err != nil {
		return err
	}
	return p.fromWire(w)
}

// MarshalCBOR serializes the partial evaluation for CBOR transports.
func (p *PartialEval) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.wire())
}

// UnmarshalCBOR deserializes and validates the curve point.
func (p *PartialEval) UnmarshalCBOR(buf []byte) error {
	var w partialEvalWire
	if err := cbor.Unmarshal(buf, &w); err != nil {
		return err
	}
	return p.fromWire(w)
}
