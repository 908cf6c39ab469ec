package dvrf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
	"github.com/vocdoni/dvrf-node/types"
)

// PseudoRandom is a beacon round's public output: the aggregate
// σ = H(x)^a and the 64-byte round randomness, the BLAKE2b-512 digest of
// σ's compressed encoding.
type PseudoRandom struct {
	Sigma  bn254.G1
	Random types.HexBytes
}

// Verify checks the round output against the group public key: the
// pairing equation e(H(x), gpk) = e(σ, g2), then that the stored
// randomness is byte-for-byte the digest of σ.
func (p *PseudoRandom) Verify(x []byte, gpk *bn254.G2) error {
	h := HashToCurve(EvalDomainPrefix, x)
	g2 := bn254.G2Generator()
	ok, err := bn254.PairingEqual(&h, gpk, &p.Sigma, &g2)
	if err != nil {
		return fmt.Errorf("dvrf: pairing: %w", err)
	}
	if !ok {
		return ErrVerifyFailed
	}
	digest := blake2b.Sum512(bn254.CompressG1(&p.Sigma))
	if !bytes.Equal(p.Random, digest[:]) {
		return ErrVerifyFailed
	}
	return nil
}

// VerifyPublicCoeffs checks that the published G1 and G2 commitments to
// the master secret share one discrete log: e(g, g2^a) = e(g^a, g2).
// Used to cross-check DKG output.
func VerifyPublicCoeffs(ga *bn254.G1, g2a *bn254.G2) error {
	g := bn254.G1Generator()
	g2 := bn254.G2Generator()
	ok, err := bn254.PairingEqual(&g, g2a, ga, &g2)
	if err != nil {
		return fmt.Errorf("dvrf: pairing: %w", err)
	}
	if !ok {
		return ErrVerifyFailed
	}
	return nil
}

// pseudoRandomWire mirrors PseudoRandom with encoding-friendly fields.
type pseudoRandomWire struct {
	Sigma  types.HexBytes `json:"sigma"`
	Random types.HexBytes `json:"random"`
}

// MarshalJSON serializes the round output with hex-encoded fields.
func (p *PseudoRandom) MarshalJSON() ([]byte, error) {
	return json.Marshal(pseudoRandomWire{
		Sigma:  bn254.CompressG1(&p.Sigma),
		Random: p.Random,
	})
}

// UnmarshalJSON deserializes and validates the curve point.
func (p *PseudoRandom) UnmarshalJSON(buf []byte) error {
	var w pseudoRandomWire
	if err := json.Unmarshal(buf, &w); err != nil {
		return err
	}
	return p.fromWire(w)
}

// MarshalCBOR serializes the round output for CBOR transports.
func (p *PseudoRandom) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(pseudoRandomWire{
		Sigma:  bn254.CompressG1(&p.Sigma),
		Random: p.Random,
	})
}

// UnmarshalCBOR deserializes and validates the curve point.
func (p *PseudoRandom) UnmarshalCBOR(buf []byte) error {
	var w pseudoRandomWire
	if err := cbor.Unmarshal(buf, &w); err != nil {
		return err
	}
	return p.fromWire(w)
}

func (p *PseudoRandom) fromWire(w pseudoRandomWire) error {
	sigma, err := bn254.DecompressG1(w.Sigma)
	if err != nil {
		return fmt.Errorf("dvrf: decode sigma: %w", err)
	}
	p.Sigma = sigma
	p.Random = w.Random
	return nil
}
