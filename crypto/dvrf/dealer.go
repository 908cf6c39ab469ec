package dvrf

import (
	"io"
	"math/big"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

// GroupKeys is the public outcome of a dealing ceremony: the per-member
// verification keys, the G1 commitment g^a to the master secret and the
// group public key gpk = g2^a.
type GroupKeys struct {
	VKs []bn254.G1
	GA  bn254.G1
	GPK bn254.G2
}

// Deal runs a local dealing ceremony for cfg: it samples a fresh secret
// polynomial, derives one share key per member and the group keys, and
// wipes the polynomial before returning. Distributing shares to remote
// members (the encrypted-share protocol of the full DKG) happens outside
// this package; here the dealer and all members run in one process.
func Deal(cfg Config, rng io.Reader) ([]*ShareKey, *GroupKeys, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	poly, err := RandomPolynomial(cfg.Threshold, rng)
	if err != nil {
		return nil, nil, err
	}
	defer poly.Zeroize()

	shares := poly.Shares(cfg.Members)
	keys := make([]*ShareKey, cfg.Members)
	vks := make([]bn254.G1, cfg.Members)
	for i := range shares {
		vk := PublicKey(&shares[i])
		keys[i] = NewShareKey(i+1, shares[i], vk)
		vks[i] = vk
		shares[i].SetZero()
	}

	secret := poly.Secret()
	secretBig := secret.BigInt(new(big.Int))
	g := bn254.G1Generator()
	g2 := bn254.G2Generator()
	var ga bn254.G1
	ga.ScalarMultiplication(&g, secretBig)
	var gpk bn254.G2
	gpk.ScalarMultiplication(&g2, secretBig)
	secret.SetZero()
	secretBig.SetInt64(0)

	return keys, &GroupKeys{VKs: vks, GA: ga, GPK: gpk}, nil
}
