package dvrf

import (
	"io"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

// ShareKey holds one member's share of the group secret: the one-based
// member index, the secret share sk and its public image vk = g^sk. The
// secret never leaves the struct; Evaluate only emits H(x)^sk together
// with a proof. A ShareKey is read-only after construction and safe to
// share across goroutines.
type ShareKey struct {
	index int
	sk    bn254.Scalar
	vk    bn254.G1
}

// NewShareKey builds a share key from DKG output. The vk = g^sk
// invariant is the caller's responsibility (the DKG enforces it
// upstream); Verify cross-checks index and vk against the public list.
func NewShareKey(index int, sk bn254.Scalar, vk bn254.G1) *ShareKey {
	return &ShareKey{index: index, sk: sk, vk: vk}
}

// Index returns the one-based member index.
func (k *ShareKey) Index() int { return k.index }

// VerificationKey returns the public image g^sk of the share.
func (k *ShareKey) VerificationKey() bn254.G1 { return k.vk }

// Verify checks that the index lies in [1, len(vks)] and that the key's
// vk matches the published verification key at that index.
func (k *ShareKey) Verify(vks []bn254.G1) error {
	if k.index < 1 || k.index > len(vks) {
		return &InvalidIndexError{Index: k.index}
	}
	if !k.vk.Equal(&vks[k.index-1]) {
		return ErrVerifyFailed
	}
	return nil
}

// Evaluate produces the member's partial evaluation of input x: the
// point v = H(x)^sk and a Chaum–Pedersen proof that v and vk share the
// discrete log sk. The proof nonce is drawn fresh from rng on every
// call; reusing a nonce across proofs leaks the share. The transcript
// binds x only through H(x).
func (k *ShareKey) Evaluate(x []byte, rng io.Reader) (*PartialEval, error) {
	h := HashToCurve(EvalDomainPrefix, x)

	var v bn254.G1
	v.ScalarMultiplication(&h, k.sk.BigInt(new(big.Int)))

	r, err := bn254.SampleScalar(rng)
	if err != nil {
		return nil, err
	}
	rBig := r.BigInt(new(big.Int))

	g := bn254.G1Generator()
	var r1, r2 bn254.G1
	r1.ScalarMultiplication(&g, rBig)
	r2.ScalarMultiplication(&h, rBig)

	c := challenge(&g, &h, &r1, &r2, &k.vk, &v)

	var z bn254.Scalar
	z.Mul(&c, &k.sk)
	z.Add(&z, &r)
	r.SetZero()

	return &PartialEval{Index: k.index, V: v, Z: z, C: c}, nil
}

// Zeroize wipes the secret share.
func (k *ShareKey) Zeroize() {
	k.sk.SetZero()
}

// KeyGen samples a fresh keypair (sk, g^sk) from rng.
func KeyGen(rng io.Reader) (bn254.Scalar, bn254.G1, error) {
	sk, err := bn254.SampleScalar(rng)
	if err != nil {
		return bn254.Scalar{}, bn254.G1{}, err
	}
	return sk, PublicKey(&sk), nil
}

// PublicKey returns g^sk.
func PublicKey(sk *bn254.Scalar) bn254.G1 {
	g := bn254.G1Generator()
	var pk bn254.G1
	pk.ScalarMultiplication(&g, sk.BigInt(new(big.Int)))
	return pk
}

// challenge computes the Fiat–Shamir challenge of the DLEQ proof:
// BLAKE2b-512 over the compressed encodings of (g, h, r1, r2, vk, v), in
// that exact order, reduced into the scalar field. The ordering is part
// of the wire contract; any deviation breaks verification.
func challenge(g, h, r1, r2, vk, v *bn254.G1) bn254.Scalar {
	hasher, _ := blake2b.New512(nil)
	for _, p := range []*bn254.G1{g, h, r1, r2, vk, v} {
		hasher.Write(bn254.CompressG1(p))
	}
	var digest [blake2b.Size]byte
	hasher.Sum(digest[:0])
	return bn254.ScalarFromUniformBytes(digest)
}
