package dvrf

import (
	"golang.org/x/crypto/blake2b"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

// EvalDomainPrefix separates the hash-to-curve use for beacon inputs from
// any other use of the map.
const EvalDomainPrefix = "partial evaluation for creating randomness"

// curveID is bound into the domain separation tag. It is fixed for
// compatibility with the on-chain verifier of the companion SNARK circuit.
const curveID = "bn256_g1"

// dstSuffix completes the domain separation tag:
// tag = prefix || "-" || curveID || dstSuffix.
const dstSuffix = "_XMD:BLAKE2b_SVDW_RO_"

// blake2bBlockSize is the input block size of BLAKE2b.
const blake2bBlockSize = 128

// HashToCurve deterministically maps msg into G1 under the given domain
// prefix: two base field elements are derived from a BLAKE2b-512
// expansion of msg, each is passed through the Shallue–van de Woestijne
// map with Z = 1, and the two points are added. The output is on curve
// and in the prime-order subgroup (G1 has cofactor one). There is no
// failure case for finite-length input.
func HashToCurve(prefix string, msg []byte) bn254.G1 {
	u0, u1 := expandMessage(prefix, msg)
	p0 := bn254.MapToG1(bn254.BaseFromUniformBytes(u0))
	p1 := bn254.MapToG1(bn254.BaseFromUniformBytes(u1))
	var sum bn254.G1
	sum.Add(&p0, &p1)
	return sum
}

// expandMessage derives two 64-byte uniform blocks from msg with the XMD
// construction over BLAKE2b-512. The domain separation tag and its
// length byte are appended to every block.
func expandMessage(prefix string, msg []byte) (b1, b2 [blake2b.Size]byte) {
	dst := []byte(prefix + "-" + curveID + dstSuffix)
	if len(dst) > 255 {
		panic("dvrf: domain separation tag longer than 255 bytes")
	}
	dstLen := byte(len(dst))

	h, _ := blake2b.New512(nil)
	var zeroBlock [blake2bBlockSize]byte
	h.Write(zeroBlock[:])
	h.Write(msg)
	h.Write([]byte{0, 2 * blake2b.Size, 0})
	h.Write(dst)
	h.Write([]byte{dstLen})
	var b0 [blake2b.Size]byte
	h.Sum(b0[:0])

	h.Reset()
	h.Write(b0[:])
	h.Write([]byte{1})
	h.Write(dst)
	h.Write([]byte{dstLen})
	h.Sum(b1[:0])

	var mixed [blake2b.Size]byte
	for i := range b0 {
		mixed[i] = b0[i] ^ b1[i]
	}
	h.Reset()
	h.Write(mixed[:])
	h.Write([]byte{2})
	h.Write(dst)
	h.Write([]byte{dstLen})
	h.Sum(b2[:0])
	return b1, b2
}
