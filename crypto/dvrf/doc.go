// Package dvrf implements a threshold distributed randomness beacon over
// the BN254 pairing-friendly curve.
//
// A group of n members holds Shamir shares s_i of a master secret a with
// group public key gpk = g2^a. For a beacon input x, each member produces
// a partial evaluation v_i = H(x)^{s_i} accompanied by a Chaum–Pedersen
// proof that v_i and the member's verification key vk_i = g^{s_i} share
// one discrete log. Any t verified partial evaluations combine through
// Lagrange interpolation at zero into σ = H(x)^a, whose BLAKE2b-512
// digest is the round randomness. Anyone can verify a round output with
// a single pairing equation against gpk.
//
// The package is purely computational: no shared mutable state, no
// blocking operations. Keys and evaluations may be used from many
// goroutines; each Evaluate call needs its own randomness source.
package dvrf
