package dvrf

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/vocdoni/dvrf-node/crypto/bn254"
)

// checkIndices enforces the combine preconditions: the list strictly
// increasing and every index in [1, members]. Ordering is checked before
// range at each position, matching the error a remote verifier would
// report for the same set.
func checkIndices(indices []int, members int) error {
	for i := range indices {
		if i+1 < len(indices) && indices[i] >= indices[i+1] {
			return &InvalidOrderError{Position: i}
		}
		if indices[i] < 1 || indices[i] > members {
			return &InvalidIndexError{Index: indices[i]}
		}
	}
	return nil
}

// lagrangeCoefficients computes λ_i = Π_{k≠i} k/(k−i) for each index i
// of the set, the interpolation weights at zero: Σ λ_i·f(i) = f(0).
// Strict index ordering guarantees all pairwise differences are nonzero.
func lagrangeCoefficients(indices []int) []bn254.Scalar {
	lambdas := make([]bn254.Scalar, len(indices))
	for a, i := range indices {
		var iElem bn254.Scalar
		iElem.SetUint64(uint64(i))
		var lambda bn254.Scalar
		lambda.SetOne()
		for _, k := range indices {
			if k == i {
				continue
			}
			var kElem, term bn254.Scalar
			kElem.SetUint64(uint64(k))
			term.Sub(&kElem, &iElem)
			term.Inverse(&term)
			term.Mul(&term, &kElem)
			lambda.Mul(&lambda, &term)
		}
		lambdas[a] = lambda
	}
	return lambdas
}

// CombinePartialEvaluations interpolates exactly threshold partial
// evaluations at zero into the round output σ = H(x)^a and derives the
// round randomness as the BLAKE2b-512 digest of σ's compressed encoding.
//
// The caller is expected to have verified each evaluation beforehand;
// only the index set is validated here. Passing a number of evaluations
// different from the threshold is a programming error.
func CombinePartialEvaluations(cfg Config, sigmas []*PartialEval) (*PseudoRandom, error) {
	if len(sigmas) != cfg.Threshold {
		panic(fmt.Sprintf("dvrf: combine needs exactly %d partial evaluations, got %d", cfg.Threshold, len(sigmas)))
	}

	indices := make([]int, len(sigmas))
	for i, s := range sigmas {
		indices[i] = s.Index
	}
	if err := checkIndices(indices, cfg.Members); err != nil {
		return nil, err
	}

	lambdas := lagrangeCoefficients(indices)

	var acc bn254.G1Jac
	for a := range sigmas {
		var term bn254.G1
		term.ScalarMultiplication(&sigmas[a].V, lambdas[a].BigInt(new(big.Int)))
		var termJac bn254.G1Jac
		termJac.FromAffine(&term)
		acc.AddAssign(&termJac)
	}
	var sigma bn254.G1
	sigma.FromJacobian(&acc)

	digest := blake2b.Sum512(bn254.CompressG1(&sigma))
	return &PseudoRandom{Sigma: sigma, Random: digest[:]}, nil
}
