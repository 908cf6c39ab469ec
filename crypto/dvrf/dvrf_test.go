package dvrf

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

// testBeaconRound runs the whole protocol for one (threshold, members)
// pair: deal a group, have every member evaluate the input, verify every
// partial evaluation against the published keys, combine two distinct
// subsets and verify the round output against the group public key.
func testBeaconRound(c *qt.C, threshold, members int) {
	rng := testRNG(c, 42)
	cfg, err := NewConfig(threshold, members)
	c.Assert(err, qt.IsNil)

	keys, pub, err := Deal(cfg, rng)
	c.Assert(err, qt.IsNil)
	c.Assert(keys, qt.HasLen, members)
	c.Assert(pub.VKs, qt.HasLen, members)
	c.Assert(VerifyPublicCoeffs(&pub.GA, &pub.GPK), qt.IsNil)

	input := []byte("test first random")
	evals := make([]*PartialEval, members)
	for i, key := range keys {
		c.Assert(key.Index(), qt.Equals, i+1)
		c.Assert(key.Verify(pub.VKs), qt.IsNil)

		eval, err := key.Evaluate(input, rng)
		c.Assert(err, qt.IsNil)
		c.Assert(eval.Verify(input, &pub.VKs[i], members), qt.IsNil, qt.Commentf("member %d", i+1))
		evals[i] = eval
	}

	first, err := CombinePartialEvaluations(cfg, evals[:threshold])
	c.Assert(err, qt.IsNil)
	c.Assert(first.Verify(input, &pub.GPK), qt.IsNil)
	c.Assert(first.Random, qt.HasLen, 64)

	// The last threshold members interpolate to the same output.
	second, err := CombinePartialEvaluations(cfg, evals[members-threshold:])
	c.Assert(err, qt.IsNil)
	c.Assert(second.Sigma.Equal(&first.Sigma), qt.IsTrue)
	c.Assert(second.Random.Equal(first.Random), qt.IsTrue)
	c.Assert(second.Verify(input, &pub.GPK), qt.IsNil)
}

func TestBeacon(t *testing.T) {
	pairs := []struct{ threshold, members int }{
		{4, 6},
		{7, 13},
		{14, 27},
		{28, 55},
		{57, 112},
	}
	for _, p := range pairs {
		p := p
		t.Run(fmt.Sprintf("%d-of-%d", p.threshold, p.members), func(t *testing.T) {
			testBeaconRound(qt.New(t), p.threshold, p.members)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		threshold, members int
		ok                 bool
	}{
		{1, 1, true},
		{4, 6, true},
		{6, 6, true},
		{0, 6, false},
		{-1, 6, false},
		{7, 6, false},
		{1, 0, false},
	} {
		_, err := NewConfig(tc.threshold, tc.members)
		if tc.ok {
			c.Assert(err, qt.IsNil, qt.Commentf("(%d, %d)", tc.threshold, tc.members))
			continue
		}
		var cfgErr *InvalidConfigError
		c.Assert(err, qt.ErrorAs, &cfgErr, qt.Commentf("(%d, %d)", tc.threshold, tc.members))
	}
}
