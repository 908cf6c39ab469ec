package dvrf

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// dealtGroup deals a (threshold, members) group with deterministic
// randomness and evaluates input for every member.
func dealtGroup(tb testing.TB, threshold, members int, input []byte) (Config, []*PartialEval, *GroupKeys) {
	rng := testRNG(tb, 42)
	cfg, err := NewConfig(threshold, members)
	qt.Assert(tb, err, qt.IsNil)
	keys, pub, err := Deal(cfg, rng)
	qt.Assert(tb, err, qt.IsNil)
	evals := make([]*PartialEval, members)
	for i, key := range keys {
		eval, err := key.Evaluate(input, rng)
		qt.Assert(tb, err, qt.IsNil)
		evals[i] = eval
	}
	return cfg, evals, pub
}

func TestCombineIndexValidation(t *testing.T) {
	c := qt.New(t)
	input := []byte("test first random")
	cfg, evals, _ := dealtGroup(t, 4, 6, input)

	c.Run("duplicate index", func(c *qt.C) {
		set := []*PartialEval{evals[0], evals[1], evals[1], evals[3]}
		_, err := CombinePartialEvaluations(cfg, set)
		var ordErr *InvalidOrderError
		c.Assert(err, qt.ErrorAs, &ordErr)
		c.Assert(ordErr.Position, qt.Equals, 1)
	})

	c.Run("out of order", func(c *qt.C) {
		set := []*PartialEval{evals[2], evals[0], evals[3], evals[4]}
		_, err := CombinePartialEvaluations(cfg, set)
		var ordErr *InvalidOrderError
		c.Assert(err, qt.ErrorAs, &ordErr)
		c.Assert(ordErr.Position, qt.Equals, 0)
	})

	c.Run("index out of range", func(c *qt.C) {
		bad := *evals[3]
		bad.Index = 7
		set := []*PartialEval{evals[0], evals[1], evals[2], &bad}
		_, err := CombinePartialEvaluations(cfg, set)
		var idxErr *InvalidIndexError
		c.Assert(err, qt.ErrorAs, &idxErr)
		c.Assert(idxErr.Index, qt.Equals, 7)
	})

	c.Run("index zero", func(c *qt.C) {
		bad := *evals[0]
		bad.Index = 0
		set := []*PartialEval{&bad, evals[1], evals[2], evals[3]}
		_, err := CombinePartialEvaluations(cfg, set)
		var idxErr *InvalidIndexError
		c.Assert(err, qt.ErrorAs, &idxErr)
		c.Assert(idxErr.Index, qt.Equals, 0)
	})

	c.Run("wrong count panics", func(c *qt.C) {
		defer func() {
			c.Assert(recover(), qt.IsNotNil)
		}()
		_, _ = CombinePartialEvaluations(cfg, evals[:cfg.Threshold-1])
	})
}

func TestCombineSubsetIndependence(t *testing.T) {
	c := qt.New(t)
	input := []byte("test first random")
	cfg, evals, pub := dealtGroup(t, 4, 6, input)

	first, err := CombinePartialEvaluations(cfg, evals[:4])
	c.Assert(err, qt.IsNil)
	c.Assert(first.Verify(input, &pub.GPK), qt.IsNil)

	// Any other size-t subset interpolates to the same aggregate and
	// therefore the same randomness.
	subsets := [][]*PartialEval{
		{evals[0], evals[1], evals[2], evals[5]},
		{evals[0], evals[2], evals[4], evals[5]},
		{evals[2], evals[3], evals[4], evals[5]},
	}
	for i, set := range subsets {
		out, err := CombinePartialEvaluations(cfg, set)
		c.Assert(err, qt.IsNil, qt.Commentf("subset %d", i))
		c.Assert(out.Sigma.Equal(&first.Sigma), qt.IsTrue, qt.Commentf("subset %d", i))
		c.Assert(out.Random.Equal(first.Random), qt.IsTrue, qt.Commentf("subset %d", i))
	}
}
