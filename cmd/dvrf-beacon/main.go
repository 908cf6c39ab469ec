package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/vocdoni/dvrf-node/crypto/bn254"
	"github.com/vocdoni/dvrf-node/crypto/dvrf"
	"github.com/vocdoni/dvrf-node/log"
	"github.com/vocdoni/dvrf-node/types"
	"github.com/vocdoni/dvrf-node/util"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Log.Level, cfg.Log.Output)
	log.Infow("starting dvrf-beacon", "version", Version)

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	group, err := dvrf.NewConfig(cfg.Beacon.Threshold, cfg.Beacon.Members)
	if err != nil {
		log.Fatalf("Invalid group parameters: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, group); err != nil {
		log.Fatalf("Beacon failed: %v", err)
	}
}

// run deals a fresh group in-process and then produces beacon rounds,
// each round's input chained to the previous output by keccak.
func run(ctx context.Context, cfg *Config, group dvrf.Config) error {
	start := time.Now()
	keys, pub, err := dvrf.Deal(group, rand.Reader)
	if err != nil {
		return fmt.Errorf("dealing ceremony: %w", err)
	}
	if err := dvrf.VerifyPublicCoeffs(&pub.GA, &pub.GPK); err != nil {
		return fmt.Errorf("group key consistency: %w", err)
	}
	for _, key := range keys {
		if err := key.Verify(pub.VKs); err != nil {
			return fmt.Errorf("share key %d: %w", key.Index(), err)
		}
	}
	gpkHex := types.HexBytes(bn254.CompressG2(&pub.GPK))
	log.Infow("group dealt",
		"threshold", group.Threshold,
		"members", group.Members,
		"gpk", gpkHex.String(),
		"took", time.Since(start).String())

	input, err := genesisInput(cfg.Beacon.Genesis)
	if err != nil {
		return err
	}

	for round := 1; cfg.Beacon.Rounds == 0 || round <= cfg.Beacon.Rounds; round++ {
		select {
		case <-ctx.Done():
			log.Info("interrupted, shutting down")
			return nil
		default:
		}

		out, err := produceRound(group, keys, pub, input)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		inputHex := types.HexBytes(input)
		log.Infow("round produced",
			"round", round,
			"input", inputHex.String(),
			"randomness", out.Random.String())

		input = nextInput(out, round)

		if cfg.Beacon.Interval > 0 {
			select {
			case <-ctx.Done():
				log.Info("interrupted, shutting down")
				return nil
			case <-time.After(cfg.Beacon.Interval):
			}
		}
	}
	return nil
}

// produceRound collects partial evaluations from the first threshold
// members, verifies each against the public key list, combines them and
// verifies the round output.
func produceRound(group dvrf.Config, keys []*dvrf.ShareKey, pub *dvrf.GroupKeys, input []byte) (*dvrf.PseudoRandom, error) {
	evals := make([]*dvrf.PartialEval, 0, group.Threshold)
	for _, key := range keys[:group.Threshold] {
		eval, err := key.Evaluate(input, rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("member %d evaluate: %w", key.Index(), err)
		}
		if err := eval.Verify(input, &pub.VKs[key.Index()-1], group.Members); err != nil {
			return nil, fmt.Errorf("member %d partial evaluation: %w", key.Index(), err)
		}
		evals = append(evals, eval)
	}

	out, err := dvrf.CombinePartialEvaluations(group, evals)
	if err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}
	if err := out.Verify(input, &pub.GPK); err != nil {
		return nil, fmt.Errorf("verify round output: %w", err)
	}
	return out, nil
}

// genesisInput decodes the configured first-round input, or draws a
// random one when none is given.
func genesisInput(genesis string) ([]byte, error) {
	if genesis == "" {
		return util.RandomBytes(32), nil
	}
	var input types.HexBytes
	if err := input.FromString(genesis); err != nil {
		return nil, fmt.Errorf("invalid genesis input: %w", err)
	}
	return input, nil
}

// nextInput chains the next round's input to the current output:
// keccak256(compressed σ || round).
func nextInput(out *dvrf.PseudoRandom, round int) []byte {
	var roundBytes [8]byte
	binary.BigEndian.PutUint64(roundBytes[:], uint64(round))
	return ethcrypto.Keccak256(bn254.CompressG1(&out.Sigma), roundBytes[:])
}
