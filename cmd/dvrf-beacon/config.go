package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vocdoni/dvrf-node/internal"
)

const (
	defaultThreshold = 4
	defaultMembers   = 6
	defaultRounds    = 10
	defaultInterval  = time.Second
	defaultLogLevel  = "info"
	defaultLogOutput = "stdout"
)

// Version is the build version, set at build time with -ldflags
var Version = internal.Version

// Config holds the application configuration
type Config struct {
	Beacon BeaconConfig
	Log    LogConfig
}

// BeaconConfig holds the beacon group and round parameters
type BeaconConfig struct {
	Threshold int           `mapstructure:"threshold"` // Partial evaluations needed per round
	Members   int           `mapstructure:"members"`   // Group size
	Rounds    int           `mapstructure:"rounds"`    // Number of rounds to produce (0 = run forever)
	Interval  time.Duration `mapstructure:"interval"`  // Pause between rounds
	Genesis   string        `mapstructure:"genesis"`   // Hex-encoded input of the first round (random if empty)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("beacon.threshold", defaultThreshold)
	v.SetDefault("beacon.members", defaultMembers)
	v.SetDefault("beacon.rounds", defaultRounds)
	v.SetDefault("beacon.interval", defaultInterval)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	flag.IntP("beacon.threshold", "t", defaultThreshold, "partial evaluations needed to produce a round")
	flag.IntP("beacon.members", "n", defaultMembers, "number of group members")
	flag.IntP("beacon.rounds", "r", defaultRounds, "rounds to produce, 0 to run until interrupted")
	flag.DurationP("beacon.interval", "i", defaultInterval, "pause between rounds (i.e. 1s or 1m)")
	flag.StringP("beacon.genesis", "g", "", "hex-encoded input of the first round (random if empty)")
	flag.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flag.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dvrf-beacon v%s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: dvrf-beacon [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  prefixed with DVRF_ and with dots (.) replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, DVRF_BEACON_THRESHOLD or DVRF_LOG_LEVEL\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Produce 10 rounds with a 4-of-6 group\n")
		fmt.Fprintf(os.Stderr, "  dvrf-beacon -t 4 -n 6\n\n")
		fmt.Fprintf(os.Stderr, "  # Run a 7-of-13 beacon forever, one round per minute\n")
		fmt.Fprintf(os.Stderr, "  dvrf-beacon -t 7 -n 13 -r 0 -i 1m\n")
	}

	flag.CommandLine.SortFlags = false
	flag.Parse()

	v.SetEnvPrefix("DVRF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if cfg.Beacon.Rounds < 0 {
		return fmt.Errorf("rounds cannot be negative")
	}
	if cfg.Beacon.Interval < 0 {
		return fmt.Errorf("interval cannot be negative")
	}
	return nil
}
