package dvrf

// Config fixes the group parameters of a beacon: the number of members n
// and the threshold t of partial evaluations needed to produce a round
// output. Both are protocol constants for the lifetime of a group key.
type Config struct {
	Threshold int
	Members   int
}

// NewConfig returns a validated configuration.
func NewConfig(threshold, members int) (Config, error) {
	cfg := Config{Threshold: threshold, Members: members}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks 1 ≤ threshold ≤ members.
func (c Config) Validate() error {
	if c.Threshold < 1 || c.Members < 1 || c.Threshold > c.Members {
		return &InvalidConfigError{Threshold: c.Threshold, Members: c.Members}
	}
	return nil
}
