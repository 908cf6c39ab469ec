package dvrf

import (
	"errors"
	"fmt"
)

// ErrVerifyFailed is returned when a cryptographic check does not hold: a
// DLEQ challenge mismatch, a pairing inequality, a randomness digest
// mismatch, or a verification key not matching the public list. Inputs
// failing verification are adversarial and must be discarded, not retried.
var ErrVerifyFailed = errors.New("dvrf: verification failed")

// InvalidIndexError reports a member index outside [1, members].
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("dvrf: invalid member index %d", e.Index)
}

// InvalidOrderError reports the first position in a combine set whose
// index is not strictly smaller than its successor. Strict ordering also
// rules out duplicates.
type InvalidOrderError struct {
	Position int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("dvrf: indices not strictly increasing at position %d", e.Position)
}

// InvalidConfigError reports an unusable (threshold, members) pair.
type InvalidConfigError struct {
	Threshold int
	Members   int
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("dvrf: invalid config: threshold %d of %d members", e.Threshold, e.Members)
}
