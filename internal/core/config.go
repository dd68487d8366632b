package core

import "fmt"

// SearchConfig holds the parameters for a confirmation-value search: the
// fixed first two evaluator arguments, the result to match, and the inclusive
// candidate range for the third argument.
type SearchConfig struct {
	M       Word // first evaluator argument
	N       Word // second evaluator argument
	Target  Word // result value that identifies a solution
	PStart  Word // first candidate, inclusive
	PEnd    Word // last candidate, inclusive
	Verbose bool
}

// DefaultSearchConfig returns the canonical search: A(4, 1, p) == 6 scanned
// over the whole word domain. These constants are fixed by the problem, not
// tunables; the config exists so narrowed runs and tests can override them.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		M:      4,
		N:      1,
		Target: 6,
		PStart: 0,
		PEnd:   MaxWord,
	}
}

// Validate checks that every field is inside the numeric domain and the
// candidate range is non-empty.
func (c SearchConfig) Validate() error {
	if c.M > MaxM {
		return ConfigError{Msg: fmt.Sprintf("m = %d exceeds maximum %d", c.M, MaxM)}
	}
	if c.N > MaxWord {
		return ConfigError{Msg: fmt.Sprintf("n = %d exceeds maximum %d", c.N, MaxWord)}
	}
	if c.Target > MaxWord {
		return ConfigError{Msg: fmt.Sprintf("target = %d exceeds maximum %d", c.Target, MaxWord)}
	}
	if c.PStart > MaxWord || c.PEnd > MaxWord {
		return ConfigError{Msg: fmt.Sprintf("candidate range [%d, %d] exceeds maximum %d", c.PStart, c.PEnd, MaxWord)}
	}
	if c.PStart > c.PEnd {
		return ConfigError{Msg: fmt.Sprintf("empty candidate range [%d, %d]", c.PStart, c.PEnd)}
	}
	return nil
}

// NumCandidates returns the number of p values the search will try.
func (c SearchConfig) NumCandidates() uint64 {
	return uint64(c.PEnd) - uint64(c.PStart) + 1
}
