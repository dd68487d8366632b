// Package acksearch exposes the teleporter confirmation-value solver: an
// exhaustive scan for the p that makes the three-argument Ackermann variant
// A(m, n, p) evaluate to a target under mod-32768 arithmetic.
package acksearch

import (
	"context"
	"errors"

	"ackgo/internal/ack"
	"ackgo/internal/core"
	"ackgo/internal/search"
)

// Solver owns one search configuration and the memo table the scan runs
// with. The table is allocated once and reset per candidate. A Solver is not
// safe for concurrent use.
type Solver struct {
	cfg   core.SearchConfig
	cache *ack.Cache
}

// New validates cfg and allocates a solver for it.
func New(cfg core.SearchConfig) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, cache: ack.NewCache()}, nil
}

// Solve scans the configured candidate range in increasing order and returns
// the first p with A(M, N, p) == Target. found is false with a nil error
// when the whole range was tried without a match; a non-nil error only
// reports context cancellation.
func (s *Solver) Solve(ctx context.Context) (p core.Word, found bool, err error) {
	p, err = search.Search(ctx, s.cfg, s.cache)
	if err != nil {
		var noSolution core.NoSolutionError
		if errors.As(err, &noSolution) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return p, true, nil
}

// Evaluate computes A(m, n, p) on a freshly reset table, independent of any
// previous Solve run. Useful for verifying a reported solution. m must not
// exceed core.MaxM.
func (s *Solver) Evaluate(m, n, p core.Word) core.Word {
	s.cache.Reset()
	return ack.Evaluate(s.cache, m, n, p)
}

// Config returns the solver's configuration.
func (s *Solver) Config() core.SearchConfig {
	return s.cfg
}
