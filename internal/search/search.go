// Package search drives the exhaustive scan for the confirmation value: the
// p that makes the Ackermann variant hit the configured target.
package search

import (
	"context"
	"time"

	"ackgo/internal/ack"
	"ackgo/internal/core"
	"ackgo/internal/util"
)

// ctxCheckStride is how many candidates are tried between context checks.
// Coarse on purpose; one candidate costs well under a millisecond and the
// hot loop should stay branch-cheap.
const ctxCheckStride = 256

// Search scans p from cfg.PStart through cfg.PEnd in increasing order,
// computing A(cfg.M, cfg.N, p) with the cache reset before every candidate,
// and returns the first p whose result equals cfg.Target. The scan short
// circuits on the first match; exhausting the range yields a
// core.NoSolutionError.
//
// The cache is exclusively owned by the scan while Search runs; no locking
// is needed because evaluation is single-threaded.
func Search(ctx context.Context, cfg core.SearchConfig, cache *ack.Cache) (core.Word, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	logger := NewSearchLogger(cfg, cfg.Verbose)
	logger.Init()
	start := time.Now()

	// p as uint32: the loop variable must survive incrementing past MaxWord.
	for p := uint32(cfg.PStart); p <= uint32(cfg.PEnd); p++ {
		if p%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		cache.Reset()
		res := ack.Evaluate(cache, cfg.M, cfg.N, core.Word(p))
		logger.Update()

		if res == cfg.Target {
			logger.Finalize(true)
			if cfg.Verbose {
				hits, misses := cache.Stats()
				util.Log(true, "candidate %d matched target %d after %v (cache: %d hits, %d misses, table %#016x)",
					p, cfg.Target, time.Since(start), hits, misses, cache.Fingerprint())
			}
			return core.Word(p), nil
		}
	}

	logger.Finalize(false)
	return 0, core.NoSolutionError{Config: cfg}
}
