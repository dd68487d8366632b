package search

import (
	"context"
	"errors"
	"testing"

	"ackgo/internal/ack"
	"ackgo/internal/core"
)

// A(1, 2, p) = p + 3, so target 6 is hit exactly at p = 3.
func TestSearchFindsFirstMatch(t *testing.T) {
	cfg := core.SearchConfig{M: 1, N: 2, Target: 6, PStart: 0, PEnd: 10}
	p, err := Search(context.Background(), cfg, ack.NewCache())
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if p != 3 {
		t.Errorf("Search() = %d, want 3", p)
	}
}

// A(0, n, p) ignores p entirely, so every candidate matches and the scan
// must short-circuit on the very first one.
func TestSearchShortCircuits(t *testing.T) {
	cfg := core.SearchConfig{M: 0, N: 5, Target: 6, PStart: 100, PEnd: 32767}
	p, err := Search(context.Background(), cfg, ack.NewCache())
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if p != 100 {
		t.Errorf("Search() = %d, want first candidate 100", p)
	}
}

func TestSearchExhaustion(t *testing.T) {
	// A(1, 2, p) = p + 3 never hits 6 when p stops at 2.
	cfg := core.SearchConfig{M: 1, N: 2, Target: 6, PStart: 0, PEnd: 2}
	_, err := Search(context.Background(), cfg, ack.NewCache())
	var noSolution core.NoSolutionError
	if !errors.As(err, &noSolution) {
		t.Fatalf("Search() error = %v, want NoSolutionError", err)
	}
	if noSolution.Config != cfg {
		t.Errorf("NoSolutionError carries config %+v, want %+v", noSolution.Config, cfg)
	}
}

func TestSearchInvalidConfig(t *testing.T) {
	cfg := core.SearchConfig{M: 5, N: 1, Target: 6, PStart: 0, PEnd: 10}
	_, err := Search(context.Background(), cfg, ack.NewCache())
	var cfgErr core.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Search() error = %v, want ConfigError", err)
	}
}

func TestSearchContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := core.DefaultSearchConfig()
	_, err := Search(ctx, cfg, ack.NewCache())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Search() error = %v, want context.Canceled", err)
	}
}

// The scan must be usable repeatedly with one cache: stale entries from a
// previous run may never leak into the next.
func TestSearchReusesCacheSafely(t *testing.T) {
	cache := ack.NewCache()

	cfgA := core.SearchConfig{M: 3, N: 2, Target: 0, PStart: 0, PEnd: 50}
	firstA, errA := Search(context.Background(), cfgA, cache)

	cfgB := core.SearchConfig{M: 1, N: 2, Target: 6, PStart: 0, PEnd: 10}
	gotB, err := Search(context.Background(), cfgB, cache)
	if err != nil {
		t.Fatalf("second Search() error: %v", err)
	}
	if gotB != 3 {
		t.Errorf("second Search() = %d, want 3", gotB)
	}

	// Re-running the first scan on the dirtied cache must reproduce it.
	secondA, err2 := Search(context.Background(), cfgA, cache)
	if (errA == nil) != (err2 == nil) || firstA != secondA {
		t.Errorf("first scan not reproducible: (%d, %v) then (%d, %v)", firstA, errA, secondA, err2)
	}
}

// Full-domain scan for the canonical A(4, 1, p) == 6 problem. Expensive, so
// it is skipped under -short. The scan must terminate, be deterministic
// across runs, and any reported solution must survive independent
// recomputation on a fresh cache.
func TestSearchCanonicalFullDomain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-domain scan in short mode")
	}

	cfg := core.DefaultSearchConfig()

	first, err1 := Search(context.Background(), cfg, ack.NewCache())
	second, err2 := Search(context.Background(), cfg, ack.NewCache())

	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("outcome not deterministic: %v vs %v", err1, err2)
	}
	if err1 != nil {
		var noSolution core.NoSolutionError
		if !errors.As(err1, &noSolution) {
			t.Fatalf("Search() error = %v, want NoSolutionError", err1)
		}
		return
	}

	if first != second {
		t.Fatalf("solution not deterministic: %d vs %d", first, second)
	}
	t.Logf("confirmation value: %d", first)

	fresh := ack.NewCache()
	if got := ack.Evaluate(fresh, cfg.M, cfg.N, first); got != cfg.Target {
		t.Errorf("independent recomputation: A(%d, %d, %d) = %d, want %d",
			cfg.M, cfg.N, first, got, cfg.Target)
	}
}
