package search

import (
	"time"

	"ackgo/internal/core"
	"ackgo/internal/util"
)

// SearchLogger logs progress during the candidate scan. Start and end lines
// go through the standard logger; the in-scan percentage rides on a
// util.ProgressLogger keyed to the candidate count.
type SearchLogger struct {
	cfg      core.SearchConfig
	total    uint64
	tried    uint64
	enabled  bool
	timer    time.Time
	progress *util.ProgressLogger
}

// NewSearchLogger creates a logger for the scan phase.
func NewSearchLogger(cfg core.SearchConfig, enabled bool) *SearchLogger {
	return &SearchLogger{
		cfg:     cfg,
		total:   cfg.NumCandidates(),
		enabled: enabled,
	}
}

// Init starts the timer and logs the start message.
func (sl *SearchLogger) Init() {
	if !sl.enabled {
		return
	}
	util.Log(true, "scan start: A(%d, %d, p) == %d over p in [%d, %d] (%d candidates)",
		sl.cfg.M, sl.cfg.N, sl.cfg.Target, sl.cfg.PStart, sl.cfg.PEnd, sl.total)
	sl.timer = time.Now()
	sl.progress = util.NewProgressLogger(sl.total, "  scan: ", "", true)
}

// Update records that one more candidate has been evaluated.
func (sl *SearchLogger) Update() {
	if !sl.enabled {
		return
	}
	sl.tried++
	sl.progress.Log()
}

// Finalize completes the progress line and logs summary statistics.
func (sl *SearchLogger) Finalize(found bool) {
	if !sl.enabled {
		return
	}
	sl.progress.Finalize()
	elapsed := time.Since(sl.timer)
	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(sl.tried) / secs
	}
	outcome := "exhausted"
	if found {
		outcome = "matched"
	}
	util.Log(true, "scan end: %s after %d of %d candidates in %.2fs (%.0f candidates/s)",
		outcome, sl.tried, sl.total, elapsed.Seconds(), rate)
}
