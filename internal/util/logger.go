package util

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger tracks and prints progress over a known number of events.
type ProgressLogger struct {
	totalEvents    uint64
	prefix         string
	suffix         string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
	lastUpdateTime time.Time
}

// NewProgressLogger creates a progress logger stepping in ~5% increments.
func NewProgressLogger(totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		totalEvents: totalEvents,
		prefix:      prefix,
		suffix:      suffix,
		enabled:     enable,
		startTime:   time.Now(),
	}

	const percFraction = 20 // 5% steps
	pl.logStep = (totalEvents + percFraction - 1) / percFraction
	if pl.logStep == 0 {
		pl.logStep = 1
	}

	if enable {
		pl.nextEventToLog = pl.logStep
		pl.update(false)
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log increments the counter and updates progress if the step is reached.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Finalize prints the 100% progress update with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents = pl.totalEvents
	pl.update(true)
}

func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = (100 * pl.loggedEvents) / pl.totalEvents
	}
	if final {
		fmt.Fprintf(os.Stderr, "\r%s%d%%%s", pl.prefix, perc, pl.suffix)
		elapsed := time.Since(pl.startTime)
		fmt.Fprintf(os.Stderr, " (%.2fs) \n", elapsed.Seconds())
		return
	}
	// Throttle to at most 10 updates/sec.
	now := time.Now()
	if now.Sub(pl.lastUpdateTime) > 100*time.Millisecond {
		fmt.Fprintf(os.Stderr, "\r%s%d%%%s", pl.prefix, perc, pl.suffix)
		pl.lastUpdateTime = now
	}
}
