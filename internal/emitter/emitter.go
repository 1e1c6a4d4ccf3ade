// Package emitter implements the message emitter loop: pick a random
// catalog message, tag it with a weighted severity, print it, pause,
// repeat until the context is cancelled.
package emitter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/valter-silva-au/loggen/internal/catalog"
	"github.com/valter-silva-au/loggen/internal/config"
	"github.com/valter-silva-au/loggen/internal/severity"
)

// Banner lines surrounding the log stream. Downstream collectors see
// these on the same stdout stream as the entries themselves.
const (
	startupBanner1 = "🎭 Demo journal service starting up!"
	startupBanner2 = "🎯 Ready to generate amusing log entries..."
	shutdownBanner = "🛑 Demo service shutting down gracefully..."
)

// Emitter runs the message emitter loop. It owns no goroutines: Run
// executes the loop on the calling goroutine and returns when the
// context is cancelled or a write fails.
type Emitter struct {
	out      *bufio.Writer
	chooser  *severity.Chooser
	rng      *rand.Rand
	minSleep time.Duration
	maxSleep time.Duration
}

// New builds an Emitter from the given configuration, writing entries to
// out. The rand source drives both message and severity selection;
// callers wanting reproducible output pass a seeded source.
func New(cfg *config.Config, out io.Writer, rng *rand.Rand) (*Emitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("emitter configuration: %w", err)
	}
	chooser, err := severity.NewChooser(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("building severity chooser: %w", err)
	}
	return &Emitter{
		out:      bufio.NewWriter(out),
		chooser:  chooser,
		rng:      rng,
		minSleep: cfg.MinSleep,
		maxSleep: cfg.MaxSleep,
	}, nil
}

// Run emits log entries until ctx is cancelled. Cancellation is the
// graceful path: the shutdown banner is printed and Run returns nil.
// A write failure is terminal and returns a wrapped error.
func (e *Emitter) Run(ctx context.Context) error {
	if err := e.println(startupBanner1); err != nil {
		return err
	}
	if err := e.println(startupBanner2); err != nil {
		return err
	}

	for {
		msg := catalog.Pick(e.rng)
		sev := e.chooser.Pick(e.rng)

		if err := e.println(fmt.Sprintf("[%s] %s", sev.Label(), msg)); err != nil {
			return err
		}

		if err := e.pause(ctx); err != nil {
			// Interrupted mid-sleep: shut down gracefully. The banner
			// write is best effort; stdout may already be gone.
			_ = e.println(shutdownBanner)
			return nil
		}
	}
}

// println writes one line and flushes so downstream consumers see it
// without buffering delay.
func (e *Emitter) println(line string) error {
	if _, err := fmt.Fprintln(e.out, line); err != nil {
		return fmt.Errorf("writing log line: %w", err)
	}
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("flushing log line: %w", err)
	}
	return nil
}

// pause sleeps for a duration drawn by drawSleep, returning early with
// ctx.Err() if the context is cancelled first.
func (e *Emitter) pause(ctx context.Context) error {
	timer := time.NewTimer(e.drawSleep())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// drawSleep draws a pause duration uniformly from the inclusive interval
// [minSleep, maxSleep].
func (e *Emitter) drawSleep() time.Duration {
	span := int64(e.maxSleep - e.minSleep)
	return e.minSleep + time.Duration(e.rng.Int63n(span+1))
}
