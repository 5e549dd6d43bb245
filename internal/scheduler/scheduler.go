// Package scheduler drives sessions at a fixed tick interval.
//
// The simulation never schedules itself: a scheduler calls Tick, then the
// optional frame callback, until the session reports it is no longer
// active or the context is cancelled.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Session is anything that advances in fixed ticks and can finish.
type Session interface {
	Tick()
	Active() bool
}

// ErrTickLimit is returned by Manual.Run when MaxTicks is reached first.
var ErrTickLimit = errors.New("scheduler: tick limit reached")

// Stats summarizes a run.
type Stats struct {
	Ticks       int
	Overruns    int // ticks that took longer than the interval
	MaxDuration time.Duration
	Total       time.Duration
}

// AvgDuration returns the mean tick duration.
func (s Stats) AvgDuration() time.Duration {
	if s.Ticks == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Ticks)
}

type recorder struct {
	mu    sync.Mutex
	stats Stats
}

func (r *recorder) record(d, budget time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Ticks++
	r.stats.Total += d
	r.stats.MaxDuration = max(r.stats.MaxDuration, d)
	over := budget > 0 && d > budget
	if over {
		r.stats.Overruns++
	}
	return over
}

func (r *recorder) snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = Stats{}
}

// Ticker runs a session in real time.
type Ticker struct {
	Interval time.Duration
	OnFrame  func() // called after every tick, e.g. to render
	Logger   *log.Logger

	rec recorder
}

// NewTicker creates a real-time scheduler.
func NewTicker(interval time.Duration, logger *log.Logger) *Ticker {
	return &Ticker{Interval: interval, Logger: logger}
}

// Run ticks s every Interval until s becomes inactive, which returns nil,
// or ctx is cancelled, which returns ctx.Err(). A tick that has started
// always completes.
func (t *Ticker) Run(ctx context.Context, s Session) error {
	if t.Interval <= 0 {
		return errors.New("scheduler: interval must be positive")
	}
	t.rec.reset()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for s.Active() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			s.Tick()
			if t.OnFrame != nil {
				t.OnFrame()
			}
			d := time.Since(start)
			if t.rec.record(d, t.Interval) && t.Logger != nil {
				t.Logger.Debug("tick overran interval", "took", d, "interval", t.Interval)
			}
		}
	}
	return nil
}

// Stats returns the statistics of the current or last run.
func (t *Ticker) Stats() Stats { return t.rec.snapshot() }

// Manual runs ticks back to back without waiting. Tests and headless
// simulations use it in place of a Ticker.
type Manual struct {
	MaxTicks int // 0 means no limit
	OnFrame  func()

	rec recorder
}

// Run ticks s until it becomes inactive, ctx is cancelled or MaxTicks is hit.
func (m *Manual) Run(ctx context.Context, s Session) error {
	m.rec.reset()
	for n := 0; s.Active(); n++ {
		if m.MaxTicks > 0 && n >= m.MaxTicks {
			return ErrTickLimit
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		s.Tick()
		if m.OnFrame != nil {
			m.OnFrame()
		}
		m.rec.record(time.Since(start), 0)
	}
	return nil
}

// Step runs exactly n ticks, stopping early if s finishes.
// It returns the number of ticks run.
func (m *Manual) Step(s Session, n int) int {
	ran := 0
	for ; ran < n && s.Active(); ran++ {
		start := time.Now()
		s.Tick()
		if m.OnFrame != nil {
			m.OnFrame()
		}
		m.rec.record(time.Since(start), 0)
	}
	return ran
}

// Stats returns the statistics of the current or last run.
func (m *Manual) Stats() Stats { return m.rec.snapshot() }

// Runner is implemented by Ticker and Manual.
type Runner interface {
	Run(ctx context.Context, s Session) error
	Stats() Stats
}

var (
	_ Runner = (*Ticker)(nil)
	_ Runner = (*Manual)(nil)
)
