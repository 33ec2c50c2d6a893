package ember

import (
	"fmt"
	"time"
)

// MaxLimiterRate is the highest rate a Limiter can pace to; above it the interval rounds to zero.
const MaxLimiterRate = int(time.Second)

// ErrRateTooHigh is returned for rates above MaxLimiterRate.
var ErrRateTooHigh = fmt.Errorf("rate exceeds %d per second", MaxLimiterRate)

// Limiter paces a loop to a fixed number of iterations per second.
type Limiter struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewLimiter returns a Limiter for fps iterations per second. A non-positive fps never waits.
func NewLimiter(fps int) (*Limiter, error) {
	if fps <= 0 {
		return &Limiter{}, nil
	}
	if fps > MaxLimiterRate {
		return nil, fmt.Errorf("could not pace to %d fps: %w", fps, ErrRateTooHigh)
	}
	interval := time.Second / time.Duration(fps)
	return &Limiter{ticker: time.NewTicker(interval), interval: interval}, nil
}

// Interval returns the time between ticks, or zero when unpaced.
func (l *Limiter) Interval() time.Duration {
	if l == nil || l.ticker == nil {
		return 0
	}
	return l.interval
}

// Wait blocks until the next tick.
func (l *Limiter) Wait() {
	if l == nil || l.ticker == nil {
		return
	}
	<-l.ticker.C
}

// Stop releases the ticker.
func (l *Limiter) Stop() {
	if l == nil || l.ticker == nil {
		return
	}
	l.ticker.Stop()
	l.ticker = nil
}
