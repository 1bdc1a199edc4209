// ABOUTME: Clock and Ticker abstractions that set the sampling cadence.
// ABOUTME: SystemClock wraps time.Ticker; tests substitute a manually driven clock.

package sampler

import "time"

// Clock creates tickers. It exists so tests can drive sampling windows
// without waiting on the wall clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers one value per elapsed period.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the wall-clock implementation.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }
