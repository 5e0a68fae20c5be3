package core

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Throttle paces outbound requests. It exists purely to be polite to the
// remote service, not for correctness; tests inject NoDelay.
type Throttle interface {
	Wait(ctx context.Context) error
}

// NoDelay returns a throttle that never waits.
func NoDelay() Throttle { return noDelay{} }

type noDelay struct{}

func (noDelay) Wait(context.Context) error { return nil }

// RandomDelay waits a uniformly random duration in [Min, Max] per call,
// honoring context cancellation.
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
	rng *rand.Rand
}

// NewRandomDelay constructs a RandomDelay throttle. Min and Max are clamped
// to sane values when misconfigured.
func NewRandomDelay(min, max time.Duration) *RandomDelay {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &RandomDelay{Min: min, Max: max, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Wait blocks for the sampled delay or until ctx is done.
func (d *RandomDelay) Wait(ctx context.Context) error {
	span := d.Max - d.Min
	delay := d.Min
	if span > 0 {
		delay += time.Duration(d.rng.Int63n(int64(span) + 1))
	}
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ThrottleFromEnv builds the production throttle from environment variables.
//
//	MEMBERDIR_DELAY_MIN_MS: lower bound in milliseconds (default 1000)
//	MEMBERDIR_DELAY_MAX_MS: upper bound in milliseconds (default 2000)
func ThrottleFromEnv() Throttle {
	min := envMillis("MEMBERDIR_DELAY_MIN_MS", 1000)
	max := envMillis("MEMBERDIR_DELAY_MAX_MS", 2000)
	return NewRandomDelay(min, max)
}

func envMillis(name string, def int) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(def) * time.Millisecond
}
