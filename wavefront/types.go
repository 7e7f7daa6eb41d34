// SPDX-License-Identifier: MIT

package wavefront

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for wavefront execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("wavefront: graph is nil")

	// ErrNoSource is returned when the source set is empty.
	ErrNoSource = errors.New("wavefront: no source node")

	// ErrNilGoal is returned when no goal test is supplied.
	ErrNilGoal = errors.New("wavefront: goal test is nil")

	// ErrUnreachable is returned when the goal can never be reached.
	ErrUnreachable = errors.New("wavefront: goal unreachable")

	// ErrTimeLimit is returned when MaxTime elapses before the goal is reached.
	ErrTimeLimit = errors.New("wavefront: time limit reached")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("wavefront: invalid option supplied")
)

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrBadOption by Search.
type Option func(*Options)

// Options holds parameters and callbacks of a search.
type Options struct {
	// StartTime is the absolute time at which the sources are occupied.
	StartTime int

	// MaxTime, if > 0, caps the number of elapsed ticks.
	MaxTime int

	// Period, if > 0, overrides graph.Periodic for cycle detection.
	Period int

	// OnStep is called after each tick with the absolute time and the
	// frontier size at that time.
	OnStep func(t, size int)

	// Logger receives one Debug entry per search.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options starting at t=0, with no time limit, the
// period taken from the graph, a no-op OnStep and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnStep: func(int, int) {},
		Logger: discard,
	}
}

// WithStartTime sets the absolute time of the sources.
// Negative values are invalid.
func WithStartTime(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: StartTime cannot be negative (%d)", ErrBadOption, t)
			return
		}
		o.StartTime = t
	}
}

// WithMaxTime stops the search after n elapsed ticks.
//
//	n > 0:  limit to n ticks
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrBadOption
func WithMaxTime(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTime cannot be negative (%d)", ErrBadOption, n)
			return
		}
		o.MaxTime = n
	}
}

// WithPeriod declares that the field repeats every p ticks.
func WithPeriod(p int) Option {
	return func(o *Options) {
		if p <= 0 {
			o.err = fmt.Errorf("%w: Period must be positive (%d)", ErrBadOption, p)
			return
		}
		o.Period = p
	}
}

// WithOnStep registers a callback run after every tick.
func WithOnStep(fn func(t, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful search.
type Result[N comparable] struct {
	// Time is the absolute time at which Reached is first occupied.
	Time int
	// Elapsed is Time minus the start time.
	Elapsed int
	// Reached is the goal node found in the frontier.
	Reached N
	// Peak is the largest frontier size seen.
	Peak int
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
