// SPDX-License-Identifier: MIT

// Package dijkstra defines configuration options and sentinel errors
// for the label-correcting shortest-path search.
package dijkstra

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that Search was called without any source node.
	ErrNoSource = errors.New("dijkstra: no source node")

	// ErrUnreachable indicates that a goal was requested but no node
	// satisfying it was finalized before the frontier was exhausted.
	ErrUnreachable = errors.New("dijkstra: goal unreachable")

	// ErrNotReached indicates a path was requested to a node that was never reached.
	ErrNotReached = errors.New("dijkstra: node not reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Search.
//
// MaxDistance – nodes whose shortest distance exceeds this value are not
// finalized. Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Logger      – receives one Debug entry per search. Defaults to a logger
// writing to io.Discard.
type Options struct {
	MaxDistance int64
	Logger      logrus.FieldLogger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithLogger routes search diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance: math.MaxInt64 (explore all reachable nodes).
//   - Logger:      discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Logger:      discard,
	}
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
