// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors for Distance arithmetic.
var (
	// ErrOverflow indicates that Add would exceed the int64 range.
	ErrOverflow = errors.New("distance: overflow")

	// ErrNegativeDelta indicates that Add was called with a negative delta.
	ErrNegativeDelta = errors.New("distance: negative delta")
)

// Distance is either Unreached or a finite non-negative step count.
// The zero value is Unreached.
type Distance struct {
	value  int64
	finite bool
}

// Unreached returns the "no path (yet)" distance.
func Unreached() Distance {
	return Distance{}
}

// Finite returns a finite distance of n steps.
// It panics if n is negative, which is always a programming error.
func Finite(n int64) Distance {
	if n < 0 {
		panic(fmt.Sprintf("distance: Finite(%d): negative distance", n))
	}
	return Distance{value: n, finite: true}
}

// IsFinite reports whether d holds a step count.
func (d Distance) IsFinite() bool { return d.finite }

// Value returns the step count and true, or (0, false) for Unreached.
func (d Distance) Value() (int64, bool) {
	return d.value, d.finite
}

// Compare returns -1 if d < o, 0 if d == o, and +1 if d > o.
// Unreached is greater than every finite value.
func (d Distance) Compare(o Distance) int {
	switch {
	case !d.finite && !o.finite:
		return 0
	case !d.finite:
		return 1
	case !o.finite:
		return -1
	case d.value < o.value:
		return -1
	case d.value > o.value:
		return 1
	}
	return 0
}

// Less reports whether d is strictly shorter than o.
func (d Distance) Less(o Distance) bool { return d.Compare(o) < 0 }

// Add returns d extended by delta steps.
// Unreached stays Unreached; a finite sum that does not fit in int64
// yields ErrOverflow.
func (d Distance) Add(delta int64) (Distance, error) {
	if delta < 0 {
		return Distance{}, fmt.Errorf("%w: %d", ErrNegativeDelta, delta)
	}
	if !d.finite {
		return d, nil
	}
	if d.value > math.MaxInt64-delta {
		return Distance{}, fmt.Errorf("%w: %d + %d", ErrOverflow, d.value, delta)
	}
	return Distance{value: d.value + delta, finite: true}, nil
}

// Min returns the shorter of a and b (a on ties).
func Min(a, b Distance) Distance {
	if b.Less(a) {
		return b
	}
	return a
}

// String renders a finite distance in decimal and Unreached as "inf".
func (d Distance) String() string {
	if !d.finite {
		return "inf"
	}
	return strconv.FormatInt(d.value, 10)
}
