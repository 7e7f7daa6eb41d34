// SPDX-License-Identifier: MIT

package apsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/graph"
)

// Sentinel errors for table construction and queries.
var (
	ErrEmptySet     = errors.New("apsp: interesting set is empty")
	ErrDuplicateKey = errors.New("apsp: duplicate interesting node")
	ErrUnknownNode  = errors.New("apsp: node not in table")
	ErrUnreachable  = errors.New("apsp: no path between nodes")
	ErrAsymmetric   = errors.New("apsp: distance table is not symmetric")
)

// Table is a dense, read-only distance table over a fixed key set.
// data is row-major: data[i*n+j] is the distance from keys[i] to keys[j].
type Table[N comparable] struct {
	keys  []N
	index map[N]int
	data  []distance.Distance
}

func newTable[N comparable](keys []N) (*Table[N], error) {
	if len(keys) == 0 {
		return nil, ErrEmptySet
	}
	t := &Table[N]{
		keys:  append([]N(nil), keys...),
		index: make(map[N]int, len(keys)),
		data:  make([]distance.Distance, len(keys)*len(keys)),
	}
	for i, k := range t.keys {
		if _, dup := t.index[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		t.index[k] = i
	}
	return t, nil
}

// Build computes the table for the interesting nodes of g by running one
// full dijkstra.Search per interesting source. opts are passed to every search.
func Build[N comparable](g graph.Graph[N], interesting []N, opts ...dijkstra.Option) (*Table[N], error) {
	t, err := newTable(interesting)
	if err != nil {
		return nil, err
	}
	n := len(t.keys)
	for i, src := range t.keys {
		res, err := dijkstra.Search(g, []N{src}, nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("apsp: search from %v: %w", src, err)
		}
		row := t.data[i*n : (i+1)*n]
		for j, dst := range t.keys {
			row[j] = res.Distance(dst)
		}
	}
	return t, nil
}

// Len returns the number of keys.
func (t *Table[N]) Len() int { return len(t.keys) }

// Keys returns a copy of the key set in construction order.
func (t *Table[N]) Keys() []N { return append([]N(nil), t.keys...) }

// Has reports whether k is in the key set.
func (t *Table[N]) Has(k N) bool {
	_, ok := t.index[k]
	return ok
}

// Lookup returns the raw distance from→to, Unreached included.
func (t *Table[N]) Lookup(from, to N) (distance.Distance, error) {
	i, ok := t.index[from]
	if !ok {
		return distance.Unreached(), fmt.Errorf("%w: %v", ErrUnknownNode, from)
	}
	j, ok := t.index[to]
	if !ok {
		return distance.Unreached(), fmt.Errorf("%w: %v", ErrUnknownNode, to)
	}
	return t.data[i*len(t.keys)+j], nil
}

// Distance returns the step count from→to.
func (t *Table[N]) Distance(from, to N) (int64, error) {
	d, err := t.Lookup(from, to)
	if err != nil {
		return 0, err
	}
	v, ok := d.Value()
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrUnreachable, from, to)
	}
	return v, nil
}

// At returns the distance between the i-th and j-th keys without key lookup.
// It panics on out-of-range indices, like slice indexing.
func (t *Table[N]) At(i, j int) distance.Distance {
	n := len(t.keys)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("apsp: At(%d,%d) out of range for %d keys", i, j, n))
	}
	return t.data[i*n+j]
}

// CheckSymmetric verifies d(u,v) == d(v,u) for every pair, returning
// ErrAsymmetric naming the first offending pair.
func (t *Table[N]) CheckSymmetric() error {
	n := len(t.keys)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t.data[i*n+j] != t.data[j*n+i] {
				return fmt.Errorf("%w: d(%v,%v)=%v, d(%v,%v)=%v", ErrAsymmetric,
					t.keys[i], t.keys[j], t.data[i*n+j], t.keys[j], t.keys[i], t.data[j*n+i])
			}
		}
	}
	return nil
}
