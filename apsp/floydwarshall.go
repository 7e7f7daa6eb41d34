// SPDX-License-Identifier: MIT

package apsp

import (
	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/graph"
)

// FloydWarshall computes the all-pairs table over nodes, using only edges of
// g between listed nodes (edges leaving the set are ignored).
//
// Loop order is fixed (k → i → j) and relaxation is strict, so the
// accumulation order is deterministic.
//
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall[N comparable](g graph.Graph[N], nodes []N) (*Table[N], error) {
	t, err := newTable(nodes)
	if err != nil {
		return nil, err
	}
	n := len(t.keys)
	data := t.data

	// Seed: 0 on the diagonal, 1 per edge, Unreached elsewhere (zero value).
	for i, u := range t.keys {
		data[i*n+i] = distance.Finite(0)
		for _, v := range g.Neighbors(u) {
			if j, ok := t.index[v]; ok && i != j {
				data[i*n+j] = distance.Finite(1)
			}
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand distance.Distance
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if !ik.IsFinite() {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if !kj.IsFinite() {
					continue
				}
				v, _ := kj.Value()
				if cand, err = ik.Add(v); err != nil {
					return nil, err
				}
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}
	return t, nil
}
