// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p); each unordered pair {i,j}, i<j, is joined
// independently with probability p. Used for comparison worlds that lack
// the lattice structure of WattsStrogatz.
//
// Contract:
//   - n >= 1 (ErrTooFewVertices), 0 <= p <= 1 (ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and draws nothing.
//
// Determinism: trials run for i ascending, then j ascending.

package builder

import (
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n, p).
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w",
				n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, n, methodRandomSparse); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, u, cfg.idFn(j), methodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
