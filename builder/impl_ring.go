// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_ring.go - RingLattice(n, k) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); 0 <= k <= n (else ErrBadSize).
//   - Vertex i is joined to i+1..i+k/2 (mod n); odd k rounds down.
//   - k == n yields the complete graph.
//
// Determinism: edges are emitted for j = 1..k/2 outer, i = 0..n-1 inner.

package builder

import (
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

const (
	methodRingLattice = "RingLattice"
	minLatticeNodes   = 1
)

// RingLattice returns a Constructor for the circular k-nearest-neighbour
// lattice on n vertices.
// Complexity: O(n*k) edges.
func RingLattice(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateLattice(methodRingLattice, n, k); err != nil {
			return err
		}
		if err := addVertices(g, cfg, n, methodRingLattice); err != nil {
			return err
		}

		return ringEdges(g, cfg, n, k, methodRingLattice)
	}
}

func validateLattice(method string, n, k int) error {
	if n < minLatticeNodes {
		return builderErrorf(method, "n=%d < min=%d: %w", n, minLatticeNodes, ErrTooFewVertices)
	}
	if k < 0 || k > n {
		return builderErrorf(method, "k=%d not in [0,%d]: %w", k, n, ErrBadSize)
	}

	return nil
}

// ringEdges assumes vertices 0..n-1 exist.
func ringEdges(g *core.Graph, cfg builderConfig, n, k int, method string) error {
	if k == n {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j), method); err != nil {
					return err
				}
			}
		}

		return nil
	}
	for j := 1; j <= k/2; j++ {
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn((i+j)%n), method); err != nil {
				return err
			}
		}
	}

	return nil
}
