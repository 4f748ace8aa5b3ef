// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_watts_strogatz.go - small-world constructors.
//
// Model (Watts & Strogatz 1998):
//  1. Build RingLattice(n, k).
//  2. For j = 1..k/2 and each vertex u in index order, with probability p
//     replace edge u-(u+j) by u-w, w drawn uniformly from all vertices.
//     Draws that hit u or an existing neighbour are repeated; if u is already
//     adjacent to every other vertex the edge is left in place.
//
// Contract:
//   - n >= 1 (ErrTooFewVertices), 0 <= k <= n (ErrBadSize),
//     0 <= p <= 1 (ErrInvalidProbability).
//   - cfg.rng is required when p > 0 (ErrNeedRandSource).
//   - The edge count equals the lattice edge count; no loops or duplicates.
//   - ConnectedWattsStrogatz: tries >= 1 (ErrBadSize); each attempt draws
//     from the same RNG stream; ErrConstructFailed once tries are used up.

package builder

import (
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/bfs"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

const (
	methodWattsStrogatz          = "WattsStrogatz"
	methodConnectedWattsStrogatz = "ConnectedWattsStrogatz"

	// DefaultConnectTries matches the attempt budget commonly used for
	// connected small-world sampling.
	DefaultConnectTries = 100

	probMin = 0.0
	probMax = 1.0
)

// WattsStrogatz returns a Constructor for a small-world graph on n vertices.
// Complexity: O(n*k) expected, plus retries on dense graphs.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSmallWorld(methodWattsStrogatz, n, k, p, cfg); err != nil {
			return err
		}

		return wattsStrogatzInto(g, cfg, n, k, p, methodWattsStrogatz)
	}
}

// ConnectedWattsStrogatz returns a Constructor that samples WattsStrogatz
// graphs until one is connected, using at most tries attempts.
// Only the connected sample is merged into the target graph.
func ConnectedWattsStrogatz(n, k int, p float64, tries int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSmallWorld(methodConnectedWattsStrogatz, n, k, p, cfg); err != nil {
			return err
		}
		if tries < 1 {
			return builderErrorf(methodConnectedWattsStrogatz, "tries=%d < 1: %w", tries, ErrBadSize)
		}

		var gopts []core.GraphOption
		if g.Weighted() {
			gopts = append(gopts, core.WithWeighted())
		}
		for attempt := 0; attempt < tries; attempt++ {
			scratch := core.NewGraph(gopts...)
			if err := wattsStrogatzInto(scratch, cfg, n, k, p, methodConnectedWattsStrogatz); err != nil {
				return err
			}
			ok, err := bfs.Connected(scratch)
			if err != nil {
				return builderErrorf(methodConnectedWattsStrogatz, "Connected: %w", err)
			}
			if ok {
				return merge(g, scratch, methodConnectedWattsStrogatz)
			}
		}

		return builderErrorf(methodConnectedWattsStrogatz,
			"no connected graph after %d tries (n=%d k=%d p=%g): %w", tries, n, k, p, ErrConstructFailed)
	}
}

func validateSmallWorld(method string, n, k int, p float64, cfg builderConfig) error {
	if err := validateLattice(method, n, k); err != nil {
		return err
	}
	if !(p >= probMin && p <= probMax) {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin {
		return builderErrorf(method, "rng is required: %w", ErrNeedRandSource)
	}

	return nil
}

// wattsStrogatzInto builds the lattice in g and rewires it in place.
func wattsStrogatzInto(g *core.Graph, cfg builderConfig, n, k int, p float64, method string) error {
	if err := addVertices(g, cfg, n, method); err != nil {
		return err
	}
	if err := ringEdges(g, cfg, n, k, method); err != nil {
		return err
	}
	if p == probMin || k == n {
		return nil
	}

	rng := cfg.rng
	for j := 1; j <= k/2; j++ {
		for i := 0; i < n; i++ {
			if rng.Float64() >= p {
				continue
			}
			u, v := cfg.idFn(i), cfg.idFn((i+j)%n)
			w, ok, err := rewireTarget(g, cfg, n, u)
			if err != nil {
				return builderErrorf(method, "rewire %s: %w", u, err)
			}
			if !ok {
				continue
			}
			weight, err := g.Weight(u, v)
			if err != nil {
				return builderErrorf(method, "Weight(%s-%s): %w", u, v, err)
			}
			if err = g.RemoveEdge(u, v); err != nil {
				return builderErrorf(method, "RemoveEdge(%s-%s): %w", u, v, err)
			}
			if err = g.AddEdge(u, w, weight); err != nil {
				return builderErrorf(method, "AddEdge(%s-%s): %w", u, w, err)
			}
		}
	}

	return nil
}

// rewireTarget draws a new endpoint for u. ok is false when u is already
// adjacent to every other vertex.
func rewireTarget(g *core.Graph, cfg builderConfig, n int, u string) (string, bool, error) {
	for {
		w := cfg.idFn(cfg.rng.Intn(n))
		if w != u && !g.HasEdge(u, w) {
			return w, true, nil
		}
		deg, err := g.Degree(u)
		if err != nil {
			return "", false, err
		}
		if deg >= n-1 {
			return "", false, nil
		}
	}
}

// merge copies src's vertices and edges into dst.
func merge(dst, src *core.Graph, method string) error {
	for _, id := range src.Vertices() {
		if err := dst.AddVertex(id); err != nil {
			return builderErrorf(method, "AddVertex(%s): %w", id, err)
		}
	}
	for _, e := range src.Edges() {
		if err := dst.AddEdge(e.From, e.To, e.Weight); err != nil {
			return builderErrorf(method, "AddEdge(%s-%s): %w", e.From, e.To, err)
		}
	}

	return nil
}
