// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Same inputs, options, seed and constructor order give identical worlds.
//   - Constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, n int, method string) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, "AddVertex(%s): %w", id, err)
		}
	}

	return nil
}

// addEdge joins u and v, drawing a weight only on weighted graphs.
func addEdge(g *core.Graph, cfg builderConfig, u, v, method string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if err := g.AddEdge(u, v, w); err != nil {
		return builderErrorf(method, "AddEdge(%s-%s, w=%g): %w", u, v, w, err)
	}

	return nil
}
