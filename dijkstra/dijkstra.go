package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

// Dijkstra computes the cheapest travel cost from source to every place
// reachable within MaxDistance.
//
// Validation order: ErrNilGraph, option errors, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	res := &Result{
		Source: source,
		Dist:   map[string]float64{source: 0},
		Prev:   make(map[string]string),
	}
	done := make(map[string]bool, g.VertexCount())
	pq := nodePQ{{id: source}}

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(nodeItem)
		if done[it.id] {
			continue
		}
		if it.dist > cfg.MaxDistance {
			// Everything left is at least as far.
			break
		}
		done[it.id] = true

		nbrs, err := g.NeighborIDs(it.id)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", it.id, err)
		}
		for _, v := range nbrs {
			if done[v] {
				continue
			}
			w, err := g.Weight(it.id, v)
			if err != nil {
				return nil, fmt.Errorf("dijkstra: weight %s-%s: %w", it.id, v, err)
			}
			nd := it.dist + w
			if old, seen := res.Dist[v]; !seen || nd < old {
				res.Dist[v] = nd
				res.Prev[v] = it.id
				heap.Push(&pq, nodeItem{id: v, dist: nd})
			}
		}
	}
	for v := range res.Dist {
		if !done[v] {
			delete(res.Dist, v)
			delete(res.Prev, v)
		}
	}

	return res, nil
}
