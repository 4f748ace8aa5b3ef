package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures one run.
type Options struct {
	// MaxDistance stops exploration once the cheapest frontier cost exceeds it.
	MaxDistance float64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unlimited exploration.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance bounds exploration. Invalid values surface as
// ErrBadMaxDistance from Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds the cheapest costs and the shortest-path tree.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo reconstructs the cheapest route from Source to dest.
// ok is false if dest was not reached.
func (r *Result) PathTo(dest string) (path []string, ok bool) {
	if _, reached := r.Dist[dest]; !reached {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Farthest returns the reached place with the greatest cost, ties broken by
// the smaller ID.
func (r *Result) Farthest() (id string, cost float64) {
	for v, d := range r.Dist {
		if d > cost || (d == cost && (id == "" || v < id)) {
			id, cost = v, d
		}
	}

	return id, cost
}

// nodeItem is a heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
