// Package core provides the world graph: a thread-safe, undirected, simple
// graph of named places (vertices) and links (edges).
//
// The world of the simulation is a small-world network. Each vertex is a
// place; each edge says two places exchange population. core only stores
// the topology; package builder generates it and package bfs walks it.
//
// Graph semantics:
//
//   - Undirected: AddEdge(u, v) makes v a neighbour of u and u of v.
//   - Simple: no self-loops (ErrLoopNotAllowed), no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - Unweighted by default; WithWeighted() allows non-zero float64 weights,
//     otherwise a non-zero weight is ErrBadWeight.
//   - Per-vertex metadata (map[string]interface{}) for simulation state such
//     as population or a biome label.
//
// Determinism:
//
// Vertices, NeighborIDs and Edges return sorted results, so logs and golden
// tests are stable regardless of map iteration order. Edges reports every
// undirected edge once with From < To.
//
// Concurrency:
//
// A single sync.RWMutex guards all state. Readers run in parallel; writers
// are exclusive. Metadata maps handed out by Metadata are copies.
//
// Complexity:
//
//	AddVertex, HasVertex, AddEdge, HasEdge, RemoveEdge   O(1)
//	RemoveVertex                                         O(deg(v))
//	NeighborIDs                                          O(deg(v)·log deg(v))
//	Vertices / Edges                                     O(V log V) / O(E log E)
package core
