// Package bfs walks the world graph breadth-first.
//
// BFS returns the visit order, hop distance and BFS-tree parent of every
// vertex reachable from a start vertex. On top of it the package answers the
// questions the world builder needs:
//
//   - Connected: is every place reachable from every other?
//   - Components: the connected components, each sorted, ordered by their
//     smallest vertex ID.
//   - Eccentricity / AveragePathLength: small-world diagnostics.
//
// Determinism:
//
// core.Graph.NeighborIDs is sorted, so the visit order is reproducible for
// a given graph.
//
// Options:
//
//	res, err := bfs.BFS(g, "0",
//		bfs.WithContext(ctx),   // cancellation checked once per dequeue
//		bfs.WithMaxDepth(3),    // 0 = unlimited, <0 = ErrOptionViolation
//		bfs.WithOnVisit(fn),    // an error aborts the walk
//	)
//
// Complexity: O(V + E) per traversal; AveragePathLength is O(V·(V + E)).
package bfs
