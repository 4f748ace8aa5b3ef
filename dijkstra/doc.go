// Package dijkstra computes travel costs across a weighted world.
//
// Edge weights are read as the cost of moving between two places. Dijkstra
// finds the cheapest cost from one source place to every reachable place,
// processing vertices in order of increasing cost with a lazy min-heap
// (stale heap entries are skipped rather than decreased in place).
//
// Options:
//
//	res, err := dijkstra.Dijkstra(g, "place-000",
//		dijkstra.WithMaxDistance(50), // stop once the frontier exceeds 50
//	)
//
// Unreachable places are absent from Result.Dist. Negative weights are
// rejected up front with ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
