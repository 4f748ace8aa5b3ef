package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

// TestConcurrentAddAndRead hammers one graph from writers and readers at once.
// Run with -race.
func TestConcurrentAddAndRead(t *testing.T) {
	const (
		writers = 8
		perW    = 100
		readers = 8
	)
	g := core.NewGraph()
	hub := "hub"
	require.NoError(t, g.AddVertex(hub))

	var wg sync.WaitGroup
	errs := make(chan error, writers*perW)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				if err := g.AddEdge(hub, strconv.Itoa(w*perW+i), 0); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				_ = g.Vertices()
				_ = g.Edges()
				_, _ = g.NeighborIDs(hub)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	deg, err := g.Degree(hub)
	require.NoError(t, err)
	require.Equal(t, writers*perW, deg)
	require.Equal(t, writers*perW, g.EdgeCount())
}
