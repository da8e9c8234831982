package coloring_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

func TestLockManager_SortsAndDeduplicates(t *testing.T) {
	g := newGraph(t, 5)
	lm := coloring.NewLockManager(g)

	h, err := lm.Acquire(4, 1, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, h.IDs())
	h.Release()
	h.Release()

	h, err = lm.Acquire(1)
	require.NoError(t, err, "tokens must be free after Release")
	h.Release()
}

func TestLockManager_UnknownID(t *testing.T) {
	lm := coloring.NewLockManager(newGraph(t, 2))
	_, err := lm.Acquire(0, 9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	h, err := lm.Acquire(0)
	require.NoError(t, err, "a failed Acquire must not leave tokens held")
	h.Release()
}

// TestLockManager_OpposingOrdersNoDeadlock has goroutines request the same
// overlapping sets in opposite orders; ascending acquisition must prevent
// deadlock and the counter must see every increment.
func TestLockManager_OpposingOrdersNoDeadlock(t *testing.T) {
	lm := coloring.NewLockManager(newGraph(t, 4))
	const rounds = 500

	var (
		wg      sync.WaitGroup
		counter int
		errs    = make(chan error, 4*rounds)
	)
	sets := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0}, {3, 1, 0}}
	for _, set := range sets {
		wg.Add(1)
		go func(ids []int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				h, err := lm.Acquire(ids...)
				if err != nil {
					errs <- err
					return
				}
				counter++
				h.Release()
			}
		}(set)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, len(sets)*rounds, counter)
}
