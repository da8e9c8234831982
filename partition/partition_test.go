package partition_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/partition"
	"github.com/stretchr/testify/require"
)

func TestSplit_InvalidCount(t *testing.T) {
	_, err := partition.Split([]int{1, 2}, 0)
	require.ErrorIs(t, err, partition.ErrInvalidCount)
}

func TestSplit_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, count := range []int{0, 1, 2, 5, 10, 17, 64} {
		for n := 1; n <= 12; n++ {
			t.Run(fmt.Sprintf("count=%d/n=%d", count, n), func(t *testing.T) {
				ids := rng.Perm(count * 3)[:count]
				parts, err := partition.Split(ids, n)
				require.NoError(t, err)
				require.Len(t, parts, n)

				ceil := (count + n - 1) / n
				seen := make(map[int]int)
				minSize, maxSize := count, 0
				for i, p := range parts {
					require.Equal(t, i, p.Index)
					require.LessOrEqual(t, p.Len(), ceil)
					minSize = min(minSize, p.Len())
					maxSize = max(maxSize, p.Len())
					for _, id := range p.IDs() {
						seen[id]++
					}
				}
				require.LessOrEqual(t, maxSize-minSize, 1)
				require.Len(t, seen, count, "union must cover every id")
				for id, times := range seen {
					require.Equal(t, 1, times, "id %d in more than one partition", id)
				}
			})
		}
	}
}

func TestSplit_ContiguousAndOrdered(t *testing.T) {
	parts, err := partition.Split([]int{9, 3, 7, 1, 5, 0, 2}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, parts[0].IDs())
	require.Equal(t, []int{3, 5}, parts[1].IDs())
	require.Equal(t, []int{7, 9}, parts[2].IDs())
}

func TestSplit_BalancedNotFixedChunks(t *testing.T) {
	parts, err := partition.Split([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 4)
	require.NoError(t, err)

	sizes := make([]int, len(parts))
	for i, p := range parts {
		sizes[i] = p.Len()
	}
	require.Equal(t, []int{3, 3, 2, 2}, sizes)
}

func TestSplit_MoreWorkersThanVertices(t *testing.T) {
	parts, err := partition.Split([]int{0, 1, 2}, 5)
	require.NoError(t, err)
	sizes := make([]int, len(parts))
	for i, p := range parts {
		sizes[i] = p.Len()
	}
	require.Equal(t, []int{1, 1, 1, 0, 0}, sizes)
}

func TestSplit_Deterministic(t *testing.T) {
	ids := []int{14, 2, 8, 11, 5, 0, 3}
	shuffled := []int{3, 0, 5, 11, 8, 2, 14}

	a, err := partition.Split(ids, 3)
	require.NoError(t, err)
	b, err := partition.Split(shuffled, 3)
	require.NoError(t, err)
	for i := range a {
		require.Equal(t, a[i].IDs(), b[i].IDs())
	}
}

func TestOwners(t *testing.T) {
	parts, err := partition.Split([]int{0, 1, 2, 3}, 2)
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 0, 1: 0, 2: 1, 3: 1}, partition.Owners(parts))
}

func TestBoundary_CrossEdgeOnly(t *testing.T) {
	// {0,1} / {2,3} with edges 0-1, 1-2, 2-3: only 1 and 2 touch the cut.
	g := core.NewGraph()
	require.NoError(t, g.AddVertices(0, 1, 2, 3))
	g.MustAddEdge(0, 1)
	g.MustAddEdge(1, 2)
	g.MustAddEdge(2, 3)

	parts, err := partition.SplitGraph(g, 2)
	require.NoError(t, err)

	b0, err := partition.Boundary(parts[0], g)
	require.NoError(t, err)
	b1, err := partition.Boundary(parts[1], g)
	require.NoError(t, err)
	require.Equal(t, []int{1}, b0)
	require.Equal(t, []int{2}, b1)

	in0, err := partition.Interior(parts[0], g)
	require.NoError(t, err)
	require.Equal(t, []int{0}, in0)

	ext, err := partition.ExternalNeighbors(parts[0], g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, ext)
}

func TestClassify_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 40
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 0; i < 80; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			g.MustAddEdge(u, v)
		}
	}

	parts, err := partition.SplitGraph(g, 4)
	require.NoError(t, err)
	for _, p := range parts {
		boundary, interior, err := partition.Classify(p, g)
		require.NoError(t, err)
		require.Equal(t, p.Len(), len(boundary)+len(interior))

		for _, id := range boundary {
			ext, err := partition.ExternalNeighbors(p, g, id)
			require.NoError(t, err)
			require.NotEmpty(t, ext, "boundary vertex %d has no external neighbor", id)
		}
		for _, id := range interior {
			nbrs, err := g.NeighborIDs(id)
			require.NoError(t, err)
			for _, nb := range nbrs {
				require.True(t, p.Contains(nb), "interior vertex %d has external neighbor %d", id, nb)
			}
		}
	}
}

func TestBoundary_UnknownMember(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	_, err := partition.Boundary(partition.New(0, []int{0, 5}), g)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
