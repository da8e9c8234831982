package coloring

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// MinimalLegalColor returns the smallest color in 1..budget not used by any
// colored neighbor of id. Uncolored neighbors contribute nothing.
//
// Errors:
//   - ErrInvalidBudget: budget < 1.
//   - core.ErrVertexNotFound: id absent.
//   - ErrColorBudgetExhausted: every color in range is taken.
//
// Complexity: O(d + budget).
func MinimalLegalColor(g *core.Graph, id, budget int) (int, error) {
	if budget < 1 {
		return core.NoColor, fmt.Errorf("MinimalLegalColor(%d, budget=%d): %w", id, budget, ErrInvalidBudget)
	}

	colors, err := g.NeighborColors(id)
	if err != nil {
		return core.NoColor, fmt.Errorf("MinimalLegalColor(%d): %w", id, err)
	}

	used := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		used[c] = struct{}{}
	}

	c, err := SmallestFree(used, budget)
	if err != nil {
		return core.NoColor, fmt.Errorf("MinimalLegalColor(%d): %w", id, err)
	}

	return c, nil
}

// SmallestFree scans 1..budget ascending and returns the first color absent
// from used.
func SmallestFree(used map[int]struct{}, budget int) (int, error) {
	if budget < 1 {
		return core.NoColor, fmt.Errorf("SmallestFree(budget=%d): %w", budget, ErrInvalidBudget)
	}
	for c := 1; c <= budget; c++ {
		if _, taken := used[c]; !taken {
			return c, nil
		}
	}

	return core.NoColor, fmt.Errorf("all %d colors used by neighbors: %w", budget, ErrColorBudgetExhausted)
}
