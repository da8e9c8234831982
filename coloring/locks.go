// File: locks.go
// Role: Per-vertex exclusive tokens with a global ascending acquisition order.
//
// Determinism:
//   - Tokens are always taken in ascending vertex ID and released in
//     descending ID, so any two Acquire calls that overlap agree on order and
//     cannot deadlock.
package coloring

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvcolor/core"
)

// LockManager owns one exclusive token per vertex of a graph.
// The token set is fixed at construction; vertices added later have none.
type LockManager struct {
	tokens map[int]*sync.Mutex
}

// NewLockManager creates one token for every vertex currently in g.
func NewLockManager(g *core.Graph) *LockManager {
	ids := g.Vertices()
	lm := &LockManager{tokens: make(map[int]*sync.Mutex, len(ids))}
	for _, id := range ids {
		lm.tokens[id] = &sync.Mutex{}
	}

	return lm
}

// Held is a set of acquired tokens. Release it exactly once.
type Held struct {
	ids      []int
	tokens   []*sync.Mutex
	released bool
}

// IDs returns the held vertex IDs in acquisition order (ascending).
func (h *Held) IDs() []int { return append([]int(nil), h.ids...) }

// Release unlocks the tokens in descending ID order. Further calls are no-ops.
func (h *Held) Release() {
	if h.released {
		return
	}
	h.released = true
	for i := len(h.tokens) - 1; i >= 0; i-- {
		h.tokens[i].Unlock()
	}
}

// Acquire sorts and de-duplicates ids, then blocks until every token is held,
// taking them in ascending order. Unknown IDs fail the call before any token
// is taken. Tokens are not reentrant: a goroutine must not Acquire an ID it
// already holds.
func (lm *LockManager) Acquire(ids ...int) (*Held, error) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	h := &Held{ids: make([]int, 0, len(sorted)), tokens: make([]*sync.Mutex, 0, len(sorted))}
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}
		tok, ok := lm.tokens[id]
		if !ok {
			return nil, fmt.Errorf("Acquire: id %d: %w", id, core.ErrVertexNotFound)
		}
		h.ids = append(h.ids, id)
		h.tokens = append(h.tokens, tok)
	}

	for _, tok := range h.tokens {
		tok.Lock()
	}

	return h, nil
}
