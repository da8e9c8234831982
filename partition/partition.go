// SPDX-License-Identifier: MIT
// Package partition splits a vertex set into ordered, contiguous,
// near-equal partitions and classifies each partition's vertices as
// boundary or interior.
//
// Every function here is pure: the same ID set and count always produce the
// same partitions, in every execution mode, so runs are reproducible.
package partition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvcolor/core"
)

// ErrInvalidCount indicates a partition count below 1.
var ErrInvalidCount = errors.New("partition: count must be >= 1")

// Partition is the set of vertex IDs owned by one worker.
//
// IDs are kept sorted ascending; membership is O(1) through the set.
type Partition struct {
	// Index is the 0-based position of this partition in the split.
	Index int

	ids []int
	set map[int]struct{}
}

// New builds a Partition from ids (copied, sorted, de-duplicated).
func New(index int, ids []int) Partition {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	p := Partition{Index: index, set: make(map[int]struct{}, len(sorted))}
	p.ids = make([]int, 0, len(sorted))
	for _, id := range sorted {
		if _, dup := p.set[id]; dup {
			continue
		}
		p.set[id] = struct{}{}
		p.ids = append(p.ids, id)
	}

	return p
}

// IDs returns a copy of the member IDs, ascending.
func (p Partition) IDs() []int { return append([]int(nil), p.ids...) }

// Len returns the number of members.
func (p Partition) Len() int { return len(p.ids) }

// Contains reports whether id belongs to p.
func (p Partition) Contains(id int) bool {
	_, ok := p.set[id]
	return ok
}

// Split sorts ids ascending and cuts them into n contiguous groups.
//
// Implementation:
//   - Stage 1: Validate n (ErrInvalidCount).
//   - Stage 2: Sort a copy of ids.
//   - Stage 3: The first count%n groups take ceil(count/n) IDs, the rest take
//     floor(count/n). No group exceeds ceil(count/n), sizes differ by at most
//     one, and groups are empty when n > count.
//
// This is not fixed ceil-sized chunking: 10 IDs over 4 groups give sizes
// 3,3,2,2 rather than 3,3,3,1, so no worker is left with a sliver.
//
// Determinism:
//   - Output depends only on the ID set and n.
//
// Complexity:
//   - Time O(V·log V), Space O(V).
func Split(ids []int, n int) ([]Partition, error) {
	if n < 1 {
		return nil, fmt.Errorf("Split(n=%d): %w", n, ErrInvalidCount)
	}

	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	count := len(sorted)
	base, extra := count/n, count%n

	parts := make([]Partition, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		parts[i] = New(i, sorted[start:start+size])
		start += size
	}

	return parts, nil
}

// SplitGraph is Split over g.Vertices().
func SplitGraph(g *core.Graph, n int) ([]Partition, error) {
	return Split(g.Vertices(), n)
}

// Owners maps every member ID to the Index of the partition holding it.
func Owners(parts []Partition) map[int]int {
	out := make(map[int]int)
	for _, p := range parts {
		for _, id := range p.ids {
			out[id] = p.Index
		}
	}

	return out
}
