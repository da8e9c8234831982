// SPDX-License-Identifier: MIT
// Package distributed runs the coordinator/worker coloring protocol over a
// transport.Transport.
//
// Roles are fixed by rank: rank 0 is the coordinator and holds the
// authoritative graph; ranks 1..N-1 are workers. The coordinator sends each
// worker the full topology and its partition, then serves a loop of
// Request / Update / Done messages one at a time until every worker has
// reported Done. Workers color interior vertices locally, push them in one
// Update, then color each boundary vertex after a Request/reply round trip
// that refreshes its neighbors' authoritative colors.
//
// Updates are applied unconditionally (last write wins). Two workers
// coloring adjacent boundary vertices in overlapping round trips can both
// observe the other as uncolored; the coordinator's final validation
// reports such conflicts.
package distributed
