// SPDX-License-Identifier: MIT
// Package builder assembles core.Graph fixtures from deterministic topology
// constructors.
//
// BuildGraph creates a graph and applies Constructors in order. Every
// constructor adds its vertices with IDs produced by the resolved config
// (base offset + index) and emits edges in a documented, stable order, so the
// same inputs, options and seed always give the same graph.
//
// Deterministic topologies:
//
//	Complete(n), Cycle(n), Path(n), Star(n), Wheel(n),
//	CompleteBipartite(n1, n2), Grid(rows, cols)
//
// Stochastic topologies (require WithSeed or WithRand):
//
//	RandomSparse(n, p), RandomEdges(n, m), RandomRegular(n, d)
//
// Errors are sentinels matched with errors.Is. Option constructors panic on
// meaningless values; constructors themselves never panic.
package builder
