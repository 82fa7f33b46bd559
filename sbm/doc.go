// Package sbm describes a dynamic multi-layer stochastic block model and
// samples adjacency supermatrices from it.
//
// 🚀 What is a dynamic multi-layer SBM?
//
//	N nodes are split into K communities of fixed sizes (Groups). The same
//	nodes are observed in L layers at T timesteps. For every (layer, time)
//	cell a K×K block-probability matrix B gives the chance of an edge
//	between a node of community a and a node of community b.
//
// ✨ What this package provides:
//   - Params: validated, typed model parameters (layers, timesteps, groups,
//     block probabilities keyed by Key{Layer, Time}).
//   - Labels / Ranges: contiguous community labelling in declared order.
//   - SampleBlock: one N×N Bernoulli adjacency block.
//   - Sample: the (L·N)×(T·N) supermatrix, layers stacked vertically and
//     timesteps concatenated horizontally.
//   - Theoretical: the (L·K)×(T·K) supermatrix of raw probabilities.
//
// ⚙️ Usage:
//
//	p, err := sbm.NewParams(2, 3, []int{50, 50}, probs)
//	if err != nil { /* ErrInvalidLayers, ErrInvalidGroups, ... */ }
//	A, err := sbm.Sample(p, sbm.WithSeed(42))
//
// Determinism:
//
//	Sampling walks cells layer-major, then timestep, then u asc, v asc.
//	A fixed seed reproduces the same supermatrix bit for bit.
//
// Missing (layer, time) entries are not checked by NewParams; Sample and
// Theoretical report them as ErrMissingBlock at first use.
package sbm
