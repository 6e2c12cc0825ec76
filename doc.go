// Package planfilt turns a dense similarity matrix into the sparse planar
// skeleton that network-science pipelines actually analyze.
//
// 🚀 What is planfilt?
//
//	A deterministic, single-machine library that filters a fully-connected
//	N×N proximity matrix down to a maximally filtered planar graph:
//		• TMFG — Triangulated Maximally Filtered Graph, grown greedily from a
//		  seed tetrahedron by filling triangular faces (planar by construction)
//		• PMFG — Planar Maximally Filtered Graph, built by inserting edges in
//		  descending weight order under an incremental planarity check
//		• Planarity — a standalone left-right planarity test usable as an
//		  independent oracle over any constructed graph
//
// ✨ Why choose planfilt?
//
//   - Reproducible – every tie is broken by a documented deterministic rule,
//     so two runs (or two machines) produce identical edge sets
//   - Scale-aware – float32 storage, percentile pre-filtering, batched and
//     parallel gain scans, cooperative cancellation for long constructions
//   - Pure Go – no cgo, a single tiny dependency surface
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — weighted undirected Graph over integer node indices
//	matrix/    — validated immutable proximity matrices + pre-filtering
//	planarity/ — left-right planarity criterion (the oracle)
//	tmfg/      — constructive strategy: seed tetrahedron + greedy face filling
//	pmfg/      — verification strategy: sorted insertion + planarity checks
//	filter/    — one-call dispatcher selecting a strategy via options
//
// Quick ASCII intuition — TMFG grows by splitting faces:
//
//	    A───B              A───B
//	    │ \ │      ⇒       │\ /│
//	    C───D              C─E─D
//
//	inserting E into face {A,C,D} replaces one open face with three.
//
// Start with filter.Construct for the one-call API, or call tmfg.Construct /
// pmfg.Construct directly when you already hold a *matrix.Matrix.
//
//	go get github.com/katalvlaran/planfilt
package planfilt
