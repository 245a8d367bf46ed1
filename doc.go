// Package sugiyama computes a two-dimensional layered ("Sugiyama-style")
// drawing of a directed graph: each vertex is assigned integer (layer,
// x-position) coordinates such that edges flow predominantly in one
// direction and edge crossings are minimized.
//
// The pipeline has four phases, run independently per weakly-connected
// component: cycle removal (P0), network-simplex layer assignment (P1),
// barycenter/median crossing minimization (P2), and Brandes–Köpf horizontal
// coordinate assignment (P3). Component layouts are packed left to right.
//
// Rendering, edge routing, and the configuration/environment-variable
// façade are out of scope; this package exchanges only configuration values,
// an input graph, and a list of per-component coordinate layouts.
package sugiyama
