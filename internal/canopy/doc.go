// Package canopy is the core of the toolkit: the node tree contract, the
// traversals over it, the focus subsystem, layout and the render/taint sweep.
//
// A Canopy value owns all mutable global state (focus and render generations,
// the taint flag and the poll schedule). It is not safe for concurrent use;
// the host feeds it events from a single goroutine.
package canopy
