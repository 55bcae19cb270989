// Package search implements the backtracking precoloring-extension
// engine: an iterative DFS that enumerates the admissible colorings of
// the precolored prefix and, for each, searches the remaining vertices
// for an extension, pruned by the constraint tables built by the instance
// package, with optional sharding across parallel OS processes.
//
// The engine is deliberately iterative rather than recursive, mirroring
// the teacher's branch-and-bound engine: a single struct carries all
// search state (the current coloring, per-color occupancy masks, the
// cursor and its bit) and a tight loop advances, backtracks, or reports
// as it goes. There is no goroutine-based parallelism here; sharding is
// a pure function of (job_number, num_jobs, parallel_depth) applied to
// one branch of the tree, intended to be run as one OS process per
// shard (see cmd/starverify).
package search
