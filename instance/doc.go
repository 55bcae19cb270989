// Package instance parses and represents a star-coloring verification
// instance: the graph, its palette and precoloring-prefix length, and the
// FourSet/ThreeSet blocker tables, tendril-leaf set, and symmetry-pair map
// that the search engine consumes.
//
// Loading is pure and side-effect-free with respect to the search: Load
// and LoadFile build an Instance and hand it back frozen. Nothing in this
// package mutates an Instance after construction; the search engine
// (package search) only ever reads it.
package instance
