// Package bitmask implements the fixed-width vertex-set representation
// used by the instance loader and the search engine.
//
// Width is chosen at build time: the default build uses a plain uint64
// (Width = 64); building with the "mask128" tag switches to a two-word
// 128-bit set (Width = 128). Both variants expose the identical Mask API
// so callers never branch on width, and both must agree bit-for-bit on
// any instance with n <= 64.
package bitmask
