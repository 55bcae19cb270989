package search

import "errors"

// Sentinel errors for engine construction. These are parameter errors
// (parallel sharding arguments), distinct from instance load errors.
var (
	// ErrInvalidJobNumber indicates job_number is not in [0, num_jobs).
	ErrInvalidJobNumber = errors.New("search: job_number must satisfy 0 <= job_number < num_jobs")

	// ErrInvalidNumJobs indicates num_jobs is not positive.
	ErrInvalidNumJobs = errors.New("search: num_jobs must be positive")

	// ErrInvalidDepth indicates parallel_depth is not in [0, n). It is
	// not checked against num_precolored_verts: a depth below p is
	// accepted and shards within the precolored prefix, per spec.
	ErrInvalidDepth = errors.New("search: parallel_depth out of range")

	// ErrInvalidPrecoloredCount indicates num_precolored_verts is not
	// in [1, n].
	ErrInvalidPrecoloredCount = errors.New("search: num_precolored_verts out of range")
)
