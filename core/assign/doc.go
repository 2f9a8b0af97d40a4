// Package assign implements the load-balanced judge-to-poster assignment.
//
// Posters are processed in chronological order. For each poster the candidate
// pool is the set of judges outside the poster's lab; when that pool is too
// small the full pool is used instead. The judges with the lowest running load
// are selected, ties broken by input order, and the per-judge load counters
// and review lists are updated before the next poster is considered.
//
// All running state lives in a fresh state table per call; nothing is shared
// between invocations and the scan is strictly sequential.
package assign
