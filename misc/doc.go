// Package misc holds the small odds and ends of a research workflow
// that fit nowhere else.
//
// What:
//
//   - HumanSize renders a byte count with binary prefixes ("977 KB"),
//     for logging the footprint of loaded datasets.
//   - GitRevision reports the commit hash of a working tree, so runs
//     can record exactly which code produced an artifact.
//
// Errors:
//
//   - HumanSize is total over non-negative input and panics on a
//     negative size, which is always a caller bug.
//   - GitRevision wraps failures from running git, including its
//     stderr when available.
package misc
