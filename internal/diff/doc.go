// Package diff filters file sections out of a unified diff by exclusion
// pattern before the diff is sent for review.
//
// A diff is treated as an ordered sequence of sections, each introduced by
// the literal "diff --git" marker. Each exclusion pattern is tried against a
// section's path under three rules in order: exact match or literal suffix,
// basename equality, and glob ("*" and "?" wildcards) anchored at both ends.
//
// The filter fails open: a section whose path cannot be extracted is kept,
// and a pattern whose glob form does not compile simply never matches and is
// reported in [Result.Warnings]. When every section is excluded the filter
// returns a valid no-op placeholder diff instead of an empty string, so
// callers can rely on the output always being a non-empty well-formed diff.
package diff
