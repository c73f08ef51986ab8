// Package score extracts a normalized 0-100 quality score from free-form
// model analysis text.
//
// The extraction is a best-effort regex heuristic, by design: the source text
// has no guaranteed structure, so a missing score is an expected outcome that
// callers must treat as "no gating decision possible" rather than a failure.
package score
