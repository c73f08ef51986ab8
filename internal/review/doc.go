// Package review orchestrates the reviewgate pipeline.
//
// A run gates on the optional review label, fetches the pull request diff,
// strips excluded file sections and credential-shaped strings, sends the
// result to the configured model, extracts a 0-100 score from the analysis
// text, upserts the analysis as a PR comment, and reports a pass/fail
// verdict against the minimum score. A missing score skips the gate rather
// than failing it; collaborator errors fail the whole run.
//
// Collaborators are consumed through the [Host] and [ModelClient] interfaces
// so tests can substitute in-memory fakes.
package review
