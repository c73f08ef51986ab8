// Package github provides a minimal GitHub REST API client for the reviewgate
// pipeline: fetching a pull request's unified diff and labels, and upserting
// the marker-tagged analysis comment.
//
// The PR number is resolved from the GitHub Actions event payload or
// GITHUB_REF when not given explicitly; owner and repo come from
// GITHUB_REPOSITORY or the local git remote.
package github
