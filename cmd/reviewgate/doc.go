// Reviewgate is a CI gate that reviews pull requests with a hosted LLM.
//
// It fetches the PR diff from GitHub, filters out excluded files, sends the
// result to OpenRouter for analysis, posts the analysis as a PR comment, and
// fails the job when the extracted quality score falls below the configured
// minimum. Deterministic exit codes make it suitable for GitHub Actions and
// other CI systems.
//
// Usage:
//
//	reviewgate review            # review the PR from the Actions event context
//	reviewgate review 42         # review PR #42 explicitly
//	reviewgate review --dry-run  # build the comment without posting it
//	reviewgate local             # review unstaged working tree changes
//	reviewgate local main..HEAD  # review a revision range before pushing
//
// Configuration comes from .reviewgate.yml, environment variables (including
// the GitHub Actions INPUT_* form), and command-line flags, in that order.
package main
