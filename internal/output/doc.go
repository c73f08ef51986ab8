// Package output renders the analysis for its two destinations: the
// marker-tagged pull request comment and the console summary used by local
// and dry-run modes.
package output
