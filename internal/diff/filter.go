package diff

import (
	"regexp"
	"strings"
)

// sectionMarker introduces each per-file section in a unified diff.
const sectionMarker = "diff --git"

// placeholder is a syntactically valid single-file no-op diff. It is
// substituted when filtering removes every section, because downstream
// consumers reject empty payloads.
const placeholder = `diff --git a/.reviewgate b/.reviewgate
--- a/.reviewgate
+++ b/.reviewgate
`

var (
	aPathRe = regexp.MustCompile(`a/(\S+)`)
	bPathRe = regexp.MustCompile(`b/(\S+)`)
)

// Result holds the outcome of filtering a diff.
type Result struct {
	// Diff is the filtered diff. Never empty for a non-empty input.
	Diff string
	// Excluded lists the file paths whose sections were removed, in input order.
	Excluded []string
	// Warnings describes patterns that could not be applied (invalid globs).
	Warnings []string
}

// Filter removes file sections whose path matches any of the exclusion
// patterns. Order of retained sections is preserved. Sections whose path
// cannot be determined are always retained.
func Filter(diff string, patterns []string) Result {
	if len(patterns) == 0 {
		return Result{Diff: diff}
	}

	compiled, warnings := compilePatterns(patterns)
	res := Result{Warnings: warnings}

	segments := strings.Split(diff, sectionMarker)

	// The first segment is whatever precedes the first marker (usually
	// empty). It is not a file section and is kept verbatim.
	var b strings.Builder
	b.WriteString(segments[0])

	retained := 0
	for _, seg := range segments[1:] {
		path := pathFromSegment(seg)
		if path != "" && matchAny(compiled, path) {
			res.Excluded = append(res.Excluded, path)
			continue
		}
		b.WriteString(sectionMarker)
		b.WriteString(seg)
		retained++
	}

	res.Diff = b.String()
	if retained == 0 && strings.TrimSpace(res.Diff) == "" && strings.TrimSpace(diff) != "" {
		res.Diff = placeholder
	}
	return res
}

// pathFromSegment extracts the file path from a diff section. The "a/" form
// wins over the "b/" form. Returns "" when neither is present.
func pathFromSegment(seg string) string {
	if m := aPathRe.FindStringSubmatch(seg); m != nil {
		return m[1]
	}
	if m := bPathRe.FindStringSubmatch(seg); m != nil {
		return m[1]
	}
	return ""
}

func matchAny(patterns []pattern, path string) bool {
	for _, p := range patterns {
		if p.matches(path) {
			return true
		}
	}
	return false
}
