package diff

import (
	"fmt"
	"strings"
	"testing"
)

func section(path string) string {
	return fmt.Sprintf(
		"diff --git a/%s b/%s\n--- a/%s\n+++ b/%s\n@@ -1,3 +1,4 @@\n+line\n",
		path, path, path, path,
	)
}

func TestFilter_EmptyPatternsIsIdentity(t *testing.T) {
	d := section("main.go") + section("util.go")
	res := Filter(d, nil)
	if res.Diff != d {
		t.Errorf("Filter with no patterns changed the diff:\n%q", res.Diff)
	}
	if len(res.Excluded) != 0 || len(res.Warnings) != 0 {
		t.Errorf("Excluded = %v, Warnings = %v, want none", res.Excluded, res.Warnings)
	}
}

func TestFilter_ExactMatch(t *testing.T) {
	d := section("main.go") + section("package-lock.json") + section("util.go")
	res := Filter(d, []string{"package-lock.json"})
	if strings.Contains(res.Diff, "package-lock.json") {
		t.Error("package-lock.json section should be removed")
	}
	if !strings.Contains(res.Diff, "main.go") || !strings.Contains(res.Diff, "util.go") {
		t.Error("unmatched sections should be retained")
	}
	if len(res.Excluded) != 1 || res.Excluded[0] != "package-lock.json" {
		t.Errorf("Excluded = %v, want [package-lock.json]", res.Excluded)
	}
}

func TestFilter_SuffixMatch(t *testing.T) {
	d := section("frontend/package-lock.json") + section("main.go")
	res := Filter(d, []string{"package-lock.json"})
	if strings.Contains(res.Diff, "package-lock.json") {
		t.Error("nested package-lock.json should match by suffix")
	}
}

func TestFilter_BasenameMatch(t *testing.T) {
	d := section("deep/nested/Makefile") + section("main.go")
	res := Filter(d, []string{"Makefile"})
	if strings.Contains(res.Diff, "Makefile") {
		t.Error("basename pattern should match nested file")
	}
}

func TestFilter_GlobMatch(t *testing.T) {
	d := section("a.ts") + section("yarn.lock") + section("Cargo.lock") + section("c.md")
	res := Filter(d, []string{"*.lock"})
	if strings.Contains(res.Diff, ".lock") {
		t.Errorf("all .lock sections should be removed:\n%s", res.Diff)
	}
	if len(res.Excluded) != 2 {
		t.Errorf("Excluded = %v, want 2 entries", res.Excluded)
	}
}

func TestFilter_GlobQuestionMark(t *testing.T) {
	d := section("a.go") + section("ab.go")
	res := Filter(d, []string{"?.go"})
	if strings.Contains(res.Diff, "a/a.go") {
		t.Error("?.go should match a.go")
	}
	if !strings.Contains(res.Diff, "ab.go") {
		t.Error("?.go should not match ab.go")
	}
}

func TestFilter_DotIsLiteral(t *testing.T) {
	// The dot in the pattern must not act as a regex wildcard.
	d := section("axgo")
	res := Filter(d, []string{"a.go"})
	if !strings.Contains(res.Diff, "axgo") {
		t.Error("pattern a.go must not match axgo")
	}
}

func TestFilter_InvalidGlobWarnsAndNeverMatches(t *testing.T) {
	d := section("main.go") + section("util.go")
	res := Filter(d, []string{"[invalid"})
	if res.Diff != d {
		t.Error("invalid glob should not remove any section")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want 1", res.Warnings)
	}
	if !strings.Contains(res.Warnings[0], "[invalid") {
		t.Errorf("warning should name the pattern: %q", res.Warnings[0])
	}
}

func TestFilter_AllExcludedReturnsPlaceholder(t *testing.T) {
	d := section("yarn.lock") + section("Cargo.lock")
	res := Filter(d, []string{"*.lock"})
	if strings.TrimSpace(res.Diff) == "" {
		t.Fatal("filter must never return an empty diff")
	}
	if !strings.HasPrefix(res.Diff, "diff --git") {
		t.Errorf("placeholder should be a well-formed diff, got:\n%s", res.Diff)
	}
	if len(res.Excluded) != 2 {
		t.Errorf("Excluded = %v, want 2 entries", res.Excluded)
	}
}

func TestFilter_NonEmptyGuarantee(t *testing.T) {
	inputs := []string{
		section("a.go"),
		"not a diff at all",
		section("x.lock"),
	}
	for _, d := range inputs {
		res := Filter(d, []string{"*"})
		if strings.TrimSpace(res.Diff) == "" {
			t.Errorf("empty output for input %q", d)
		}
	}
}

func TestFilter_OrderPreserved(t *testing.T) {
	d := section("a.ts") + section("b.lock") + section("c.md")
	res := Filter(d, []string{"*.lock"})
	ai := strings.Index(res.Diff, "a.ts")
	ci := strings.Index(res.Diff, "c.md")
	if ai < 0 || ci < 0 {
		t.Fatalf("retained sections missing:\n%s", res.Diff)
	}
	if ai > ci {
		t.Error("section order not preserved")
	}
	if strings.Contains(res.Diff, "b.lock") {
		t.Error("b.lock should be excluded")
	}
}

func TestFilter_Idempotent(t *testing.T) {
	d := section("a.go") + section("b.lock") + section("c.go")
	patterns := []string{"*.lock", "c.go"}
	once := Filter(d, patterns)
	twice := Filter(once.Diff, patterns)
	if twice.Diff != once.Diff {
		t.Errorf("second pass changed the diff:\nfirst:\n%s\nsecond:\n%s", once.Diff, twice.Diff)
	}
}

func TestFilter_PreambleRetainedVerbatim(t *testing.T) {
	preamble := "commit 0badc0ffee\nAuthor: someone\n\n"
	d := preamble + section("a.lock")
	res := Filter(d, []string{"*.lock"})
	if !strings.HasPrefix(res.Diff, preamble) {
		t.Errorf("text before the first marker should be kept verbatim:\n%s", res.Diff)
	}
}

func TestFilter_UnparseableSegmentKept(t *testing.T) {
	// A marker with no path references must be retained (fail-open).
	d := section("ok.go") + "diff --git (garbage header)\n+something\n"
	res := Filter(d, []string{"*"})
	if !strings.Contains(res.Diff, "(garbage header)") {
		t.Error("segment without an extractable path should be kept")
	}
}

func TestPathFromSegment(t *testing.T) {
	seg := " a/src/app.ts b/src/app.ts\n--- a/src/app.ts\n+++ b/src/app.ts\n"
	if got := pathFromSegment(seg); got != "src/app.ts" {
		t.Errorf("pathFromSegment = %q, want src/app.ts", got)
	}

	// b/ fallback when no a/ reference exists.
	seg = " b/new-file.go\n+++ b/new-file.go\n"
	if got := pathFromSegment(seg); got != "new-file.go" {
		t.Errorf("pathFromSegment = %q, want new-file.go", got)
	}

	if got := pathFromSegment(" nothing useful here\n"); got != "" {
		t.Errorf("pathFromSegment = %q, want empty", got)
	}
}
