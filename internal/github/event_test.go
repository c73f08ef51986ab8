package github

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEvent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePRNumber_PullRequestEvent(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", writeEvent(t, `{"pull_request":{"number":12}}`))
	t.Setenv("GITHUB_REF", "")

	n, err := ResolvePRNumber()
	if err != nil {
		t.Fatalf("ResolvePRNumber: %v", err)
	}
	if n != 12 {
		t.Errorf("n = %d, want 12", n)
	}
}

func TestResolvePRNumber_IssueCommentOnPR(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", writeEvent(t, `{"issue":{"number":8,"pull_request":{"url":"x"}}}`))
	t.Setenv("GITHUB_REF", "")

	n, err := ResolvePRNumber()
	if err != nil {
		t.Fatalf("ResolvePRNumber: %v", err)
	}
	if n != 8 {
		t.Errorf("n = %d, want 8", n)
	}
}

func TestResolvePRNumber_IssueCommentNotPR(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", writeEvent(t, `{"issue":{"number":8}}`))
	t.Setenv("GITHUB_REF", "")

	n, err := ResolvePRNumber()
	if err != nil {
		t.Fatalf("ResolvePRNumber: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 for plain issue comment", n)
	}
}

func TestResolvePRNumber_FromRef(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")
	t.Setenv("GITHUB_REF", "refs/pull/123/merge")

	n, err := ResolvePRNumber()
	if err != nil {
		t.Fatalf("ResolvePRNumber: %v", err)
	}
	if n != 123 {
		t.Errorf("n = %d, want 123", n)
	}
}

func TestResolvePRNumber_NoContext(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")
	t.Setenv("GITHUB_REF", "refs/heads/main")

	n, err := ResolvePRNumber()
	if err != nil {
		t.Fatalf("ResolvePRNumber: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 outside a PR context", n)
	}
}
