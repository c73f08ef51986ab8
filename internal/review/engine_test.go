package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reviewgate/reviewgate/internal/config"
	"github.com/reviewgate/reviewgate/internal/github"
	"github.com/reviewgate/reviewgate/internal/openrouter"
)

// mockModel implements ModelClient.
type mockModel struct {
	response string
	err      error
	lastReq  openrouter.Request
}

func (m *mockModel) Complete(_ context.Context, req openrouter.Request) (openrouter.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return openrouter.Response{}, m.err
	}
	return openrouter.Response{Content: m.response, TokensUsed: 10}, nil
}

// mockHost implements Host.
type mockHost struct {
	labels     []string
	diff       string
	diffErr    error
	posted     string
	postCalled bool
}

func (h *mockHost) GetPR(_ context.Context, _, _ string, n int) (*github.PRInfo, error) {
	return &github.PRInfo{Number: n, Labels: h.labels}, nil
}

func (h *mockHost) GetPRDiff(_ context.Context, _, _ string, _ int) (string, error) {
	return h.diff, h.diffErr
}

func (h *mockHost) UpsertComment(_ context.Context, _, _ string, _ int, _, body string) error {
	h.postCalled = true
	h.posted = body
	return nil
}

func testCfg() config.Config {
	cfg := config.Default()
	cfg.GitHubToken = "t"
	cfg.OpenRouterKey = "k"
	return cfg
}

const sampleDiff = "diff --git a/main.go b/main.go\n--- a/main.go\n+++ b/main.go\n@@ -1 +1,2 @@\n+x\n"

func TestRun_PassingScore(t *testing.T) {
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{response: "Looks good.\n\n[Score: 90]"}

	v, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{Owner: "o", Repo: "r", PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !v.ScoreFound || v.Score != 90 {
		t.Errorf("Score = %d Found = %v, want 90/true", v.Score, v.ScoreFound)
	}
	if !v.Passed {
		t.Error("90 >= 75 should pass")
	}
	if !host.postCalled {
		t.Error("comment should be posted")
	}
	if !strings.Contains(host.posted, "[Score: 90]") {
		t.Errorf("posted comment missing analysis:\n%s", host.posted)
	}
}

func TestRun_FailingScore(t *testing.T) {
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{response: "Many problems. Score: 40"}

	v, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Passed {
		t.Error("40 < 75 should fail the gate")
	}
	if !host.postCalled {
		t.Error("comment is posted even when the gate fails")
	}
}

func TestRun_NoScoreSucceeds(t *testing.T) {
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{response: "I have opinions but no numbers."}

	v, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.ScoreFound {
		t.Error("no score should be found")
	}
	if !v.Passed {
		t.Error("an absent score must not fail the run")
	}
}

func TestRun_LabelGateSkips(t *testing.T) {
	cfg := testCfg()
	cfg.ReviewLabel = "ai-review"
	host := &mockHost{labels: []string{"bug"}, diff: sampleDiff}
	model := &mockModel{response: "should not be called"}

	v, err := Run(context.Background(), cfg, host, model, zerolog.Nop(), Options{PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !v.Skipped || !v.Passed {
		t.Errorf("verdict = %+v, want skipped and passed", v)
	}
	if host.postCalled {
		t.Error("no comment should be posted on skip")
	}
}

func TestRun_LabelGatePasses(t *testing.T) {
	cfg := testCfg()
	cfg.ReviewLabel = "ai-review"
	host := &mockHost{labels: []string{"ai-review"}, diff: sampleDiff}
	model := &mockModel{response: "[Score: 80]"}

	v, err := Run(context.Background(), cfg, host, model, zerolog.Nop(), Options{PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Skipped {
		t.Error("labeled PR should be reviewed")
	}
}

func TestRun_EmptyDiffSkips(t *testing.T) {
	host := &mockHost{diff: "  \n"}
	model := &mockModel{}

	v, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !v.Skipped || !v.Passed {
		t.Errorf("verdict = %+v, want skipped and passed", v)
	}
}

func TestRun_DiffErrorFails(t *testing.T) {
	host := &mockHost{diffErr: errors.New("boom")}
	model := &mockModel{}

	if _, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1}); err == nil {
		t.Fatal("network error must fail the run")
	}
}

func TestRun_ModelErrorFails(t *testing.T) {
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{err: errors.New("over capacity")}

	if _, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1}); err == nil {
		t.Fatal("model error must fail the run")
	}
}

func TestRun_DryRunDoesNotPost(t *testing.T) {
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{response: "[Score: 99]"}

	v, err := Run(context.Background(), testCfg(), host, model, zerolog.Nop(), Options{PRNumber: 1, DryRun: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if host.postCalled {
		t.Error("dry run must not post")
	}
	if v.Comment == "" {
		t.Error("dry run should still render the comment")
	}
}

func TestRun_ExcludedFilesNotSentToModel(t *testing.T) {
	cfg := testCfg()
	cfg.ExcludeFiles = "*.lock"
	d := sampleDiff +
		"diff --git a/yarn.lock b/yarn.lock\n--- a/yarn.lock\n+++ b/yarn.lock\n@@ -1 +1 @@\n+dep\n"
	host := &mockHost{diff: d}
	model := &mockModel{response: "[Score: 80]"}

	if _, err := Run(context.Background(), cfg, host, model, zerolog.Nop(), Options{PRNumber: 1}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(model.lastReq.UserPrompt, "yarn.lock") {
		t.Error("excluded section leaked into the model prompt")
	}
	if !strings.Contains(model.lastReq.UserPrompt, "main.go") {
		t.Error("retained section missing from the model prompt")
	}
}

func TestRun_CustomPromptAndOptionsForwarded(t *testing.T) {
	cfg := testCfg()
	cfg.CustomPrompt = "Only check for SQL injection."
	cfg.MaxTokens = 512
	cfg.ReasoningEffort = "low"
	host := &mockHost{diff: sampleDiff}
	model := &mockModel{response: "[Score: 77]"}

	if _, err := Run(context.Background(), cfg, host, model, zerolog.Nop(), Options{PRNumber: 1}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if model.lastReq.SystemPrompt != "Only check for SQL injection." {
		t.Errorf("SystemPrompt = %q", model.lastReq.SystemPrompt)
	}
	if model.lastReq.MaxTokens != 512 || model.lastReq.ReasoningEffort != "low" {
		t.Errorf("request options not forwarded: %+v", model.lastReq)
	}
}

func TestRunLocal(t *testing.T) {
	model := &mockModel{response: "Fine. Score: 85"}

	v, err := RunLocal(context.Background(), testCfg(), model, zerolog.Nop(), sampleDiff)
	if err != nil {
		t.Fatalf("RunLocal: %v", err)
	}
	if !v.ScoreFound || v.Score != 85 || !v.Passed {
		t.Errorf("verdict = %+v", v)
	}
}

func TestRunLocal_EmptyDiff(t *testing.T) {
	model := &mockModel{}
	v, err := RunLocal(context.Background(), testCfg(), model, zerolog.Nop(), "")
	if err != nil {
		t.Fatalf("RunLocal: %v", err)
	}
	if !v.Skipped {
		t.Error("empty local diff should skip")
	}
}
