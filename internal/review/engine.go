package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reviewgate/reviewgate/internal/config"
	"github.com/reviewgate/reviewgate/internal/diff"
	"github.com/reviewgate/reviewgate/internal/github"
	"github.com/reviewgate/reviewgate/internal/openrouter"
	"github.com/reviewgate/reviewgate/internal/output"
	"github.com/reviewgate/reviewgate/internal/redact"
	"github.com/reviewgate/reviewgate/internal/score"
)

// ModelClient is the hosted language model collaborator.
type ModelClient interface {
	Complete(ctx context.Context, req openrouter.Request) (openrouter.Response, error)
}

// Host is the source-control collaborator.
type Host interface {
	GetPR(ctx context.Context, owner, repo string, prNumber int) (*github.PRInfo, error)
	GetPRDiff(ctx context.Context, owner, repo string, prNumber int) (string, error)
	UpsertComment(ctx context.Context, owner, repo string, prNumber int, marker, body string) error
}

// Options selects the pull request to review.
type Options struct {
	Owner    string
	Repo     string
	PRNumber int
	// DryRun builds the comment but does not post it.
	DryRun bool
}

// Verdict is the outcome of one pipeline run.
type Verdict struct {
	RunID      string
	Skipped    bool
	SkipReason string
	Analysis   string
	Score      int
	ScoreFound bool
	// Passed is false only when a score was extracted and fell below the
	// configured minimum. An absent score never fails the run.
	Passed  bool
	Comment string
}

// Run executes the full pipeline against a pull request: label gate, diff
// fetch, filtering, redaction, model review, score extraction, comment
// upsert, and the gating verdict. Any collaborator error fails the run.
func Run(ctx context.Context, cfg config.Config, host Host, model ModelClient, log zerolog.Logger, opts Options) (*Verdict, error) {
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Int("pr", opts.PRNumber).Logger()

	if cfg.ReviewLabel != "" {
		pr, err := host.GetPR(ctx, opts.Owner, opts.Repo, opts.PRNumber)
		if err != nil {
			return nil, fmt.Errorf("fetching PR metadata: %w", err)
		}
		if !hasLabel(pr.Labels, cfg.ReviewLabel) {
			log.Info().Str("label", cfg.ReviewLabel).Msg("PR does not carry the review label, skipping")
			return &Verdict{
				RunID:      runID,
				Skipped:    true,
				SkipReason: fmt.Sprintf("label %q not present", cfg.ReviewLabel),
				Passed:     true,
			}, nil
		}
	}

	raw, err := host.GetPRDiff(ctx, opts.Owner, opts.Repo, opts.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("fetching PR diff: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		log.Info().Msg("PR has an empty diff, nothing to review")
		return &Verdict{
			RunID:      runID,
			Skipped:    true,
			SkipReason: "empty diff",
			Passed:     true,
		}, nil
	}

	v, err := analyze(ctx, cfg, model, log, runID, raw)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		log.Info().Msg("dry run, not posting comment")
		return v, nil
	}
	if err := host.UpsertComment(ctx, opts.Owner, opts.Repo, opts.PRNumber, output.Marker, v.Comment); err != nil {
		return nil, fmt.Errorf("posting comment: %w", err)
	}
	log.Info().Msg("analysis comment posted")
	return v, nil
}

// RunLocal executes the pipeline over an already collected diff, for local
// pre-push runs. Nothing is posted; the verdict carries the rendered comment.
func RunLocal(ctx context.Context, cfg config.Config, model ModelClient, log zerolog.Logger, rawDiff string) (*Verdict, error) {
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	if strings.TrimSpace(rawDiff) == "" {
		log.Info().Msg("empty diff, nothing to review")
		return &Verdict{
			RunID:      runID,
			Skipped:    true,
			SkipReason: "empty diff",
			Passed:     true,
		}, nil
	}
	return analyze(ctx, cfg, model, log, runID, rawDiff)
}

// analyze runs the provider-independent part of the pipeline: filter, redact,
// prompt, model call, score extraction, comment rendering, verdict.
func analyze(ctx context.Context, cfg config.Config, model ModelClient, log zerolog.Logger, runID, rawDiff string) (*Verdict, error) {
	filtered := diff.Filter(rawDiff, cfg.ExcludePatterns())
	for _, w := range filtered.Warnings {
		log.Warn().Str("detail", w).Msg("diff filter warning")
	}
	if len(filtered.Excluded) > 0 {
		log.Info().Strs("paths", filtered.Excluded).Msg("excluded file sections from diff")
	}

	req := openrouter.Request{
		SystemPrompt:    SystemPrompt(cfg.CustomPrompt),
		UserPrompt:      BuildUserPrompt(redact.Secrets(filtered.Diff)),
		MaxTokens:       cfg.MaxTokens,
		ReasoningEffort: cfg.ReasoningEffort,
	}

	resp, err := model.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("model review: %w", err)
	}
	log.Info().Str("model", cfg.Model).Int("tokens", resp.TokensUsed).Msg("analysis received")

	ext := score.Extract(resp.Content)
	if ext.OutOfRange {
		log.Warn().Int("score", ext.Score).Msg("extracted score exceeded 100, clamped")
	}
	if !ext.Found {
		log.Warn().Msg("no score found in analysis, gate skipped")
	}

	v := &Verdict{
		RunID:      runID,
		Analysis:   resp.Content,
		Score:      ext.Score,
		ScoreFound: ext.Found,
		Passed:     !ext.Found || ext.Score >= cfg.MinimumScore,
	}
	v.Comment = output.BuildComment(output.CommentInput{
		Analysis:     resp.Content,
		Score:        ext.Score,
		ScoreFound:   ext.Found,
		OutOfRange:   ext.OutOfRange,
		MinimumScore: cfg.MinimumScore,
		Model:        cfg.Model,
		RunID:        runID,
	})
	return v, nil
}

func hasLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
