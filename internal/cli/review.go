package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reviewgate/reviewgate/internal/config"
	"github.com/reviewgate/reviewgate/internal/github"
	"github.com/reviewgate/reviewgate/internal/logging"
	"github.com/reviewgate/reviewgate/internal/openrouter"
	"github.com/reviewgate/reviewgate/internal/output"
	"github.com/reviewgate/reviewgate/internal/review"
)

// Shared review flags
var (
	flagModel           string
	flagMinimumScore    int
	flagExclude         string
	flagMaxTokens       int
	flagLabel           string
	flagReasoningEffort string
	flagCustomPrompt    string
	flagLogLevel        string
)

var (
	flagOwner  string
	flagRepo   string
	flagDryRun bool
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagModel, "model", "", "Model identifier sent to OpenRouter")
	cmd.Flags().IntVar(&flagMinimumScore, "minimum-score", 0, "Fail the job when the extracted score is below this value")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file patterns (comma-separated)")
	cmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Response token cap")
	cmd.Flags().StringVar(&flagLabel, "label", "", "Only review PRs carrying this label")
	cmd.Flags().StringVar(&flagReasoningEffort, "reasoning-effort", "", "Model reasoning effort pass-through")
	cmd.Flags().StringVar(&flagCustomPrompt, "custom-prompt", "", "Replace the built-in system prompt")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagMinimumScore > 0 {
		m["minimumScore"] = strconv.Itoa(flagMinimumScore)
	}
	if flagExclude != "" {
		m["excludeFiles"] = flagExclude
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = strconv.Itoa(flagMaxTokens)
	}
	if flagLabel != "" {
		m["reviewLabel"] = flagLabel
	}
	if flagReasoningEffort != "" {
		m["reasoningEffort"] = flagReasoningEffort
	}
	if flagCustomPrompt != "" {
		m["customPrompt"] = flagCustomPrompt
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

var reviewCmd = &cobra.Command{
	Use:   "review [pr-number]",
	Short: "Review a pull request and gate on its score",
	Long:  "Fetch the PR diff from GitHub, send it for review, post the analysis as a comment, and fail when the extracted score is below the minimum.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		prNumber := 0
		if len(args) == 1 {
			prNumber, err = strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid PR number %q\n", args[0])
				exitCode = ExitUsageError
				return nil
			}
		} else {
			prNumber, err = github.ResolvePRNumber()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading event context: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			if prNumber == 0 {
				fmt.Fprintln(os.Stdout, "Not a pull request context, skipping review.")
				return nil
			}
		}

		owner, repo := flagOwner, flagRepo
		if owner == "" || repo == "" {
			detectedOwner, detectedRepo, err := github.DetectRepo()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\nUse --owner and --repo flags to specify manually.\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			if owner == "" {
				owner = detectedOwner
			}
			if repo == "" {
				repo = detectedRepo
			}
		}

		host, err := github.NewClient(cfg.GitHubToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}
		model, err := openrouter.NewClient(cfg.OpenRouterKey, cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		log := logging.New(cfg.LogLevel)

		v, err := review.Run(context.Background(), cfg, host, model, log, review.Options{
			Owner:    owner,
			Repo:     repo,
			PRNumber: prNumber,
			DryRun:   flagDryRun,
		})
		if err != nil {
			if openrouter.IsAuthError(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		reportVerdict(v, cfg)
		return nil
	},
}

func reportVerdict(v *review.Verdict, cfg config.Config) {
	if v.Skipped {
		fmt.Fprintf(os.Stdout, "Review skipped: %s\n", v.SkipReason)
		return
	}
	if flagDryRun {
		fmt.Fprintln(os.Stdout, v.Comment)
		if !v.Passed {
			exitCode = ExitGateFailed
		}
		return
	}
	output.WriteSummary(os.Stdout, output.CommentInput{
		Analysis:     v.Analysis,
		Score:        v.Score,
		ScoreFound:   v.ScoreFound,
		MinimumScore: cfg.MinimumScore,
	})
	if !v.Passed {
		exitCode = ExitGateFailed
	}
}

func init() {
	addReviewFlags(reviewCmd)
	reviewCmd.Flags().StringVar(&flagOwner, "owner", "", "Repository owner (auto-detected if omitted)")
	reviewCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository name (auto-detected if omitted)")
	reviewCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Run the review but don't post the comment")
}
