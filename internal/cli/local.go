package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reviewgate/reviewgate/internal/config"
	"github.com/reviewgate/reviewgate/internal/gitctx"
	"github.com/reviewgate/reviewgate/internal/logging"
	"github.com/reviewgate/reviewgate/internal/openrouter"
	"github.com/reviewgate/reviewgate/internal/output"
	"github.com/reviewgate/reviewgate/internal/review"
)

var localCmd = &cobra.Command{
	Use:   "local [rev-range]",
	Short: "Review local changes before pushing",
	Long:  "Review the unstaged working tree changes, or the diff for a revision range such as main..HEAD. Nothing is posted to GitHub.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		// Local runs never touch GitHub, only the model key is required.
		if cfg.OpenRouterKey == "" {
			fmt.Fprintln(os.Stderr, "Error: open_router_key is required (set OPEN_ROUTER_KEY)")
			exitCode = ExitAuthError
			return nil
		}

		var rawDiff string
		if len(args) == 1 {
			rawDiff, err = gitctx.Range(args[0])
		} else {
			rawDiff, err = gitctx.Unstaged()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		model, err := openrouter.NewClient(cfg.OpenRouterKey, cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		log := logging.New(cfg.LogLevel)

		v, err := review.RunLocal(context.Background(), cfg, model, log, rawDiff)
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

		if v.Skipped {
			fmt.Fprintf(os.Stdout, "Review skipped: %s\n", v.SkipReason)
			return nil
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
		return nil
	},
}

func init() {
	addReviewFlags(localCmd)
}
