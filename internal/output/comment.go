package output

import (
	"fmt"
	"io"
	"strings"
)

// Marker identifies the reviewgate comment on a pull request so re-runs edit
// it in place instead of stacking new comments.
const Marker = "<!-- reviewgate -->"

// CommentInput carries everything the comment and summary writers need.
type CommentInput struct {
	Analysis     string
	Score        int
	ScoreFound   bool
	OutOfRange   bool
	MinimumScore int
	Model        string
	RunID        string
}

// BuildComment renders the PR comment body: marker, analysis, and a gate
// footer.
func BuildComment(in CommentInput) string {
	var b strings.Builder
	b.WriteString(Marker)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(in.Analysis))
	b.WriteString("\n\n---\n\n")

	switch {
	case !in.ScoreFound:
		b.WriteString("No score could be extracted from the analysis; the review gate was skipped.\n")
	case in.Score < in.MinimumScore:
		fmt.Fprintf(&b, "**Score: %d / 100** — below the minimum of %d, the check fails.\n", in.Score, in.MinimumScore)
	default:
		fmt.Fprintf(&b, "**Score: %d / 100** — meets the minimum of %d.\n", in.Score, in.MinimumScore)
	}
	if in.OutOfRange {
		b.WriteString("_The reported score exceeded 100 and was clamped._\n")
	}

	fmt.Fprintf(&b, "\n*Reviewed by %s (run %s)*\n", in.Model, in.RunID)
	return b.String()
}

// WriteSummary prints a console summary for local and dry-run modes.
func WriteSummary(w io.Writer, in CommentInput) {
	fmt.Fprintln(w, "Review analysis")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, strings.TrimSpace(in.Analysis))
	fmt.Fprintln(w, strings.Repeat("─", 60))

	switch {
	case !in.ScoreFound:
		fmt.Fprintln(w, "Score: not found (gate skipped)")
	default:
		verdict := "pass"
		if in.Score < in.MinimumScore {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "Score: %d/100 (minimum %d) — %s\n", in.Score, in.MinimumScore, verdict)
	}
}
