// Package gitctx gathers diffs from the local git repository, so the review
// pipeline can run pre-push without a pull request.
package gitctx

import (
	"fmt"
	"os/exec"
	"strings"
)

// Unstaged returns the diff of working tree vs index.
func Unstaged() (string, error) {
	diff, err := gitOutput("diff")
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return diff, nil
}

// Range returns the combined diff for a revision range such as
// "origin/main..HEAD".
func Range(revRange string) (string, error) {
	diff, err := gitOutput("diff", revRange)
	if err != nil {
		return "", fmt.Errorf("git diff %s: %w", revRange, err)
	}
	return diff, nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s", strings.Join(args, " "), msg)
		}
		return "", err
	}
	return string(out), nil
}
