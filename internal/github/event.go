package github

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// event mirrors the slices of the Actions event payload we care about.
type event struct {
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue struct {
		Number      int `json:"number"`
		PullRequest *struct {
			URL string `json:"url"`
		} `json:"pull_request"`
	} `json:"issue"`
	Number int `json:"number"` // workflow_dispatch with an explicit input
}

// ResolvePRNumber determines the pull request number from the CI environment:
// the GITHUB_EVENT_PATH payload (pull_request, issue_comment on a PR, or
// workflow_dispatch shapes) or a refs/pull/N/... GITHUB_REF. Returns 0 when
// the run is not in a pull request context; that is a graceful skip for the
// caller, not an error.
func ResolvePRNumber() (int, error) {
	if path := os.Getenv("GITHUB_EVENT_PATH"); path != "" {
		n, err := prNumberFromEvent(path)
		if err != nil {
			return 0, err
		}
		if n != 0 {
			return n, nil
		}
	}

	if ref := os.Getenv("GITHUB_REF"); strings.HasPrefix(ref, "refs/pull/") {
		parts := strings.Split(ref, "/")
		if len(parts) >= 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
				return n, nil
			}
		}
	}

	return 0, nil
}

func prNumberFromEvent(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var ev event
	if err := json.Unmarshal(data, &ev); err != nil {
		return 0, err
	}

	if ev.PullRequest.Number != 0 {
		return ev.PullRequest.Number, nil
	}
	if ev.Issue.Number != 0 && ev.Issue.PullRequest != nil {
		return ev.Issue.Number, nil
	}
	return ev.Number, nil
}
