package review

import "strings"

const defaultSystemPrompt = `You are a strict, expert code reviewer examining a pull request diff.

Check for:
1. Correctness — bugs, missing error handling, off-by-one errors, race conditions.
2. Security — injection, leaked secrets, unsafe input handling.
3. Maintainability — unclear naming, dead code, missing tests for new behavior.

Rules:
- Only review the changes shown in the diff. Do not comment on unchanged code.
- Be concise and actionable. Every issue must name the file it occurs in.
- End your review with an overall quality rating on its own line, in exactly
  this form:

[Score: NN]

where NN is an integer from 0 (unmergeable) to 100 (flawless).`

// SystemPrompt returns the review instructions, honoring a custom override.
func SystemPrompt(custom string) string {
	if strings.TrimSpace(custom) != "" {
		return custom
	}
	return defaultSystemPrompt
}

// BuildUserPrompt wraps the diff for the model.
func BuildUserPrompt(diff string) string {
	var b strings.Builder
	b.WriteString("Review the following code diff.\n")
	b.WriteString("\n--- BEGIN DIFF ---\n")
	b.WriteString(diff)
	b.WriteString("\n--- END DIFF ---\n")
	return b.String()
}
