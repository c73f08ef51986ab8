package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes form the CI contract: the job fails only on a failed gate or a
// hard error, never on a skipped review or a missing score.
const (
	ExitSuccess      = 0
	ExitGateFailed   = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "reviewgate",
	Short: "AI review gate for pull requests",
	Long:  "Reviewgate sends a change request's diff to a hosted LLM, posts the analysis as a PR comment, and gates the CI job on the extracted quality score.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	// Local runs may keep credentials in a .env file; absence is fine.
	_ = godotenv.Load()

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print reviewgate version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "reviewgate version %s\n", version)
	},
}
