package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Redact sensitive values from structured data",
	Long:  "Veil applies classification-based redaction policies to JSON documents so they are safe to log, share, or persist.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print veil version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "veil version %s\n", version)
	},
}

// newLogger builds the CLI logger. Level comes from VEIL_LOG_LEVEL
// (default info); output goes to stderr so it never mixes with redacted
// documents on stdout.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(os.Getenv("VEIL_LOG_LEVEL")),
		Prefix:          "veil",
		ReportTimestamp: false,
	})
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
