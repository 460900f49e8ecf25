package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/internal/output"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List built-in classifications and their policies",
	Run: func(cmd *cobra.Command, args []string) {
		if err := output.WritePolicyTable(os.Stdout, classification.NewRegistry()); err != nil {
			newLogger().Error("writing policy table", "err", err)
			exitCode = ExitRuntimeError
		}
	},
}
