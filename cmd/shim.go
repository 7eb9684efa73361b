package cmd

import (
	"errors"
	"fmt"

	"github.com/rlr-github/rory-themes/internal/runner"
	"github.com/spf13/cobra"
)

// shimCmd represents the shim command
var shimCmd = &cobra.Command{
	Use:   "shim -- <command> [args...]",
	Short: "Run a command with coloured output",
	Long: `Run a command under a pseudo-terminal and colour keywords in its output.

error and failed are shown in red, warning in yellow and success in green.
Input is forwarded to the command and its exit status is returned.

Examples:
  rory-themes shim -- make test
  rory-themes shim -- ./install.sh --check`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runShim(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(shimCmd)
	shimCmd.Flags().SetInterspersed(false)
}

func runShim(cmd *cobra.Command, args []string) {
	code, err := deps.RunShim(cmd.Context(), args, deps.Stdin, deps.Stdout)
	if err != nil {
		var spawnErr *runner.SpawnError
		if errors.As(err, &spawnErr) {
			hint := "Check that the command is executable"
			if runner.IsMissingExecutable(spawnErr) {
				hint = fmt.Sprintf("Check that '%s' is installed and on your PATH", args[0])
			}
			reportError(fmt.Sprintf("Failed to start '%s'", args[0]), spawnErr.Err.Error(), hint)
			return
		}
		reportError("Command failed", err.Error(), "")
		return
	}
	if code != 0 {
		deps.Exit(code)
	}
}
