package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Run a theme's matrix animation",
	Long: `Open the theme's matrix animation in a separate terminal window.

The animation runs until it exits or you press Ctrl-C here, which stops it.

Examples:
  rory-themes preview hacker`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		runPreview(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(ctx context.Context, id string) {
	services, ok := loadServices()
	if !ok {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	theme, err := services.Catalog.Get(id)
	if err != nil {
		reportUnknownTheme(id, services.Catalog)
		return
	}

	h, err := services.Applier.StartPreview(id)
	if err != nil {
		reportPreviewError(err, services.Catalog, id)
		return
	}
	defer services.Applier.Shutdown()

	_, _ = fmt.Fprintf(deps.Stdout, "Running %s matrix animation (pid %d). Press Ctrl-C to stop.\n", theme.Name, h.PID())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-h.Done():
		_, _ = fmt.Fprintf(deps.Stdout, "Matrix animation exited after %s.\n", h.Elapsed().Round(time.Second))
	case <-ctx.Done():
		services.Applier.StopPreview()
		_, _ = fmt.Fprintf(deps.Stdout, "Matrix animation stopped after %s.\n", h.Elapsed().Round(time.Second))
	}
}
