/*
PURPOSE:
  Defines the 'watch' subcommand.
  Re-derives and reprints the summary whenever an input file changes.

REQUIREMENTS:
  User-specified:
  - Keep the summary current while benchmark results are being exported.

  Implementation-discovered:
  - Exporters and editors replace files by rename, so the parent directories
    are watched and events are matched against the input paths.
  - Bursts of events are debounced into one reload.

ARCHITECTURE INTEGRATION:
  - Calls: loadView() from common.go, engine.Summary()

ERROR HANDLING:
  - Reload failures are logged and the watch continues.
  - Returns nil on SIGINT/SIGTERM.

USAGE:
  solver-bench watch --mode penalize
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/engine"
	"github.com/daryltucker/solver-bench/internal/output"
)

// watchDebounce coalesces the bursts of events editors and exporters emit.
const watchDebounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the summary whenever the results or metadata file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := applyOverrides(); err != nil {
			return err
		}
		return watchFiles(ctx, cmd.OutOrStdout())
	},
}

func watchFiles(ctx context.Context, w io.Writer) error {
	log := output.New("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories: many tools replace files by rename, which drops
	// a watch placed on the file itself.
	targets := map[string]bool{}
	for _, p := range []string{cfg.ResultsFile, cfg.MetadataFile} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
		}
	}

	refresh := func() {
		_, view, err := loadView(ctx)
		if err != nil {
			log.Error("Reload failed", "error", err)
			return
		}
		fmt.Fprintf(w, "\n[%s] %d results\n", time.Now().Format(time.TimeOnly), len(view.Filtered))
		fmt.Fprint(w, summaryTable(engine.Summary(view, cfg.Shift), output.ASCII).String(), "\n")
	}
	refresh()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !targets[abs] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)) {
				continue
			}
			log.Debug("Input changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", "error", err)
		case <-timer.C:
			refresh()
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addDataFlags(watchCmd)
}
