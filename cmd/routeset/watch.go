package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/config"
	"github.com/templatelab/routeset/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the pipeline whenever the catalog changes",
	Long: `Watch runs the full pipeline once, then re-runs it whenever the
catalog file is rewritten. Each run is still a full-file batch transform.

Config file edits (paths, log level) are picked up between runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()

		logger := newLogger(cm.Get().Log.Level)
		catalogPath := filepath.Clean(cm.Get().Datasets.Catalog)

		runOnce := func() {
			registry, err := buildRegistry(cm.Get())
			if err != nil {
				logger.Error("failed to build pipeline", "error", err)
				return
			}
			if _, err := pipeline.NewRunner(registry, logger).Run(ctx); err != nil {
				logger.Error("pipeline failed", "error", err)
			}
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the directory: editors replace files rather than write in place.
		if err := watcher.Add(filepath.Dir(catalogPath)); err != nil {
			return err
		}

		logger.Info("watching catalog", "path", catalogPath)
		runOnce()

		// Saves arrive as event bursts; debounce before re-running.
		debounce := time.NewTimer(time.Hour)
		if !debounce.Stop() {
			<-debounce.C
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != catalogPath {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debounce.Reset(500 * time.Millisecond)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watch error", "error", err)
			case <-debounce.C:
				runOnce()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
