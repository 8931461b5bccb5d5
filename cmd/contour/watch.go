package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tsawler/contour/batch"
)

// watchDebounce is how long a file must stay quiet before it is processed,
// so half-written uploads are not picked up mid-copy.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input directory and process files as they appear",
	Long: `Watch processes the input directory like batch, then keeps running and
processes new or changed files matching the glob as they appear. Writes are
debounced so partially-copied files are not picked up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := batchConfigFromFlags(cmd)
		if cfg.InputDir == "" || cfg.OutputDir == "" {
			return fmt.Errorf("both --input and --output are required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		runner := batch.NewRunner(cfg)
		defer runner.Close()

		// Catch up on whatever is already there.
		if _, err := runner.Run(ctx); err != nil {
			return err
		}

		return watchLoop(ctx, runner, cfg)
	},
}

func watchLoop(ctx context.Context, runner *batch.Runner, cfg batch.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.InputDir, err)
	}
	logger.Info("watching", "dir", cfg.InputDir, "glob", cfg.Glob)

	var (
		mu     sync.Mutex
		timers = make(map[string]*time.Timer)
	)

	process := func(path string) {
		mu.Lock()
		delete(timers, path)
		mu.Unlock()

		if err := runner.ProcessFile(ctx, path); err != nil {
			logger.Error("process failed", "file", filepath.Base(path), "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if ok, _ := filepath.Match(cfg.Glob, filepath.Base(event.Name)); !ok {
				continue
			}

			// Debounce: restart the timer on every event for the path.
			path := event.Name
			mu.Lock()
			if t, exists := timers[path]; exists {
				t.Reset(watchDebounce)
			} else {
				timers[path] = time.AfterFunc(watchDebounce, func() { process(path) })
			}
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
