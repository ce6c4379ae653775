package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/web-atlas/web-atlas/pkg/catalog"
	"github.com/web-atlas/web-atlas/pkg/index"
	"github.com/web-atlas/web-atlas/pkg/storage"
)

// BuildAction regenerates the index documents from the record store. With
// --watch it keeps running and rebuilds whenever a record changes.
func BuildAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	sitesDir := c.String("sites")
	outDir := c.String("out")
	locale := c.String("locale")

	if err := runBuild(logger, sitesDir, outDir, locale); err != nil {
		logger.Error("build failed", "error", err)
		os.Exit(2)
	}

	if c.Bool("watch") {
		return watch(logger, sitesDir, outDir, locale)
	}
	return nil
}

// runBuild is one full pass: load, aggregate, sort, serialize. Warnings about
// skipped records are logged and never abort; only an unwritable output
// location fails the run.
func runBuild(logger *slog.Logger, sitesDir, outDir, locale string) error {
	startTime := time.Now()

	records, warnings, err := catalog.Load(sitesDir)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("skipping record", "path", w.Path, "reason", w.Reason)
	}

	doc, entries := index.Build(records, locale)

	s := &storage.Storage{}
	written, err := index.Write(outDir, doc, entries, locale, s)
	if err != nil {
		return err
	}

	logger.Info("build complete",
		"sites", doc.TotalSites,
		"categories", len(doc.Categories),
		"skipped", len(warnings),
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	fmt.Printf("Built %d sites in %d categories -> %s\n", doc.TotalSites, len(doc.Categories), strings.Join(written, ", "))
	return nil
}

// watch rebuilds on every change under the store root. Events are debounced
// briefly because editors fire several writes per save.
func watch(logger *slog.Logger, sitesDir, outDir, locale string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(sitesDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", sitesDir, err)
	}
	// Watch existing site directories too; fsnotify is not recursive.
	dirs, err := os.ReadDir(sitesDir)
	if err != nil {
		return fmt.Errorf("failed to read store root: %w", err)
	}
	for _, d := range dirs {
		if d.IsDir() {
			if err := watcher.Add(filepath.Join(sitesDir, d.Name())); err != nil {
				logger.Warn("could not watch directory", "dir", d.Name(), "error", err)
			}
		}
	}

	logger.Info("watching for changes", "dir", sitesDir)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New site directory: start watching inside it.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("could not watch new directory", "dir", event.Name, "error", err)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(250*time.Millisecond, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-rebuild:
			if err := runBuild(logger, sitesDir, outDir, locale); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		}
	}
}
