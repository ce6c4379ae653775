package publish

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/web-atlas/web-atlas/pkg/publish"
	"github.com/web-atlas/web-atlas/pkg/storage"
)

// PublishAction copies the built index documents into the serve directory and
// verifies them. Any failure here means a broken build, so it aborts loudly
// rather than let the UI fetch stale or missing data.
func PublishAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	s := &storage.Storage{}
	published, err := publish.Run(c.String("from"), c.String("to"), c.String("locale"), s)
	if err != nil {
		logger.Error("publish failed", "error", err)
		os.Exit(2)
	}

	for _, p := range published {
		if stats, err := s.GetFileStats(p); err == nil {
			logger.Info("published", "path", p, "size_bytes", stats.SizeBytes)
		} else {
			logger.Info("published", "path", p)
		}
	}
	fmt.Printf("Published %d documents to %s\n", len(published), c.String("to"))
	return nil
}
