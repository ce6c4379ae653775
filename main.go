package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/web-atlas/web-atlas/internal/build"
	dbcmd "github.com/web-atlas/web-atlas/internal/db"
	"github.com/web-atlas/web-atlas/internal/generate"
	"github.com/web-atlas/web-atlas/internal/publish"
	"github.com/web-atlas/web-atlas/internal/review"
	"github.com/web-atlas/web-atlas/internal/serve"
	"github.com/web-atlas/web-atlas/internal/validate"
	"github.com/web-atlas/web-atlas/pkg/policy"
	"github.com/web-atlas/web-atlas/pkg/submission"
)

func main() {
	app := &cli.App{
		Name:  "atlas",
		Usage: "curated website directory toolchain",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Flatten the record store into the generated index documents",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sites", Value: "sites", Usage: "record store root"},
					&cli.StringFlag{Name: "out", Value: "dist", Usage: "build output directory"},
					&cli.StringFlag{Name: "locale", Value: "en", Usage: "locale projected into the flat document"},
					&cli.BoolFlag{Name: "watch", Usage: "keep running and rebuild on record changes"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: build.BuildAction,
			},
			{
				Name:  "publish",
				Usage: "Copy built documents to the serve directory and verify them",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Value: "dist", Usage: "build output directory"},
					&cli.StringFlag{Name: "to", Value: "public/data", Usage: "serve directory"},
					&cli.StringFlag{Name: "locale", Value: "en", Usage: "locale of the flat document"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: publish.PublishAction,
			},
			{
				Name:  "serve",
				Usage: "Host the published documents and the browsing UI",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data", Value: "public/data", Usage: "published documents directory"},
					&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: serve.ServeAction,
			},
			{
				Name:  "validate",
				Usage: "Mechanically validate URL-only submissions before any AI step",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pending", Value: submission.DefaultPendingPath, Usage: "pending-submissions list"},
					&cli.StringFlag{Name: "site-file", Usage: "also validate one URL-only site file"},
				},
				Action: validate.ValidateAction,
			},
			{
				Name:  "generate",
				Usage: "Turn validated pending-list URLs into full site records",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pending", Value: submission.DefaultPendingPath, Usage: "pending-submissions list"},
					&cli.StringFlag{Name: "sites", Value: "sites", Usage: "record store root"},
					&cli.StringFlag{Name: "policy", Value: policy.DefaultPath, Usage: "curation policy file"},
					&cli.StringFlag{Name: "db", Usage: "tracking database path (default: next to the binary)"},
					&cli.BoolFlag{Name: "skip-fetch", Usage: "skip network checks and page fetching"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: generate.GenerateAction,
			},
			{
				Name:      "review",
				Usage:     "Review changed record files against the curation policy",
				ArgsUsage: "<changed site.yml files>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sites", Value: "sites", Usage: "record store root"},
					&cli.StringFlag{Name: "policy", Value: policy.DefaultPath, Usage: "curation policy file"},
					&cli.StringFlag{Name: "marker", Value: review.ApprovedMarker, Usage: "approval marker path"},
					&cli.StringFlag{Name: "db", Usage: "tracking database path (default: next to the binary)"},
					&cli.BoolFlag{Name: "skip-fetch", Usage: "skip network reachability checks"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: review.ReviewAction,
			},
			{
				Name:  "db",
				Usage: "Inspect the submission and review tracking database",
				Subcommands: []*cli.Command{
					{
						Name:  "submissions",
						Usage: "List recent pending-list intake outcomes",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20},
							&cli.StringFlag{Name: "db", Usage: "tracking database path"},
						},
						Action: dbcmd.SubmissionsAction,
					},
					{
						Name:  "decisions",
						Usage: "List recent review decisions",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20},
							&cli.StringFlag{Name: "db", Usage: "tracking database path"},
						},
						Action: dbcmd.DecisionsAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
