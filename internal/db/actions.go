package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/web-atlas/web-atlas/pkg/db"
)

// SubmissionsAction lists recent pending-list intake outcomes.
func SubmissionsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	rows, err := database.ListSubmissions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No submissions recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-12s %-30s %s\n", "ID", "Created", "Status", "Slug", "URL")
	fmt.Println(strings.Repeat("-", 100))
	for _, r := range rows {
		fmt.Printf("%-6d %-20s %-12s %-30s %s\n",
			r.SubmissionID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Status,
			r.Slug,
			r.URL,
		)
		if r.Detail != "" {
			fmt.Printf("       %s\n", r.Detail)
		}
	}
	fmt.Printf("\nTotal: %d submissions\n", len(rows))
	return nil
}

// DecisionsAction lists recent review decisions.
func DecisionsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	rows, err := database.ListDecisions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list decisions: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No decisions recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-14s %-36s %s\n", "ID", "Created", "Action", "Run", "File")
	fmt.Println(strings.Repeat("-", 110))
	for _, r := range rows {
		fmt.Printf("%-6d %-20s %-14s %-36s %s\n",
			r.DecisionID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Action,
			r.RunID,
			r.FilePath,
		)
		fmt.Printf("       %s\n", r.Reason)
	}
	fmt.Printf("\nTotal: %d decisions\n", len(rows))
	return nil
}

func open(c *cli.Context) (*dbpkg.DB, error) {
	if path := c.String("db"); path != "" {
		return dbpkg.OpenAt(path)
	}
	return dbpkg.Open()
}
