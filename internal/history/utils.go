package history

import (
	"fmt"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/wordfreq/pkg/db"
)

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided.
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (string, error) {
	if c.NArg() == 0 {
		return LatestRunID(database)
	}
	return ResolveRunID(c.Args().First(), database)
}

// LatestRunID returns the most recently recorded run.
func LatestRunID(database *dbpkg.DB) (string, error) {
	runs, err := database.ListRuns(1)
	if err != nil {
		return "", fmt.Errorf("failed to get latest run: %w", err)
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no runs found. Run 'wordfreq count --record <file>' first")
	}
	return runs[0].RunID, nil
}

// ResolveRunID accepts a full run ID or a unique prefix of one, as printed by
// the list command.
func ResolveRunID(arg string, database *dbpkg.DB) (string, error) {
	if _, err := database.GetRun(arg); err == nil {
		return arg, nil
	}

	runs, err := database.ListRuns(0)
	if err != nil {
		return "", fmt.Errorf("failed to list runs: %w", err)
	}
	var match string
	for _, r := range runs {
		if len(arg) >= 4 && len(r.RunID) >= len(arg) && r.RunID[:len(arg)] == arg {
			if match != "" {
				return "", fmt.Errorf("run ID prefix %q is ambiguous", arg)
			}
			match = r.RunID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", dbpkg.ErrRunNotFound, arg)
	}
	return match, nil
}

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	database, err := dbpkg.Open(c.String("db-path"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func shortID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
