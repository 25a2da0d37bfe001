package history

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/rank"
)

// RunsAction lists recorded runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs found")
		return nil
	}

	fmt.Fprintf(out, "%-10s %-20s %-10s %-10s %-8s %s\n",
		"ID", "Created", "Words", "Distinct", "Lang", "Document")
	fmt.Fprintln(out, strings.Repeat("-", 100))

	for _, r := range runs {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(out, "%-10s %-20s %-10s %-10s %-8s %s\n",
			shortID(r.RunID),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			humanize.Comma(int64(r.TotalTokens)),
			humanize.Comma(int64(r.Vocabulary)),
			lang,
			r.Document,
		)
	}

	fmt.Fprintf(out, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(out, "\nTip: Use 'wordfreq history show <id>' to see details\n")
	return nil
}

// RunAction shows a run and its top words. Without an ID it shows the latest run.
func RunAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}
	run, err := database.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	top, err := database.TopWords(runID, c.Int("n"))
	if err != nil {
		return fmt.Errorf("failed to get top words: %w", err)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Run %s\n", run.RunID)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Created:     %s (%s)\n", run.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(run.CreatedAt))
	fmt.Fprintf(out, "Document:    %s\n", run.Document)
	if run.ReportPath != "" {
		fmt.Fprintf(out, "Report:      %s\n", run.ReportPath)
	}
	if run.Language != "" {
		fmt.Fprintf(out, "Language:    %s\n", run.Language)
	}
	fmt.Fprintf(out, "Words:       %s total, %s distinct\n",
		humanize.Comma(int64(run.TotalTokens)), humanize.Comma(int64(run.Vocabulary)))

	fmt.Fprintf(out, "\nTop %d words:\n", len(top))
	fmt.Fprintln(out, strings.Repeat("-", 60))
	return rank.Print(out, top, c.String("format"))
}

// WordAction prints how often a word appeared in a run (latest by default).
func WordAction(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return cli.Exit("Usage: wordfreq history word <word> [run-id]", 1)
	}
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	word := strings.ToLower(strings.TrimSpace(c.Args().Get(0)))

	var runID string
	if c.NArg() == 2 {
		runID, err = ResolveRunID(c.Args().Get(1), database)
	} else {
		runID, err = LatestRunID(database)
	}
	if err != nil {
		return err
	}

	count, err := database.WordCount(runID, word)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "The word '%s' appears %d times.\n", word, count)
	return nil
}

// DeleteAction removes a run and its stored counts.
func DeleteAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: wordfreq history delete <run-id>", 1)
	}
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := ResolveRunID(c.Args().First(), database)
	if err != nil {
		return err
	}
	if err := database.DeleteRun(runID); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Deleted run %s\n", runID)
	return nil
}

// Command returns the history command and its subcommands.
func Command() *cli.Command {
	dbFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "db-path",
			Usage: "history database path (default: next to the binary)",
		}
	}
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect documents recorded with --record",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded runs",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list (0 for all)"},
				},
				Action: RunsAction,
			},
			{
				Name:      "show",
				Usage:     "Show a run and its top words",
				ArgsUsage: "[run-id]",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{Name: "n", Value: 10, Usage: "number of words to show"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "table, text, json or yaml"},
				},
				Action: RunAction,
			},
			{
				Name:      "word",
				Usage:     "Look up a word's count in a run",
				ArgsUsage: "<word> [run-id]",
				Flags:     []cli.Flag{dbFlag()},
				Action:    WordAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a run",
				ArgsUsage: "<run-id>",
				Flags:     []cli.Flag{dbFlag()},
				Action:    DeleteAction,
			},
		},
	}
}
