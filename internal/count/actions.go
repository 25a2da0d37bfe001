package count

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// CountAction counts one document, saves its report, optionally records the
// run in the history database, then answers word queries from stdin.
func CountAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: wordfreq count <filename>", 1)
	}
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	input := c.Args().First()
	f := common.NewFetcherFor([]string{input}, cfg.CacheDir, cfg.CacheTTL, logger)
	loader := common.NewLoader(f, logger)
	loader.DetectLanguage = !c.Bool("no-detect")

	doc, err := loader.Load(input)
	if err != nil {
		logger.Error("failed to count document", "document", input, "error", err)
		return fmt.Errorf("an error occurred: %w", err)
	}

	s := &storage.Storage{}
	if err := s.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}
	reportPath := common.ReportPath(cfg.OutputDir, input)
	if err := doc.Table.SaveResults(reportPath); err != nil {
		logger.Error("failed to save report", "path", reportPath, "error", err)
		return fmt.Errorf("an error occurred: %w", err)
	}
	var reportBytes int64
	if stats, err := s.GetFileStats(reportPath); err == nil {
		reportBytes = stats.SizeBytes
	}
	logger.Info("document counted",
		"document", input,
		"total_tokens", doc.Table.TotalTokens(),
		"vocabulary", doc.Table.Len(),
		"language", doc.Language,
		"report", reportPath,
		"report_bytes", reportBytes,
	)

	out := c.App.Writer
	fmt.Fprintf(out, "Results saved to %s\n", reportPath)
	fmt.Fprintf(out, "Word count completed for %s (%s words, %s distinct)\n",
		input, humanize.Comma(int64(doc.Table.TotalTokens())), humanize.Comma(int64(doc.Table.Len())))

	if c.Bool("record") {
		runID, err := common.RecordRun(cfg.DBPath, doc, reportPath)
		if err != nil {
			return err
		}
		logger.Info("run recorded", "run_id", runID)
		fmt.Fprintf(out, "Recorded as run %s\n", runID)
	}

	if c.Bool("no-prompt") {
		return nil
	}
	return QueryLoop(c.App.Reader, out, doc.Table)
}

// Command returns the count command definition.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count the words of a document, save the report, then answer word queries",
		ArgsUsage: "<file|url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "directory for the report (default: output)",
			},
			&cli.BoolFlag{
				Name:  "no-prompt",
				Usage: "exit after saving the report",
			},
			&cli.BoolFlag{
				Name:  "no-detect",
				Usage: "skip language detection",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "store the counts in the history database",
			},
			&cli.StringFlag{
				Name:  "db-path",
				Usage: "history database path (default: next to the binary)",
			},
		},
		Action: CountAction,
	}
}
