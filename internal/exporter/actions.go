package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/pkg/export"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// DefaultCSVName is used when --out is not given.
const DefaultCSVName = "WordCountResults.csv"

// ExportAction counts one document and writes every word and its count to a
// CSV file. --top limits the rows; 0 exports the whole vocabulary.
func ExportAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: wordfreq export <filename>", 1)
	}
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	mode, err := mapreduce.ParseSortMode(c.String("sort"))
	if err != nil {
		return err
	}

	input := c.Args().First()
	loader := common.NewLoader(common.NewFetcherFor([]string{input}, cfg.CacheDir, cfg.CacheTTL, logger), logger)
	loader.DetectLanguage = false
	doc, err := loader.Load(input)
	if err != nil {
		logger.Error("failed to count document", "document", input, "error", err)
		return fmt.Errorf("an error occurred: %w", err)
	}

	entries := mapreduce.Rank(doc.Table.Entries(), common.StopWordsFor(c, cfg), mode)
	if n := c.Int("top"); n > 0 {
		entries = mapreduce.TopN(entries, n)
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, DefaultCSVName)
	}
	s := &storage.Storage{}
	if err := s.EnsureDir(filepath.Dir(outPath)); err != nil {
		return err
	}
	if s.HasFile(outPath) {
		logger.Info("overwriting existing csv", "path", outPath)
	}
	if err := export.SaveCSV(outPath, entries); err != nil {
		logger.Error("failed to export csv", "path", outPath, "error", err)
		return fmt.Errorf("an error occurred: %w", err)
	}

	logger.Info("csv exported", "document", input, "path", outPath, "rows", len(entries))
	fmt.Fprintf(c.App.Writer, "Exported %s words to %s\n", humanize.Comma(int64(len(entries))), outPath)
	return nil
}

// Command returns the export command definition.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a document's word counts as CSV",
		ArgsUsage: "<file|url>",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "CSV file to write (default: <output-dir>/" + DefaultCSVName + ")",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "directory for the default CSV file (default: output)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Value: "alpha",
				Usage: "row order: alpha or freq",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "only export the N most highly ranked rows",
			},
		}, common.StopWordFlags()...),
		Action: ExportAction,
	}
}
