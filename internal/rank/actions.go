package rank

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/pkg/export"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
)

// TopAction counts one document and prints its top N words.
func TopAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: wordfreq top <filename>", 1)
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

	ranked := mapreduce.Rank(doc.Table.Entries(), common.StopWordsFor(c, cfg), mode)
	top := mapreduce.TopN(ranked, cfg.Top)
	logger.Debug("ranked words", "document", input, "ranked", len(ranked), "shown", len(top), "sort", mode.String())

	return Print(c.App.Writer, top, c.String("format"))
}

// Print writes entries in the requested format. An empty format picks a
// table on terminals and the plain numbered list otherwise.
func Print(w io.Writer, entries []mapreduce.Entry, format string) error {
	if format == "" {
		format = "text"
		if export.IsTerminal(w) {
			format = "table"
		}
	}

	switch strings.ToLower(format) {
	case "table":
		_, err := fmt.Fprintln(w, export.RenderTable(entries))
		return err
	case "text":
		return mapreduce.PrintTopKeywords(w, entries)
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling entries: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("error marshalling entries: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, text, json or yaml)", format)
	}
}

// Command returns the top command definition.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "top",
		Usage:     "Print the most frequent words of a document",
		ArgsUsage: "<file|url>",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "number of words to show (default: 10)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Value: "freq",
				Usage: "ordering: freq or alpha",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table, text, json or yaml (default: table on a terminal, text otherwise)",
			},
		}, common.StopWordFlags()...),
		Action: TopAction,
	}
}
