package batch

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rcrowley/go-metrics"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/internal/rank"
	"github.com/dtnitsch/wordfreq/pkg/db"
	"github.com/dtnitsch/wordfreq/pkg/manifest"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// BatchAction counts many documents concurrently. Every document gets its
// own table and report; the counts are then reduced into an aggregate whose
// top words are printed and written to a summary manifest.
func BatchAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if from := c.String("from"); from != "" {
		listed, err := ReadDocumentList(from)
		if err != nil {
			return err
		}
		inputs = append(inputs, listed...)
	}
	if len(inputs) == 0 {
		return cli.Exit("Usage: wordfreq batch <file|url>... (or --from <list>)", 1)
	}

	s := &storage.Storage{}
	if err := s.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	var database *db.DB
	if c.Bool("record") {
		database, err = db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
	}

	loader := common.NewLoader(common.NewFetcherFor(inputs, cfg.CacheDir, cfg.CacheTTL, logger), logger)
	loader.DetectLanguage = !c.Bool("no-detect")

	registry := metrics.NewRegistry()
	r := newRunner(loader, database, logger, registry)

	workers := max(cfg.WorkerCount, 1)
	out := c.App.Writer
	fmt.Fprintf(out, "--- Counting %d documents with %d workers ---\n", len(inputs), min(workers, len(inputs)))
	started := time.Now()
	results := r.run(PlanJobs(cfg.OutputDir, inputs), workers)
	elapsed := time.Since(started)

	// Reduce stage
	var perDocument []map[string]int
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(out, "FAILED %s: [%s] %v\n", result.Document, result.ErrorType, result.Error)
			continue
		}
		fmt.Fprintf(out, "Results saved to %s\n", result.ReportPath)
		perDocument = append(perDocument, result.WordCounts)
	}
	aggregate := mapreduce.Reduce(perDocument)

	logger.Info("batch finished",
		"documents", len(inputs),
		"failed", failed,
		"elapsed", elapsed.String(),
		"mean_count_ms", r.countTimer.Mean()/float64(time.Millisecond),
		"p95_count_ms", r.countTimer.Percentile(0.95)/float64(time.Millisecond),
		"mean_tokens", r.tokenCounts.Mean(),
		"max_tokens", r.tokenCounts.Max(),
	)

	totalTokens := int64(0)
	for _, count := range aggregate {
		totalTokens += int64(count)
	}
	fmt.Fprintf(out, "Counted %d of %d documents: %s words, %s distinct, in %s\n",
		len(perDocument), len(inputs), humanize.Comma(totalTokens), humanize.Comma(int64(len(aggregate))),
		elapsed.Round(time.Millisecond))

	if len(aggregate) > 0 {
		fmt.Fprintf(out, "\n--- Top %d Words (Aggregated) ---\n", cfg.Top)
		ranked := mapreduce.Rank(aggregate, common.StopWordsFor(c, cfg), mapreduce.SortByFrequency)
		if err := rank.Print(out, mapreduce.TopN(ranked, cfg.Top), c.String("display")); err != nil {
			return err
		}
	}

	if !c.Bool("no-manifest") {
		m := manifest.Build(toManifestResults(results), aggregate, cfg.Top, time.Now())
		manifestPath, err := manifest.Save(m, cfg.OutputDir, c.String("format"), s)
		if err != nil {
			logger.Error("failed to write summary manifest", "error", err)
			return err
		}
		fmt.Fprintf(out, "\nSummary manifest saved to: %s\n", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(inputs))
	}
	return nil
}

// PlanJobs assigns every input its report path. Inputs whose report names
// collide get a numeric suffix so no two workers write the same file.
func PlanJobs(outputDir string, inputs []string) []Job {
	jobs := make([]Job, len(inputs))
	used := make(map[string]bool, len(inputs))
	for i, input := range inputs {
		base := common.ReportPath(outputDir, input)
		path := base
		for n := 2; used[path]; n++ {
			path = strings.TrimSuffix(base, ".txt") + "-" + strconv.Itoa(n) + ".txt"
		}
		used[path] = true
		jobs[i] = Job{Index: i, Document: input, ReportPath: path}
	}
	return jobs
}

// ReadDocumentList reads one document per line from path. Blank lines and
// lines starting with '#' are skipped.
func ReadDocumentList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document list: %w", err)
	}
	defer f.Close()

	var docs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		docs = append(docs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document list: %w", err)
	}
	return docs, nil
}

// Command returns the batch command definition.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Count many documents concurrently and summarize them",
		ArgsUsage: "<file|url>...",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "file listing one document per line",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "directory for reports and the manifest (default: output)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of concurrent workers (default: 4)",
			},
			&cli.IntFlag{
				Name:  "n",
				Usage: "number of aggregate words to show (default: 10)",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "yaml",
				Usage: "manifest format: yaml or json",
			},
			&cli.StringFlag{
				Name:  "display",
				Usage: "aggregate output: table, text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "no-manifest",
				Usage: "skip the summary manifest",
			},
			&cli.BoolFlag{
				Name:  "no-detect",
				Usage: "skip language detection",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "store every document in the history database",
			},
			&cli.StringFlag{
				Name:  "db-path",
				Usage: "history database path (default: next to the binary)",
			},
		}, common.StopWordFlags()...),
		Action: BatchAction,
	}
}
