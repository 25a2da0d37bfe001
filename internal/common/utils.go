package common

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/analytics"
)

// NewLogger builds the JSON stderr logger every action uses.
// --quiet keeps errors only, --verbose adds debug output.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		logLevel = slog.LevelError
	case c.Bool("verbose"):
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by --config (or the default file
// when present) and applies any flags the user set on top of it.
func LoadConfig(c *cli.Context) (models.Config, error) {
	path := c.String("config")
	optional := !c.IsSet("config")
	if path == "" {
		path = models.DefaultConfigFile
	}

	cfg, err := models.LoadConfig(path, optional)
	if err != nil {
		return cfg, err
	}

	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("n") {
		cfg.Top = c.Int("n")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("db-path") {
		cfg.DBPath = c.String("db-path")
	}
	if c.IsSet("stop-word") {
		cfg.StopWords = c.StringSlice("stop-word")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// StopWordsFor returns the exclusion set for ranked output: nil unless
// --stop-words is set, then the configured list or the built-in default.
func StopWordsFor(c *cli.Context, cfg models.Config) analytics.StopWords {
	if !c.Bool("stop-words") {
		return nil
	}
	if len(cfg.StopWords) > 0 {
		return analytics.NewStopWords(cfg.StopWords...)
	}
	return analytics.DefaultStopWords()
}

// ReportPath names the report for a document:
// <outputDir>/WordCountResults-<name>.txt, where name is the base name with
// every ".txt" removed. URLs use their last path segment or host.
func ReportPath(outputDir, document string) string {
	name := document
	if IsURL(document) {
		name = strings.TrimRight(strings.SplitN(document, "://", 2)[1], "/")
	}
	name = filepath.Base(filepath.ToSlash(name))
	name = strings.ReplaceAll(name, ".txt", "")
	name = sanitizeName(name)
	if name == "" {
		name = "document"
	}
	return filepath.Join(outputDir, "WordCountResults-"+name+".txt")
}

// sanitizeName replaces characters that are awkward in file names.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '?', '*', '"', '<', '>', '|', '&', '=':
			return '_'
		}
		return r
	}, name)
}

// IsURL reports whether a document argument is an http(s) URL.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// GlobalFlags are accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file (default: " + models.DefaultConfigFile + " if present)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug output",
		},
	}
}

// StopWordFlags select and override the stop-word set for ranked output.
func StopWordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "stop-words",
			Usage: "remove common stop words",
		},
		&cli.StringSliceFlag{
			Name:  "stop-word",
			Usage: "custom stop word (repeatable, replaces the configured list)",
		},
	}
}
