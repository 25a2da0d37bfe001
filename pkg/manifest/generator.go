package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// DocumentResult is the outcome of counting one document, handed over by
// the batch runner.
type DocumentResult struct {
	Document      string
	ReportPath    string
	RunID         string
	Language      string
	Error         error
	ErrorType     string
	WordCounts    map[string]int
	TotalTokens   int
	FileSizeBytes int64
}

// Build assembles the manifest from per-document results and their
// aggregated counts. topN bounds every keyword list.
func Build(results []DocumentResult, aggregate map[string]int, topN int, now time.Time) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt:       now.Format(time.RFC3339),
		TotalDocuments:    len(results),
		Vocabulary:        len(aggregate),
		AggregateKeywords: mapreduce.TopKeywords(aggregate, topN),
		Results:           make([]DocumentSummary, 0, len(results)),
	}

	for _, result := range results {
		summary := DocumentSummary{
			Document: result.Document,
		}

		if result.Error != nil {
			manifest.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			manifest.Successful++
			manifest.TotalTokens += result.TotalTokens
			summary.Status = "success"
			summary.ReportPath = result.ReportPath
			summary.RunID = result.RunID
			summary.SizeBytes = result.FileSizeBytes
			summary.Language = result.Language
			summary.TotalTokens = result.TotalTokens
			summary.Vocabulary = len(result.WordCounts)
			summary.TopKeywords = mapreduce.TopKeywords(result.WordCounts, topN)
		}

		manifest.Results = append(manifest.Results, summary)
	}

	return manifest
}

// Save writes the manifest into dir as summary-<date>.yaml, or .json when
// format is "json". It returns the written path.
func Save(m SummaryManifest, dir, format string, s *storage.Storage) (string, error) {
	var (
		data []byte
		err  error
		ext  string
	)
	switch strings.ToLower(format) {
	case "json":
		data, err = json.MarshalIndent(m, "", "  ")
		ext = ".json"
	case "", "yaml", "yml":
		data, err = yaml.Marshal(m)
		ext = ".yaml"
	default:
		return "", fmt.Errorf("unknown manifest format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	date := time.Now().Format("2006-01-02")
	if t, perr := time.Parse(time.RFC3339, m.GeneratedAt); perr == nil {
		date = t.Format("2006-01-02")
	}
	manifestPath := filepath.Join(dir, "summary-"+date+ext)

	if err := s.SaveFile(manifestPath, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return manifestPath, nil
}
