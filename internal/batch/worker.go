package batch

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rcrowley/go-metrics"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/pkg/analytics"
	"github.com/dtnitsch/wordfreq/pkg/db"
	"github.com/dtnitsch/wordfreq/pkg/manifest"
)

// Job defines a document for a worker to count.
type Job struct {
	Index      int
	Document   string
	ReportPath string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index       int
	Document    string
	ReportPath  string
	RunID       string
	Language    string
	Error       error
	ErrorType   string
	WordCounts  map[string]int
	TotalTokens int
	SizeBytes   int64
}

// runner carries what every worker shares. Each job still gets its own
// Table from the loader.
type runner struct {
	loader   *common.Loader
	database *db.DB
	logger   *slog.Logger

	countTimer  metrics.Timer
	tokenCounts metrics.Histogram
}

func newRunner(loader *common.Loader, database *db.DB, logger *slog.Logger, registry metrics.Registry) *runner {
	return &runner{
		loader:      loader,
		database:    database,
		logger:      logger,
		countTimer:  metrics.NewRegisteredTimer("documents_counted", registry),
		tokenCounts: metrics.NewRegisteredHistogram("document_tokens", registry, metrics.NewUniformSample(512)),
	}
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func (r *runner) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		r.logger.Debug("worker started job", "worker", id, "document", job.Document)
		results <- r.process(id, job)
	}
}

func (r *runner) process(id int, job Job) Result {
	result := Result{Index: job.Index, Document: job.Document}
	start := time.Now()

	doc, err := r.loader.Load(job.Document)
	if err != nil {
		r.logger.Error("failed to count document", "worker", id, "document", job.Document, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		if errors.Is(err, analytics.ErrIO) {
			result.ErrorType = "read_error"
		}
		return result
	}

	if err := doc.Table.SaveResults(job.ReportPath); err != nil {
		r.logger.Error("failed to save report", "worker", id, "path", job.ReportPath, "error", err)
		result.Error = err
		result.ErrorType = "save_error"
		return result
	}
	r.countTimer.UpdateSince(start)
	r.tokenCounts.Update(int64(doc.Table.TotalTokens()))

	result.ReportPath = job.ReportPath
	result.Language = doc.Language
	result.WordCounts = doc.Table.Entries()
	result.TotalTokens = doc.Table.TotalTokens()
	result.SizeBytes = doc.SizeBytes

	if r.database != nil {
		runID, err := common.RecordRunTo(r.database, doc, job.ReportPath)
		if err != nil {
			r.logger.Error("failed to record run", "worker", id, "document", job.Document, "error", err)
			result.Error = err
			result.ErrorType = "record_error"
			return result
		}
		result.RunID = runID
	}

	r.logger.Info("document counted",
		"worker", id,
		"document", job.Document,
		"total_tokens", result.TotalTokens,
		"vocabulary", len(result.WordCounts),
		"report", job.ReportPath,
	)
	return result
}

// run fans jobs out to workerCount workers and returns the results in job
// order.
func (r *runner) run(jobList []Job, workerCount int) []Result {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(jobList) {
		workerCount = len(jobList)
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(jobList))
	results := make(chan Result, len(jobList))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go r.worker(w, &wg, jobs, results)
	}

	for _, job := range jobList {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)

	ordered := make([]Result, len(jobList))
	for result := range results {
		ordered[result.Index] = result
	}
	return ordered
}

// toManifestResults converts worker results to manifest.DocumentResult.
func toManifestResults(results []Result) []manifest.DocumentResult {
	out := make([]manifest.DocumentResult, len(results))
	for i, r := range results {
		out[i] = manifest.DocumentResult{
			Document:      r.Document,
			ReportPath:    r.ReportPath,
			RunID:         r.RunID,
			Language:      r.Language,
			Error:         r.Error,
			ErrorType:     r.ErrorType,
			WordCounts:    r.WordCounts,
			TotalTokens:   r.TotalTokens,
			FileSizeBytes: r.SizeBytes,
		}
	}
	return out
}
