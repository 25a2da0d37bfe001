package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/wordfreq/pkg/analytics"
	"github.com/dtnitsch/wordfreq/pkg/caching"
	"github.com/dtnitsch/wordfreq/pkg/detector"
	"github.com/dtnitsch/wordfreq/pkg/fetcher"
	"github.com/dtnitsch/wordfreq/pkg/parser"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// Document is a fully counted source: one fresh Table per load.
type Document struct {
	Name      string
	Table     *analytics.Table
	Language  string
	SizeBytes int64
}

// Loader turns a document argument (text file, HTML file or http(s) URL)
// into a counted Document.
type Loader struct {
	Fetcher *fetcher.Fetcher
	Parser  *parser.Parser
	Storage *storage.Storage
	Logger  *slog.Logger

	// DetectLanguage enables language detection on a sample of the text.
	DetectLanguage bool
}

// NewLoader returns a Loader with detection enabled. f may be nil when
// URLs are not expected.
func NewLoader(f *fetcher.Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		Fetcher:        f,
		Parser:         &parser.Parser{},
		Storage:        &storage.Storage{},
		Logger:         logger,
		DetectLanguage: true,
	}
}

// Load counts the document named by input.
func (l *Loader) Load(input string) (*Document, error) {
	switch {
	case IsURL(input):
		return l.loadURL(input)
	case parser.IsHTMLPath(input):
		return l.loadHTMLFile(input)
	default:
		return l.loadTextFile(input)
	}
}

// loadTextFile streams a plain text file through the table line by line.
func (l *Loader) loadTextFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", analytics.ErrIO, path, err)
	}
	defer f.Close()

	doc := &Document{Name: path, Table: analytics.NewTable()}
	if info, err := f.Stat(); err == nil {
		doc.SizeBytes = info.Size()
	}

	var r io.Reader = f
	sample := detector.NewSampler(detector.DefaultSampleBytes)
	if l.DetectLanguage {
		r = io.TeeReader(f, sample)
	}

	if err := doc.Table.IngestReader(r); err != nil {
		return nil, fmt.Errorf("ingesting %s: %w", path, err)
	}
	l.detect(doc, sample.String())
	return doc, nil
}

func (l *Loader) loadHTMLFile(path string) (*Document, error) {
	html, err := l.Storage.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", analytics.ErrIO, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return l.loadHTML(path, "file://"+filepath.ToSlash(abs), html)
}

func (l *Loader) loadURL(rawURL string) (*Document, error) {
	if l.Fetcher == nil {
		return nil, fmt.Errorf("cannot load %s: no fetcher configured", rawURL)
	}
	html, err := l.Fetcher.GetHtmlBytes(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", analytics.ErrIO, rawURL, err)
	}
	return l.loadHTML(rawURL, rawURL, html)
}

func (l *Loader) loadHTML(name, pageURL string, html []byte) (*Document, error) {
	page, err := l.Parser.ExtractText(pageURL, string(html))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	l.Logger.Debug("extracted document text", "document", name, "title", page.Title, "lines", len(page.Lines))

	doc := &Document{Name: name, Table: analytics.NewTable(), SizeBytes: int64(len(html))}
	text := page.Text()
	if err := doc.Table.IngestReader(strings.NewReader(text)); err != nil {
		return nil, fmt.Errorf("ingesting %s: %w", name, err)
	}

	sample := text
	if len(sample) > detector.DefaultSampleBytes {
		sample = sample[:detector.DefaultSampleBytes]
	}
	l.detect(doc, sample)
	return doc, nil
}

func (l *Loader) detect(doc *Document, sample string) {
	if !l.DetectLanguage {
		return
	}
	doc.Language = detector.DetectLanguage(sample)
	l.Logger.Debug("detected language", "document", doc.Name, "language", doc.Language)
}

// NewFetcherFor returns a caching Fetcher when any input is a URL, and nil
// otherwise so plain file runs never touch the cache directory.
func NewFetcherFor(inputs []string, cacheDir string, cacheTTL time.Duration, logger *slog.Logger) *fetcher.Fetcher {
	needed := false
	for _, in := range inputs {
		if IsURL(in) {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	cache, err := caching.NewCache(cacheDir, cacheTTL)
	if err != nil {
		logger.Warn("document cache disabled", "dir", cacheDir, "error", err)
		cache = nil
	}
	return fetcher.NewFetcher(cache, logger)
}
