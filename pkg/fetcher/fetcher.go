package fetcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dtnitsch/wordfreq/pkg/caching"
)

// DefaultTimeout bounds a single document download.
const DefaultTimeout = 30 * time.Second

// DefaultMaxBodyBytes caps a downloaded document.
const DefaultMaxBodyBytes = 64 << 20

// ErrBodyTooLarge is returned for documents over the size limit. They are
// neither counted nor cached.
var ErrBodyTooLarge = errors.New("document exceeds size limit")

type Fetcher struct {
	client   *http.Client
	cache    *caching.Cache
	logger   *slog.Logger
	maxBytes int64
}

// NewFetcher returns a Fetcher. cache may be nil to always hit the network.
func NewFetcher(cache *caching.Cache, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{
		client:   &http.Client{Timeout: DefaultTimeout},
		cache:    cache,
		logger:   logger,
		maxBytes: DefaultMaxBodyBytes,
	}
}

// GetHtmlBytes returns the body of url, from the cache when fresh.
func (f *Fetcher) GetHtmlBytes(url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			f.logger.Debug("document cache hit", "url", url)
			return data, nil
		}
	}

	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch document, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(bodyBytes)) > f.maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrBodyTooLarge, url, f.maxBytes)
	}

	if f.cache != nil {
		if err := f.cache.Set(url, bodyBytes); err != nil {
			f.logger.Warn("failed to cache document", "url", url, "error", err)
		}
	}
	return bodyBytes, nil
}
