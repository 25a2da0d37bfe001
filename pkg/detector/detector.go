// Package detector guesses the natural language of a document from a sample
// of its text.
package detector

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported when no language could be determined.
const Unknown = "unknown"

// DefaultSampleBytes is how much of a document is kept for detection.
const DefaultSampleBytes = 16 * 1024

// languages are the only candidates the detector chooses between.
var languages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Latin,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithLowAccuracyMode().
			Build()
	})
	return detector
}

// DetectLanguage returns the lowercase ISO 639-1 code of the sample's
// language (e.g. "en"), or Unknown.
func DetectLanguage(sample string) string {
	if strings.TrimSpace(sample) == "" {
		return Unknown
	}
	lang, ok := languageDetector().DetectLanguageOf(sample)
	if !ok {
		return Unknown
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Sampler is an io.Writer that keeps the first Limit bytes written to it and
// discards the rest. It never fails, so it is safe to use with io.TeeReader.
type Sampler struct {
	Limit int
	buf   []byte
}

// NewSampler returns a Sampler keeping up to limit bytes.
func NewSampler(limit int) *Sampler {
	return &Sampler{Limit: limit}
}

func (s *Sampler) Write(p []byte) (int, error) {
	if room := s.Limit - len(s.buf); room > 0 {
		if len(p) < room {
			room = len(p)
		}
		s.buf = append(s.buf, p[:room]...)
	}
	return len(p), nil
}

// String returns the sampled text.
func (s *Sampler) String() string {
	return string(s.buf)
}
