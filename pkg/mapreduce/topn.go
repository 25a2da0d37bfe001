package mapreduce

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dtnitsch/wordfreq/pkg/analytics"
)

// Entry is a single word and its count, as handed to displays and exporters.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// SortMode selects the ordering produced by Rank.
type SortMode int

const (
	// SortByFrequency orders by count, highest first. Equal counts fall back
	// to ascending word order so output is reproducible.
	SortByFrequency SortMode = iota
	// SortAlphabetical orders by word, ascending.
	SortAlphabetical
)

func (m SortMode) String() string {
	switch m {
	case SortAlphabetical:
		return "alpha"
	default:
		return "freq"
	}
}

// ParseSortMode converts a flag value to a SortMode.
// Accepts "freq", "frequency", "alpha" and "alphabetical"; empty means frequency.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "freq", "frequency":
		return SortByFrequency, nil
	case "alpha", "alphabetical":
		return SortAlphabetical, nil
	default:
		return SortByFrequency, fmt.Errorf("unknown sort mode %q (want freq or alpha)", s)
	}
}

// Rank drops excluded words from counts and orders the rest by mode.
// counts is not modified; a nil exclude set drops nothing.
func Rank(counts map[string]int, exclude analytics.StopWords, mode SortMode) []Entry {
	ss := make([]Entry, 0, len(counts))
	for k, v := range counts {
		if exclude.IsStopword(k) {
			continue
		}
		ss = append(ss, Entry{k, v})
	}

	switch mode {
	case SortAlphabetical:
		sort.Slice(ss, func(i, j int) bool {
			return ss[i].Word < ss[j].Word
		})
	default:
		sort.Slice(ss, func(i, j int) bool {
			if ss[i].Count != ss[j].Count {
				return ss[i].Count > ss[j].Count
			}
			return ss[i].Word < ss[j].Word
		})
	}

	return ss
}

// TopN returns the first min(n, len(ranked)) entries. It never returns nil.
func TopN(ranked []Entry, n int) []Entry {
	limit := n
	if len(ranked) < n {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]Entry, limit)
	copy(out, ranked[:limit])
	return out
}

// TopKeywords returns the top N words from counts as formatted strings.
// Each string is formatted as "word:count" (e.g., "gatsby:197").
func TopKeywords(wordCounts map[string]int, n int) []string {
	top := TopN(Rank(wordCounts, nil, SortByFrequency), n)

	keywords := make([]string, len(top))
	for i, e := range top {
		keywords[i] = fmt.Sprintf("%s:%d", e.Word, e.Count)
	}

	return keywords
}

// PrintTopKeywords writes the entries as a numbered list.
func PrintTopKeywords(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}
