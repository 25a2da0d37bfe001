package analytics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// ErrIO marks a failure to read a document or write a report.
// Returned errors also wrap the underlying OS error.
var ErrIO = errors.New("i/o failure")

// Table holds the word frequency counts for one document.
//
// A Table is append-only: counts only grow through IngestLine, IngestReader
// and IngestFile. It is not safe for concurrent use; callers build one Table
// per document and serialize access to it.
type Table struct {
	counts map[string]int
	total  int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// IngestLine tokenizes line and adds one to the count of every token.
// Lines that produce no tokens leave the table unchanged.
func (t *Table) IngestLine(line string) {
	for _, word := range Tokenize(line) {
		t.counts[word]++
		t.total++
	}
}

// IngestReader reads r line by line and ingests each line in order.
// Only one line is held in memory at a time. If reading fails, counts from
// lines already read are kept and the error wraps ErrIO.
func (t *Table) IngestReader(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.IngestLine(line)
				return nil
			}
			return fmt.Errorf("%w: reading document: %w", ErrIO, err)
		}
		t.IngestLine(line)
	}
}

// IngestFile opens the file at path and ingests it line by line.
func (t *Table) IngestFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	if err := t.IngestReader(f); err != nil {
		return fmt.Errorf("ingesting %s: %w", path, err)
	}
	return nil
}

// Count returns how many times word was counted. The lookup is
// case-insensitive; unknown words and strings Tokenize could never produce
// return 0.
func (t *Table) Count(word string) int {
	word = lowerASCII(word)
	if !IsToken(word) {
		return 0
	}
	return t.counts[word]
}

// TotalTokens returns the number of tokens accepted across all ingestion
// calls, which is also the sum of all counts.
func (t *Table) TotalTokens() int {
	return t.total
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.counts)
}

// Entries returns a copy of the word counts. The caller owns the copy.
func (t *Table) Entries() map[string]int {
	out := make(map[string]int, len(t.counts))
	for word, count := range t.counts {
		out[word] = count
	}
	return out
}

// Words returns every counted word in ascending order.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.counts))
	for word := range t.counts {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// WriteResults writes the report to w:
//
//	Total words counted: <total>
//	<word>: <count>
//	...
//
// with words in ascending order, one newline-terminated record per line.
func (t *Table) WriteResults(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = append(buf, "Total words counted: "...)
	buf = strconv.AppendInt(buf, int64(t.total), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("%w: writing report: %w", ErrIO, err)
	}

	for _, word := range t.Words() {
		buf = buf[:0]
		buf = append(buf, word...)
		buf = append(buf, ": "...)
		buf = strconv.AppendInt(buf, int64(t.counts[word]), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%w: writing report: %w", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing report: %w", ErrIO, err)
	}
	return nil
}

// SaveResults writes the report to the file at path, creating or truncating it.
func (t *Table) SaveResults(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}

	if err := t.WriteResults(f); err != nil {
		_ = f.Close() // the write error is the one worth reporting
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, err)
	}
	return nil
}
