package count

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/wordfreq/pkg/analytics"
)

const (
	promptText  = "Enter a word to check its count (or type 'exit' to quit): "
	exitKeyword = "exit"
)

// QueryLoop answers word-count questions against a fully counted table until
// the user types "exit" or input ends. Input is trimmed and lowercased.
// Query lines have no length limit.
func QueryLoop(in io.Reader, out io.Writer, table *analytics.Table) error {
	reader := bufio.NewReader(in)
	for {
		if _, err := fmt.Fprint(out, promptText); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read query: %w", err)
		}
		atEOF := err != nil

		word := strings.ToLower(strings.TrimSpace(line))
		if word == exitKeyword {
			fmt.Fprintln(out, "Goodbye")
			return nil
		}
		if word != "" || !atEOF {
			fmt.Fprintf(out, "The word '%s' appears %d times.\n", word, table.Count(word))
		}
		if atEOF {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Goodbye")
			return nil
		}
	}
}
