package rank

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
)

const gatsby = `In my younger and more vulnerable years my father gave me some advice
that I've been turning over in my mind ever since.
Whenever you feel like criticizing any one, he told me, just remember
that all the people in this world haven't had the advantages that you've had.
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gatsby.txt")
	if err := os.WriteFile(path, []byte(gatsby), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:           "wordfreq",
		Flags:          common.GlobalFlags(),
		Commands:       []*cli.Command{Command()},
		Writer:         &out,
		ErrWriter:      &bytes.Buffer{},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run(append([]string{"wordfreq", "--quiet", "top"}, args...))
	return out.String(), err
}

func TestTopAction_Text(t *testing.T) {
	out, err := run(t, "--n", "3", "--format", "text", writeDoc(t))
	if err != nil {
		t.Fatalf("top error = %v", err)
	}
	want := "1. in: 3\n2. my: 3\n3. that: 3\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestTopAction_StopWords(t *testing.T) {
	out, err := run(t, "--n", "2", "--format", "text", "--stop-words", writeDoc(t))
	if err != nil {
		t.Fatalf("top error = %v", err)
	}
	for _, w := range []string{" my:", " that:", " in:", " had:"} {
		if strings.Contains(out, w) {
			t.Errorf("stop word%s present in\n%s", w, out)
		}
	}
	if want := "1. advantages: 1\n2. advice: 1\n"; out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestTopAction_CustomStopWords(t *testing.T) {
	out, err := run(t, "--n", "1", "--format", "text", "--stop-words", "--stop-word", "my", "--stop-word", "that", writeDoc(t))
	if err != nil {
		t.Fatalf("top error = %v", err)
	}
	if out != "1. in: 3\n" {
		t.Errorf("output = %q, want %q", out, "1. in: 3\n")
	}
}

func TestTopAction_AlphaJSON(t *testing.T) {
	out, err := run(t, "--n", "2", "--sort", "alpha", "--format", "json", writeDoc(t))
	if err != nil {
		t.Fatalf("top error = %v", err)
	}
	var entries []mapreduce.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	want := []mapreduce.Entry{{Word: "advantages", Count: 1}, {Word: "advice", Count: 1}}
	if len(entries) != 2 || entries[0] != want[0] || entries[1] != want[1] {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestTopAction_BadSort(t *testing.T) {
	if _, err := run(t, "--sort", "random", writeDoc(t)); err == nil {
		t.Error("unknown sort mode should fail")
	}
}

func TestPrint_Formats(t *testing.T) {
	entries := []mapreduce.Entry{{Word: "gatsby", Count: 1234}, {Word: "daisy", Count: 7}}

	var buf bytes.Buffer
	if err := Print(&buf, entries, ""); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1. gatsby: 1234\n2. daisy: 7\n" {
		t.Errorf("default format on a buffer = %q", buf.String())
	}

	buf.Reset()
	if err := Print(&buf, entries, "table"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1,234") || !strings.Contains(buf.String(), "daisy") {
		t.Errorf("table output =\n%s", buf.String())
	}

	buf.Reset()
	if err := Print(&buf, entries, "yaml"); err != nil {
		t.Fatal(err)
	}
	var decoded []mapreduce.Entry
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil || len(decoded) != 2 || decoded[0] != entries[0] {
		t.Errorf("yaml output = %q, decoded %v, err %v", buf.String(), decoded, err)
	}

	if err := Print(&buf, entries, "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}
