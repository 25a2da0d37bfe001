package common

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/wordfreq/pkg/analytics"
	"github.com/dtnitsch/wordfreq/pkg/fetcher"
)

const gatsbyOpening = "In my younger and more vulnerable years my father gave me some advice\n" +
	"that I've been turning over in my mind ever since.\n"

func quietLoader(f *fetcher.Fetcher) *Loader {
	l := NewLoader(f, nil)
	l.DetectLanguage = false
	return l
}

func TestLoad_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gatsby.txt")
	if err := os.WriteFile(path, []byte(gatsbyOpening), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewLoader(nil, nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := doc.Table.Count("my"); got != 3 {
		t.Errorf("Count(my) = %d, want 3", got)
	}
	if got := doc.Table.Count("i've"); got != 1 {
		t.Errorf("Count(i've) = %d, want 1", got)
	}
	if doc.SizeBytes != int64(len(gatsbyOpening)) {
		t.Errorf("SizeBytes = %d", doc.SizeBytes)
	}
	if doc.Language != "en" {
		t.Errorf("Language = %q, want en", doc.Language)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := quietLoader(nil).Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, analytics.ErrIO) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrIO and ErrNotExist", err)
	}
}

func TestLoad_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.html")
	html := "<html><head><title>Chapter</title></head><body><article><p>" +
		strings.ReplaceAll(gatsbyOpening, "\n", " ") + "</p></article></body></html>"
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := quietLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := doc.Table.Count("vulnerable"); got != 1 {
		t.Errorf("Count(vulnerable) = %d, want 1", got)
	}
	if got := doc.Table.Count("html"); got != 0 {
		t.Errorf("markup leaked into counts: html = %d", got)
	}
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>book book book</p></body></html>"))
	}))
	defer srv.Close()

	doc, err := quietLoader(fetcher.NewFetcher(nil, nil)).Load(srv.URL + "/book")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := doc.Table.Count("book"); got != 3 {
		t.Errorf("Count(book) = %d, want 3", got)
	}
}

func TestLoad_URLWithoutFetcher(t *testing.T) {
	if _, err := quietLoader(nil).Load("https://example.com/"); err == nil {
		t.Error("Load(url) without fetcher should fail")
	}
}
