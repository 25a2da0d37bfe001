package db

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	counts := map[string]int{"book": 5, "hi": 2, "zak's": 1}
	runID, err := db.RecordRun(Run{Document: "gatsby.txt", Language: "en", TotalTokens: 8}, counts)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if runID == "" {
		t.Fatal("RecordRun() returned empty run ID")
	}

	run, err := db.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if run.Document != "gatsby.txt" {
		t.Errorf("document = %q, want gatsby.txt", run.Document)
	}
	if run.TotalTokens != 8 {
		t.Errorf("total_tokens = %d, want 8", run.TotalTokens)
	}
	if run.Vocabulary != 3 {
		t.Errorf("vocabulary = %d, want 3", run.Vocabulary)
	}
	if run.CreatedAt.IsZero() {
		t.Error("created_at is zero")
	}

	var rows int
	db.QueryRow("SELECT COUNT(*) FROM word_counts WHERE run_id = ?", runID).Scan(&rows)
	if rows != 3 {
		t.Errorf("word_counts rows = %d, want 3", rows)
	}
}

func TestRecordRun_ExplicitID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.RecordRun(Run{RunID: "fixed", Document: "a.txt"}, nil)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if runID != "fixed" {
		t.Errorf("runID = %q, want fixed", runID)
	}

	if _, err := db.RecordRun(Run{RunID: "fixed", Document: "b.txt"}, map[string]int{"x": 1}); err == nil {
		t.Error("RecordRun() with duplicate ID should fail")
	}
	// failed transaction must not leave words behind
	var rows int
	db.QueryRow("SELECT COUNT(*) FROM word_counts").Scan(&rows)
	if rows != 0 {
		t.Errorf("word_counts rows = %d after failed insert, want 0", rows)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRun("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("GetRun() error = %v, want ErrRunNotFound", err)
	}
}

func TestTopWords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	counts := map[string]int{"the": 9, "gatsby": 4, "daisy": 4, "green": 1}
	runID, _ := db.RecordRun(Run{Document: "gatsby.txt", TotalTokens: 18}, counts)

	top, err := db.TopWords(runID, 3)
	if err != nil {
		t.Fatalf("TopWords() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopWords() returned %d entries, want 3", len(top))
	}
	wantWords := []string{"the", "daisy", "gatsby"}
	for i, w := range wantWords {
		if top[i].Word != w {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Word, w)
		}
	}

	if _, err := db.TopWords("missing", 3); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("TopWords() on missing run error = %v, want ErrRunNotFound", err)
	}
}

func TestWordCount(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, _ := db.RecordRun(Run{Document: "a.txt"}, map[string]int{"book": 3})

	if n, err := db.WordCount(runID, "book"); err != nil || n != 3 {
		t.Errorf("WordCount(book) = %d, %v; want 3", n, err)
	}
	if n, err := db.WordCount(runID, "banana"); err != nil || n != 0 {
		t.Errorf("WordCount(banana) = %d, %v; want 0", n, err)
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, doc := range []string{"a.txt", "b.txt", "c.txt"} {
		if _, err := db.RecordRun(Run{Document: doc}, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() returned %d runs, want 3", len(runs))
	}
	if runs[0].Document != "c.txt" {
		t.Errorf("most recent run = %q, want c.txt", runs[0].Document)
	}

	limited, _ := db.ListRuns(2)
	if len(limited) != 2 {
		t.Errorf("ListRuns(2) returned %d runs", len(limited))
	}
}

func TestDeleteRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, _ := db.RecordRun(Run{Document: "a.txt"}, map[string]int{"book": 3})
	if err := db.DeleteRun(runID); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}

	var rows int
	db.QueryRow("SELECT COUNT(*) FROM word_counts WHERE run_id = ?", runID).Scan(&rows)
	if rows != 0 {
		t.Errorf("word_counts rows = %d after delete, want 0", rows)
	}
	if err := db.DeleteRun(runID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second DeleteRun() error = %v, want ErrRunNotFound", err)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
	runID, err := db.RecordRun(Run{Document: "a.txt"}, map[string]int{"book": 1})
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("re-Open() failed: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.GetRun(runID); err != nil {
		t.Errorf("GetRun() after reopen: %v", err)
	}
}
