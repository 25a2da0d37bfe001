package storage

import (
	"path/filepath"
	"testing"
)

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.yaml")

	if s.HasFile(path) {
		t.Fatal("HasFile() = true before save")
	}
	if err := s.SaveFile(path, []byte("total: 3\n")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false after save")
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "total: 3\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 9 {
		t.Errorf("SizeBytes = %d, want 9", stats.SizeBytes)
	}
}

func TestReadFile_Missing(t *testing.T) {
	s := &Storage{}
	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("ReadFile() on missing file should fail")
	}
	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("GetFileStats() on missing file should fail")
	}
}
