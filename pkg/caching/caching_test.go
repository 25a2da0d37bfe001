package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "cache"), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := c.Get("https://example.com/book"); ok {
		t.Fatal("Get() hit on empty cache")
	}
	if err := c.Set("https://example.com/book", []byte("<p>hi</p>")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok := c.Get("https://example.com/book")
	if !ok || string(data) != "<p>hi</p>" {
		t.Errorf("Get() = %q, %v", data, ok)
	}
	if _, ok := c.Get("https://example.com/other"); ok {
		t.Error("Get() hit for a different URL")
	}
}

func TestCache_Expired(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set("u", []byte("old")); err != nil {
		t.Fatal(err)
	}

	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, c.key("u")), old, old); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("u"); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestCache_ZeroTTL(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Set("u", []byte("x"))
	if _, ok := c.Get("u"); ok {
		t.Error("Get() hit with zero TTL")
	}
}
