package analytics

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"digits only", "123", nil},
		{"punctuation only", "!!! ???", nil},
		{"case folding", "HELLO Hello HeLLo hello", []string{"hello", "hello", "hello", "hello"}},
		{"single letters dropped", "I am a cat", []string{"am", "cat"}},
		{"hyphen splits", "well-being Nice-Book!", []string{"well", "being", "nice", "book"}},
		{"em dash splits", "wow—really?", []string{"wow", "really"}},
		{"digits separate", "abc123def 4th", []string{"abc", "def", "th"}},
		{"possessive kept", "Zak's book", []string{"zak's", "book"}},
		{"contraction kept", "It's don't", []string{"it's", "don't"}},
		{"bare suffix dropped", "'s 'T", nil},
		{"split leaves suffix", "zak-'s", []string{"zak"}},
		{"non ascii separates", "café naïve", []string{"caf", "na", "ve"}},
		{"whitespace runs", "  multiple\tspaces\r\n\nand\nlines  ", []string{"multiple", "spaces", "and", "lines"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	tests := map[string]bool{
		"hello":  true,
		"don't":  true,
		"''":     true,
		"a":      false,
		"'s":     false,
		"Hello":  false,
		"abc1":   false,
		"":       false,
		"two wd": false,
	}
	for in, want := range tests {
		if got := IsToken(in); got != want {
			t.Errorf("IsToken(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTokenizeOutputIsTokens(t *testing.T) {
	line := "Hi hi, my name is Zak. It's Zak's book. Test, test, book book book 123 Nice-Book!"
	for _, tok := range Tokenize(line) {
		if !IsToken(tok) {
			t.Errorf("Tokenize produced %q which fails IsToken", tok)
		}
	}
}

func TestStopWords(t *testing.T) {
	sw := DefaultStopWords()
	for _, w := range []string{"the", "THE", "it's", "your"} {
		if !sw.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	if sw.IsStopword("book") {
		t.Error("IsStopword(\"book\") = true, want false")
	}

	var empty StopWords
	if empty.IsStopword("the") {
		t.Error("nil set should contain nothing")
	}

	custom := NewStopWords("Book", "", "gatsby")
	if len(custom) != 2 || !custom.IsStopword("book") {
		t.Errorf("NewStopWords() = %v, want book and gatsby", custom)
	}
}
