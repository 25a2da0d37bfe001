package analytics

import "strings"

// minTokenLength is the shortest token kept after normalization.
const minTokenLength = 2

// Tokenize normalizes a line of text and splits it into word tokens.
//
// The rules are fixed and ASCII-oriented:
//   - A-Z are lowercased; every other character that is not a-z or an
//     apostrophe becomes a separator (digits, hyphens and dashes included).
//   - Candidates shorter than two bytes are dropped.
//   - A bare apostrophe-plus-letter fragment such as "'s" is dropped.
//
// Apostrophes inside longer tokens survive, so "don't" and "zak's" are kept
// as-is. A contraction is one token: "It's" counts as "it's" and leaves the
// count of "it" at 0. An empty line yields no tokens.
func Tokenize(line string) []string {
	if line == "" {
		return nil
	}

	fields := strings.Fields(normalize(line))
	tokens := fields[:0]
	for _, word := range fields {
		if keepToken(word) {
			tokens = append(tokens, word)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// IsToken reports whether s is already in the shape Tokenize produces:
// lowercase a-z and apostrophes only, at least two bytes, and not a bare
// apostrophe-plus-letter fragment.
func IsToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return keepToken(s)
}

// normalize lowercases ASCII letters and replaces every other rune that is
// not a lowercase letter or apostrophe with a single space.
func normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteByte(byte(r) + ('a' - 'A'))
		case r < 0x80 && isWordByte(byte(r)):
			b.WriteByte(byte(r))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func keepToken(word string) bool {
	if len(word) < minTokenLength {
		return false
	}
	// "'s", "'t", ... on their own
	if len(word) == 2 && word[0] == '\'' && word[1] >= 'a' && word[1] <= 'z' {
		return false
	}
	return true
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '\''
}

// lowerASCII maps A-Z to a-z and leaves every other byte untouched.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
