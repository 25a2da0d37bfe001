package analytics

// StopWords is a set of words excluded from ranked and displayed output.
// The table never consults it; it only shapes what callers show.
type StopWords map[string]struct{}

// defaultStopWords is the list the desktop viewer offered behind its
// "Remove common stop words" toggle.
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "being", "but", "by",
	"do", "did", "does", "for", "from", "had", "has", "have", "he", "her", "him", "his", "i",
	"if", "in", "into", "is", "it", "it's", "me", "my", "no", "not", "of",
	"on", "or", "so", "such", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "to", "was", "we", "were", "what", "when", "where",
	"which", "who", "will", "with", "would", "you", "your",
}

// NewStopWords builds a set from words. Words are lowercased; blanks are skipped.
func NewStopWords(words ...string) StopWords {
	set := make(StopWords, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[lowerASCII(w)] = struct{}{}
	}
	return set
}

// DefaultStopWords returns a fresh copy of the built-in stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// IsStopword checks if word is in the set. A nil set contains nothing.
func (s StopWords) IsStopword(word string) bool {
	_, exists := s[lowerASCII(word)]
	return exists
}
