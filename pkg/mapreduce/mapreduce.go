package mapreduce

// Reduce aggregates a slice of word frequency maps into a single map.
// The inputs are not modified.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
