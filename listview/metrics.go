package listview

// CountWhere counts the records satisfying the predicate. Counters are
// recomputed from the full slice on every call rather than maintained
// incrementally.
func CountWhere[T any](records []T, predicate func(T) bool) int {
	count := 0
	for _, record := range records {
		if predicate(record) {
			count++
		}
	}
	return count
}

// CountByStatus counts records per value of the status field.
func CountByStatus[T any](records []T, status func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		counts[status(record)]++
	}
	return counts
}
