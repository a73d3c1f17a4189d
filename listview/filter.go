// Package listview implements the pieces the admin list views share: a small
// composable filter engine, status counters, and CSV export. Everything here
// is pure and synchronous; the same inputs always produce the same output.
package listview

import (
	"strings"
	"time"
)

// All is the sentinel option meaning "no restriction" on an enum criterion.
const All = "All"

const dateLayout = "2006-01-02"

// Predicate is one filter criterion. An inactive criterion returns a
// predicate that accepts everything.
type Predicate[T any] func(T) bool

// Equals matches records whose field equals the selected option exactly.
// Selecting the All sentinel (or nothing) deactivates the criterion.
func Equals[T any](selected string, field func(T) string) Predicate[T] {
	if selected == "" || selected == All {
		return func(T) bool { return true }
	}
	return func(record T) bool {
		return field(record) == selected
	}
}

// Contains matches records whose field contains the query, case-insensitively.
// An empty query deactivates the criterion.
func Contains[T any](query string, field func(T) string) Predicate[T] {
	if query == "" {
		return func(T) bool { return true }
	}
	query = strings.ToLower(query)
	return func(record T) bool {
		return strings.Contains(strings.ToLower(field(record)), query)
	}
}

// DateRange matches records whose date falls inside "start - end", inclusive
// on both ends. Dates are YYYY-MM-DD. A range that does not split into two
// parseable dates deactivates the criterion; a record date that does not parse
// never matches an active range.
func DateRange[T any](rangeExpr string, field func(T) string) Predicate[T] {
	start, end, ok := parseDateRange(rangeExpr)
	if !ok {
		return func(T) bool { return true }
	}
	return func(record T) bool {
		date, err := time.Parse(dateLayout, field(record))
		if err != nil {
			return false
		}
		return !date.Before(start) && !date.After(end)
	}
}

func parseDateRange(expr string) (start, end time.Time, ok bool) {
	if expr == "" {
		return time.Time{}, time.Time{}, false
	}
	parts := strings.Split(expr, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(dateLayout, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Apply returns the records satisfying every predicate, preserving input
// order. With no predicates the input is returned as-is.
func Apply[T any](records []T, predicates ...Predicate[T]) []T {
	if len(predicates) == 0 {
		return records
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		matched := true
		for _, predicate := range predicates {
			if !predicate(record) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, record)
		}
	}
	return out
}
