package listview

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Column defines one CSV column: a header label and a value accessor.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes a header row followed by one row per record. Fields
// containing commas, quotes, or newlines are quoted per RFC 4180 by the
// encoder. Callers pass the already-filtered view; the export never reaches
// past it.
func WriteCSV[T any](w io.Writer, records []T, columns []Column[T]) error {
	writer := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = column.Header
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, column := range columns {
			row[i] = column.Value(record)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename builds the conventional export name, e.g. "patients_2026-08-29.csv".
func Filename(collection string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", collection, now.Format(dateLayout))
}
