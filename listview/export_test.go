package listview

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientColumns() []Column[struct{ Name, Notes string }] {
	type row = struct{ Name, Notes string }
	return []Column[row]{
		{Header: "Full Name", Value: func(r row) string { return r.Name }},
		{Header: "Notes", Value: func(r row) string { return r.Notes }},
	}
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	type row = struct{ Name, Notes string }
	rows := []row{
		{Name: "Reyes, Maria", Notes: `said "call me"` + "\nafter lunch"},
		{Name: "Plain", Notes: "nothing special"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, patientColumns()))

	out := buf.String()
	assert.Contains(t, out, "Full Name,Notes\n")
	assert.Contains(t, out, `"Reyes, Maria"`)
	assert.Contains(t, out, `"said ""call me""`)
}

func TestWriteCSVExportsOnlyTheGivenView(t *testing.T) {
	type row = struct{ Name, Notes string }
	all := []row{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	filtered := Apply(all, Contains("b", func(r row) string { return r.Name }))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, filtered, patientColumns()))

	assert.Contains(t, buf.String(), "B")
	assert.NotContains(t, buf.String(), "A,")
	assert.NotContains(t, buf.String(), "C,")
}

func TestWriteCSVEmptyViewStillWritesHeader(t *testing.T) {
	type row = struct{ Name, Notes string }
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []row{}, patientColumns()))
	assert.Equal(t, "Full Name,Notes\n", buf.String())
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "patients_2026-08-29.csv", Filename("patients", now))
}
