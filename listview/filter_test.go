package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type appointmentRow struct {
	Doctor string
	Date   string
	Type   string
	Status string
}

var januaryRows = []appointmentRow{
	{Doctor: "Dr. Collado", Date: "2025-01-05", Type: "Prenatal Checkup", Status: "Scheduled"},
	{Doctor: "Dr. Cruz", Date: "2025-01-20", Type: "Ultrasound", Status: "Completed"},
	{Doctor: "Dr. Collado", Date: "2025-02-10", Type: "Family Planning", Status: "Scheduled"},
	{Doctor: "Dr. Cruz", Date: "2024-12-31", Type: "Prenatal Checkup", Status: "Cancelled"},
}

func TestApplyWithNoPredicatesReturnsInput(t *testing.T) {
	out := Apply(januaryRows)
	assert.Equal(t, januaryRows, out)
}

func TestInactiveCriteriaAreIdentity(t *testing.T) {
	out := Apply(januaryRows,
		Equals(All, func(r appointmentRow) string { return r.Doctor }),
		Contains("", func(r appointmentRow) string { return r.Doctor }),
		DateRange("", func(r appointmentRow) string { return r.Date }),
	)
	assert.Equal(t, januaryRows, out)
}

func TestApplyIsIdempotent(t *testing.T) {
	doctor := Equals[appointmentRow]("Dr. Cruz", func(r appointmentRow) string { return r.Doctor })
	once := Apply(januaryRows, doctor)
	twice := Apply(once, doctor)
	assert.Equal(t, once, twice)
}

func TestAddingCriteriaNeverGrowsTheResult(t *testing.T) {
	doctor := Equals[appointmentRow]("Dr. Collado", func(r appointmentRow) string { return r.Doctor })
	status := Equals[appointmentRow]("Scheduled", func(r appointmentRow) string { return r.Status })

	narrow := Apply(januaryRows, doctor)
	narrower := Apply(januaryRows, doctor, status)
	assert.LessOrEqual(t, len(narrower), len(narrow))
	assert.LessOrEqual(t, len(narrow), len(januaryRows))
}

func TestJanuaryDateRangeIsInclusive(t *testing.T) {
	out := Apply(januaryRows,
		DateRange("2025-01-01 - 2025-01-31", func(r appointmentRow) string { return r.Date }),
	)
	assert.Len(t, out, 2)
	for _, row := range out {
		assert.Contains(t, []string{"2025-01-05", "2025-01-20"}, row.Date)
	}

	// Boundary dates count as inside the range.
	boundary := Apply(januaryRows,
		DateRange("2024-12-31 - 2025-01-05", func(r appointmentRow) string { return r.Date }),
	)
	assert.Len(t, boundary, 2)
}

func TestMalformedDateRangeDeactivatesCriterion(t *testing.T) {
	for _, expr := range []string{"not a range", "2025-01-01", "2025-01-01 - banana", "2025-01-01-2025-01-31"} {
		out := Apply(januaryRows, DateRange(expr, func(r appointmentRow) string { return r.Date }))
		assert.Equal(t, januaryRows, out, "range %q should be inactive", expr)
	}
}

func TestUnparseableRecordDateNeverMatchesActiveRange(t *testing.T) {
	rows := []appointmentRow{{Date: "soon"}, {Date: "2025-01-10"}}
	out := Apply(rows, DateRange("2025-01-01 - 2025-01-31", func(r appointmentRow) string { return r.Date }))
	assert.Len(t, out, 1)
	assert.Equal(t, "2025-01-10", out[0].Date)
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	out := Apply(januaryRows, Contains("dr. cruz", func(r appointmentRow) string { return r.Doctor }))
	assert.Len(t, out, 2)

	out = Apply(januaryRows, Contains("ULTRA", func(r appointmentRow) string { return r.Type }))
	assert.Len(t, out, 1)
}

func TestEqualsMatchesExactly(t *testing.T) {
	out := Apply(januaryRows, Equals("Prenatal Checkup", func(r appointmentRow) string { return r.Type }))
	assert.Len(t, out, 2)

	out = Apply(januaryRows, Equals("Prenatal", func(r appointmentRow) string { return r.Type }))
	assert.Empty(t, out)
}

func TestApplyPreservesOrder(t *testing.T) {
	out := Apply(januaryRows, Equals("Dr. Collado", func(r appointmentRow) string { return r.Doctor }))
	assert.Equal(t, "2025-01-05", out[0].Date)
	assert.Equal(t, "2025-02-10", out[1].Date)
}
