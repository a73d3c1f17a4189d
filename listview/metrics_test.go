package listview

import (
	"testing"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/stretchr/testify/assert"
)

func TestInventoryStatusCounters(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "Gauze", Stock: 0, Status: models.StockStatusOut},
		{Name: "Syringes", Stock: 5, Status: models.StockStatusLow},
		{Name: "Paracetamol", Stock: 50, Status: models.StockStatusIn},
	}

	outOfStock := CountWhere(items, func(i models.InventoryItem) bool { return i.Status == models.StockStatusOut })
	lowStock := CountWhere(items, func(i models.InventoryItem) bool { return i.Status == models.StockStatusLow })

	assert.Equal(t, 1, outOfStock)
	assert.Equal(t, 1, lowStock)
}

func TestCountByStatusCoversEveryRecord(t *testing.T) {
	rows := []appointmentRow{
		{Status: "Scheduled"},
		{Status: "Scheduled"},
		{Status: "Completed"},
		{Status: "Cancelled"},
	}

	counts := CountByStatus(rows, func(r appointmentRow) string { return r.Status })
	assert.Equal(t, 2, counts["Scheduled"])
	assert.Equal(t, 1, counts["Completed"])
	assert.Equal(t, 1, counts["Cancelled"])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(rows), total)
}

func TestCountWhereOnEmptySlice(t *testing.T) {
	assert.Zero(t, CountWhere(nil, func(appointmentRow) bool { return true }))
}
