package services

import (
	"testing"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      string
	}{
		{"zero stock is out", 0, 10, models.StockStatusOut},
		{"zero stock is out regardless of threshold", 0, 1, models.StockStatusOut},
		{"below threshold is low", 5, 10, models.StockStatusLow},
		{"just under threshold is low", 9, 10, models.StockStatusLow},
		{"at threshold is in stock", 10, 10, models.StockStatusIn},
		{"well stocked", 50, 10, models.StockStatusIn},
		{"one unit with threshold one is in stock", 1, 1, models.StockStatusIn},
		{"negative stock treated as out", -1, 10, models.StockStatusOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStockStatus(tt.stock, tt.threshold))
		})
	}
}
