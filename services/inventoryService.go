package services

import (
	"context"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/repositories"
)

// DeriveStockStatus maps a stock level to its display status. Zero is always
// out of stock regardless of the threshold.
func DeriveStockStatus(stock, lowThreshold int) string {
	switch {
	case stock <= 0:
		return models.StockStatusOut
	case stock < lowThreshold:
		return models.StockStatusLow
	default:
		return models.StockStatusIn
	}
}

type InventoryService struct {
	repository   *repositories.InventoryRepository
	lowThreshold int
}

func NewInventoryService(repository *repositories.InventoryRepository, lowThreshold int) *InventoryService {
	return &InventoryService{repository: repository, lowThreshold: lowThreshold}
}

func (s *InventoryService) Create(ctx context.Context, input *models.InventoryInput) (*models.InventoryItem, error) {
	status := DeriveStockStatus(input.Stock, s.lowThreshold)
	return s.repository.Create(ctx, input, status)
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repository.GetAll(ctx)
}

func (s *InventoryService) Update(ctx context.Context, id string, input *models.InventoryInput) (*models.InventoryItem, error) {
	status := DeriveStockStatus(input.Stock, s.lowThreshold)
	return s.repository.Update(ctx, id, input, status)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
