package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BSIT-Sanchez/LGC/cache"
	"github.com/BSIT-Sanchez/LGC/database"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InventoryCacheExpiry = 7 * 24 * time.Hour
)

type InventoryRepository struct {
	cache *cache.Cache
}

func NewInventoryRepository(cache *cache.Cache) *InventoryRepository {
	return &InventoryRepository{cache: cache}
}

// Create inserts a new inventory item. The status is derived by the service
// layer from the stock level and stored alongside the record.
func (r *InventoryRepository) Create(ctx context.Context, input *models.InventoryInput, status string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Category: input.Category,
		Stock:    input.Stock,
		Status:   status,
	}

	err := withLock(ctx, fmt.Sprintf("inventory_lock:%s", item.ID), func() error {
		if err := database.DB.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create inventory item: %w", err)
		}
		return r.invalidate(ctx, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getItemCacheKey(id)
	cachedItem, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var item models.InventoryItem
		if err := json.Unmarshal([]byte(cachedItem), &item); err == nil {
			return &item, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get inventory item from cache: %v", err)
	}

	var item models.InventoryItem
	err = database.DB.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	itemJSON, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory item: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, itemJSON, InventoryCacheExpiry); err != nil {
		log.Printf("Failed to set inventory item in cache: %v", err)
	}

	return &item, nil
}

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "inventory_cache_all"
	cachedItems, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var items []models.InventoryItem
		if err := json.Unmarshal([]byte(cachedItems), &items); err == nil {
			return items, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get inventory from cache: %v", err)
	}

	var items []models.InventoryItem
	err = database.DB.Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all inventory items: %w", err)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory items: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, itemsJSON, InventoryCacheExpiry); err != nil {
		log.Printf("Failed to set inventory items in cache: %v", err)
	}

	return items, nil
}

// Update applies the input and the re-derived status, returning the canonical
// record.
func (r *InventoryRepository) Update(ctx context.Context, id string, input *models.InventoryInput, status string) (*models.InventoryItem, error) {
	var item models.InventoryItem

	err := withLock(ctx, fmt.Sprintf("inventory_lock:%s", id), func() error {
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("inventory item not found")
			}
			return fmt.Errorf("failed to find inventory item: %w", err)
		}

		item.Name = input.Name
		item.Category = input.Category
		item.Stock = input.Stock
		item.Status = status

		if err := database.DB.Save(&item).Error; err != nil {
			return fmt.Errorf("failed to update inventory item: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("inventory_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.InventoryItem{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete inventory item: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *InventoryRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getItemCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete inventory item cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "inventory_cache_all")
}

func (r *InventoryRepository) getItemCacheKey(id string) string {
	return fmt.Sprintf("inventory_cache:%s", id)
}
