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
	StaffCacheExpiry = 7 * 24 * time.Hour
)

type StaffRepository struct {
	cache *cache.Cache
}

func NewStaffRepository(cache *cache.Cache) *StaffRepository {
	return &StaffRepository{cache: cache}
}

func (r *StaffRepository) Create(ctx context.Context, input *models.StaffInput) (*models.Staff, error) {
	status := input.Status
	if status == "" {
		status = "Active"
	}
	staff := &models.Staff{
		ID:         uuid.New().String(),
		FullName:   input.FullName,
		Role:       input.Role,
		Department: input.Department,
		Phone:      input.Phone,
		Status:     status,
	}

	err := withLock(ctx, fmt.Sprintf("staff_lock:%s", staff.ID), func() error {
		if err := database.DB.Create(staff).Error; err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}
		return r.invalidate(ctx, staff.ID)
	})
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getStaffCacheKey(id)
	cachedStaff, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var staff models.Staff
		if err := json.Unmarshal([]byte(cachedStaff), &staff); err == nil {
			return &staff, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get staff from cache: %v", err)
	}

	var staff models.Staff
	err = database.DB.First(&staff, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal staff: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, staffJSON, StaffCacheExpiry); err != nil {
		log.Printf("Failed to set staff in cache: %v", err)
	}

	return &staff, nil
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "staff_cache_all"
	cachedStaff, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var staffList []models.Staff
		if err := json.Unmarshal([]byte(cachedStaff), &staffList); err == nil {
			return staffList, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get staff list from cache: %v", err)
	}

	var staffList []models.Staff
	err = database.DB.Order("created_at DESC").Find(&staffList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all staff: %w", err)
	}

	staffJSON, err := json.Marshal(staffList)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal staff list: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, staffJSON, StaffCacheExpiry); err != nil {
		log.Printf("Failed to set staff list in cache: %v", err)
	}

	return staffList, nil
}

func (r *StaffRepository) Update(ctx context.Context, id string, input *models.StaffInput) (*models.Staff, error) {
	var staff models.Staff

	err := withLock(ctx, fmt.Sprintf("staff_lock:%s", id), func() error {
		if err := database.DB.First(&staff, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("staff not found")
			}
			return fmt.Errorf("failed to find staff: %w", err)
		}

		staff.FullName = input.FullName
		staff.Role = input.Role
		staff.Department = input.Department
		staff.Phone = input.Phone
		if input.Status != "" {
			if input.Status != "Active" && input.Status != "Inactive" {
				return errors.New("invalid status value")
			}
			staff.Status = input.Status
		}

		if err := database.DB.Save(&staff).Error; err != nil {
			return fmt.Errorf("failed to update staff: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("staff_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Staff{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *StaffRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getStaffCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete staff cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "staff_cache_all")
}

func (r *StaffRepository) getStaffCacheKey(id string) string {
	return fmt.Sprintf("staff_cache:%s", id)
}
