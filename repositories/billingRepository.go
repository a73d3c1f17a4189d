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
	BillingCacheExpiry = 7 * 24 * time.Hour
)

type BillingRepository struct {
	cache *cache.Cache
}

func NewBillingRepository(cache *cache.Cache) *BillingRepository {
	return &BillingRepository{cache: cache}
}

// Create inserts a new invoice. The invoice number comes from a postgres
// sequence and the amount from the service price table; both are
// server-assigned and part of the canonical record returned.
func (r *BillingRepository) Create(ctx context.Context, input *models.BillingInput, amount int64) (*models.Billing, error) {
	billing := &models.Billing{
		ID:        uuid.New().String(),
		PatientID: input.PatientID,
		Service:   input.Service,
		Amount:    amount,
		Status:    input.Status,
	}

	err := withLock(ctx, fmt.Sprintf("billing_lock:%s", billing.ID), func() error {
		// Check if the patient exists
		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", input.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}

		// Obtain the next sequence value outside the transaction
		var nextNumber string
		if err := database.DB.Raw("SELECT 'INV-' || LPAD(nextval('invoice_number_seq')::TEXT, 6, '0')").Scan(&nextNumber).Error; err != nil {
			return fmt.Errorf("failed to obtain next invoice number: %w", err)
		}
		billing.InvoiceNumber = nextNumber

		return database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(billing).Error; err != nil {
				// If the creation fails, rollback the sequence
				if rollbackErr := database.DB.Exec("SELECT setval('invoice_number_seq', (SELECT last_value FROM invoice_number_seq) - 1, false)").Error; rollbackErr != nil {
					return fmt.Errorf("transaction failed and sequence rollback failed: %v, rollback error: %v", err, rollbackErr)
				}
				return fmt.Errorf("failed to create billing: %w", err)
			}
			return r.invalidate(ctx, billing.ID)
		})
	})
	if err != nil {
		return nil, err
	}
	return r.getCanonical(billing.ID)
}

func (r *BillingRepository) GetByID(ctx context.Context, id string) (*models.Billing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getBillingCacheKey(id)
	cachedBilling, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var billing models.Billing
		if err := json.Unmarshal([]byte(cachedBilling), &billing); err == nil {
			return &billing, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get billing from cache: %v", err)
	}

	billing, err := r.getCanonical(id)
	if err != nil || billing == nil {
		return billing, err
	}

	billingJSON, err := json.Marshal(billing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal billing: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, billingJSON, BillingCacheExpiry); err != nil {
		log.Printf("Failed to set billing in cache: %v", err)
	}

	return billing, nil
}

func (r *BillingRepository) GetAll(ctx context.Context) ([]models.Billing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "billings_cache"
	cachedBillings, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var billings []models.Billing
		if err := json.Unmarshal([]byte(cachedBillings), &billings); err == nil {
			return billings, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get billings from cache: %v", err)
	}

	var billings []models.Billing
	err = database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, service")
		}).
		Order("created_at DESC").
		Find(&billings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all billings: %w", err)
	}

	billingsJSON, err := json.Marshal(billings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal billings: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, billingsJSON, BillingCacheExpiry); err != nil {
		log.Printf("Failed to set billings in cache: %v", err)
	}

	return billings, nil
}

// Update re-derives the amount from the selected service; the invoice number
// never changes after creation.
func (r *BillingRepository) Update(ctx context.Context, id string, input *models.BillingInput, amount int64) (*models.Billing, error) {
	err := withLock(ctx, fmt.Sprintf("billing_lock:%s", id), func() error {
		var billing models.Billing
		if err := database.DB.First(&billing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("billing not found")
			}
			return fmt.Errorf("failed to find billing: %w", err)
		}

		billing.PatientID = input.PatientID
		billing.Service = input.Service
		billing.Amount = amount
		billing.Status = input.Status

		if err := database.DB.Save(&billing).Error; err != nil {
			return fmt.Errorf("failed to update billing: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return r.getCanonical(id)
}

func (r *BillingRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("billing_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Billing{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete billing: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *BillingRepository) getCanonical(id string) (*models.Billing, error) {
	var billing models.Billing
	err := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, service")
		}).
		First(&billing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}
	return &billing, nil
}

func (r *BillingRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getBillingCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete billing cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "billings_cache")
}

func (r *BillingRepository) getBillingCacheKey(id string) string {
	return fmt.Sprintf("billing_cache:%s", id)
}
