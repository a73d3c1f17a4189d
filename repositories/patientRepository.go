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
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

// Create inserts a new patient. The identifier, patient number and status are
// assigned here; the returned record is the canonical server version.
func (r *PatientRepository) Create(ctx context.Context, input *models.PatientInput) (*models.Patient, error) {
	patient := &models.Patient{
		ID:          uuid.New().String(),
		FullName:    input.FullName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		Contact:     input.Contact,
		Service:     input.Service,
		Address:     input.Address,
		Notes:       input.Notes,
		Status:      "Active",
	}

	err := withLock(ctx, fmt.Sprintf("patient_lock:%s", patient.ID), func() error {
		// Obtain the next display number from the sequence
		var nextNo string
		if err := database.DB.Raw("SELECT 'P-' || LPAD(nextval('patient_no_seq')::TEXT, 6, '0')").Scan(&nextNo).Error; err != nil {
			return fmt.Errorf("failed to obtain next patient number: %w", err)
		}
		patient.PatientNo = nextNo

		if err := database.DB.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return r.invalidate(ctx, patient.ID)
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = database.DB.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

// Update applies the input to an existing patient and returns the canonical
// record. The patient number and status are preserved.
func (r *PatientRepository) Update(ctx context.Context, id string, input *models.PatientInput) (*models.Patient, error) {
	var patient models.Patient

	err := withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		if err := database.DB.First(&patient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}

		patient.FullName = input.FullName
		patient.DateOfBirth = input.DateOfBirth
		patient.Gender = input.Gender
		patient.Contact = input.Contact
		patient.Service = input.Service
		patient.Address = input.Address
		patient.Notes = input.Notes

		if err := database.DB.Save(&patient).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// SetStatus flips a patient between Active and Inactive.
func (r *PatientRepository) SetStatus(ctx context.Context, id, status string) error {
	if status != "Active" && status != "Inactive" {
		return errors.New("invalid status value")
	}
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		result := database.DB.Model(&models.Patient{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			return fmt.Errorf("failed to update patient status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("patient not found")
		}
		return r.invalidate(ctx, id)
	})
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

// invalidate drops the single-record cache and every list cache that joins
// patient data.
func (r *PatientRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "patients_cache"); err != nil {
		return fmt.Errorf("failed to delete all patients cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "appointments_cache"); err != nil {
		return fmt.Errorf("failed to delete all appointments cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "billings_cache")
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
