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
	AppointmentCacheExpiry = 7 * 24 * time.Hour
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create inserts a new appointment with a server-set Scheduled status and
// returns the canonical record with the joined patient.
func (r *AppointmentRepository) Create(ctx context.Context, input *models.AppointmentInput) (*models.Appointment, error) {
	appointment := &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: input.PatientID,
		Doctor:    input.Doctor,
		Date:      input.Date,
		Type:      input.Type,
		Status:    "Scheduled",
	}

	err := withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		// Check if the patient exists
		var patient models.Patient
		if err := database.DB.First(&patient, "id = ?", input.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}

		if err := database.DB.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return r.invalidate(ctx, appointment.ID)
	})
	if err != nil {
		return nil, err
	}
	return r.getCanonical(appointment.ID)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	appointment, err := r.getCanonical(id)
	if err != nil || appointment == nil {
		return appointment, err
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return appointment, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "appointments_cache"
	cachedAppointments, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointments), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err = database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, service")
		}).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

// Update applies the input, including an explicit status change, and returns
// the canonical record.
func (r *AppointmentRepository) Update(ctx context.Context, id string, input *models.AppointmentInput) (*models.Appointment, error) {
	err := withLock(ctx, fmt.Sprintf("appointment_lock:%s", id), func() error {
		var appointment models.Appointment
		if err := database.DB.First(&appointment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("appointment not found")
			}
			return fmt.Errorf("failed to find appointment: %w", err)
		}

		appointment.PatientID = input.PatientID
		appointment.Doctor = input.Doctor
		appointment.Date = input.Date
		appointment.Type = input.Type
		if input.Status != "" {
			if input.Status != "Scheduled" && input.Status != "Completed" && input.Status != "Cancelled" {
				return errors.New("invalid status value")
			}
			appointment.Status = input.Status
		}

		if err := database.DB.Save(&appointment).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return r.getCanonical(id)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

// getCanonical loads one appointment with its joined patient fields.
func (r *AppointmentRepository) getCanonical(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, service")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache")
}

func (r *AppointmentRepository) getAppointmentCacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}
