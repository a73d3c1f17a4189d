package services

import (
	"context"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/repositories"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, input *models.PatientInput) (*models.Patient, error) {
	return s.repository.Create(ctx, input)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) Update(ctx context.Context, id string, input *models.PatientInput) (*models.Patient, error) {
	return s.repository.Update(ctx, id, input)
}

func (s *PatientService) SetStatus(ctx context.Context, id, status string) error {
	return s.repository.SetStatus(ctx, id, status)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
