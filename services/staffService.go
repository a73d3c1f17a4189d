package services

import (
	"context"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/repositories"
)

type StaffService struct {
	repository *repositories.StaffRepository
}

func NewStaffService(repository *repositories.StaffRepository) *StaffService {
	return &StaffService{repository: repository}
}

func (s *StaffService) Create(ctx context.Context, input *models.StaffInput) (*models.Staff, error) {
	return s.repository.Create(ctx, input)
}

func (s *StaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *StaffService) GetAll(ctx context.Context) ([]models.Staff, error) {
	return s.repository.GetAll(ctx)
}

func (s *StaffService) Update(ctx context.Context, id string, input *models.StaffInput) (*models.Staff, error) {
	return s.repository.Update(ctx, id, input)
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
