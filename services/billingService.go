package services

import (
	"context"
	"fmt"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/repositories"
)

// serviceAmounts is the clinic price list in PHP. Invoice amounts are always
// derived from this table, never taken from request input.
var serviceAmounts = map[string]int64{
	"Prenatal Checkup": 5000,
	"Family Planning":  15000,
	"Ultrasound":       3000,
	"Immunization":     1000,
}

// AmountFor returns the billable amount for a clinic service.
func AmountFor(service string) (int64, error) {
	amount, ok := serviceAmounts[service]
	if !ok {
		return 0, fmt.Errorf("no price configured for service %q", service)
	}
	return amount, nil
}

type BillingService struct {
	repository *repositories.BillingRepository
}

func NewBillingService(repository *repositories.BillingRepository) *BillingService {
	return &BillingService{repository: repository}
}

func (s *BillingService) Create(ctx context.Context, input *models.BillingInput) (*models.Billing, error) {
	amount, err := AmountFor(input.Service)
	if err != nil {
		return nil, err
	}
	return s.repository.Create(ctx, input, amount)
}

func (s *BillingService) GetByID(ctx context.Context, id string) (*models.Billing, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *BillingService) GetAll(ctx context.Context) ([]models.Billing, error) {
	return s.repository.GetAll(ctx)
}

func (s *BillingService) Update(ctx context.Context, id string, input *models.BillingInput) (*models.Billing, error) {
	amount, err := AmountFor(input.Service)
	if err != nil {
		return nil, err
	}
	return s.repository.Update(ctx, id, input, amount)
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
