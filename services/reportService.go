package services

import (
	"context"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/repositories"
)

type ReportService struct {
	repository *repositories.ReportRepository
}

func NewReportService(repository *repositories.ReportRepository) *ReportService {
	return &ReportService{repository: repository}
}

func (s *ReportService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repository.GetDashboardStats(ctx)
}

func (s *ReportService) GetDailySummary(ctx context.Context) ([]models.DailySummary, error) {
	return s.repository.GetDailySummary(ctx)
}
