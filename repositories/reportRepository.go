package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/BSIT-Sanchez/LGC/cache"
	"github.com/BSIT-Sanchez/LGC/database"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/go-redis/redis/v8"
)

const (
	// Aggregates go stale quickly, so they get a much shorter expiry than the
	// collection caches.
	StatsCacheExpiry = 5 * time.Minute
)

type ReportRepository struct {
	cache *cache.Cache
}

func NewReportRepository(cache *cache.Cache) *ReportRepository {
	return &ReportRepository{cache: cache}
}

// GetDashboardStats counts the four dashboard collections.
func (r *ReportRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "dashboard_stats_cache"
	cachedStats, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var stats models.DashboardStats
		if err := json.Unmarshal([]byte(cachedStats), &stats); err == nil && cachedStats != "" {
			return &stats, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get dashboard stats from cache: %v", err)
	}

	var stats models.DashboardStats
	if err := database.DB.Model(&models.Patient{}).Count(&stats.Patients).Error; err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if err := database.DB.Model(&models.Appointment{}).Count(&stats.Appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	if err := database.DB.Model(&models.Staff{}).Count(&stats.Staff).Error; err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	if err := database.DB.Model(&models.InventoryItem{}).Count(&stats.Inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to count inventory items: %w", err)
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, statsJSON, StatsCacheExpiry); err != nil {
		log.Printf("Failed to set dashboard stats in cache: %v", err)
	}

	return &stats, nil
}

// GetDailySummary aggregates one row per appointment date: distinct patients
// seen, completed appointments, and revenue from invoices marked Paid that day.
func (r *ReportRepository) GetDailySummary(ctx context.Context) ([]models.DailySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "daily_summary_cache"
	cachedSummary, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedSummary != "" {
		var summary []models.DailySummary
		if err := json.Unmarshal([]byte(cachedSummary), &summary); err == nil {
			return summary, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get daily summary from cache: %v", err)
	}

	var summary []models.DailySummary
	err = database.DB.Raw(`
		SELECT a.date AS date,
		       COUNT(DISTINCT a.patient_id) AS patients,
		       COUNT(*) FILTER (WHERE a.status = 'Completed') AS completed_apps,
		       COALESCE((
		           SELECT SUM(b.amount)
		           FROM billing b
		           WHERE b.status = 'Paid' AND b.created_at::date = a.date::date
		       ), 0) AS revenue
		FROM appointment a
		GROUP BY a.date
		ORDER BY a.date DESC`).
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily summary: %w", err)
	}

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal daily summary: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, summaryJSON, StatsCacheExpiry); err != nil {
		log.Printf("Failed to set daily summary in cache: %v", err)
	}

	return summary, nil
}
