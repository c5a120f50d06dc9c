// Package statistics aggregates daily revenue and membership numbers for
// the admin dashboard.
package statistics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type DailyDataItem struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type OverviewResponse struct {
	TotalCustomers  int64 `json:"total_customers"`
	ActiveCustomers int64 `json:"active_customers"`
	// TotalPending and TotalCollected are in paise.
	TotalPending   int64 `json:"total_pending"`
	TotalCollected int64 `json:"total_collected"`

	DailyRegistrations []DailyDataItem `json:"daily_registrations"`
	DailyCollections   []DailyDataItem `json:"daily_collections"`
}

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// GetOverview computes the dashboard numbers in one pass. Daily series are
// grouped by calendar day, oldest first.
func (s *Service) GetOverview(ctx context.Context, now time.Time) (*OverviewResponse, error) {
	res := &OverviewResponse{}

	if err := s.db.WithContext(ctx).Table("customer").Count(&res.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if err := s.db.WithContext(ctx).Table("customer").
		Where("membership_end > ?", now).
		Count(&res.ActiveCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count active customers: %w", err)
	}
	if err := s.db.WithContext(ctx).Table("customer").
		Select("COALESCE(sum(pending_amount), 0)").
		Scan(&res.TotalPending).Error; err != nil {
		return nil, fmt.Errorf("failed to sum pending amounts: %w", err)
	}
	if err := s.db.WithContext(ctx).Table("fee").
		Select("COALESCE(sum(amount), 0)").
		Scan(&res.TotalCollected).Error; err != nil {
		return nil, fmt.Errorf("failed to sum collected fees: %w", err)
	}

	if err := s.db.WithContext(ctx).Table("customer").
		Select("TO_CHAR(join_date, 'YYYY-MM-DD') as date, count(*) as value").
		Group("TO_CHAR(join_date, 'YYYY-MM-DD')").
		Order("date").
		Find(&res.DailyRegistrations).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily registrations: %w", err)
	}
	if err := s.db.WithContext(ctx).Table("fee").
		Select("TO_CHAR(payment_date, 'YYYY-MM-DD') as date, sum(amount) as value").
		Group("TO_CHAR(payment_date, 'YYYY-MM-DD')").
		Order("date").
		Find(&res.DailyCollections).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily collections: %w", err)
	}

	return res, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
