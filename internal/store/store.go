package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"power-cost-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	SaveEstimate(ctx context.Context, e *model.Estimate) error
	GetEstimate(ctx context.Context, id int64) (*model.Estimate, error)
	ListEstimates(ctx context.Context, filter ListFilter) ([]model.Estimate, error)
	DeleteEstimate(ctx context.Context, id int64) error
	SummarizeByDevice(ctx context.Context) ([]model.DeviceSummary, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db, now: time.Now}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// SaveEstimate inserts e and fills in its ID and CreatedAt.
func (s *gormStore) SaveEstimate(ctx context.Context, e *model.Estimate) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to save estimate for %q: %w", e.Device, err)
	}
	return nil
}

func (s *gormStore) GetEstimate(ctx context.Context, id int64) (*model.Estimate, error) {
	var e model.Estimate
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

// ListEstimates returns saved estimates, newest first.
func (s *gormStore) ListEstimates(ctx context.Context, filter ListFilter) ([]model.Estimate, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(filter.limit())
	if filter.Device != "" {
		q = q.Where("device = ?", filter.Device)
	}

	var estimates []model.Estimate
	if err := q.Find(&estimates).Error; err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	return estimates, nil
}

func (s *gormStore) DeleteEstimate(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Estimate{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete estimate %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SummarizeByDevice aggregates every saved estimate per device.
func (s *gormStore) SummarizeByDevice(ctx context.Context) ([]model.DeviceSummary, error) {
	var rows []model.DeviceSummary
	err := s.db.WithContext(ctx).
		Model(&model.Estimate{}).
		Select("device, COUNT(*) AS count, COALESCE(SUM(monthly_energy_kwh), 0) AS monthly_energy_kwh, COALESCE(SUM(monthly_cost), 0) AS monthly_cost").
		Group("device").
		Order("device").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize estimates: %w", err)
	}
	return rows, nil
}
