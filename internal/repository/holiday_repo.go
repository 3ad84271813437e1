package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// HolidayRepository is the holiday-set data access interface.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *model.Holiday) error
	ListByYear(ctx context.Context, year int) ([]model.Holiday, error)
	Delete(ctx context.Context, date time.Time) error
}

type holidayRepo struct {
	db *gorm.DB
}

func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Create(ctx context.Context, holiday *model.Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *holidayRepo) ListByYear(ctx context.Context, year int) ([]model.Holiday, error) {
	var holidays []model.Holiday
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) Delete(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("date = ?", date).
		Delete(&model.Holiday{}).Error
}
