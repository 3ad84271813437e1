package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// ManualHoursRepository is the hour-adjustment data access interface.
type ManualHoursRepository interface {
	Create(ctx context.Context, adj *model.ManualHours) error
	ListByNIP(ctx context.Context, nip string) ([]model.ManualHours, error)
	List(ctx context.Context) ([]model.ManualHours, error)
}

type manualHoursRepo struct {
	db *gorm.DB
}

func NewManualHoursRepo(db *gorm.DB) ManualHoursRepository {
	return &manualHoursRepo{db: db}
}

func (r *manualHoursRepo) Create(ctx context.Context, adj *model.ManualHours) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *manualHoursRepo) ListByNIP(ctx context.Context, nip string) ([]model.ManualHours, error) {
	var adjs []model.ManualHours
	err := r.db.WithContext(ctx).
		Where("nip = ?", nip).
		Order("month ASC, id ASC").
		Find(&adjs).Error
	return adjs, err
}

func (r *manualHoursRepo) List(ctx context.Context) ([]model.ManualHours, error) {
	var adjs []model.ManualHours
	err := r.db.WithContext(ctx).
		Order("nip ASC, month ASC, id ASC").
		Find(&adjs).Error
	return adjs, err
}
