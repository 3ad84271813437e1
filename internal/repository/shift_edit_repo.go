package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// ShiftEditRepository is the append-only change-log data access interface.
// There is deliberately no update or delete: history is never rewritten.
type ShiftEditRepository interface {
	Append(ctx context.Context, edit *model.ShiftEdit) error
	ListByYear(ctx context.Context, year int) ([]model.ShiftEdit, error)
	ListPaged(ctx context.Context, offset, limit int) ([]model.ShiftEdit, int64, error)
}

type shiftEditRepo struct {
	db *gorm.DB
}

func NewShiftEditRepo(db *gorm.DB) ShiftEditRepository {
	return &shiftEditRepo{db: db}
}

func (r *shiftEditRepo) Append(ctx context.Context, edit *model.ShiftEdit) error {
	return r.db.WithContext(ctx).Create(edit).Error
}

func (r *shiftEditRepo) ListByYear(ctx context.Context, year int) ([]model.ShiftEdit, error) {
	var edits []model.ShiftEdit
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("edited_at ASC, id ASC").
		Find(&edits).Error
	return edits, err
}

func (r *shiftEditRepo) ListPaged(ctx context.Context, offset, limit int) ([]model.ShiftEdit, int64, error) {
	var edits []model.ShiftEdit
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ShiftEdit{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("edited_at DESC, id DESC").
		Find(&edits).Error
	return edits, total, err
}
