package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// RosterRepository is the base-roster data access interface.
// The base roster is only written by import; reads feed the reconciler.
type RosterRepository interface {
	BatchCreate(ctx context.Context, entries []model.RosterEntry) error
	ListByYear(ctx context.Context, year int) ([]model.RosterEntry, error)
	ReplaceYear(ctx context.Context, year int, entries []model.RosterEntry) error
}

type rosterRepo struct {
	db *gorm.DB
}

func NewRosterRepo(db *gorm.DB) RosterRepository {
	return &rosterRepo{db: db}
}

func (r *rosterRepo) BatchCreate(ctx context.Context, entries []model.RosterEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&entries, 500).Error
}

func (r *rosterRepo) ListByYear(ctx context.Context, year int) ([]model.RosterEntry, error) {
	var entries []model.RosterEntry
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("date >= ? AND date < ?", start, end).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// ReplaceYear swaps a year's base roster atomically; used by import.
func (r *rosterRepo) ReplaceYear(ctx context.Context, year int, entries []model.RosterEntry) error {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date < ?", start, end).
			Delete(&model.RosterEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(&entries, 500).Error
	})
}
