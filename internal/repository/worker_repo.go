package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// WorkerRepository is the workers data access interface.
type WorkerRepository interface {
	Create(ctx context.Context, worker *model.Worker) error
	GetByNIP(ctx context.Context, nip string) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	Update(ctx context.Context, worker *model.Worker) error
	Upsert(ctx context.Context, worker *model.Worker) error
}

type workerRepo struct {
	db *gorm.DB
}

func NewWorkerRepo(db *gorm.DB) WorkerRepository {
	return &workerRepo{db: db}
}

func (r *workerRepo) Create(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepo) GetByNIP(ctx context.Context, nip string) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.WithContext(ctx).
		Where("nip = ?", nip).
		First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepo) List(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *workerRepo) Update(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepo) Upsert(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).
		Where("nip = ?", worker.NIP).
		Assign(map[string]interface{}{
			"name":     worker.Name,
			"category": worker.Category,
		}).
		FirstOrCreate(worker).Error
}
