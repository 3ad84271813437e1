package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
	apperrors "github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/errors"
)

var (
	ErrEditOutsideYear = errors.New("edit date outside the roster year")
)

// EditService appends to the shift change log. The log is the source of
// truth for every deviation from the imported base roster; rows are never
// updated or deleted, a correction is just another appended edit.
type EditService interface {
	Apply(ctx context.Context, adminNIP string, req *dto.ApplyEditRequest) (*dto.EditResponse, error)
	List(ctx context.Context, req *dto.EditListRequest) ([]dto.EditResponse, int64, error)
}

type editService struct {
	cfg    *config.Config
	repo   *repository.Repository
	roster RosterService
	logger *zap.Logger
}

// NewEditService creates an EditService.
func NewEditService(cfg *config.Config, repo *repository.Repository, roster RosterService, logger *zap.Logger) EditService {
	return &editService{cfg: cfg, repo: repo, roster: roster, logger: logger}
}

func (s *editService) Apply(ctx context.Context, adminNIP string, req *dto.ApplyEditRequest) (*dto.EditResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	year := s.cfg.Cuadrante.Year
	if date.Year() != year {
		return nil, ErrEditOutsideYear
	}

	nip := shift.NormalizeNIP(req.NIP)

	// Snapshot the cell being replaced and the worker's name, so the log
	// row is legible on its own even if the worker later disappears from
	// the base roster.
	effective, _, err := s.roster.EffectiveRoster(ctx, year)
	if err != nil {
		return nil, err
	}
	var previousCode, workerName string
	for _, e := range effective {
		if e.NIP != nip {
			continue
		}
		if workerName == "" {
			workerName = e.Name
		}
		if e.Date.Equal(date) {
			previousCode = e.Code
		}
	}
	if workerName == "" {
		if w, err := s.repo.Worker.GetByNIP(ctx, nip); err == nil && w != nil {
			workerName = w.Name
		}
	}

	if req.ExpectedCode != nil && shift.Parse(*req.ExpectedCode).Canonical() != previousCode {
		return nil, apperrors.ErrOptimisticLock
	}

	edit := &model.ShiftEdit{
		EditedAt:     time.Now().UTC(),
		AdminNIP:     shift.NormalizeNIP(adminNIP),
		NIP:          nip,
		WorkerName:   workerName,
		Date:         date,
		PreviousCode: previousCode,
		NewCode:      shift.Parse(req.NewCode).Canonical(),
		Note:         req.Note,
	}
	if err := s.repo.ShiftEdit.Append(ctx, edit); err != nil {
		s.logger.Error("append shift edit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("shift edit applied",
		zap.String("admin", edit.AdminNIP),
		zap.String("nip", edit.NIP),
		zap.String("date", edit.Date.Format(dateLayout)),
		zap.String("previous", edit.PreviousCode),
		zap.String("new", edit.NewCode),
	)
	return editDTO(edit), nil
}

func (s *editService) List(ctx context.Context, req *dto.EditListRequest) ([]dto.EditResponse, int64, error) {
	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	edits, total, err := s.repo.ShiftEdit.ListPaged(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list shift edits failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.EditResponse, 0, len(edits))
	for _, ed := range edits {
		out = append(out, *editDTO(&ed))
	}
	return out, total, nil
}

func editDTO(ed *model.ShiftEdit) *dto.EditResponse {
	return &dto.EditResponse{
		ID:           ed.ID,
		EditedAt:     ed.EditedAt.Format(time.RFC3339),
		AdminNIP:     ed.AdminNIP,
		NIP:          ed.NIP,
		WorkerName:   ed.WorkerName,
		Date:         ed.Date.Format(dateLayout),
		PreviousCode: ed.PreviousCode,
		NewCode:      ed.NewCode,
		Note:         ed.Note,
	}
}
