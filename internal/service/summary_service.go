package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
)

var (
	ErrNoRosterForWorker = errors.New("worker has no roster entries")
)

// SummaryService derives the yearly category breakdown for one worker from
// the effective roster plus stored manual adjustments.
type SummaryService interface {
	YearSummary(ctx context.Context, nip string, year int) (*dto.SummaryResponse, error)
}

type summaryService struct {
	cfg    *config.Config
	repo   *repository.Repository
	roster RosterService
	logger *zap.Logger
}

// NewSummaryService creates a SummaryService.
func NewSummaryService(cfg *config.Config, repo *repository.Repository, roster RosterService, logger *zap.Logger) SummaryService {
	return &summaryService{cfg: cfg, repo: repo, roster: roster, logger: logger}
}

func (s *summaryService) YearSummary(ctx context.Context, nip string, year int) (*dto.SummaryResponse, error) {
	if year == 0 {
		year = s.cfg.Cuadrante.Year
	}
	nip = shift.NormalizeNIP(nip)

	effective, _, err := s.roster.EffectiveRoster(ctx, year)
	if err != nil {
		return nil, err
	}

	found := false
	for _, e := range effective {
		if e.NIP == nip {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoRosterForWorker
	}

	cal, err := s.roster.CalendarFor(ctx, year)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.repo.ManualHours.ListByNIP(ctx, nip)
	if err != nil {
		s.logger.Error("load manual hours failed", zap.String("nip", nip), zap.Error(err))
		return nil, err
	}
	manual := make([]shift.ManualAdjustment, 0, len(adjustments))
	for _, adj := range adjustments {
		manual = append(manual, shift.ManualAdjustment{
			NIP:   adj.NIP,
			Month: adj.Month,
			Hours: adj.Hours,
		})
	}

	summary := shift.Summarize(effective, nip, year, cal, manual)
	return summaryDTO(summary), nil
}

func summaryDTO(s shift.Summary) *dto.SummaryResponse {
	resp := &dto.SummaryResponse{
		NIP:  s.NIP,
		Name: s.Name,
		Year: s.Year,
	}
	for _, row := range s.Rows {
		resp.Rows = append(resp.Rows, dto.SummaryRowResponse{
			Category: row.Category,
			Months:   row.Months,
			Total:    row.Total,
		})
	}
	return resp
}
