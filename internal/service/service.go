package service

import (
	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/redis"
)

// Service aggregates every service interface.
type Service struct {
	Auth    AuthService
	Roster  RosterService
	Edit    EditService
	Summary SummaryService
	Export  ExportService
}

// NewService wires the service aggregate.
// Repository → Service → Handler is the only dependency direction.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	roster := NewRosterService(cfg, repo, logger)
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Roster:  roster,
		Edit:    NewEditService(cfg, repo, roster, logger),
		Summary: NewSummaryService(cfg, repo, roster, logger),
		Export:  NewExportService(cfg, repo, roster, logger),
	}
}
