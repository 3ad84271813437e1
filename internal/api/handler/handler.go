package handler

import "github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth    *AuthHandler
	Roster  *RosterHandler
	Edit    *EditHandler
	Summary *SummaryHandler
	Export  *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Roster:  NewRosterHandler(svc.Roster),
		Edit:    NewEditHandler(svc.Edit),
		Summary: NewSummaryHandler(svc.Summary),
		Export:  NewExportHandler(svc.Export),
	}
}
