package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// SummaryHandler serves the yearly summary endpoint.
type SummaryHandler struct {
	summarySvc service.SummaryService
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(summarySvc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// Get returns a worker's yearly category breakdown.
// GET /api/v1/summary?year=2026&nip=001234
//
// Workers may only read their own summary; admins may pass any nip.
func (h *SummaryHandler) Get(c *gin.Context) {
	ownNIP, ok := MustGetNIP(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	nip := shift.NormalizeNIP(c.Query("nip"))
	if c.Query("nip") == "" {
		nip = ownNIP
	}
	if role != model.RoleAdmin && nip != shift.NormalizeNIP(ownNIP) {
		response.Forbidden(c, 10003, "cannot read another worker's summary")
		return
	}

	year, _ := strconv.Atoi(c.Query("year"))

	summary, err := h.summarySvc.YearSummary(c.Request.Context(), nip, year)
	if err != nil {
		if errors.Is(err, service.ErrNoRosterForWorker) {
			response.NotFound(c, 14001, "no roster entries for this worker")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
