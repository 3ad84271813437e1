package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// RosterHandler serves the cuadrante views, the CSV import and the holiday
// and manual-hour administration endpoints.
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// monthParam parses the ?month= query parameter.
func monthParam(c *gin.Context) (int, bool) {
	raw := c.Query("month")
	if raw == "" {
		response.BadRequest(c, 10001, "month is required")
		return 0, false
	}
	month, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, 10001, "month must be a number")
		return 0, false
	}
	return month, true
}

// GetMonth returns the full cuadrante grid for one month.
// GET /api/v1/roster?month=1
func (h *RosterHandler) GetMonth(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	view, err := h.rosterSvc.MonthRoster(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.BadRequest(c, 12001, "month must be between 1 and 12")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, view)
}

// GetMine returns the authenticated worker's own month view.
// GET /api/v1/roster/me?month=1
func (h *RosterHandler) GetMine(c *gin.Context) {
	nip, ok := MustGetNIP(c)
	if !ok {
		return
	}
	month, ok := monthParam(c)
	if !ok {
		return
	}

	view, err := h.rosterSvc.MyShifts(c.Request.Context(), nip, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.BadRequest(c, 12001, "month must be between 1 and 12")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, view)
}

// Import replaces the year's base roster from an uploaded CSV.
// POST /api/v1/roster/import  (multipart field "file", or raw CSV body)
func (h *RosterHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		// No multipart file: accept the raw body as CSV.
		result, err := h.rosterSvc.ImportCSV(c.Request.Context(), c.Request.Body)
		if err != nil {
			h.handleImportError(c, err)
			return
		}
		response.OK(c, result)
		return
	}
	defer file.Close()

	result, err := h.rosterSvc.ImportCSV(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *RosterHandler) handleImportError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrImportBadHeader) {
		response.BadRequest(c, 12002, "CSV must have fecha, nip, nombre, categoria and turno columns")
		return
	}
	response.InternalError(c)
}

// ListWorkers returns every known worker.
// GET /api/v1/workers
func (h *RosterHandler) ListWorkers(c *gin.Context) {
	workers, err := h.rosterSvc.ListWorkers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, workers)
}

// ── holidays ──

// ListHolidays returns the year's holiday set.
// GET /api/v1/holidays?year=2026
func (h *RosterHandler) ListHolidays(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	holidays, err := h.rosterSvc.ListHolidays(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, holidays)
}

// CreateHoliday registers a holiday.
// POST /api/v1/holidays
func (h *RosterHandler) CreateHoliday(c *gin.Context) {
	var req dto.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	holiday, err := h.rosterSvc.AddHoliday(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 12003, "date must be YYYY-MM-DD")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, holiday)
}

// DeleteHoliday removes a holiday.
// DELETE /api/v1/holidays/:date
func (h *RosterHandler) DeleteHoliday(c *gin.Context) {
	if err := h.rosterSvc.DeleteHoliday(c.Request.Context(), c.Param("date")); err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 12003, "date must be YYYY-MM-DD")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── manual hours ──

// CreateManualHours records an additive hour adjustment.
// POST /api/v1/manual-hours
func (h *RosterHandler) CreateManualHours(c *gin.Context) {
	var req dto.ManualHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	adj, err := h.rosterSvc.AddManualHours(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, adj)
}

// ListManualHours returns every stored adjustment.
// GET /api/v1/manual-hours
func (h *RosterHandler) ListManualHours(c *gin.Context) {
	adjs, err := h.rosterSvc.ListManualHours(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, adjs)
}
