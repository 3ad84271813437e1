package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the file-download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Roster downloads one month of the cuadrante as .xlsx.
// GET /api/v1/export/roster?month=1
func (h *ExportHandler) Roster(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, filename, xlsxContentType, buf.Bytes())
}

// Summary downloads a worker's yearly summary as .xlsx.
// GET /api/v1/export/summary?nip=001234&year=2026
func (h *ExportHandler) Summary(c *gin.Context) {
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
		response.Forbidden(c, 10003, "cannot export another worker's summary")
		return
	}

	year, _ := strconv.Atoi(c.Query("year"))

	buf, filename, err := h.exportSvc.ExportSummary(c.Request.Context(), nip, year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, filename, xlsxContentType, buf.Bytes())
}

// Calendar downloads the authenticated worker's shifts as an iCalendar file.
// GET /api/v1/export/calendar
func (h *ExportHandler) Calendar(c *gin.Context) {
	nip, ok := MustGetNIP(c)
	if !ok {
		return
	}

	feed, filename, err := h.exportSvc.CalendarFeed(c.Request.Context(), nip)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, filename, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMonth):
		response.BadRequest(c, 12001, "month must be between 1 and 12")
	case errors.Is(err, service.ErrExportEmptyRoster):
		response.NotFound(c, 15001, "nothing to export")
	case errors.Is(err, service.ErrNoRosterForWorker):
		response.NotFound(c, 14001, "no roster entries for this worker")
	default:
		response.InternalError(c)
	}
}

func writeDownload(c *gin.Context, filename, contentType string, body []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}
