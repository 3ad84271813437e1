package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	apperrors "github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/errors"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// EditHandler serves the shift change-log endpoints.
type EditHandler struct {
	editSvc service.EditService
}

// NewEditHandler creates an EditHandler.
func NewEditHandler(editSvc service.EditService) *EditHandler {
	return &EditHandler{editSvc: editSvc}
}

// Apply records one cell edit.
// POST /api/v1/edits
func (h *EditHandler) Apply(c *gin.Context) {
	adminNIP, ok := MustGetNIP(c)
	if !ok {
		return
	}

	var req dto.ApplyEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.editSvc.Apply(c.Request.Context(), adminNIP, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 13001, "date must be YYYY-MM-DD")
		case errors.Is(err, service.ErrEditOutsideYear):
			response.BadRequest(c, 13002, "date is outside the roster year")
		case errors.Is(err, apperrors.ErrOptimisticLock):
			response.Error(c, http.StatusConflict, 13003, "cell was changed by another edit, reload and retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List pages through the change log, newest first.
// GET /api/v1/edits?page=1&page_size=20
func (h *EditHandler) List(c *gin.Context) {
	var req dto.EditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid paging parameters")
		return
	}

	edits, total, err := h.editSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, edits, total, req.Page, req.PageSize)
}
