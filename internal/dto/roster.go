package dto

import "github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"

// ── cuadrante view ──

// RosterCellResponse is one rendered roster cell: canonical code plus its
// full interpretation for the presentation layer.
type RosterCellResponse struct {
	Day     int         `json:"day"`
	Code    string      `json:"code"`
	Display string      `json:"display,omitempty"` // Spanish name for atomic codes
	Periods []string    `json:"periods,omitempty"`
	Worked  bool        `json:"worked"`
	Hours   float64     `json:"hours"`
	Style   shift.Style `json:"style"`
	Known   bool        `json:"known"`
}

// RosterRowResponse is one worker's month of cells.
type RosterRowResponse struct {
	NIP      string               `json:"nip"`
	Name     string               `json:"name"`
	Category string               `json:"category"`
	Cells    []RosterCellResponse `json:"cells"`
}

// DayHeaderResponse marks one day column of the month grid.
type DayHeaderResponse struct {
	Day       int  `json:"day"`
	IsHoliday bool `json:"is_holiday"` // explicit holiday or Sunday
}

// HeadcountResponse is the per-period headcount of one day.
type HeadcountResponse struct {
	Day       int `json:"day"`
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Night     int `json:"night"`
}

// MonthRosterResponse is the full cuadrante for one month.
type MonthRosterResponse struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	Days       []DayHeaderResponse `json:"days"`
	Rows       []RosterRowResponse `json:"rows"`
	Headcounts []HeadcountResponse `json:"headcounts"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// ── "my shifts" calendar view ──

// MyShiftPeriodResponse is one period of one of the worker's days, with the
// companions covering the same period.
type MyShiftPeriodResponse struct {
	Code       string      `json:"code"`
	Display    string      `json:"display"`
	Style      shift.Style `json:"style"`
	Companions []string    `json:"companions,omitempty"`
}

// MyShiftDayResponse is one calendar day of the worker's month.
type MyShiftDayResponse struct {
	Day       int                     `json:"day"`
	IsHoliday bool                    `json:"is_holiday"`
	Periods   []MyShiftPeriodResponse `json:"periods,omitempty"`
}

// MyShiftsResponse is the worker's own month view.
type MyShiftsResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []MyShiftDayResponse `json:"days"`
}

// ── edits ──

// ApplyEditRequest is an admin's single cell edit.
// Date format: YYYY-MM-DD.
//
// ExpectedCode, when set, is the cell value the admin was looking at; the
// edit is rejected if someone changed the cell in the meantime.
type ApplyEditRequest struct {
	NIP          string  `json:"nip"      binding:"required"`
	Date         string  `json:"date"     binding:"required"`
	NewCode      string  `json:"new_code" binding:"required"`
	Note         string  `json:"note"`
	ExpectedCode *string `json:"expected_code"`
}

// EditResponse is one change-log row.
type EditResponse struct {
	ID           int64  `json:"id"`
	EditedAt     string `json:"edited_at"`
	AdminNIP     string `json:"admin_nip"`
	NIP          string `json:"nip"`
	WorkerName   string `json:"worker_name"`
	Date         string `json:"date"`
	PreviousCode string `json:"previous_code"`
	NewCode      string `json:"new_code"`
	Note         string `json:"note"`
}

// EditListRequest pages through the change log.
type EditListRequest struct {
	Page     int `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// ── import ──

// ImportResultResponse reports a base-roster CSV import.
type ImportResultResponse struct {
	Imported int      `json:"imported"`
	Rejected []string `json:"rejected,omitempty"` // per-row reasons, auditable
}

// ── holidays ──

// HolidayRequest creates one holiday.
type HolidayRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Name string `json:"name"`
}

// HolidayResponse is one holiday row.
type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ── manual hours ──

// ManualHoursRequest records one additive hour adjustment.
type ManualHoursRequest struct {
	NIP     string  `json:"nip"   binding:"required"`
	Month   int     `json:"month" binding:"required,min=1,max=12"`
	Concept string  `json:"concept"`
	Hours   float64 `json:"hours" binding:"required"`
}

// ManualHoursResponse is one stored adjustment.
type ManualHoursResponse struct {
	ID      int64   `json:"id"`
	NIP     string  `json:"nip"`
	Month   int     `json:"month"`
	Concept string  `json:"concept"`
	Hours   float64 `json:"hours"`
}
