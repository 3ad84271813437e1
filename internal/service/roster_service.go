package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
)

var (
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrImportBadHeader = errors.New("import file is missing required columns")
	ErrHolidayExists   = errors.New("holiday already exists")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// importColumns are the required CSV header names, as exported by the
// historic cuadrante spreadsheets.
var importColumns = []string{"fecha", "nip", "nombre", "categoria", "turno"}

// RosterService serves the cuadrante views and owns the base roster,
// holiday set and manual-hour adjustments.
//
// The effective roster is recomputed from base + full edit-log replay on
// every read. At this data volume (a station's workers × one year) that is
// cheap and keeps reads trivially consistent.
type RosterService interface {
	EffectiveRoster(ctx context.Context, year int) ([]shift.Entry, []shift.Warning, error)
	CalendarFor(ctx context.Context, year int) (shift.Calendar, error)
	MonthRoster(ctx context.Context, month int) (*dto.MonthRosterResponse, error)
	MyShifts(ctx context.Context, nip string, month int) (*dto.MyShiftsResponse, error)
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error)
	ListWorkers(ctx context.Context) ([]dto.WorkerResponse, error)

	ListHolidays(ctx context.Context, year int) ([]dto.HolidayResponse, error)
	AddHoliday(ctx context.Context, req *dto.HolidayRequest) (*dto.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, date string) error

	AddManualHours(ctx context.Context, req *dto.ManualHoursRequest) (*dto.ManualHoursResponse, error)
	ListManualHours(ctx context.Context) ([]dto.ManualHoursResponse, error)
}

type rosterService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService creates a RosterService.
func NewRosterService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── effective roster ──────────────────────

func (s *rosterService) EffectiveRoster(ctx context.Context, year int) ([]shift.Entry, []shift.Warning, error) {
	rows, err := s.repo.Roster.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("load base roster failed", zap.Error(err))
		return nil, nil, err
	}

	edits, err := s.repo.ShiftEdit.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("load edit log failed", zap.Error(err))
		return nil, nil, err
	}

	base := make([]shift.Entry, 0, len(rows))
	for _, row := range rows {
		e := shift.Entry{
			NIP:  row.NIP,
			Date: row.Date,
			Code: row.Code,
		}
		if row.Worker != nil {
			e.Name = row.Worker.Name
			e.Category = row.Worker.Category
		}
		base = append(base, e)
	}

	log := make([]shift.Edit, 0, len(edits))
	for _, ed := range edits {
		log = append(log, shift.Edit{
			At:           ed.EditedAt,
			AdminNIP:     ed.AdminNIP,
			NIP:          ed.NIP,
			WorkerName:   ed.WorkerName,
			Date:         ed.Date,
			PreviousCode: ed.PreviousCode,
			NewCode:      ed.NewCode,
			Note:         ed.Note,
		})
	}

	effective, warnings := shift.Reconcile(base, log)
	for _, w := range warnings {
		s.logger.Warn("roster irregularity", zap.String("nip", w.NIP), zap.String("detail", w.Message))
	}
	return effective, warnings, nil
}

func (s *rosterService) CalendarFor(ctx context.Context, year int) (shift.Calendar, error) {
	holidays, err := s.repo.Holiday.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("load holidays failed", zap.Error(err))
		return shift.Calendar{}, err
	}
	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return shift.NewCalendar(dates), nil
}

// ────────────────────── month view ──────────────────────

func (s *rosterService) MonthRoster(ctx context.Context, month int) (*dto.MonthRosterResponse, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	year := s.cfg.Cuadrante.Year

	effective, warnings, err := s.EffectiveRoster(ctx, year)
	if err != nil {
		return nil, err
	}
	cal, err := s.CalendarFor(ctx, year)
	if err != nil {
		return nil, err
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	resp := &dto.MonthRosterResponse{Year: year, Month: month}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		resp.Days = append(resp.Days, dto.DayHeaderResponse{
			Day:       d,
			IsHoliday: cal.IsHolidayOrSunday(date),
		})
	}

	// Group the month's cells by worker, preserving roster order.
	type rowAcc struct {
		row   *dto.RosterRowResponse
		cells map[int]dto.RosterCellResponse
	}
	var order []string
	byNIP := make(map[string]*rowAcc)
	headMorning := make([]int, daysInMonth+1)
	headAfternoon := make([]int, daysInMonth+1)
	headNight := make([]int, daysInMonth+1)
	unknownWarned := make(map[string]bool)

	for _, e := range effective {
		if int(e.Date.Month()) != month || e.Date.Year() != year {
			continue
		}
		acc, ok := byNIP[e.NIP]
		if !ok {
			acc = &rowAcc{
				row: &dto.RosterRowResponse{
					NIP:      e.NIP,
					Name:     e.Name,
					Category: e.Category,
				},
				cells: make(map[int]dto.RosterCellResponse),
			}
			byNIP[e.NIP] = acc
			order = append(order, e.NIP)
		}

		d := e.Date.Day()
		interp := shift.Interpret(e.Code, cal.ContextFor(e.Date))
		cell := dto.RosterCellResponse{
			Day:    d,
			Code:   shift.Parse(e.Code).Canonical(),
			Worked: interp.CountsAsWorked,
			Hours:  interp.Hours,
			Style:  interp.Style,
			Known:  interp.Known,
		}
		if code := shift.Parse(e.Code); !code.Composite() && !code.Empty() {
			cell.Display = code.Atoms[0].DisplayName()
		}
		for _, p := range interp.Periods {
			cell.Periods = append(cell.Periods, p.String())
			switch p {
			case shift.PeriodMorning:
				headMorning[d]++
			case shift.PeriodAfternoon:
				headAfternoon[d]++
			case shift.PeriodNight:
				headNight[d]++
			}
		}
		acc.cells[d] = cell

		if !interp.Known && !unknownWarned[cell.Code] {
			unknownWarned[cell.Code] = true
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("unrecognized shift code %q rendered neutrally", cell.Code))
		}
	}

	for _, nip := range order {
		acc := byNIP[nip]
		for d := 1; d <= daysInMonth; d++ {
			cell, ok := acc.cells[d]
			if !ok {
				cell = dto.RosterCellResponse{Day: d, Style: shift.Interpret("", shift.Context{}).Style, Known: true}
			}
			acc.row.Cells = append(acc.row.Cells, cell)
		}
		resp.Rows = append(resp.Rows, *acc.row)
	}

	for d := 1; d <= daysInMonth; d++ {
		resp.Headcounts = append(resp.Headcounts, dto.HeadcountResponse{
			Day:       d,
			Morning:   headMorning[d],
			Afternoon: headAfternoon[d],
			Night:     headNight[d],
		})
	}

	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, w.String())
	}

	return resp, nil
}

// ────────────────────── my shifts ──────────────────────

func (s *rosterService) MyShifts(ctx context.Context, nip string, month int) (*dto.MyShiftsResponse, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	year := s.cfg.Cuadrante.Year
	nip = shift.NormalizeNIP(nip)

	effective, _, err := s.EffectiveRoster(ctx, year)
	if err != nil {
		return nil, err
	}
	cal, err := s.CalendarFor(ctx, year)
	if err != nil {
		return nil, err
	}

	// Index the month: per (day, period) the covering workers, and the
	// worker's own entry per day.
	type dayPeriod struct {
		day    int
		period shift.Period
	}
	coverers := make(map[dayPeriod][]shift.Entry)
	own := make(map[int]shift.Entry)
	firstNames := make(map[string]int) // first-name frequency for disambiguation

	seen := make(map[string]bool)
	for _, e := range effective {
		if int(e.Date.Month()) != month || e.Date.Year() != year {
			continue
		}
		if !seen[e.NIP] {
			seen[e.NIP] = true
			firstNames[firstToken(e.Name)]++
		}
		interp := shift.Interpret(e.Code, cal.ContextFor(e.Date))
		for _, p := range interp.Periods {
			coverers[dayPeriod{e.Date.Day(), p}] = append(coverers[dayPeriod{e.Date.Day(), p}], e)
		}
		if e.NIP == nip {
			own[e.Date.Day()] = e
		}
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	resp := &dto.MyShiftsResponse{Year: year, Month: month}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		dayResp := dto.MyShiftDayResponse{
			Day:       d,
			IsHoliday: cal.IsHolidayOrSunday(date),
		}

		if e, ok := own[d]; ok {
			code := shift.Parse(e.Code)
			for _, atom := range code.Atoms {
				p := dto.MyShiftPeriodResponse{
					Code:    atom.Code,
					Display: atom.DisplayName(),
					Style:   shift.Interpret(atom.Code, cal.ContextFor(date)).Style,
				}
				if period, ok := atom.Period(); ok {
					for _, companion := range coverers[dayPeriod{d, period}] {
						if companion.NIP == nip {
							continue
						}
						p.Companions = append(p.Companions, shortName(companion.Name, firstNames))
					}
				}
				dayResp.Periods = append(dayResp.Periods, p)
			}
		}

		resp.Days = append(resp.Days, dayResp)
	}

	return resp, nil
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// shortName abbreviates a companion's full name to their first name, adding
// the next initial when the first name alone is ambiguous in this roster.
func shortName(name string, firstNames map[string]int) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	if firstNames[fields[0]] > 1 && len(fields) > 1 {
		return fields[0] + " " + string([]rune(fields[1])[:1]) + "."
	}
	return fields[0]
}

// ────────────────────── import ──────────────────────

func (s *rosterService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error) {
	year := s.cfg.Cuadrante.Year

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrImportBadHeader
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range importColumns {
		if _, ok := col[want]; !ok {
			return nil, ErrImportBadHeader
		}
	}

	result := &dto.ImportResultResponse{}
	var entries []model.RosterEntry
	workers := make(map[string]*model.Worker)
	seenCell := make(map[string]bool)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Rejected = append(result.Rejected, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(record[col["fecha"]]))
		if err != nil {
			result.Rejected = append(result.Rejected, fmt.Sprintf("line %d: bad date %q", line, record[col["fecha"]]))
			continue
		}
		if date.Year() != year {
			result.Rejected = append(result.Rejected, fmt.Sprintf("line %d: date %s outside roster year %d", line, date.Format(dateLayout), year))
			continue
		}

		nip := shift.NormalizeNIP(record[col["nip"]])
		cellKey := nip + "|" + date.Format(dateLayout)
		if seenCell[cellKey] {
			result.Rejected = append(result.Rejected, fmt.Sprintf("line %d: duplicate cell (%s, %s), first occurrence wins", line, nip, date.Format(dateLayout)))
			continue
		}
		seenCell[cellKey] = true

		name := strings.TrimSpace(record[col["nombre"]])
		category := strings.TrimSpace(record[col["categoria"]])
		code := strings.TrimSpace(record[col["turno"]])

		if w, ok := workers[nip]; !ok {
			workers[nip] = &model.Worker{NIP: nip, Name: name, Category: category, Role: model.RoleWorker}
		} else if w.Name == "" {
			w.Name = name
		}

		entries = append(entries, model.RosterEntry{
			NIP:  nip,
			Date: date,
			Code: shift.Parse(code).Canonical(),
		})
		result.Imported++
	}

	for _, w := range workers {
		if err := s.repo.Worker.Upsert(ctx, w); err != nil {
			s.logger.Error("upsert worker failed", zap.String("nip", w.NIP), zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.Roster.ReplaceYear(ctx, year, entries); err != nil {
		s.logger.Error("replace base roster failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("base roster imported",
		zap.Int("entries", result.Imported),
		zap.Int("rejected", len(result.Rejected)),
		zap.Int("workers", len(workers)),
	)
	return result, nil
}

func (s *rosterService) ListWorkers(ctx context.Context) ([]dto.WorkerResponse, error) {
	workers, err := s.repo.Worker.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, dto.WorkerResponse{
			NIP:      w.NIP,
			Name:     w.Name,
			Category: w.Category,
			Role:     w.Role,
		})
	}
	return out, nil
}

// ────────────────────── holidays ──────────────────────

func (s *rosterService) ListHolidays(ctx context.Context, year int) ([]dto.HolidayResponse, error) {
	holidays, err := s.repo.Holiday.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, dto.HolidayResponse{
			Date: h.Date.Format(dateLayout),
			Name: h.Name,
		})
	}
	return out, nil
}

func (s *rosterService) AddHoliday(ctx context.Context, req *dto.HolidayRequest) (*dto.HolidayResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	h := &model.Holiday{Date: date, Name: req.Name}
	if err := s.repo.Holiday.Create(ctx, h); err != nil {
		return nil, err
	}
	return &dto.HolidayResponse{Date: h.Date.Format(dateLayout), Name: h.Name}, nil
}

func (s *rosterService) DeleteHoliday(ctx context.Context, date string) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	return s.repo.Holiday.Delete(ctx, d)
}

// ────────────────────── manual hours ──────────────────────

func (s *rosterService) AddManualHours(ctx context.Context, req *dto.ManualHoursRequest) (*dto.ManualHoursResponse, error) {
	adj := &model.ManualHours{
		NIP:     shift.NormalizeNIP(req.NIP),
		Month:   req.Month,
		Concept: req.Concept,
		Hours:   req.Hours,
	}
	if err := s.repo.ManualHours.Create(ctx, adj); err != nil {
		return nil, err
	}
	return manualHoursDTO(adj), nil
}

func (s *rosterService) ListManualHours(ctx context.Context) ([]dto.ManualHoursResponse, error) {
	adjs, err := s.repo.ManualHours.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManualHoursResponse, 0, len(adjs))
	for _, adj := range adjs {
		out = append(out, *manualHoursDTO(&adj))
	}
	return out, nil
}

func manualHoursDTO(adj *model.ManualHours) *dto.ManualHoursResponse {
	return &dto.ManualHoursResponse{
		ID:      adj.ID,
		NIP:     adj.NIP,
		Month:   adj.Month,
		Concept: adj.Concept,
		Hours:   adj.Hours,
	}
}
