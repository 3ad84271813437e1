package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
)

var (
	ErrExportEmptyRoster  = errors.New("no roster entries to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// Shift period wall-clock bounds used for the calendar feed.
var periodClock = map[shift.Period][2]int{
	shift.PeriodMorning:   {6, 14},
	shift.PeriodAfternoon: {14, 22},
	shift.PeriodNight:     {22, 30}, // wraps past midnight
}

// ExportService renders the cuadrante and summaries as downloadable files.
type ExportService interface {
	// ExportRoster renders one month of the cuadrante as an .xlsx grid,
	// reproducing the per-code cell colors of the printed sheets.
	ExportRoster(ctx context.Context, month int) (*bytes.Buffer, string, error)
	// ExportSummary renders a worker's yearly summary table as .xlsx.
	ExportSummary(ctx context.Context, nip string, year int) (*bytes.Buffer, string, error)
	// CalendarFeed renders a worker's yearly shifts as an iCalendar feed.
	CalendarFeed(ctx context.Context, nip string) (string, string, error)
}

type exportService struct {
	cfg     *config.Config
	repo    *repository.Repository
	roster  RosterService
	summary SummaryService
	logger  *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, roster RosterService, logger *zap.Logger) ExportService {
	return &exportService{
		cfg:     cfg,
		repo:    repo,
		roster:  roster,
		summary: NewSummaryService(cfg, repo, roster, logger),
		logger:  logger,
	}
}

// ────────────────────── month grid ──────────────────────

func (s *exportService) ExportRoster(ctx context.Context, month int) (*bytes.Buffer, string, error) {
	view, err := s.roster.MonthRoster(ctx, month)
	if err != nil {
		return nil, "", err
	}
	if len(view.Rows) == 0 {
		return nil, "", ErrExportEmptyRoster
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Cuadrante %02d-%d", month, view.Year)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "B", 16)
	lastCol := colName(2 + len(view.Days))
	firstDayCol := colName(3)
	f.SetColWidth(sheet, firstDayCol, lastCol, 5)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	holidayHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FF0000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})

	// Header row: worker columns then one column per day.
	f.SetCellValue(sheet, cell("A", 1), "Nombre")
	f.SetCellValue(sheet, cell("B", 1), "Categoría")
	f.SetCellStyle(sheet, cell("A", 1), cell("B", 1), headerStyle)
	for i, d := range view.Days {
		c := cell(colName(3+i), 1)
		f.SetCellValue(sheet, c, d.Day)
		if d.IsHoliday {
			f.SetCellStyle(sheet, c, c, holidayHeaderStyle)
		} else {
			f.SetCellStyle(sheet, c, c, headerStyle)
		}
	}

	// Cell styles are few and repeat heavily, so cache by style value.
	styleCache := make(map[shift.Style]int)
	cellStyle := func(st shift.Style) int {
		if id, ok := styleCache[st]; ok {
			return id
		}
		id, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: st.Bold, Italic: st.Italic, Color: st.Foreground},
			Fill: excelize.Fill{Type: "pattern", Color: []string{st.Background}, Pattern: 1},
			Alignment: &excelize.Alignment{
				Horizontal: "center",
				Vertical:   "center",
			},
			Border: thinBorder(),
		})
		styleCache[st] = id
		return id
	}

	row := 2
	for _, r := range view.Rows {
		f.SetCellValue(sheet, cell("A", row), r.Name)
		f.SetCellValue(sheet, cell("B", row), r.Category)
		for i, c := range r.Cells {
			ref := cell(colName(3+i), row)
			if c.Code != "" {
				f.SetCellValue(sheet, ref, c.Code)
			}
			f.SetCellStyle(sheet, ref, ref, cellStyle(c.Style))
		}
		row++
	}

	// Per-period headcount footer.
	labels := []string{"Mañana", "Tarde", "Noche"}
	for fi, label := range labels {
		f.SetCellValue(sheet, cell("A", row), label)
		f.SetCellStyle(sheet, cell("A", row), cell("B", row), headerStyle)
		for i, h := range view.Headcounts {
			ref := cell(colName(3+i), row)
			var n int
			switch fi {
			case 0:
				n = h.Morning
			case 1:
				n = h.Afternoon
			default:
				n = h.Night
			}
			f.SetCellValue(sheet, ref, n)
			f.SetCellStyle(sheet, ref, ref, headerStyle)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write roster workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("cuadrante_%d_%02d.xlsx", view.Year, month)
	return buf, filename, nil
}

// ────────────────────── summary table ──────────────────────

func (s *exportService) ExportSummary(ctx context.Context, nip string, year int) (*bytes.Buffer, string, error) {
	summary, err := s.summary.YearSummary(ctx, nip, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Resumen %d", summary.Year)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", colName(14), 9)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorder(),
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})

	title := fmt.Sprintf("%s (%s) — Resumen anual %d", summary.Name, summary.NIP, summary.Year)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", cell(colName(14), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	months := []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
	f.SetCellValue(sheet, cell("A", 2), "Concepto")
	f.SetCellStyle(sheet, cell("A", 2), cell("A", 2), headerStyle)
	for i, m := range months {
		c := cell(colName(2+i), 2)
		f.SetCellValue(sheet, c, m)
		f.SetCellStyle(sheet, c, c, headerStyle)
	}
	f.SetCellValue(sheet, cell(colName(14), 2), "Total")
	f.SetCellStyle(sheet, cell(colName(14), 2), cell(colName(14), 2), headerStyle)

	row := 3
	for _, r := range summary.Rows {
		f.SetCellValue(sheet, cell("A", row), r.Category)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), totalStyle)
		for i, v := range r.Months {
			c := cell(colName(2+i), row)
			if v != 0 {
				f.SetCellValue(sheet, c, v)
			}
			f.SetCellStyle(sheet, c, c, bodyStyle)
		}
		c := cell(colName(14), row)
		f.SetCellValue(sheet, c, r.Total)
		f.SetCellStyle(sheet, c, c, totalStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write summary workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("resumen_%s_%d.xlsx", summary.NIP, summary.Year)
	return buf, filename, nil
}

// ────────────────────── iCalendar feed ──────────────────────

func (s *exportService) CalendarFeed(ctx context.Context, nip string) (string, string, error) {
	year := s.cfg.Cuadrante.Year
	nip = shift.NormalizeNIP(nip)

	effective, _, err := s.roster.EffectiveRoster(ctx, year)
	if err != nil {
		return "", "", err
	}
	loc, err := time.LoadLocation(s.cfg.Cuadrante.Timezone)
	if err != nil {
		loc = time.UTC
	}

	feed := ics.NewCalendar()
	feed.SetMethod(ics.MethodPublish)
	feed.SetProductId("-//cuadrante//roster//ES")

	now := time.Now().UTC()
	count := 0
	for _, e := range effective {
		if e.NIP != nip || e.Date.Year() != year {
			continue
		}
		code := shift.Parse(e.Code)
		if code.Empty() {
			continue
		}

		for _, atom := range code.Atoms {
			event := feed.AddEvent(uuid.NewString() + "@cuadrante")
			event.SetDtStampTime(now)
			event.SetSummary(atom.DisplayName())
			if code.Composite() {
				event.SetDescription("Turno: " + code.Canonical())
			}

			if p, ok := atom.Period(); ok {
				bounds := periodClock[p]
				start := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), bounds[0], 0, 0, 0, loc)
				end := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, loc).
					Add(time.Duration(bounds[1]) * time.Hour)
				event.SetStartAt(start)
				event.SetEndAt(end)
			} else {
				// Absences and rest days become all-day entries.
				event.SetAllDayStartAt(e.Date)
				event.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
			}
			count++
		}
	}

	if count == 0 {
		return "", "", ErrExportEmptyRoster
	}

	filename := fmt.Sprintf("turnos_%s_%d.ics", nip, year)
	return feed.Serialize(), filename, nil
}

// ────────────────────── cell helpers ──────────────────────

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#BFBFBF", Style: 1},
		{Type: "right", Color: "#BFBFBF", Style: 1},
		{Type: "top", Color: "#BFBFBF", Style: 1},
		{Type: "bottom", Color: "#BFBFBF", Style: 1},
	}
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
