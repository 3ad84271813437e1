package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func setupTestExportService() (ExportService, *mockWorkerRepo, *mockRosterRepo) {
	repo, workers, roster, _, _, _ := testRepo()
	cfg := testConfig()
	logger := zap.NewNop()
	rosterSvc := NewRosterService(cfg, repo, logger)
	svc := NewExportService(cfg, repo, rosterSvc, logger)
	return svc, workers, roster
}

func TestExportService_ExportRoster_EmptyMonth(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportRoster(context.Background(), 1)
	if !errors.Is(err, ErrExportEmptyRoster) {
		t.Errorf("expected ErrExportEmptyRoster, got %v", err)
	}
}

func TestExportService_ExportRoster_ProducesWorkbook(t *testing.T) {
	svc, workers, roster := setupTestExportService()

	seedWorker(workers, "000001", "Ana Pérez", "Agente")
	seedEntry(roster, "000001", jan(5), "1")
	seedEntry(roster, "000001", jan(6), "Vac")

	buf, filename, err := svc.ExportRoster(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExportRoster: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("workbook buffer is empty")
	}
	if filename != "cuadrante_2026_01.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	// xlsx is a zip container.
	if !strings.HasPrefix(buf.String(), "PK") {
		t.Error("output does not look like an xlsx file")
	}
}

func TestExportService_ExportSummary_ProducesWorkbook(t *testing.T) {
	svc, workers, roster := setupTestExportService()

	seedWorker(workers, "000001", "Ana Pérez", "Agente")
	seedEntry(roster, "000001", jan(5), "1")

	buf, filename, err := svc.ExportSummary(context.Background(), "000001", 2026)
	if err != nil {
		t.Fatalf("ExportSummary: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("workbook buffer is empty")
	}
	if filename != "resumen_000001_2026.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}

func TestExportService_ExportSummary_UnknownWorker(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportSummary(context.Background(), "999999", 2026)
	if !errors.Is(err, ErrNoRosterForWorker) {
		t.Errorf("expected ErrNoRosterForWorker, got %v", err)
	}
}

func TestExportService_CalendarFeed(t *testing.T) {
	svc, workers, roster := setupTestExportService()

	seedWorker(workers, "000001", "Ana Pérez", "Agente")
	seedEntry(roster, "000001", jan(5), "1")
	seedEntry(roster, "000001", jan(6), "Vac")
	seedEntry(roster, "000001", jan(7), "1y2")

	feed, filename, err := svc.CalendarFeed(context.Background(), "000001")
	if err != nil {
		t.Fatalf("CalendarFeed: %v", err)
	}
	if filename != "turnos_000001_2026.ics" {
		t.Errorf("filename = %q", filename)
	}
	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Error("feed is not a VCALENDAR document")
	}
	// The composite day contributes one event per side.
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 4 {
		t.Errorf("events = %d, want 4", got)
	}
	if !strings.Contains(feed, "SUMMARY:Vacaciones") {
		t.Error("vacation day should carry its display name")
	}
}

func TestExportService_CalendarFeed_NoShifts(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.CalendarFeed(context.Background(), "000001")
	if !errors.Is(err, ErrExportEmptyRoster) {
		t.Errorf("expected ErrExportEmptyRoster, got %v", err)
	}
}
