package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
)

// ── Mock WorkerRepository ──

type mockWorkerRepo struct {
	workers map[string]*model.Worker
}

func newMockWorkerRepo() *mockWorkerRepo {
	return &mockWorkerRepo{workers: make(map[string]*model.Worker)}
}

func (m *mockWorkerRepo) Create(_ context.Context, worker *model.Worker) error {
	m.workers[worker.NIP] = worker
	return nil
}

func (m *mockWorkerRepo) GetByNIP(_ context.Context, nip string) (*model.Worker, error) {
	if w, ok := m.workers[nip]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) List(_ context.Context) ([]model.Worker, error) {
	var result []model.Worker
	for _, w := range m.workers {
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockWorkerRepo) Update(_ context.Context, worker *model.Worker) error {
	m.workers[worker.NIP] = worker
	return nil
}

func (m *mockWorkerRepo) Upsert(_ context.Context, worker *model.Worker) error {
	if existing, ok := m.workers[worker.NIP]; ok {
		existing.Name = worker.Name
		existing.Category = worker.Category
		return nil
	}
	m.workers[worker.NIP] = worker
	return nil
}

// ── Mock RosterRepository ──

type mockRosterRepo struct {
	entries []model.RosterEntry
	workers *mockWorkerRepo // to emulate the Worker preload
	nextID  int64
}

func newMockRosterRepo(workers *mockWorkerRepo) *mockRosterRepo {
	return &mockRosterRepo{workers: workers, nextID: 1}
}

func (m *mockRosterRepo) BatchCreate(_ context.Context, entries []model.RosterEntry) error {
	for _, e := range entries {
		e.ID = m.nextID
		m.nextID++
		m.entries = append(m.entries, e)
	}
	return nil
}

func (m *mockRosterRepo) ListByYear(_ context.Context, year int) ([]model.RosterEntry, error) {
	var result []model.RosterEntry
	for _, e := range m.entries {
		if e.Date.Year() != year {
			continue
		}
		if m.workers != nil {
			if w, ok := m.workers.workers[e.NIP]; ok {
				copied := *w
				e.Worker = &copied
			}
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRosterRepo) ReplaceYear(_ context.Context, year int, entries []model.RosterEntry) error {
	var kept []model.RosterEntry
	for _, e := range m.entries {
		if e.Date.Year() != year {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return m.BatchCreate(context.Background(), entries)
}

// ── Mock ShiftEditRepository ──

type mockShiftEditRepo struct {
	edits  []model.ShiftEdit
	nextID int64
}

func newMockShiftEditRepo() *mockShiftEditRepo {
	return &mockShiftEditRepo{nextID: 1}
}

func (m *mockShiftEditRepo) Append(_ context.Context, edit *model.ShiftEdit) error {
	edit.ID = m.nextID
	m.nextID++
	m.edits = append(m.edits, *edit)
	return nil
}

func (m *mockShiftEditRepo) ListByYear(_ context.Context, year int) ([]model.ShiftEdit, error) {
	var result []model.ShiftEdit
	for _, e := range m.edits {
		if e.Date.Year() == year {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].EditedAt.Equal(result[j].EditedAt) {
			return result[i].EditedAt.Before(result[j].EditedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockShiftEditRepo) ListPaged(_ context.Context, offset, limit int) ([]model.ShiftEdit, int64, error) {
	sorted := make([]model.ShiftEdit, len(m.edits))
	copy(sorted, m.edits)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].EditedAt.Equal(sorted[j].EditedAt) {
			return sorted[i].EditedAt.After(sorted[j].EditedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})

	total := int64(len(sorted))
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

// ── Mock ManualHoursRepository ──

type mockManualHoursRepo struct {
	adjs   []model.ManualHours
	nextID int64
}

func newMockManualHoursRepo() *mockManualHoursRepo {
	return &mockManualHoursRepo{nextID: 1}
}

func (m *mockManualHoursRepo) Create(_ context.Context, adj *model.ManualHours) error {
	adj.ID = m.nextID
	m.nextID++
	m.adjs = append(m.adjs, *adj)
	return nil
}

func (m *mockManualHoursRepo) ListByNIP(_ context.Context, nip string) ([]model.ManualHours, error) {
	var result []model.ManualHours
	for _, a := range m.adjs {
		if a.NIP == nip {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockManualHoursRepo) List(_ context.Context) ([]model.ManualHours, error) {
	result := make([]model.ManualHours, len(m.adjs))
	copy(result, m.adjs)
	return result, nil
}

// ── Mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays map[string]*model.Holiday
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[string]*model.Holiday)}
}

func (m *mockHolidayRepo) Create(_ context.Context, holiday *model.Holiday) error {
	m.holidays[holiday.Date.Format("2006-01-02")] = holiday
	return nil
}

func (m *mockHolidayRepo) ListByYear(_ context.Context, year int) ([]model.Holiday, error) {
	var result []model.Holiday
	for _, h := range m.holidays {
		if h.Date.Year() == year {
			result = append(result, *h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockHolidayRepo) Delete(_ context.Context, date time.Time) error {
	delete(m.holidays, date.Format("2006-01-02"))
	return nil
}
