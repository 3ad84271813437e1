package shift

import (
	"testing"
	"time"
)

func testCalendar() Calendar {
	return NewCalendar([]time.Time{day(1, 1), day(1, 6)})
}

func rowByCategory(t *testing.T, s Summary, cat string) SummaryRow {
	t.Helper()
	for _, r := range s.Rows {
		if r.Category == cat {
			return r
		}
	}
	t.Fatalf("summary has no category %q", cat)
	return SummaryRow{}
}

func TestSummarize_RoundTripScenario(t *testing.T) {
	// January 2026: five plain mornings, two weekday vacation days with no
	// holiday overlap, one double shift.
	entries := []Entry{
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 7), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 8), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 9), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 12), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 13), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 14), Code: "Vac"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 15), Code: "Vac"},
		{NIP: "000123", Name: "García Pérez, Juan", Date: day(1, 20), Code: "2y3"},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatMananas); got.Months[0] != 5 || got.Total != 5 {
		t.Errorf("Mañanas: expected 5, got %v (total %v)", got.Months[0], got.Total)
	}
	if got := rowByCategory(t, s, CatVacaciones); got.Months[0] != 2 {
		t.Errorf("Vacaciones: expected 2, got %v", got.Months[0])
	}
	if got := rowByCategory(t, s, CatTardes); got.Months[0] != 1 {
		t.Errorf("Tardes: expected 1, got %v", got.Months[0])
	}
	if got := rowByCategory(t, s, CatNoches); got.Months[0] != 1 {
		t.Errorf("Noches: expected 1, got %v", got.Months[0])
	}

	wantHours := 5*8.0 + 8.0 + 11.875
	if got := rowByCategory(t, s, CatHoras); got.Months[0] != wantHours {
		t.Errorf("Horas trabajadas: expected %v, got %v", wantHours, got.Months[0])
	}

	if s.Name != "García Pérez, Juan" {
		t.Errorf("summary should carry the worker name, got %q", s.Name)
	}
}

func TestSummarize_WeekendWorked(t *testing.T) {
	// 2026-01-17 is a Saturday, 2026-01-18 the following Sunday.
	entries := []Entry{
		{NIP: "000123", Date: day(1, 17), Code: "1"},
		{NIP: "000123", Date: day(1, 18), Code: "1"},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatFinesSemana); got.Months[0] != 1.0 {
		t.Errorf("Fines de semana trabajados: expected 1.0, got %v", got.Months[0])
	}
	if got := rowByCategory(t, s, CatDomingos); got.Months[0] != 1 {
		t.Errorf("Domingos trabajados: expected 1, got %v", got.Months[0])
	}
	// The Sunday is holiday-equivalent.
	if got := rowByCategory(t, s, CatFestivos); got.Months[0] != 1 {
		t.Errorf("Festivos trabajados: expected 1 (Sunday), got %v", got.Months[0])
	}
}

func TestSummarize_HolidayWorked(t *testing.T) {
	// 2026-01-06 is in the holiday set and falls on a Tuesday.
	entries := []Entry{
		{NIP: "000123", Date: day(1, 6), Code: "3"},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatFestivos); got.Months[0] != 1 {
		t.Errorf("Festivos trabajados: expected 1, got %v", got.Months[0])
	}
	if got := rowByCategory(t, s, CatFinesSemana); got.Months[0] != 0 {
		t.Errorf("a weekday holiday is not a weekend, got %v", got.Months[0])
	}
}

func TestSummarize_VacationOnHolidayDoesNotCount(t *testing.T) {
	entries := []Entry{
		{NIP: "000123", Date: day(1, 6), Code: "Vac"},  // holiday
		{NIP: "000123", Date: day(1, 17), Code: "Vac"}, // Saturday
		{NIP: "000123", Date: day(1, 7), Code: "Vac"},  // ordinary Wednesday
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatVacaciones); got.Months[0] != 1 {
		t.Errorf("only the weekday non-holiday vacation should count, got %v", got.Months[0])
	}
}

func TestSummarize_AbsenceCategories(t *testing.T) {
	entries := []Entry{
		{NIP: "000123", Date: day(3, 2), Code: "AP"},
		{NIP: "000123", Date: day(3, 3), Code: "Ts"},
		{NIP: "000123", Date: day(3, 4), Code: "BAJA"},
		{NIP: "000123", Date: day(3, 5), Code: "JuB"},
		{NIP: "000123", Date: day(3, 6), Code: "JuC"},
		{NIP: "000123", Date: day(3, 9), Code: "Perm"},
		{NIP: "000123", Date: day(3, 10), Code: "Curso"},
		{NIP: "000123", Date: day(3, 11), Code: "Dcv"},
		{NIP: "000123", Date: day(3, 12), Code: "Dc"},
		{NIP: "000123", Date: day(3, 13), Code: "Indisp"},
		{NIP: "000123", Date: day(3, 16), Code: "D"},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	expect := map[string]float64{
		CatAPs:       1,
		CatSindical:  1,
		CatBaja:      1,
		CatJuicio:    2,
		CatPermisos:  1,
		CatCursos:    1,
		CatDescansos: 2, // Dc and Dcv; plain D is not compensated rest
		CatIndisp:    1,
	}
	for cat, want := range expect {
		if got := rowByCategory(t, s, cat).Months[2]; got != want {
			t.Errorf("%s: expected %v, got %v", cat, want, got)
		}
	}
}

func TestSummarize_FeriaDays(t *testing.T) {
	entries := []Entry{
		{NIP: "000123", Date: day(5, 1), Code: "1"},  // feria day, morning
		{NIP: "000123", Date: day(5, 16), Code: "L"}, // feria day, labor code
		{NIP: "000123", Date: day(5, 18), Code: "1"}, // ordinary day
		{NIP: "000123", Date: day(6, 16), Code: "3"}, // feria day but night shift
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatFerias); got.Total != 2 {
		t.Errorf("Ferias: expected 2, got %v", got.Total)
	}
}

func TestSummarize_JefaturaDeterministicTieBreak(t *testing.T) {
	// Both workers cover the morning on the same day; the first in roster
	// order earns the distinction, exactly once per period per day.
	entries := []Entry{
		{NIP: "000111", Name: "First", Date: day(4, 6), Code: "1"},
		{NIP: "000222", Name: "Second", Date: day(4, 6), Code: "1"},
		{NIP: "000222", Name: "Second", Date: day(4, 7), Code: "2"},
	}

	first := Summarize(entries, "000111", 2026, testCalendar(), nil)
	second := Summarize(entries, "000222", 2026, testCalendar(), nil)

	if got := rowByCategory(t, first, CatJefaturas).Months[3]; got != 1 {
		t.Errorf("first worker should earn the shared-period jefatura, got %v", got)
	}
	// Second worker loses the shared morning but is alone on the afternoon.
	if got := rowByCategory(t, second, CatJefaturas).Months[3]; got != 1 {
		t.Errorf("second worker should earn only the solo-period jefatura, got %v", got)
	}
}

func TestSummarize_ManualHoursAdditive(t *testing.T) {
	entries := []Entry{
		{NIP: "000123", Date: day(2, 2), Code: "1"},
	}
	manual := []ManualAdjustment{
		{NIP: "123", Month: 2, Hours: 3.5}, // unpadded NIP must still match
		{NIP: "000999", Month: 2, Hours: 100},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), manual)

	if got := rowByCategory(t, s, CatHoras); got.Months[1] != 8+3.5 {
		t.Errorf("Horas trabajadas: expected 11.5, got %v", got.Months[1])
	}
}

func TestSummarize_IgnoresOtherYears(t *testing.T) {
	entries := []Entry{
		{NIP: "000123", Date: day(1, 7), Code: "1"},
		{NIP: "000123", Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Code: "1"},
	}

	s := Summarize(entries, "000123", 2026, testCalendar(), nil)

	if got := rowByCategory(t, s, CatMananas); got.Total != 1 {
		t.Errorf("entries outside the target year must not count, got %v", got.Total)
	}
}
