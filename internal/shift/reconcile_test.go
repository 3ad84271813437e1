package shift

import (
	"testing"
	"time"
)

func day(month, d int) time.Time {
	return time.Date(2026, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func at(month, d, hour int) time.Time {
	return time.Date(2026, time.Month(month), d, hour, 0, 0, 0, time.UTC)
}

func testBase() []Entry {
	return []Entry{
		{NIP: "000123", Name: "García Pérez, Juan", Category: "Policía", Date: day(2, 9), Code: "1"},
		{NIP: "000123", Name: "García Pérez, Juan", Category: "Policía", Date: day(2, 11), Code: "D"},
		{NIP: "000456", Name: "López Souto, Marta", Category: "Oficial", Date: day(2, 9), Code: "2"},
	}
}

func findEntry(t *testing.T, entries []Entry, nip string, d time.Time) Entry {
	t.Helper()
	for _, e := range entries {
		if e.NIP == nip && dateKey(e.Date) == dateKey(d) {
			return e
		}
	}
	t.Fatalf("no entry for (%s, %s)", nip, dateKey(d))
	return Entry{}
}

func TestReconcile_OverwriteExistingRow(t *testing.T) {
	edits := []Edit{
		{At: at(2, 10, 9), AdminNIP: "ADMIN0", NIP: "000123", Date: day(2, 9), NewCode: "3"},
	}

	effective, warnings := Reconcile(testBase(), edits)
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	if len(effective) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(effective))
	}
	if got := findEntry(t, effective, "000123", day(2, 9)); got.Code != "3" {
		t.Errorf("expected overwritten code 3, got %q", got.Code)
	}
}

func TestReconcile_InsertIfAbsent(t *testing.T) {
	edits := []Edit{
		{At: at(2, 10, 9), AdminNIP: "ADMIN0", NIP: "000123", WorkerName: "snapshot name", Date: day(2, 10), NewCode: "Vac"},
	}

	effective, _ := Reconcile(testBase(), edits)
	if len(effective) != 4 {
		t.Fatalf("expected a synthesized row, got %d rows", len(effective))
	}

	row := findEntry(t, effective, "000123", day(2, 10))
	if row.Code != "Vac" {
		t.Errorf("expected code Vac, got %q", row.Code)
	}
	// Identity backfilled from the worker's most recent known row, not the snapshot.
	if row.Name != "García Pérez, Juan" || row.Category != "Policía" {
		t.Errorf("expected backfilled identity, got name=%q category=%q", row.Name, row.Category)
	}
}

func TestReconcile_InsertForUnknownWorkerUsesSnapshot(t *testing.T) {
	edits := []Edit{
		{At: at(2, 10, 9), AdminNIP: "ADMIN0", NIP: "000999", WorkerName: "Novo Rey, Antía", Date: day(2, 10), NewCode: "1"},
	}

	effective, _ := Reconcile(testBase(), edits)
	row := findEntry(t, effective, "000999", day(2, 10))
	if row.Name != "Novo Rey, Antía" {
		t.Errorf("expected snapshot name, got %q", row.Name)
	}
	if row.Category != "" {
		t.Errorf("expected blank category for unknown worker, got %q", row.Category)
	}
}

func TestReconcile_NIPZeroPadding(t *testing.T) {
	// The edit targets "123"; the base stores "000123". They must match.
	edits := []Edit{
		{At: at(2, 10, 9), AdminNIP: "ADMIN0", NIP: "123", Date: day(2, 9), NewCode: "Vac"},
	}

	effective, _ := Reconcile(testBase(), edits)
	if len(effective) != 3 {
		t.Fatalf("edit should have matched the padded NIP, got %d rows", len(effective))
	}
	if got := findEntry(t, effective, "000123", day(2, 9)); got.Code != "Vac" {
		t.Errorf("expected Vac after padded-NIP match, got %q", got.Code)
	}
}

func TestReconcile_TimestampOrdering(t *testing.T) {
	// Later timestamp wins regardless of slice order.
	edits := []Edit{
		{At: at(2, 10, 15), NIP: "000123", Date: day(2, 9), NewCode: "Vac"},
		{At: at(2, 10, 9), NIP: "000123", Date: day(2, 9), NewCode: "3"},
	}

	effective, _ := Reconcile(testBase(), edits)
	if got := findEntry(t, effective, "000123", day(2, 9)); got.Code != "Vac" {
		t.Errorf("expected the later edit to win, got %q", got.Code)
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	edits := []Edit{
		{At: at(2, 10, 15), NIP: "000123", Date: day(2, 9), NewCode: "Vac"},
		{At: at(2, 10, 9), NIP: "000456", Date: day(2, 9), NewCode: "3"},
		{At: at(2, 10, 12), NIP: "000123", Date: day(2, 12), NewCode: "1y2"},
	}
	reversed := []Edit{edits[2], edits[1], edits[0]}

	a, _ := Reconcile(testBase(), edits)
	b, _ := Reconcile(testBase(), reversed)

	if len(a) != len(b) {
		t.Fatalf("row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestReconcile_IdempotentSplitReplay(t *testing.T) {
	edits := []Edit{
		{At: at(2, 10, 9), NIP: "000123", Date: day(2, 9), NewCode: "3"},
		{At: at(2, 10, 10), NIP: "000456", Date: day(2, 10), NewCode: "Vac", WorkerName: "López Souto, Marta"},
		{At: at(2, 10, 11), NIP: "000123", Date: day(2, 9), NewCode: "1y2"},
	}

	whole, _ := Reconcile(testBase(), edits)

	for k := 0; k <= len(edits); k++ {
		intermediate, _ := Reconcile(testBase(), edits[:k])
		split, _ := Reconcile(intermediate, edits[k:])

		if len(split) != len(whole) {
			t.Fatalf("split at %d: row counts differ: %d vs %d", k, len(split), len(whole))
		}
		for i := range whole {
			if whole[i] != split[i] {
				t.Errorf("split at %d: row %d differs: %+v vs %+v", k, i, whole[i], split[i])
			}
		}
	}
}

func TestReconcile_DuplicateBaseRowFirstWins(t *testing.T) {
	base := append(testBase(), Entry{NIP: "000123", Date: day(2, 9), Code: "Vac"})

	effective, warnings := Reconcile(base, nil)
	if len(effective) != 3 {
		t.Fatalf("duplicate should be dropped, got %d rows", len(effective))
	}
	if got := findEntry(t, effective, "000123", day(2, 9)); got.Code != "1" {
		t.Errorf("first occurrence should win, got %q", got.Code)
	}
	if len(warnings) != 1 {
		t.Fatalf("duplicate must be surfaced as a warning, got %v", warnings)
	}
	if warnings[0].NIP != "000123" {
		t.Errorf("warning should name the duplicate NIP, got %+v", warnings[0])
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	base := testBase()
	edits := []Edit{
		{At: at(2, 10, 15), NIP: "000123", Date: day(2, 9), NewCode: "Vac"},
		{At: at(2, 10, 9), NIP: "000123", Date: day(2, 9), NewCode: "3"},
	}

	Reconcile(base, edits)

	if base[0].Code != "1" {
		t.Errorf("base was mutated: %+v", base[0])
	}
	if !edits[0].At.Equal(at(2, 10, 15)) {
		t.Error("edit slice was reordered in place")
	}
}

func TestNormalizeNIP(t *testing.T) {
	cases := map[string]string{
		"123":     "000123",
		"000123":  "000123",
		" 123 ":   "000123",
		"1234567": "1234567", // wider than the pad stays as-is
	}
	for in, want := range cases {
		if got := NormalizeNIP(in); got != want {
			t.Errorf("NormalizeNIP(%q): expected %q, got %q", in, want, got)
		}
	}
}
