package shift

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// nipWidth is the fixed width NIPs are zero-padded to before comparison.
const nipWidth = 6

// NormalizeNIP zero-pads a worker ID to the fixed width. Two NIPs are only
// ever considered equal after normalization, never on raw string equality,
// to tolerate inconsistent upstream zero-padding.
func NormalizeNIP(nip string) string {
	n := strings.TrimSpace(nip)
	for len(n) < nipWidth {
		n = "0" + n
	}
	return n
}

// Entry is one roster row: a worker's shift code on a calendar date.
type Entry struct {
	NIP      string
	Name     string
	Category string
	Date     time.Time
	Code     string
}

// Edit is one append-only change-log record.
type Edit struct {
	At           time.Time
	AdminNIP     string
	NIP          string
	WorkerName   string // snapshot at edit time
	Date         time.Time
	PreviousCode string
	NewCode      string
	Note         string
}

// Warning reports a data irregularity that reconciliation resolved
// deterministically instead of failing.
type Warning struct {
	NIP     string
	Date    time.Time
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.NIP, dateKey(w.Date), w.Message)
}

// Reconcile replays the edit log over the base roster and returns the
// effective roster.
//
// Edits apply in timestamp order (stable for ties). An edit whose (nip, date)
// row exists overwrites its code; otherwise a new row is synthesized, taking
// name and category from the worker's most recent row anywhere in the working
// set, or falling back to the edit's name snapshot with a blank category.
//
// Reconcile never mutates its inputs and never fails: duplicate (nip, date)
// pairs in the base resolve first-occurrence-wins with a warning. Malformed
// edits (unparseable dates or timestamps) must be rejected upstream; by the
// time values reach this function they are well-formed.
func Reconcile(base []Entry, edits []Edit) ([]Entry, []Warning) {
	var warnings []Warning

	working := make([]Entry, 0, len(base))
	index := make(map[string]int, len(base))      // nip|date → position
	latestRow := make(map[string]int, len(base))  // nip → position of most recent row
	latestDate := make(map[string]time.Time, len(base))

	key := func(nip string, d time.Time) string {
		return NormalizeNIP(nip) + "|" + dateKey(d)
	}

	track := func(pos int) {
		e := working[pos]
		nip := NormalizeNIP(e.NIP)
		if prev, ok := latestDate[nip]; !ok || e.Date.After(prev) {
			latestDate[nip] = e.Date
			latestRow[nip] = pos
		}
	}

	for _, e := range base {
		k := key(e.NIP, e.Date)
		if _, dup := index[k]; dup {
			warnings = append(warnings, Warning{
				NIP:     NormalizeNIP(e.NIP),
				Date:    e.Date,
				Message: fmt.Sprintf("duplicate base row for code %q ignored, first occurrence wins", e.Code),
			})
			continue
		}
		e.NIP = NormalizeNIP(e.NIP)
		working = append(working, e)
		index[k] = len(working) - 1
		track(len(working) - 1)
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	for _, ed := range sorted {
		k := key(ed.NIP, ed.Date)
		if pos, ok := index[k]; ok {
			working[pos].Code = ed.NewCode
			continue
		}

		// Insert-if-absent: backfill identity from the most recent known row.
		row := Entry{
			NIP:  NormalizeNIP(ed.NIP),
			Date: ed.Date,
			Code: ed.NewCode,
		}
		if pos, ok := latestRow[row.NIP]; ok {
			row.Name = working[pos].Name
			row.Category = working[pos].Category
		} else {
			row.Name = ed.WorkerName
		}
		working = append(working, row)
		index[k] = len(working) - 1
		track(len(working) - 1)
	}

	return working, warnings
}
