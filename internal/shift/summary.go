package shift

import (
	"strings"
	"time"
)

// Summary category names, in the fixed display order of the yearly table.
const (
	CatMananas      = "Mañanas"
	CatTardes       = "Tardes"
	CatNoches       = "Noches"
	CatVacaciones   = "Vacaciones"
	CatAPs          = "APs"
	CatFerias       = "Ferias"
	CatSindical     = "Trabajo sindical"
	CatBaja         = "Días de Baja"
	CatJuicio       = "Días de Juicio"
	CatPermisos     = "Permisos"
	CatCursos       = "Cursos"
	CatDescansos    = "Descansos compensados"
	CatIndisp       = "Indisposiciones"
	CatJefaturas    = "Jefaturas de servicio"
	CatFestivos     = "Festivos trabajados"
	CatFinesSemana  = "Fines de semana trabajados"
	CatDomingos     = "Domingos trabajados"
	CatHoras        = "Horas trabajadas"
)

// Categories is the row order of the summary table.
var Categories = []string{
	CatMananas, CatTardes, CatNoches, CatVacaciones, CatAPs, CatFerias,
	CatSindical, CatBaja, CatJuicio, CatPermisos, CatCursos, CatDescansos,
	CatIndisp, CatJefaturas, CatFestivos, CatFinesSemana, CatDomingos,
	CatHoras,
}

// SummaryRow is one category across the twelve months plus the yearly total.
type SummaryRow struct {
	Category string      `json:"category"`
	Months   [12]float64 `json:"months"`
	Total    float64     `json:"total"`
}

// Summary is a worker's yearly category×month count table. It is a derived,
// non-authoritative view: it must never feed back into the roster.
type Summary struct {
	NIP  string       `json:"nip"`
	Name string       `json:"name"`
	Year int          `json:"year"`
	Rows []SummaryRow `json:"rows"`
}

// ManualAdjustment is one additive hour override keyed by worker and month.
type ManualAdjustment struct {
	NIP   string
	Month int // 1..12
	Hours float64
}

// Summarize computes a worker's yearly summary from the effective roster.
//
// The shift-command ("Jefatura de servicio") distinction goes to the first
// worker in roster order among all workers covering the same period on the
// same date, so exactly one worker per period per day earns it. Roster order
// is first-appearance order in the effective roster, which preserves the
// base roster's stable ordering.
func Summarize(effective []Entry, nip string, year int, cal Calendar, manual []ManualAdjustment) Summary {
	nip = NormalizeNIP(nip)

	counts := make(map[string]*[12]float64, len(Categories))
	for _, cat := range Categories {
		counts[cat] = &[12]float64{}
	}

	// Roster ordering for the jefatura tie-break.
	orderOf := make(map[string]int)
	for _, e := range effective {
		if _, seen := orderOf[e.NIP]; !seen {
			orderOf[e.NIP] = len(orderOf)
		}
	}

	// Per (date, period) index of every worker covering that period.
	type dayPeriod struct {
		date   string
		period Period
	}
	coverers := make(map[dayPeriod][]string)
	for _, e := range effective {
		if e.Date.Year() != year {
			continue
		}
		interp := Interpret(e.Code, cal.ContextFor(e.Date))
		for _, p := range interp.Periods {
			k := dayPeriod{dateKey(e.Date), p}
			coverers[k] = append(coverers[k], e.NIP)
		}
	}

	name := ""
	for _, e := range effective {
		if e.NIP != nip || e.Date.Year() != year {
			continue
		}
		if name == "" {
			name = e.Name
		}

		m := int(e.Date.Month()) - 1
		code := Parse(e.Code)
		interp := Interpret(e.Code, cal.ContextFor(e.Date))
		weekday := e.Date.Weekday()

		// Period counters: once per period present, so a composite day can
		// increment two of them.
		for _, p := range interp.Periods {
			switch p {
			case PeriodMorning:
				counts[CatMananas][m]++
			case PeriodAfternoon:
				counts[CatTardes][m]++
			case PeriodNight:
				counts[CatNoches][m]++
			}
		}

		counts[CatHoras][m] += interp.Hours

		canonical := code.Canonical()
		switch canonical {
		case "Vac":
			// Vacation taken on an already-non-working day must not count.
			if weekday != time.Saturday && weekday != time.Sunday && !cal.IsHoliday(e.Date) {
				counts[CatVacaciones][m]++
			}
		case "AP":
			counts[CatAPs][m]++
		case "Ts":
			counts[CatSindical][m]++
		case "BAJA":
			counts[CatBaja][m]++
		case "JuB", "JuC":
			counts[CatJuicio][m]++
		case "Perm":
			counts[CatPermisos][m]++
		case "Curso":
			counts[CatCursos][m]++
		case "Indisp":
			counts[CatIndisp][m]++
		}
		if strings.HasPrefix(canonical, "Dc") {
			counts[CatDescansos][m]++
		}

		// Feria days: the 1st and 16th, worked in the morning (plain shifts).
		if d := e.Date.Day(); d == 1 || d == 16 {
			for _, a := range code.Atoms {
				if a.Code == "1" || a.Code == "L" {
					counts[CatFerias][m]++
					break
				}
			}
		}

		if interp.CountsAsWorked {
			if cal.IsHolidayOrSunday(e.Date) {
				counts[CatFestivos][m]++
			}
			if weekday == time.Saturday || weekday == time.Sunday {
				counts[CatFinesSemana][m] += 0.5
				if weekday == time.Sunday {
					counts[CatDomingos][m]++
				}
			}

			for _, p := range interp.Periods {
				if firstCoverer(coverers[dayPeriod{dateKey(e.Date), p}], orderOf) == nip {
					counts[CatJefaturas][m]++
				}
			}
		}
	}

	for _, adj := range manual {
		if NormalizeNIP(adj.NIP) != nip || adj.Month < 1 || adj.Month > 12 {
			continue
		}
		counts[CatHoras][adj.Month-1] += adj.Hours
	}

	s := Summary{NIP: nip, Name: name, Year: year}
	for _, cat := range Categories {
		row := SummaryRow{Category: cat, Months: *counts[cat]}
		for _, v := range row.Months {
			row.Total += v
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// firstCoverer picks the covering worker earliest in roster order.
func firstCoverer(nips []string, orderOf map[string]int) string {
	best := ""
	bestOrder := int(^uint(0) >> 1)
	for _, n := range nips {
		if o, ok := orderOf[n]; ok && o < bestOrder {
			best, bestOrder = n, o
		}
	}
	return best
}
