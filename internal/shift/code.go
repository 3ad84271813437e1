// Package shift implements the cuadrante core: shift-code parsing and
// interpretation, effective-roster reconstruction from the edit log, and
// yearly summary aggregation. Everything here is a pure computation over
// in-memory data; persistence and HTTP live elsewhere.
package shift

import "strings"

// Period is one of the three canonical work periods of a day.
type Period int

const (
	PeriodMorning Period = iota + 1
	PeriodAfternoon
	PeriodNight
)

// String returns the Spanish display name used throughout the cuadrante.
func (p Period) String() string {
	switch p {
	case PeriodMorning:
		return "Mañana"
	case PeriodAfternoon:
		return "Tarde"
	case PeriodNight:
		return "Noche"
	}
	return ""
}

// Kind classifies an atomic code. Each atomic code belongs to exactly one kind.
type Kind int

const (
	KindUnknown Kind = iota // unrecognized token, fail-open
	KindWork                // covers a work period
	KindRest                // rest / compensated-rest day
	KindAbsence             // vacation, leave, sick, union, court, training
)

// atomicDef is the consolidated per-code configuration: period membership,
// hours, style and display name in one place.
type atomicDef struct {
	kind   Kind
	period Period // 0 when the code covers no period
	extra  bool
	hours  float64
	name   string
	style  Style
}

// Canonical hour table. Values come from the 2026 roster rules:
// morning/afternoon ordinary shifts are 8h, a night shift is 9.5h paid at
// 1.25 (11.875), court duty differs by venue.
var vocabulary = map[string]atomicDef{
	"1":   {kind: KindWork, period: PeriodMorning, hours: 8, name: "Mañana", style: Style{Background: "#BDD7EE", Foreground: "#0070C0"}},
	"2":   {kind: KindWork, period: PeriodAfternoon, hours: 8, name: "Tarde", style: Style{Background: "#FFE699", Foreground: "#0070C0"}},
	"3":   {kind: KindWork, period: PeriodNight, hours: 11.875, name: "Noche", style: Style{Background: "#F8CBAD", Foreground: "#FF0000"}},
	"L":   {kind: KindWork, period: PeriodMorning, hours: 8, name: "Laborable", style: Style{Background: "#BDD7EE", Foreground: "#0070C0"}},
	"1ex": {kind: KindWork, period: PeriodMorning, extra: true, name: "Mañana extra", style: Style{Background: "#00B050", Foreground: "#FF0000"}},
	"2ex": {kind: KindWork, period: PeriodAfternoon, extra: true, name: "Tarde extra", style: Style{Background: "#00B050", Foreground: "#FF0000"}},
	"3ex": {kind: KindWork, period: PeriodNight, extra: true, name: "Noche extra", style: Style{Background: "#00B050", Foreground: "#FF0000"}},

	"D":   {kind: KindRest, name: "Descanso", style: restStyle},
	"Dc":  {kind: KindRest, name: "Descanso compensado", style: restStyle},
	"Dcv": {kind: KindRest, name: "Descanso comp. verano", style: restStyle},
	"Dcc": {kind: KindRest, name: "Descanso comp. curso", style: restStyle},
	"Dct": {kind: KindRest, name: "Descanso comp. tiro", style: restStyle},
	"Dcj": {kind: KindRest, name: "Descanso comp. juicio", style: restStyle},

	"Vac":    {kind: KindAbsence, name: "Vacaciones", style: Style{Background: "#FFFFFF", Foreground: "#FF0000"}},
	"Perm":   {kind: KindAbsence, name: "Permiso", style: Style{Background: "#FFFFFF", Foreground: "#FF0000", Bold: true}},
	"BAJA":   {kind: KindAbsence, name: "Baja", style: Style{Background: "#FFFFFF", Foreground: "#FF0000"}},
	"Ts":     {kind: KindAbsence, hours: 7.5, name: "Tiempo sindical", style: Style{Background: "#FFFFFF", Foreground: "#FF0000"}},
	"AP":     {kind: KindAbsence, hours: 7.5, name: "Asuntos particulares", style: Style{Background: "#FFFFFF", Foreground: "#0070C0"}},
	"JuB":    {kind: KindAbsence, hours: 4, name: "Juicio Betanzos", style: neutralStyle},
	"JuC":    {kind: KindAbsence, hours: 7.5, name: "Juicio Coruña", style: neutralStyle},
	"Curso":  {kind: KindAbsence, name: "Curso", style: neutralStyle},
	"Indisp": {kind: KindAbsence, name: "Indisposición", style: neutralStyle},
}

// caseMap resolves case variants seen in historic rosters ("baja", "perm", …)
// to the single canonical spelling.
var caseMap = func() map[string]string {
	m := make(map[string]string, len(vocabulary))
	for code := range vocabulary {
		m[strings.ToLower(code)] = code
	}
	return m
}()

// Atom is one canonicalized atomic shift token.
type Atom struct {
	Code  string // canonical spelling, or the raw token when unknown
	Known bool
}

// Period returns the work period the atom covers, if any.
func (a Atom) Period() (Period, bool) {
	def, ok := vocabulary[a.Code]
	if !ok || def.period == 0 {
		return 0, false
	}
	return def.period, true
}

// Hours returns the hour-table value for the atom; unknown codes contribute 0.
func (a Atom) Hours() float64 {
	return vocabulary[a.Code].hours
}

// Extra reports whether the atom is an overtime variant.
func (a Atom) Extra() bool {
	return vocabulary[a.Code].extra
}

// Kind returns the atom's classification.
func (a Atom) Kind() Kind {
	return vocabulary[a.Code].kind
}

// DisplayName returns the Spanish display name, falling back to the code.
func (a Atom) DisplayName() string {
	if def, ok := vocabulary[a.Code]; ok {
		return def.name
	}
	return a.Code
}

// Code is the parse result of a raw shift-code string: either a single atom
// or two atoms joined by "y" (double assignment) or "|" (with an overtime
// connotation).
type Code struct {
	Raw       string
	Atoms     []Atom // empty for a blank cell, 1 for atomic, 2 for composite
	Separator string // "y" or "|" for composites, otherwise ""
}

// Composite reports whether the code assigns two periods on the same day.
func (c Code) Composite() bool { return len(c.Atoms) == 2 }

// Empty reports whether the cell carries no code.
func (c Code) Empty() bool { return len(c.Atoms) == 0 }

// Known reports whether every atom of the code is in the vocabulary.
// An empty cell is Known.
func (c Code) Known() bool {
	for _, a := range c.Atoms {
		if !a.Known {
			return false
		}
	}
	return true
}

// Canonical returns the normalized spelling of the whole code.
func (c Code) Canonical() string {
	switch len(c.Atoms) {
	case 0:
		return ""
	case 1:
		return c.Atoms[0].Code
	default:
		return c.Atoms[0].Code + c.Separator + c.Atoms[1].Code
	}
}

// Parse normalizes and parses a raw shift-code string into its tagged form.
// It never fails: unknown tokens come back as unknown atoms so that callers
// can render them neutrally and surface a warning instead of crashing.
func Parse(raw string) Code {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Code{Raw: raw}
	}

	// "y" binds first; historic composites never mix separators.
	for _, sep := range []string{"y", "|"} {
		if left, right, ok := splitComposite(trimmed, sep); ok {
			return Code{
				Raw:       raw,
				Atoms:     []Atom{canonicalize(left), canonicalize(right)},
				Separator: sep,
			}
		}
	}

	return Code{Raw: raw, Atoms: []Atom{canonicalize(trimmed)}}
}

// splitComposite splits s on sep when both halves are plausible atoms.
// A bare "y" inside a single unknown token must not split, so both sides
// have to be non-empty.
func splitComposite(s, sep string) (string, string, bool) {
	i := strings.Index(s, sep)
	if i <= 0 || i+len(sep) >= len(s) {
		return "", "", false
	}
	left, right := s[:i], s[i+len(sep):]
	// Only split when at least one side is a known atom; otherwise a token
	// like "Thursday" would shatter on its "y".
	if _, ok := lookupCanonical(left); !ok {
		if _, ok := lookupCanonical(right); !ok {
			return "", "", false
		}
	}
	return left, right, true
}

func lookupCanonical(token string) (string, bool) {
	t := strings.TrimSpace(token)
	if _, ok := vocabulary[t]; ok {
		return t, true
	}
	if canonical, ok := caseMap[strings.ToLower(t)]; ok {
		return canonical, true
	}
	return t, false
}

func canonicalize(token string) Atom {
	code, known := lookupCanonical(token)
	return Atom{Code: code, Known: known}
}
