package shift

import "time"

// Style is the display descriptor of one roster cell.
type Style struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Bold       bool   `json:"bold"`
	Italic     bool   `json:"italic"`
}

var (
	neutralStyle = Style{Background: "#FFFFFF", Foreground: "#000000"}
	restStyle    = Style{Background: "#C6E0B4", Foreground: "#00B050"}

	// doubleShiftStyle marks a visibly abnormal plain double assignment.
	doubleShiftStyle = Style{Background: "#DBDBDB", Foreground: "#FF0000", Bold: true}
	// extraCompositeStyle marks a composite with an overtime side.
	extraCompositeStyle = Style{Background: "#00B050", Foreground: "#FF0000", Bold: true}
)

// Context carries the calendar facts an interpretation depends on.
type Context struct {
	Date      time.Time
	IsHoliday bool
	IsSunday  bool
}

// Interpretation is the full semantic reading of one shift code:
// which periods it covers, whether it counts as worked, the hours it
// contributes and how the cell is styled.
type Interpretation struct {
	Code           Code     `json:"-"`
	Periods        []Period `json:"periods"`
	CountsAsWorked bool     `json:"counts_as_worked"`
	Hours          float64  `json:"hours"`
	Style          Style    `json:"style"`
	Known          bool     `json:"known"` // false ⇒ unrecognized token rendered fail-open
}

// HasPeriod reports whether the interpretation covers p.
func (i Interpretation) HasPeriod(p Period) bool {
	for _, q := range i.Periods {
		if q == p {
			return true
		}
	}
	return false
}

// Interpret parses and interprets a raw shift-code string.
//
// Unknown tokens resolve to the neutral style with zero hours rather than an
// error, so a typo never breaks a whole roster render; Known=false lets the
// caller surface a warning distinguishable from a legitimate blank day.
func Interpret(raw string, ctx Context) Interpretation {
	code := Parse(raw)

	out := Interpretation{
		Code:  code,
		Style: neutralStyle,
		Known: code.Known(),
	}

	if code.Empty() {
		return out
	}

	for _, a := range code.Atoms {
		out.Hours += a.Hours()
		if p, ok := a.Period(); ok && !out.HasPeriod(p) {
			out.Periods = append(out.Periods, p)
		}
	}
	out.CountsAsWorked = len(out.Periods) > 0

	out.Style = styleFor(code)
	return out
}

// styleFor derives the cell style from the parsed code.
func styleFor(code Code) Style {
	if code.Composite() {
		if code.Atoms[0].Extra() || code.Atoms[1].Extra() {
			return extraCompositeStyle
		}
		return doubleShiftStyle
	}

	a := code.Atoms[0]
	if def, ok := vocabulary[a.Code]; ok {
		return def.style
	}
	return neutralStyle
}
