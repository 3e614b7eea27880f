// Package aggregate derives hour totals from the payment table of a statement.
//
// A payment row reads, in logical order:
//
//	<code> ש <marker> ... <hours> <rate> [<amount>]
//
// where code is a three-digit payment code, ש abbreviates "hours" and the
// marker carries the premium rate, e.g. "078 ש %150שבת 30.47 52.50 1600.00".
// Extraction can leave the marker digits reversed ("%051"), so each category
// lists the reversed spelling as a literal alternate.
package aggregate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ohad12345678/payslip/internal/bidi"
	"github.com/ohad12345678/payslip/internal/model"
	"github.com/ohad12345678/payslip/internal/value"
)

// Category is a premium rate and the digit spellings that identify it.
type Category struct {
	Name    string
	Markers []string
}

// Built-in categories.
var (
	Rate150 = Category{Name: "150", Markers: []string{"150", "051"}}
	Rate125 = Category{Name: "125", Markers: []string{"125", "521"}}
)

// Categories returns the built-in categories.
func Categories() []Category {
	return []Category{Rate150, Rate125}
}

// Row is one qualifying payment row.
type Row struct {
	Code   string
	Marker string
	Line   int
	Hours  float64
	Rate   float64
}

var (
	codeToken    = regexp.MustCompile(`^\d{3}$`)
	numericToken = regexp.MustCompile(`^(\d[\d,]*(\.\d*)?|\.\d+)$`)
	digitRun     = regexp.MustCompile(`\d+`)
)

const hoursLetter = 'ש'

// Rows returns every row in text that belongs to c, in text order.
func Rows(text string, c Category) []Row {
	var rows []Row
	for n, line := range strings.Split(text, "\n") {
		rows = append(rows, scanLine(strings.Fields(bidi.StripMarks(line)), n, c)...)
	}
	return rows
}

// Sum totals the hours column of every row of c. It returns nil when text has
// no such row, so "no rows" stays distinct from rows summing to zero.
func Sum(text string, c Category) *float64 {
	rows := Rows(text, c)
	if len(rows) == 0 {
		return nil
	}
	total := 0.0
	for _, r := range rows {
		total += r.Hours
	}
	return &total
}

// Derive computes both built-in totals.
func Derive(text string) model.HourAggregates {
	return model.HourAggregates{
		Rate150: Sum(text, Rate150),
		Rate125: Sum(text, Rate125),
	}
}

func scanLine(tokens []string, line int, c Category) []Row {
	var rows []Row
	for i := 0; i+1 < len(tokens); i++ {
		if !codeToken.MatchString(tokens[i]) || !isHoursToken(tokens[i+1]) {
			continue
		}
		row, next, ok := scanRow(tokens, i+1, c)
		if ok {
			row.Code = tokens[i]
			row.Line = line
			rows = append(rows, row)
			i = next - 1
		}
	}
	return rows
}

// scanRow reads from the hours token at s up to the first pair of numeric
// tokens. The row belongs to c when a marker of c appears before that pair.
// next is the index after the pair.
func scanRow(tokens []string, s int, c Category) (row Row, next int, ok bool) {
	marker := ""
	for k := s; k < len(tokens); k++ {
		tok := tokens[k]

		if k > s && codeToken.MatchString(tok) && k+1 < len(tokens) && isHoursToken(tokens[k+1]) {
			// ran into the next row
			return Row{}, 0, false
		}

		if numericToken.MatchString(tok) && !isMarker(tok, c) {
			if k+1 >= len(tokens) || !numericToken.MatchString(tokens[k+1]) {
				continue
			}
			if marker == "" {
				return Row{}, 0, false
			}
			hours, rate := value.Number(tok), value.Number(tokens[k+1])
			if hours == nil || rate == nil {
				return Row{}, 0, false
			}
			return Row{Marker: marker, Hours: *hours, Rate: *rate}, k + 2, true
		}

		if marker == "" {
			for _, run := range digitRun.FindAllString(tok, -1) {
				if isMarker(run, c) {
					marker = run
					break
				}
			}
		}
	}
	return Row{}, 0, false
}

// isHoursToken reports whether tok is the hours abbreviation, possibly with a
// marker glued to it, and not the start of a longer Hebrew word.
func isHoursToken(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	if r != hoursLetter {
		return false
	}
	next, _ := utf8.DecodeRuneInString(tok[size:])
	return next == utf8.RuneError || !(unicode.Is(unicode.Hebrew, next) && unicode.IsLetter(next))
}

func isMarker(s string, c Category) bool {
	for _, m := range c.Markers {
		if s == m {
			return true
		}
	}
	return false
}
