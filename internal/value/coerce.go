// Package value converts raw matched strings into typed values. Every
// conversion reports absence (nil) instead of guessing a default.
package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ohad12345678/payslip/internal/bidi"
)

// Kind is the declared semantic type of a field.
type Kind string

// Supported kinds.
const (
	KindAmount  Kind = "amount"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindPercent Kind = "percent"
	KindDate    Kind = "date"
	KindText    Kind = "text"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindAmount, KindNumber, KindInteger, KindPercent, KindDate, KindText}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// IsNumeric reports whether values of k coerce to a float.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindAmount, KindNumber, KindPercent:
		return true
	default:
		return false
	}
}

var currencyReplacer = strings.NewReplacer(
	"₪", "",
	"$", "",
	"€", "",
	`ש"ח`, "",
	"ש״ח", "",
	"NIS", "",
	"nis", "",
)

var (
	dateShape    = regexp.MustCompile(`^\d{1,2}[./-]\d{1,2}[./-](\d{2}|\d{4})$`)
	decimalShape = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)$`)
)

// clean drops directional marks and every kind of whitespace.
func clean(raw string) string {
	raw = bidi.StripMarks(raw)
	return strings.Join(strings.Fields(raw), "")
}

func parseFloat(s string) *float64 {
	// right-to-left layouts print negatives as "250.00-"
	if len(s) > 1 && strings.HasSuffix(s, "-") && !strings.HasPrefix(s, "-") {
		s = "-" + s[:len(s)-1]
	}
	if !decimalShape.MatchString(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Number parses a decimal quantity such as hours or days. Thousands
// separators are dropped.
func Number(raw string) *float64 {
	s := strings.ReplaceAll(clean(raw), ",", "")
	return parseFloat(s)
}

// Amount parses a money value, dropping currency glyphs and thousands
// separators.
func Amount(raw string) *float64 {
	return Number(currencyReplacer.Replace(raw))
}

// Percent parses a percentage and returns its numeric part (12.5% -> 12.5).
func Percent(raw string) *float64 {
	return Number(strings.ReplaceAll(raw, "%", ""))
}

// Integer parses a whole number. Decimal input whose fraction is zero
// ("21.00") is accepted; anything else is absent.
func Integer(raw string) *int {
	s := strings.ReplaceAll(clean(raw), ",", "")
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f := parseFloat(s)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > math.MaxInt32 {
		return nil
	}
	n := int(*f)
	return &n
}

// Date validates a day-month-year value and returns it in its source format.
func Date(raw string) *string {
	s := clean(raw)
	if !dateShape.MatchString(s) {
		return nil
	}
	return &s
}

// Text collapses whitespace; empty text is absent.
func Text(raw string) *string {
	s := strings.Join(strings.Fields(bidi.StripMarks(raw)), " ")
	if s == "" {
		return nil
	}
	return &s
}

// Coerce converts raw according to kind. The result is *float64, *int or
// *string; a nil pointer of the matching type means absent.
func Coerce(kind Kind, raw string) any {
	switch kind {
	case KindAmount:
		return Amount(raw)
	case KindNumber:
		return Number(raw)
	case KindPercent:
		return Percent(raw)
	case KindInteger:
		return Integer(raw)
	case KindDate:
		return Date(raw)
	default:
		return Text(raw)
	}
}
