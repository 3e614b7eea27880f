package statement

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohad12345678/payslip/internal/model"
	"github.com/ohad12345678/payslip/internal/pattern"
	"github.com/ohad12345678/payslip/internal/segment"
	"github.com/ohad12345678/payslip/internal/value"
)

const statementText = `חברה: 12 - מסעדות הצפון בע"מ
כתובת: הרצל 10 חיפה מספר תאגיד 51234567
סלע דולב מחלקה: 003 במרכנים
מספר העובד: 0951
תלוש שכר לחודש 03/2025
ותק: 01.03.15
י"ע בחברה 10
063 שכר בר 42.68 38.00 1621.84
078 ש %150שבת 30.47 52.50 1600.00
079 ש %125 6.00 43.75 262.50
סה"כ ברוטו: 8,000.00
שכר נטו לא זוהה
מס הכנסה 0.00
ימי עבודה 21
חשבון מחלה יתרה קודמת 10.00 צבירה 1.50 ניצול 2.00 יתרה חדשה 9.50
בנק: 12/345 חשבון: 987654`

func newAssembler(t *testing.T, limit int) *Assembler {
	t.Helper()
	table, err := pattern.Compile(pattern.DefaultRules())
	require.NoError(t, err)
	return New(table, limit)
}

func TestAssemble(t *testing.T) {
	a := newAssembler(t, DefaultRawTextLimit)

	rec, ok := a.AssembleText(statementText)
	require.True(t, ok)

	require.NotNil(t, rec.Employee.ID)
	assert.Equal(t, "0951", *rec.Employee.ID)
	require.NotNil(t, rec.Employee.Name)
	assert.Equal(t, "סלע דולב", *rec.Employee.Name)
	require.NotNil(t, rec.Employee.SeniorityDate)
	assert.Equal(t, "01.03.15", *rec.Employee.SeniorityDate)
	require.NotNil(t, rec.Employee.SeniorityYears)
	assert.Equal(t, 10, *rec.Employee.SeniorityYears)

	require.NotNil(t, rec.Employer.Address)
	assert.Equal(t, "הרצל 10 חיפה", *rec.Employer.Address)

	require.NotNil(t, rec.Period.Month)
	require.NotNil(t, rec.Period.Year)
	assert.Equal(t, 3, *rec.Period.Month)
	assert.Equal(t, 2025, *rec.Period.Year)

	require.NotNil(t, rec.Salary.Gross)
	assert.InDelta(t, 8000.0, *rec.Salary.Gross, 1e-9)
	assert.Nil(t, rec.Salary.Net, "unrecognised amount stays absent")
	assert.Nil(t, rec.Salary.Base)

	require.NotNil(t, rec.Deductions.IncomeTax, "zero is a value")
	assert.InDelta(t, 0.0, *rec.Deductions.IncomeTax, 0)

	require.NotNil(t, rec.Hours.WorkDays)
	assert.Equal(t, 21, *rec.Hours.WorkDays)
	require.NotNil(t, rec.Hours.Regular)
	assert.InDelta(t, 42.68, *rec.Hours.Regular, 1e-9)

	require.NotNil(t, rec.Balances.Sick.Current)
	assert.InDelta(t, 9.5, *rec.Balances.Sick.Current, 1e-9)
	require.NotNil(t, rec.Balances.Sick.Previous)
	assert.InDelta(t, 10.0, *rec.Balances.Sick.Previous, 1e-9)

	require.NotNil(t, rec.Additions.Saturday150)
	assert.InDelta(t, 1600.0, *rec.Additions.Saturday150, 1e-9)
	require.NotNil(t, rec.Additions.BaseWage)
	assert.InDelta(t, 1621.84, *rec.Additions.BaseWage, 1e-9)

	require.NotNil(t, rec.HourAggregates.Rate150)
	require.NotNil(t, rec.HourAggregates.Rate125)
	assert.InDelta(t, 30.47, *rec.HourAggregates.Rate150, 1e-9)
	assert.InDelta(t, 6.0, *rec.HourAggregates.Rate125, 1e-9)

	require.NotNil(t, rec.Banking.Bank)
	assert.Equal(t, "12/345", *rec.Banking.Bank)

	assert.Equal(t, statementText, rec.RawText)
	assert.Equal(t, statementText, rec.OriginalText())
}

func TestAssemble_Segment(t *testing.T) {
	a := newAssembler(t, DefaultRawTextLimit)
	seg := segment.Segment{Lines: strings.Split(statementText, "\n"), End: 16, AnchorLine: 3, Anchor: "0951"}

	rec, ok := a.Assemble(seg)
	require.True(t, ok)
	assert.Equal(t, "0951", *rec.Employee.ID)
}

func TestAssemble_MissingIdentity(t *testing.T) {
	a := newAssembler(t, DefaultRawTextLimit)

	_, ok := a.AssembleText("סה\"כ ברוטו: 8,000.00\nשכר נטו 6,512.30")
	assert.False(t, ok)

	_, ok = a.AssembleText("")
	assert.False(t, ok)
}

func TestAssemble_EmptyIdentityCapture(t *testing.T) {
	table := pattern.MustCompile(pattern.RuleTable{
		{Name: pattern.FieldEmployeeID, Kind: value.KindText, Patterns: []string{`id:([^\n]*)`}},
	})
	a := New(table, DefaultRawTextLimit)

	_, ok := a.AssembleText("id:\nother")
	assert.False(t, ok)
}

func TestAssemble_RawTextLimit(t *testing.T) {
	a := newAssembler(t, 10)

	rec, ok := a.AssembleText(statementText)
	require.True(t, ok)
	assert.Equal(t, 10, utf8.RuneCountInString(rec.RawText))
	assert.True(t, utf8.ValidString(rec.RawText))
	assert.True(t, strings.HasPrefix(statementText, rec.RawText))
	assert.Equal(t, statementText, rec.OriginalText())
}

func TestNew_NegativeLimitUsesDefault(t *testing.T) {
	a := newAssembler(t, -1)
	long := "מספר העובד: 0951\n" + strings.Repeat("א", 2000)

	rec, ok := a.AssembleText(long)
	require.True(t, ok)
	assert.Equal(t, DefaultRawTextLimit, utf8.RuneCountInString(rec.RawText))
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		n    int
	}{
		{name: "shorter than limit", in: "abc", n: 10, want: "abc"},
		{name: "exact", in: "abc", n: 3, want: "abc"},
		{name: "hebrew runes", in: "שלום עולם", n: 4, want: "שלום"},
		{name: "zero", in: "abc", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prefix(tt.in, tt.n))
		})
	}
}

func TestDeriveAggregates(t *testing.T) {
	var rec model.StatementRecord
	rec.SetOriginalText("078 ש %051שבת 30.47 52.50")

	DeriveAggregates(&rec)
	require.NotNil(t, rec.HourAggregates.Rate150)
	assert.InDelta(t, 30.47, *rec.HourAggregates.Rate150, 1e-9)
	assert.Nil(t, rec.HourAggregates.Rate125)
}
