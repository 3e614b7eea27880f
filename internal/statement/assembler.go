// Package statement turns one segment of text into a typed StatementRecord.
package statement

import (
	"github.com/ohad12345678/payslip/internal/aggregate"
	"github.com/ohad12345678/payslip/internal/model"
	"github.com/ohad12345678/payslip/internal/pattern"
	"github.com/ohad12345678/payslip/internal/segment"
	"github.com/ohad12345678/payslip/internal/value"
)

// DefaultRawTextLimit is the number of runes of segment text kept on a record.
const DefaultRawTextLimit = 1000

// Assembler runs the field cascade over a segment and fills a record.
// It is safe for concurrent use.
type Assembler struct {
	table         *pattern.Table
	identityField string
	rawTextLimit  int
}

// New returns an assembler for table. A negative rawTextLimit selects the
// default.
func New(table *pattern.Table, rawTextLimit int) *Assembler {
	if rawTextLimit < 0 {
		rawTextLimit = DefaultRawTextLimit
	}
	return &Assembler{
		table:         table,
		identityField: pattern.IdentityField,
		rawTextLimit:  rawTextLimit,
	}
}

// Table returns the compiled rule table in use.
func (a *Assembler) Table() *pattern.Table { return a.table }

// Assemble builds the record for seg. It reports false when the identity
// field is missing, in which case seg is not a statement.
func (a *Assembler) Assemble(seg segment.Segment) (model.StatementRecord, bool) {
	text := seg.Text()
	return a.AssembleText(text)
}

// AssembleText is Assemble for bare text.
func (a *Assembler) AssembleText(text string) (model.StatementRecord, bool) {
	f := fields{raw: a.table.Extract(text), table: a.table}

	id := f.text(a.identityField)
	if id == nil {
		return model.StatementRecord{}, false
	}

	rec := model.StatementRecord{
		Employee: model.Employee{
			Name:           f.text(pattern.FieldEmployeeName),
			ID:             id,
			Department:     f.text(pattern.FieldDepartment),
			IDNumber:       f.text(pattern.FieldIDNumber),
			Address:        f.text(pattern.FieldAddress),
			MaritalStatus:  f.text(pattern.FieldMaritalStatus),
			JobBasis:       f.text(pattern.FieldJobBasis),
			SeniorityDate:  f.text(pattern.FieldSeniorityDate),
			StartDate:      f.text(pattern.FieldStartDate),
			SeniorityYears: f.integer(pattern.FieldSeniorityYears),
		},
		Employer: model.Employer{
			Name:    f.text(pattern.FieldEmployerName),
			TaxID:   f.text(pattern.FieldEmployerTaxID),
			Address: f.text(pattern.FieldEmployerAddress),
		},
		Period: model.Period{
			Month: f.integer(pattern.FieldMonth),
			Year:  f.integer(pattern.FieldYear),
		},
		Salary: model.Salary{
			Base:         f.float(pattern.FieldBaseSalary),
			Gross:        f.float(pattern.FieldGrossSalary),
			Net:          f.float(pattern.FieldNetSalary),
			FinalPayment: f.float(pattern.FieldFinalPayment),
			Taxable:      f.float(pattern.FieldTaxableSalary),
		},
		Hours: model.Hours{
			Work:     f.float(pattern.FieldWorkHours),
			Overtime: f.float(pattern.FieldOvertimeHours),
			Regular:  f.float(pattern.FieldRegularHours),
			WorkDays: f.integer(pattern.FieldWorkDays),
		},
		Balances: model.Balances{
			Vacation: model.DayAccount{
				Previous: f.float(pattern.FieldPrevVacation),
				Accrued:  f.float(pattern.FieldVacationAccrued),
				Used:     f.float(pattern.FieldVacationUsed),
				Current:  f.float(pattern.FieldVacationDays),
			},
			Sick: model.DayAccount{
				Previous: f.float(pattern.FieldPrevSick),
				Accrued:  f.float(pattern.FieldSickAccrued),
				Used:     f.float(pattern.FieldSickUsed),
				Current:  f.float(pattern.FieldSickDays),
			},
		},
		Deductions: model.Deductions{
			IncomeTax:      f.float(pattern.FieldTax),
			SocialSecurity: f.float(pattern.FieldBituachLeumi),
			Health:         f.float(pattern.FieldHealthInsurance),
			Pension:        f.float(pattern.FieldPension),
		},
		Additions: model.Additions{
			Bonus:           f.float(pattern.FieldBonus),
			TravelAllowance: f.float(pattern.FieldTravelAllowance),
			TishreyBonus:    f.float(pattern.FieldTishreyBonus),
			Premium:         f.float(pattern.FieldPremium),
			BaseWage:        f.float(pattern.FieldBaseWage),
			Saturday150:     f.float(pattern.FieldSaturday150),
			GiftValue:       f.float(pattern.FieldGiftValue),
			SeveranceExtra:  f.float(pattern.FieldSeveranceExtra),
		},
		Cumulative: model.Cumulative{
			TaxableSalary:  f.float(pattern.FieldCumTaxable),
			SocialSecurity: f.float(pattern.FieldCumBituachLeumi),
			HealthTax:      f.float(pattern.FieldCumHealthTax),
		},
		Banking: model.Banking{
			Bank:          f.text(pattern.FieldBank),
			AccountNumber: f.text(pattern.FieldAccountNumber),
		},
		HourAggregates: aggregate.Derive(text),
		RawText:        Prefix(text, a.rawTextLimit),
	}
	rec.SetOriginalText(text)

	return rec, true
}

// DeriveAggregates recomputes rec's hour totals from its retained text.
func DeriveAggregates(rec *model.StatementRecord) {
	rec.HourAggregates = aggregate.Derive(rec.OriginalText())
}

// Prefix returns at most n runes of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// fields coerces raw matches according to the kind the table declares.
type fields struct {
	raw   map[string]string
	table *pattern.Table
}

func (f fields) lookup(name string) (string, value.Kind, bool) {
	raw, ok := f.raw[name]
	if !ok {
		return "", "", false
	}
	kind, _ := f.table.Kind(name)
	return raw, kind, true
}

func (f fields) text(name string) *string {
	raw, kind, ok := f.lookup(name)
	if !ok {
		return nil
	}
	if kind == value.KindDate {
		return value.Date(raw)
	}
	return value.Text(raw)
}

func (f fields) float(name string) *float64 {
	raw, kind, ok := f.lookup(name)
	if !ok {
		return nil
	}
	switch kind {
	case value.KindAmount:
		return value.Amount(raw)
	case value.KindPercent:
		return value.Percent(raw)
	case value.KindInteger:
		if n := value.Integer(raw); n != nil {
			v := float64(*n)
			return &v
		}
		return nil
	default:
		return value.Number(raw)
	}
}

func (f fields) integer(name string) *int {
	raw, _, ok := f.lookup(name)
	if !ok {
		return nil
	}
	return value.Integer(raw)
}
