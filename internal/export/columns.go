package export

import "github.com/ohad12345678/payslip/internal/model"

// Column is one flattened output column.
type Column struct {
	Value  func(doc *model.Document, rec *model.StatementRecord) any
	Header string
	Width  float64
}

// Columns returns the fixed column layout. Value returns nil for absent
// leaves.
func Columns() []Column {
	return []Column{
		{Header: "Source", Width: 24, Value: func(d *model.Document, _ *model.StatementRecord) any { return d.Source }},
		{Header: "Employee ID", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.ID) }},
		{Header: "Name", Width: 22, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.Name) }},
		{Header: "Department", Width: 18, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.Department) }},
		{Header: "ID Number", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.IDNumber) }},
		{Header: "Job Basis", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.JobBasis) }},
		{Header: "Start Date", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employee.StartDate) }},
		{Header: "Employer", Width: 24, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employer.Name) }},
		{Header: "Employer Tax ID", Width: 14, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Employer.TaxID) }},
		{Header: "Month", Width: 8, Value: func(_ *model.Document, r *model.StatementRecord) any { return num(r.Period.Month) }},
		{Header: "Year", Width: 8, Value: func(_ *model.Document, r *model.StatementRecord) any { return num(r.Period.Year) }},
		{Header: "Base Salary", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Salary.Base) }},
		{Header: "Gross", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Salary.Gross) }},
		{Header: "Net", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Salary.Net) }},
		{Header: "Final Payment", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Salary.FinalPayment) }},
		{Header: "Taxable", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Salary.Taxable) }},
		{Header: "Work Hours", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Hours.Work) }},
		{Header: "Regular Hours", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Hours.Regular) }},
		{Header: "Overtime Hours", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Hours.Overtime) }},
		{Header: "Hours 150%", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.HourAggregates.Rate150) }},
		{Header: "Hours 125%", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.HourAggregates.Rate125) }},
		{Header: "Work Days", Width: 8, Value: func(_ *model.Document, r *model.StatementRecord) any { return num(r.Hours.WorkDays) }},
		{Header: "Income Tax", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Deductions.IncomeTax) }},
		{Header: "Social Security", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Deductions.SocialSecurity) }},
		{Header: "Health", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Deductions.Health) }},
		{Header: "Pension", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Deductions.Pension) }},
		{Header: "Vacation Balance", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Balances.Vacation.Current) }},
		{Header: "Sick Balance", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Balances.Sick.Current) }},
		{Header: "Saturday 150%", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Additions.Saturday150) }},
		{Header: "Travel", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return amt(r.Additions.TravelAllowance) }},
		{Header: "Bank", Width: 10, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Banking.Bank) }},
		{Header: "Account", Width: 12, Value: func(_ *model.Document, r *model.StatementRecord) any { return str(r.Banking.AccountNumber) }},
	}
}

// The helpers return an untyped nil for absent leaves so callers can test
// the interface value against nil.

func str(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func num(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func amt(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
