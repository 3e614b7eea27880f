package model

import (
	"crypto/sha256"
	"fmt"
)

// StatementRecord is the typed result for one employee statement. Every leaf
// is a pointer; nil means the value was not found or could not be parsed.
type StatementRecord struct {
	Employee       Employee       `json:"employee"`
	Employer       Employer       `json:"employer"`
	Period         Period         `json:"period"`
	Salary         Salary         `json:"salary"`
	Hours          Hours          `json:"hours"`
	Balances       Balances       `json:"balances"`
	Deductions     Deductions     `json:"deductions"`
	Additions      Additions      `json:"additions"`
	Cumulative     Cumulative     `json:"cumulative"`
	Banking        Banking        `json:"banking"`
	HourAggregates HourAggregates `json:"hour_aggregates"`
	RawText        string         `json:"raw_text"`

	original string
}

// Employee holds personal details.
type Employee struct {
	Name           *string `json:"name"`
	ID             *string `json:"id"`
	Department     *string `json:"department"`
	IDNumber       *string `json:"id_number"`
	Address        *string `json:"address"`
	MaritalStatus  *string `json:"marital_status"`
	JobBasis       *string `json:"job_basis"`
	SeniorityDate  *string `json:"seniority_date"`
	StartDate      *string `json:"start_date"`
	SeniorityYears *int    `json:"seniority_years"`
}

// Employer holds the issuing company's details.
type Employer struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
}

// Period is the month the statement covers.
type Period struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// Salary holds the headline amounts.
type Salary struct {
	Base         *float64 `json:"base"`
	Gross        *float64 `json:"gross"`
	Net          *float64 `json:"net"`
	FinalPayment *float64 `json:"final_payment"`
	Taxable      *float64 `json:"taxable"`
}

// Hours holds hour and day counts.
type Hours struct {
	Work     *float64 `json:"work"`
	Overtime *float64 `json:"overtime"`
	Regular  *float64 `json:"regular"`
	WorkDays *int     `json:"work_days"`
}

// DayAccount is a leave balance ledger.
type DayAccount struct {
	Previous *float64 `json:"previous"`
	Accrued  *float64 `json:"accrued"`
	Used     *float64 `json:"used"`
	Current  *float64 `json:"current"`
}

// Balances groups the vacation and sick leave accounts.
type Balances struct {
	Vacation DayAccount `json:"vacation"`
	Sick     DayAccount `json:"sick"`
}

// Deductions holds mandatory deductions.
type Deductions struct {
	IncomeTax      *float64 `json:"income_tax"`
	SocialSecurity *float64 `json:"social_security"`
	Health         *float64 `json:"health"`
	Pension        *float64 `json:"pension"`
}

// Additions holds payment lines on top of base pay.
type Additions struct {
	Bonus           *float64 `json:"bonus"`
	TravelAllowance *float64 `json:"travel_allowance"`
	TishreyBonus    *float64 `json:"tishrey_bonus"`
	Premium         *float64 `json:"premium"`
	BaseWage        *float64 `json:"base_wage"`
	Saturday150     *float64 `json:"saturday_150"`
	GiftValue       *float64 `json:"gift_value"`
	SeveranceExtra  *float64 `json:"severance_extra"`
}

// Cumulative holds year-to-date totals.
type Cumulative struct {
	TaxableSalary  *float64 `json:"taxable_salary"`
	SocialSecurity *float64 `json:"social_security"`
	HealthTax      *float64 `json:"health_tax"`
}

// Banking holds the payout account.
type Banking struct {
	Bank          *string `json:"bank"`
	AccountNumber *string `json:"account_number"`
}

// HourAggregates are hour totals summed across all table rows of a rate.
// A nil total means no qualifying row was found.
type HourAggregates struct {
	Rate150 *float64 `json:"rate_150"`
	Rate125 *float64 `json:"rate_125"`
}

// SetOriginalText retains the full statement text the record was built from.
func (r *StatementRecord) SetOriginalText(text string) {
	r.original = text
}

// OriginalText returns the full statement text, which RawText only prefixes.
func (r *StatementRecord) OriginalText() string {
	return r.original
}

// Key identifies a statement by employee and period. Records missing either
// period part still get a key; callers enforcing uniqueness decide what to do
// with them.
func (r *StatementRecord) Key() string {
	return fmt.Sprintf("%s:%s-%s", deref(r.Employee.ID), intString(r.Period.Year), intString(r.Period.Month))
}

// Hash returns a stable digest of Key for duplicate detection.
func (r *StatementRecord) Hash() string {
	sum := sha256.Sum256([]byte(r.Key()))
	return fmt.Sprintf("%x", sum)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intString(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%02d", *n)
}
