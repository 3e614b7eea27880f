package pattern

import "github.com/ohad12345678/payslip/internal/value"

// Field names of the default rule table.
const (
	FieldEmployeeName    = "employee_name"
	FieldEmployeeID      = "employee_id"
	FieldDepartment      = "department"
	FieldIDNumber        = "id_number"
	FieldAddress         = "address"
	FieldMaritalStatus   = "marital_status"
	FieldJobBasis        = "job_basis"
	FieldSeniorityDate   = "seniority_date"
	FieldStartDate       = "start_date"
	FieldSeniorityYears  = "seniority_years"
	FieldEmployerName    = "employer_name"
	FieldEmployerTaxID   = "employer_tax_id"
	FieldEmployerAddress = "employer_address"
	FieldMonth           = "month"
	FieldYear            = "year"
	FieldBaseSalary      = "base_salary"
	FieldGrossSalary     = "gross_salary"
	FieldNetSalary       = "net_salary"
	FieldFinalPayment    = "final_payment"
	FieldTaxableSalary   = "taxable_salary"
	FieldWorkHours       = "work_hours"
	FieldOvertimeHours   = "overtime_hours"
	FieldRegularHours    = "regular_hours"
	FieldWorkDays        = "work_days"
	FieldTax             = "tax"
	FieldBituachLeumi    = "bituach_leumi"
	FieldHealthInsurance = "health_insurance"
	FieldPension         = "pension"
	FieldBonus           = "bonus"
	FieldTravelAllowance = "travel_allowance"
	FieldTishreyBonus    = "tishrey_bonus"
	FieldPremium         = "premium"
	FieldBaseWage        = "base_wage"
	FieldSaturday150     = "saturday_150"
	FieldGiftValue       = "gift_value"
	FieldSeveranceExtra  = "severance_extra"
	FieldVacationDays    = "vacation_days"
	FieldPrevVacation    = "previous_vacation_balance"
	FieldVacationAccrued = "vacation_accrued"
	FieldVacationUsed    = "vacation_used"
	FieldSickDays        = "sick_days"
	FieldPrevSick        = "previous_sick_balance"
	FieldSickAccrued     = "sick_accrued"
	FieldSickUsed        = "sick_used"
	FieldCumTaxable      = "cumulative_taxable_salary"
	FieldCumBituachLeumi = "cumulative_bituach_leumi"
	FieldCumHealthTax    = "cumulative_health_tax"
	FieldBank            = "bank"
	FieldAccountNumber   = "account_number"
)

// IdentityField is the field a statement cannot exist without.
const IdentityField = FieldEmployeeID

// DefaultRules returns the built-in rule table. Each call returns a fresh copy.
func DefaultRules() RuleTable {
	return defaultRules.Clone()
}

var defaultRules = RuleTable{
	// employee
	{Name: FieldEmployeeName, Kind: value.KindText, Patterns: []string{
		// Latin names, one to four capitalised words before the department label
		`([A-Z]+(?:\s+[A-Z]+){0,3})\s+מחלקה:`,
		// the last two Hebrew words before the department label
		`([א-ת]+\s+[א-ת]+)\s+מחלקה:`,
		`שם העובד[:\s]+([^\n]+)`,
		`שם[:\s]+([^\n]+)`,
	}},
	{Name: FieldEmployeeID, Kind: value.KindText, Patterns: []string{
		`מספר העובד:\s*(\d{4,})`,
		`ת\.?ז\.?[:\s]+(\d{9})`,
		`ת"ז[:\s]+(\d{9})`,
		`מספר זהות[:\s]+(\d{9})`,
		`רפסמ[:\s]*:?\s*(\d{4,})`,
	}},
	{Name: FieldDepartment, Kind: value.KindText, Patterns: []string{
		`מחלקה:\s+(\d{3}\s+[א-ת]+)`,
		`מחלקה[:\s]+(\d+)`,
	}},
	{Name: FieldIDNumber, Kind: value.KindText, Patterns: []string{
		`מספר זהות:\s+(\d{9})`,
	}},
	{Name: FieldJobBasis, Kind: value.KindText, Patterns: []string{
		`בסיס השכר:\s+([^\n]+)`,
	}},
	{Name: FieldSeniorityDate, Kind: value.KindDate, Patterns: []string{
		`ותק:\s+(\d{2}\.\d{2}\.\d{2})`,
	}},
	{Name: FieldStartDate, Kind: value.KindDate, Patterns: []string{
		`תחילת עבודה:\s+(\d{2}/\d{2}/\d{4})`,
	}},
	{Name: FieldAddress, Kind: value.KindText, Patterns: []string{
		`כתובת:\s+([^\n]+)`,
	}},
	{Name: FieldMaritalStatus, Kind: value.KindText, Patterns: []string{
		`מצב משפחתי:\s+([^\n]+)`,
	}},
	{Name: FieldSeniorityYears, Kind: value.KindInteger, Patterns: []string{
		`י"ע בחברה\s+(\d+)`,
		`שנות ותק\s+(\d+)`,
	}},

	// employer
	{Name: FieldEmployerName, Kind: value.KindText, Patterns: []string{
		`חברה\s*:\s*\d+\s*-\s*([^\n]+)`,
	}},
	{Name: FieldEmployerTaxID, Kind: value.KindText, Patterns: []string{
		`תיק ניכויים:\s+(\d+)`,
	}},
	{Name: FieldEmployerAddress, Kind: value.KindText, Patterns: []string{
		`כתובת:\s+([^\n]+?)\s+מספר תאגיד`,
	}},

	// period
	{Name: FieldMonth, Kind: value.KindInteger, Patterns: []string{
		`לחודש\s+(\d{1,2})/\d{4}`,
		`חודש[:\s]+(\d{1,2})`,
		`תקופה[:\s]+(\d{1,2})[/\-]`,
	}},
	{Name: FieldYear, Kind: value.KindInteger, Patterns: []string{
		`לחודש\s+\d{1,2}/(\d{4})`,
		`שנה[:\s]+(\d{4})`,
		`תקופה[:\s]+\d{1,2}[/\-](\d{4})`,
		`/(\d{4})`,
	}},

	// salary
	{Name: FieldBaseSalary, Kind: value.KindAmount, Patterns: []string{
		`שכר בסיס[:\s]+([\d,]+\.?\d*)`,
		`משכורת בסיס[:\s]+([\d,]+\.?\d*)`,
		`בסיס[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldGrossSalary, Kind: value.KindAmount, Patterns: []string{
		`כ"הס תשלומים\s+([\d,]+\.\d{2})`,
		`ברוטו[:\s]+([\d,]+\.?\d*)`,
		`סה"כ ברוטו[:\s]+([\d,]+\.?\d*)`,
		`משכורת ברוטו[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldNetSalary, Kind: value.KindAmount, Patterns: []string{
		`שכר נטו\s+([\d,]+\.\d{2})`,
		`נטו[:\s]+([\d,]+\.?\d*)`,
		`סה"כ נטו[:\s]+([\d,]+\.?\d*)`,
		`משכורת נטו[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldFinalPayment, Kind: value.KindAmount, Patterns: []string{
		`לתשלום\s+([\d,]+\.\d{2})`,
	}},
	{Name: FieldTaxableSalary, Kind: value.KindAmount, Patterns: []string{
		`שכר חייב מס\s+([\d,]+\.?\d*)`,
	}},

	// hours
	{Name: FieldWorkHours, Kind: value.KindNumber, Patterns: []string{
		`שעות עבודה\s+([\d.]+)`,
		`סה"כ שעות[:\s]+([\d.]+)`,
		`ע"ש בחברה\s+([\d.]+)`,
	}},
	{Name: FieldOvertimeHours, Kind: value.KindNumber, Patterns: []string{
		`שעות נוספות[:\s]+([\d.]+)`,
		`ש"נ[:\s]+([\d.]+)`,
		`נוספות[:\s]+([\d.]+)`,
	}},
	{Name: FieldRegularHours, Kind: value.KindNumber, Patterns: []string{
		`063\s+שכר בר\s+([\d.]+)`,
	}},
	{Name: FieldWorkDays, Kind: value.KindInteger, Patterns: []string{
		`ימי עבודה\s+(\d+)`,
	}},

	// deductions
	{Name: FieldTax, Kind: value.KindAmount, Patterns: []string{
		`מס הכנסה\s+([\d,]+\.?\d*)`,
		`מס[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldBituachLeumi, Kind: value.KindAmount, Patterns: []string{
		`ביטוח לאומי[:\s]+([\d,]+\.?\d*)`,
		`ב\.?לאומי\s+([\d,]+\.\d{2})`,
		`ב\.?ל\.?[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldHealthInsurance, Kind: value.KindAmount, Patterns: []string{
		`ביטוח בריאות[:\s]+([\d,]+\.?\d*)`,
		`ביטוח רפוא\s+([\d,]+\.\d{2})`,
		`בריאות[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldPension, Kind: value.KindAmount, Patterns: []string{
		`פנסיה[:\s]+([\d,]+\.?\d*)`,
		`קרן פנסיה[:\s]+([\d,]+\.?\d*)`,
	}},

	// additions
	{Name: FieldBonus, Kind: value.KindAmount, Patterns: []string{
		`בונוס[:\s]+([\d,]+\.?\d*)`,
		`פרמיה[:\s]+([\d,]+\.?\d*)`,
		`מענק[:\s]+([\d,]+\.?\d*)`,
	}},
	{Name: FieldTravelAllowance, Kind: value.KindAmount, Patterns: []string{
		`004\s+נסיעות\s+[\d.]+\s+[\d.]+\s+([\d,]+\.?\d*)`,
		`נסיעות\s+([\d,]+\.?\d*)`,
	}},
	{Name: FieldTishreyBonus, Kind: value.KindAmount, Patterns: []string{
		`015\s+יתרת תשר\s+[\d.]+\s+([\d,]+\.?\d*)`,
		`יתרת תשר\s+([\d,]+\.?\d*)`,
	}},
	{Name: FieldPremium, Kind: value.KindAmount, Patterns: []string{
		`020\s+פרמיה\s+[\d.]+\s+([\d,]+\.?\d*)`,
		`פרמיה\s+([\d,]+\.?\d*)`,
	}},
	{Name: FieldBaseWage, Kind: value.KindAmount, Patterns: []string{
		`063\s+שכר בר\s+[\d.]+\s+[\d.]+\s+([\d,]+\.?\d*)`,
		`שכר בר.*?([\d,]+\.\d{2})(?:\s|$)`,
	}},
	{Name: FieldSaturday150, Kind: value.KindAmount, Patterns: []string{
		`078\s+ש\s+%?\d*שבת\s+[\d.]+\s+[\d.]+\s+([\d,]+\.?\d*)`,
		`078.*?([\d,]+\.\d{2})(?:\s|$)`,
	}},
	{Name: FieldGiftValue, Kind: value.KindAmount, Patterns: []string{
		`022\s+שווי מתנות(?:.*?\s)([\d,]+\.\d{2})$`,
		`שווי מתנות.*?([\d,]+\.\d{2})$`,
	}},
	{Name: FieldSeveranceExtra, Kind: value.KindAmount, Patterns: []string{
		// פיצוג is a common misprint
		`089\s+פיצו[יג]\s+נוסף\s+([\d,]+\.?\d*)`,
		`פיצו[יג]\s+נוסף\s+([\d,]+\.?\d*)`,
	}},

	// vacation account
	{Name: FieldVacationDays, Kind: value.KindNumber, Patterns: []string{
		`ימי חופשה[:\s]+([\d.]+)`,
		`יתרה חדשה\s+([\d.]+)`,
		`חופש[:\s]+([\d.]+)`,
		`יתרת חופש[:\s]+([\d.]+)`,
		`חופש צבור[:\s]+([\d.]+)`,
	}},
	{Name: FieldPrevVacation, Kind: value.KindNumber, Patterns: []string{
		`חשבון חופשה.*?יתרה קודמת\s+([\d.]+)`,
	}},
	{Name: FieldVacationAccrued, Kind: value.KindNumber, Patterns: []string{
		`צבירה ח\.ז\.\s+([\d.]+)`,
	}},
	{Name: FieldVacationUsed, Kind: value.KindNumber, Patterns: []string{
		`ניצול ח\.ז\.\s+([\d.]+)`,
	}},

	// sick account; the new balance is preferred over the previous one
	{Name: FieldSickDays, Kind: value.KindNumber, Patterns: []string{
		`ימי מחלה[:\s]+([\d.]+)`,
		`מחלה[:\s]+([\d.]+)`,
		`יתרת מחלה[:\s]+([\d.]+)`,
		`חשבון מחלה.*?יתרה חדשה\s+([\d.]+)`,
		`חשבון מחלה.*?יתרה קודמת\s+([\d.]+)`,
	}},
	{Name: FieldPrevSick, Kind: value.KindNumber, Patterns: []string{
		`חשבון מחלה.*?יתרה קודמת\s+([\d.]+)`,
	}},
	{Name: FieldSickAccrued, Kind: value.KindNumber, Patterns: []string{
		`חשבון מחלה.*?צבירה.*?\s+([\d.]+)`,
	}},
	{Name: FieldSickUsed, Kind: value.KindNumber, Patterns: []string{
		`חשבון מחלה.*?ניצול.*?\s+([\d.]+)`,
	}},

	// cumulative
	{Name: FieldCumTaxable, Kind: value.KindAmount, Patterns: []string{
		`שכ\.ב\.לאומי\s+([\d,]+\.?\d*)`,
	}},
	{Name: FieldCumBituachLeumi, Kind: value.KindAmount, Patterns: []string{
		`בט\.\s*לאומי\s+([\d,]+\.?\d*)`,
	}},
	{Name: FieldCumHealthTax, Kind: value.KindAmount, Patterns: []string{
		`מס בריאות\s+([\d,]+\.?\d*)`,
	}},

	// banking
	{Name: FieldBank, Kind: value.KindText, Patterns: []string{
		`בנק:\s+(\d+/\d+)`,
	}},
	{Name: FieldAccountNumber, Kind: value.KindText, Patterns: []string{
		`חשבון:\s+(\d+)`,
	}},
}
