package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "MYR"

// Period identifies a payroll month. Month is the English month name ("March").
type Period struct {
	Month string
	Year  int
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// RateTable - Company default rates. A nil field has no default.
type RateTable struct {
	Rate8hr              *decimal.Decimal
	Rate12hr             *decimal.Decimal
	SundayRate           *decimal.Decimal
	PHRate               *decimal.Decimal
	OTRate9hr            *decimal.Decimal
	OTRate12hr           *decimal.Decimal
	SundayPHOTRate       *decimal.Decimal
	PHOTRate             *decimal.Decimal
	HostelFee            *decimal.Decimal
	UtilityCharges       *decimal.Decimal
	ConsultantFeePerHead *decimal.Decimal
	BackPay              *decimal.Decimal
	SpecialAllowance     *decimal.Decimal
	NightShiftAllowance  *decimal.Decimal
	Deduction            *decimal.Decimal
	Insurance            *decimal.Decimal
}

// CompanyRates - Rate table together with the company it belongs to
type CompanyRates struct {
	CompanyID   int64
	CompanyName string
	Rates       RateTable
}

// RateOverrides - Per-submission amounts that fall back to company defaults when nil
type RateOverrides struct {
	Rate8hr             *decimal.Decimal
	Rate12hr            *decimal.Decimal
	SundayRate          *decimal.Decimal
	PHRate              *decimal.Decimal
	HostelFee           *decimal.Decimal
	UtilityCharges      *decimal.Decimal
	OvertimeRate        *decimal.Decimal
	OvertimeRate12hr    *decimal.Decimal
	SundayPHOTRate      *decimal.Decimal
	FixedAllowance      *decimal.Decimal
	BackPay             *decimal.Decimal
	SpecialAllowance    *decimal.Decimal
	NightShiftAllowance *decimal.Decimal
	DefaultDeduction    *decimal.Decimal
	Insurance           *decimal.Decimal
}

// ResolvedRates - RateOverrides after fallback; every field is populated
type ResolvedRates struct {
	Rate8hr             decimal.Decimal
	Rate12hr            decimal.Decimal
	SundayRate          decimal.Decimal
	PHRate              decimal.Decimal
	HostelFee           decimal.Decimal
	UtilityCharges      decimal.Decimal
	OvertimeRate        decimal.Decimal
	OvertimeRate12hr    decimal.Decimal
	SundayPHOTRate      decimal.Decimal
	FixedAllowance      decimal.Decimal
	BackPay             decimal.Decimal
	SpecialAllowance    decimal.Decimal
	NightShiftAllowance decimal.Decimal
	DefaultDeduction    decimal.Decimal
	Insurance           decimal.Decimal
}

// Quantities - Timesheet figures for the period
type Quantities struct {
	WorkingDays8hr    decimal.Decimal
	WorkingDays12hr   decimal.Decimal
	OvertimeHours     decimal.Decimal
	Overtime12hrHours decimal.Decimal
	SundayDays        decimal.Decimal
	PHDays            decimal.Decimal
	SundayPHOTHours   decimal.Decimal
	NPLDays           decimal.Decimal
}

// TotalWorkingDays sums both shift types.
func (q Quantities) TotalWorkingDays() decimal.Decimal {
	return q.WorkingDays8hr.Add(q.WorkingDays12hr)
}

// FlatItems - Caller-supplied amounts with no company default
type FlatItems struct {
	OtherClaim      decimal.Decimal
	EPF             decimal.Decimal
	SOCSO           decimal.Decimal
	SIP             decimal.Decimal
	Advance         decimal.Decimal
	Medical         decimal.Decimal
	OtherDeductions decimal.Decimal
}

// SalaryInputs - Everything submitted for one employee and period
type SalaryInputs struct {
	EmployeeID   int64
	CompanyID    int64
	Period       Period
	Currency     string
	Quantities   Quantities
	Overrides    RateOverrides
	Flat         FlatItems
	AdvanceCount int
	MedicalCount int
	PaymentDate  *time.Time
	AccountNo    *string
	FullBasics   decimal.Decimal
}

// Earnings - Earning line items, each rounded to cents
type Earnings struct {
	Basic               decimal.Decimal
	Overtime            decimal.Decimal
	Overtime12hr        decimal.Decimal
	Sunday              decimal.Decimal
	PublicHoliday       decimal.Decimal
	SundayPHOT          decimal.Decimal
	BackPay             decimal.Decimal
	SpecialAllowance    decimal.Decimal
	NightShiftAllowance decimal.Decimal
	FixedAllowance      decimal.Decimal
	OtherClaim          decimal.Decimal
	Total               decimal.Decimal
}

// Deductions - Deduction line items. DailyRate is not rounded.
type Deductions struct {
	DailyRate        decimal.Decimal
	NPL              decimal.Decimal
	EPF              decimal.Decimal
	SOCSO            decimal.Decimal
	SIP              decimal.Decimal
	HostelFee        decimal.Decimal
	UtilityCharges   decimal.Decimal
	Advance          decimal.Decimal
	Medical          decimal.Decimal
	OtherDeductions  decimal.Decimal
	DefaultDeduction decimal.Decimal
	Insurance        decimal.Decimal
	Total            decimal.Decimal
}

// SalarySummary - Persisted result, one per employee and period
type SalarySummary struct {
	ID           string
	CompanyID    int64
	CompanyName  string
	EmployeeID   int64
	Period       Period
	Currency     string
	Quantities   Quantities
	Rates        ResolvedRates
	Earnings     Earnings
	Deductions   Deductions
	AdvanceCount int
	MedicalCount int
	PaymentDate  *time.Time
	AccountNo    *string
	FullBasics   decimal.Decimal
	NetPay       decimal.Decimal
	CreatedBy    *string
	CreatedAt    time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
	EmployeeType     *string
}

// SummaryTotals - Column totals for a summary listing
type SummaryTotals struct {
	Count           int
	Basic           decimal.Decimal
	EarningsTotal   decimal.Decimal
	DeductionsTotal decimal.Decimal
	NetPay          decimal.Decimal
}
