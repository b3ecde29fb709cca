package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SUMMARY REQUEST DTOs ==========

// GenerateSummaryRequest is the submitted salary form. Amount fields left null
// fall back to the company default rate table.
type GenerateSummaryRequest struct {
	EmployeeID int64  `json:"employee_id"`
	CompanyID  int64  `json:"company_id"`
	Month      string `json:"month"`
	Year       int    `json:"year,omitempty"`
	Currency   string `json:"currency,omitempty"`

	// Quantities
	WorkingDays8hr    *decimal.Decimal `json:"working_days_8hr,omitempty"`
	WorkingDays12hr   *decimal.Decimal `json:"working_days_12hr,omitempty"`
	OvertimeHours     *decimal.Decimal `json:"overtime_hours,omitempty"`
	Overtime12hrHours *decimal.Decimal `json:"overtime_12hr_hours,omitempty"`
	SundayDays        *decimal.Decimal `json:"sunday_days,omitempty"`
	PHDays            *decimal.Decimal `json:"ph_days,omitempty"`
	SundayPHOTHours   *decimal.Decimal `json:"sunday_ph_ot_hours,omitempty"`
	NPLDays           *decimal.Decimal `json:"npl_days,omitempty"`

	// Rates and amounts with company defaults
	Rate8hr             *decimal.Decimal `json:"rate_8hr,omitempty"`
	Rate12hr            *decimal.Decimal `json:"rate_12hr,omitempty"`
	SundayRate          *decimal.Decimal `json:"sunday_rate,omitempty"`
	PHRate              *decimal.Decimal `json:"ph_rate,omitempty"`
	OvertimeRate        *decimal.Decimal `json:"overtime_rate,omitempty"`
	OvertimeRate12hr    *decimal.Decimal `json:"overtime_rate_12hr,omitempty"`
	SundayPHOTRate      *decimal.Decimal `json:"sunday_ph_ot_rate,omitempty"`
	FixedAllowance      *decimal.Decimal `json:"fixed_allowance,omitempty"`
	BackPay             *decimal.Decimal `json:"back_pay,omitempty"`
	SpecialAllowance    *decimal.Decimal `json:"special_allowance,omitempty"`
	NightShiftAllowance *decimal.Decimal `json:"night_shift_allowance,omitempty"`
	HostelFee           *decimal.Decimal `json:"hostel_fee,omitempty"`
	UtilityCharges      *decimal.Decimal `json:"utility_charges,omitempty"`
	DefaultDeduction    *decimal.Decimal `json:"default_deduction,omitempty"`
	Insurance           *decimal.Decimal `json:"insurance,omitempty"`

	// Amounts without defaults
	OtherClaim      *decimal.Decimal `json:"oth_claim,omitempty"`
	EPF             *decimal.Decimal `json:"epf_deduction,omitempty"`
	SOCSO           *decimal.Decimal `json:"socso_deduction,omitempty"`
	SIP             *decimal.Decimal `json:"sip_deduction,omitempty"`
	Advance         *decimal.Decimal `json:"advance,omitempty"`
	Medical         *decimal.Decimal `json:"medical,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`

	AdvanceCount int     `json:"advance_count,omitempty"`
	MedicalCount int     `json:"medical_count,omitempty"`
	PaymentDate  *string `json:"payment_date,omitempty"`
	AccountNo    *string `json:"account_no,omitempty"`

	FullBasics *decimal.Decimal `json:"full_basics,omitempty"`
}

type namedAmount struct {
	field string
	value *decimal.Decimal
}

func (r *GenerateSummaryRequest) amounts() []namedAmount {
	return []namedAmount{
		{"working_days_8hr", r.WorkingDays8hr},
		{"working_days_12hr", r.WorkingDays12hr},
		{"overtime_hours", r.OvertimeHours},
		{"overtime_12hr_hours", r.Overtime12hrHours},
		{"sunday_days", r.SundayDays},
		{"ph_days", r.PHDays},
		{"sunday_ph_ot_hours", r.SundayPHOTHours},
		{"npl_days", r.NPLDays},
		{"rate_8hr", r.Rate8hr},
		{"rate_12hr", r.Rate12hr},
		{"sunday_rate", r.SundayRate},
		{"ph_rate", r.PHRate},
		{"overtime_rate", r.OvertimeRate},
		{"overtime_rate_12hr", r.OvertimeRate12hr},
		{"sunday_ph_ot_rate", r.SundayPHOTRate},
		{"fixed_allowance", r.FixedAllowance},
		{"back_pay", r.BackPay},
		{"special_allowance", r.SpecialAllowance},
		{"night_shift_allowance", r.NightShiftAllowance},
		{"hostel_fee", r.HostelFee},
		{"utility_charges", r.UtilityCharges},
		{"default_deduction", r.DefaultDeduction},
		{"insurance", r.Insurance},
		{"oth_claim", r.OtherClaim},
		{"epf_deduction", r.EPF},
		{"socso_deduction", r.SOCSO},
		{"sip_deduction", r.SIP},
		{"advance", r.Advance},
		{"medical", r.Medical},
		{"other_deductions", r.OtherDeductions},
		{"full_basics", r.FullBasics},
	}
}

func (r *GenerateSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if _, ok := validator.NormalizeMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a month name or number"})
	}
	if r.Year != 0 && (r.Year < 2000 || r.Year > 9999) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 9999"})
	}
	if r.Currency != "" && !validator.IsValidCurrency(strings.ToUpper(r.Currency)) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a 3-letter currency code"})
	}

	for _, a := range r.amounts() {
		if validator.IsNegative(a.value) {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "must be non-negative"})
		}
	}

	if r.AdvanceCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "advance_count", Message: "must be non-negative"})
	}
	if r.MedicalCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "medical_count", Message: "must be non-negative"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToInputs converts a validated request. Blank quantities and flat amounts
// become zero; blank overridable amounts stay nil for the rate resolver.
func (r *GenerateSummaryRequest) ToInputs(defaultCurrency string, now time.Time) SalaryInputs {
	month, _ := validator.NormalizeMonth(r.Month)
	year := r.Year
	if year == 0 {
		year = now.Year()
	}
	currency := strings.ToUpper(r.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	in := SalaryInputs{
		EmployeeID: r.EmployeeID,
		CompanyID:  r.CompanyID,
		Period:     Period{Month: month, Year: year},
		Currency:   currency,
		Quantities: Quantities{
			WorkingDays8hr:    orZero(r.WorkingDays8hr),
			WorkingDays12hr:   orZero(r.WorkingDays12hr),
			OvertimeHours:     orZero(r.OvertimeHours),
			Overtime12hrHours: orZero(r.Overtime12hrHours),
			SundayDays:        orZero(r.SundayDays),
			PHDays:            orZero(r.PHDays),
			SundayPHOTHours:   orZero(r.SundayPHOTHours),
			NPLDays:           orZero(r.NPLDays),
		},
		Overrides: RateOverrides{
			Rate8hr:             r.Rate8hr,
			Rate12hr:            r.Rate12hr,
			SundayRate:          r.SundayRate,
			PHRate:              r.PHRate,
			HostelFee:           r.HostelFee,
			UtilityCharges:      r.UtilityCharges,
			OvertimeRate:        r.OvertimeRate,
			OvertimeRate12hr:    r.OvertimeRate12hr,
			SundayPHOTRate:      r.SundayPHOTRate,
			FixedAllowance:      r.FixedAllowance,
			BackPay:             r.BackPay,
			SpecialAllowance:    r.SpecialAllowance,
			NightShiftAllowance: r.NightShiftAllowance,
			DefaultDeduction:    r.DefaultDeduction,
			Insurance:           r.Insurance,
		},
		Flat: FlatItems{
			OtherClaim:      orZero(r.OtherClaim),
			EPF:             orZero(r.EPF),
			SOCSO:           orZero(r.SOCSO),
			SIP:             orZero(r.SIP),
			Advance:         orZero(r.Advance),
			Medical:         orZero(r.Medical),
			OtherDeductions: orZero(r.OtherDeductions),
		},
		AdvanceCount: r.AdvanceCount,
		MedicalCount: r.MedicalCount,
		AccountNo:    r.AccountNo,
		FullBasics:   orZero(r.FullBasics),
	}

	if r.PaymentDate != nil {
		if d, ok := validator.IsValidDate(*r.PaymentDate); ok {
			in.PaymentDate = &d
		}
	}

	return in
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ========== SUMMARY FILTER ==========

var EmployeeTypes = []string{"local", "foreign"}

type SummaryFilter struct {
	Month        *string
	Year         *int
	CompanyID    *int64
	EmployeeType *string
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil {
		month, ok := validator.NormalizeMonth(*f.Month)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a month name or number"})
		} else {
			f.Month = &month
		}
	}
	if f.Year != nil && (*f.Year < 2000 || *f.Year > 9999) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 9999"})
	}
	if f.CompanyID != nil && *f.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "must be a positive integer"})
	}
	if f.EmployeeType != nil && !validator.IsInSlice(*f.EmployeeType, EmployeeTypes) {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "must be 'local' or 'foreign'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== SUMMARY RESPONSE DTOs ==========

type SummaryResponse struct {
	ID           string  `json:"id,omitempty"`
	CompanyID    int64   `json:"company_id"`
	CompanyName  string  `json:"company_name"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeType *string `json:"employee_type,omitempty"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	Currency     string  `json:"currency"`

	WorkingDays8hr    decimal.Decimal `json:"working_days_8hr"`
	Rate8hr           decimal.Decimal `json:"rate_8hr"`
	WorkingDays12hr   decimal.Decimal `json:"working_days_12hr"`
	Rate12hr          decimal.Decimal `json:"rate_12hr"`
	Basic             decimal.Decimal `json:"basic"`
	OvertimeHours     decimal.Decimal `json:"overtime_hours"`
	OvertimeRate      decimal.Decimal `json:"overtime_rate"`
	Overtime          decimal.Decimal `json:"overtime_rm"`
	Overtime12hrHours decimal.Decimal `json:"overtime_12hr_hours"`
	OvertimeRate12hr  decimal.Decimal `json:"overtime_rate_12hr"`
	Overtime12hr      decimal.Decimal `json:"overtime_12hr_rm"`
	SundayDays        decimal.Decimal `json:"sunday_days"`
	SundayRate        decimal.Decimal `json:"sunday_rate"`
	Sunday            decimal.Decimal `json:"sunday"`
	PHDays            decimal.Decimal `json:"ph_days"`
	PHRate            decimal.Decimal `json:"ph_rate"`
	PublicHoliday     decimal.Decimal `json:"public_holiday"`
	SundayPHOTHours   decimal.Decimal `json:"sunday_ph_ot_hours"`
	SundayPHOTRate    decimal.Decimal `json:"sunday_ph_ot_rate"`
	SundayPHOT        decimal.Decimal `json:"sunday_ph_ot"`

	FixedAllowance      decimal.Decimal `json:"fixed_allowance"`
	BackPay             decimal.Decimal `json:"back_pay"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	NightShiftAllowance decimal.Decimal `json:"night_shift_allowance"`
	OtherClaim          decimal.Decimal `json:"oth_claim"`

	EPF              decimal.Decimal `json:"epf_deduction"`
	SOCSO            decimal.Decimal `json:"socso_deduction"`
	SIP              decimal.Decimal `json:"sip_deduction"`
	HostelFee        decimal.Decimal `json:"hostel_fee"`
	UtilityCharges   decimal.Decimal `json:"utility_charges"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	DefaultDeduction decimal.Decimal `json:"default_deduction"`
	Advance          decimal.Decimal `json:"advance"`
	AdvanceCount     int             `json:"advance_count"`
	Medical          decimal.Decimal `json:"medical"`
	MedicalCount     int             `json:"medical_count"`
	Insurance        decimal.Decimal `json:"insurance"`
	NPLDays          decimal.Decimal `json:"npl_days"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	NPLAmount        decimal.Decimal `json:"npl_days_amount"`

	FullBasics      decimal.Decimal `json:"full_basics"`
	EarningsTotal   decimal.Decimal `json:"earnings_total"`
	DeductionsTotal decimal.Decimal `json:"deductions_total"`
	NetPay          decimal.Decimal `json:"net_pay"`

	PaymentDate *string    `json:"payment_date,omitempty"`
	AccountNo   *string    `json:"account_no,omitempty"`
	CreatedBy   *string    `json:"created_by,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type SummaryTotalsResponse struct {
	Count           int             `json:"count"`
	Basic           decimal.Decimal `json:"basic"`
	EarningsTotal   decimal.Decimal `json:"earnings_total"`
	DeductionsTotal decimal.Decimal `json:"deductions_total"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

type ListSummaryResponse struct {
	Summaries []SummaryResponse     `json:"summaries"`
	Totals    SummaryTotalsResponse `json:"totals"`
}
