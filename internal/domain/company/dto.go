package company

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RateTableRequest carries a company's default rates. A null field has no default.
type RateTableRequest struct {
	DefaultRate8hr              *decimal.Decimal `json:"default_rate_8hr"`
	DefaultRate12hr             *decimal.Decimal `json:"default_rate_12hr"`
	DefaultSundayRate           *decimal.Decimal `json:"default_sunday_rate"`
	DefaultPHRate               *decimal.Decimal `json:"default_ph_rate"`
	DefaultOTRate9hr            *decimal.Decimal `json:"default_ot_rate_9hr"`
	DefaultOTRate12hr           *decimal.Decimal `json:"default_ot_rate_12hr"`
	DefaultSundayPHOTRate       *decimal.Decimal `json:"default_sunday_ph_ot_rate"`
	DefaultPHOTRate             *decimal.Decimal `json:"default_ph_ot_rate"`
	DefaultHostelFee            *decimal.Decimal `json:"default_hostel_fee"`
	DefaultUtilityCharges       *decimal.Decimal `json:"default_utility_charges"`
	DefaultConsultantFeePerHead *decimal.Decimal `json:"default_consultant_fee_per_head"`
	DefaultBackPay              *decimal.Decimal `json:"default_back_pay"`
	DefaultSpecialAllowance     *decimal.Decimal `json:"default_special_allowance"`
	DefaultNightShiftAllowance  *decimal.Decimal `json:"default_night_shift_allowance"`
	DefaultDeduction            *decimal.Decimal `json:"default_deduction"`
	DefaultInsurance            *decimal.Decimal `json:"default_insurance"`
}

func (r *RateTableRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := map[string]*decimal.Decimal{
		"default_rate_8hr":                r.DefaultRate8hr,
		"default_rate_12hr":               r.DefaultRate12hr,
		"default_sunday_rate":             r.DefaultSundayRate,
		"default_ph_rate":                 r.DefaultPHRate,
		"default_ot_rate_9hr":             r.DefaultOTRate9hr,
		"default_ot_rate_12hr":            r.DefaultOTRate12hr,
		"default_sunday_ph_ot_rate":       r.DefaultSundayPHOTRate,
		"default_ph_ot_rate":              r.DefaultPHOTRate,
		"default_hostel_fee":              r.DefaultHostelFee,
		"default_utility_charges":         r.DefaultUtilityCharges,
		"default_consultant_fee_per_head": r.DefaultConsultantFeePerHead,
		"default_back_pay":                r.DefaultBackPay,
		"default_special_allowance":       r.DefaultSpecialAllowance,
		"default_night_shift_allowance":   r.DefaultNightShiftAllowance,
		"default_deduction":               r.DefaultDeduction,
		"default_insurance":               r.DefaultInsurance,
	}
	for field, value := range fields {
		if validator.IsNegative(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r RateTableRequest) ToRateTable() payroll.RateTable {
	return payroll.RateTable{
		Rate8hr:              r.DefaultRate8hr,
		Rate12hr:             r.DefaultRate12hr,
		SundayRate:           r.DefaultSundayRate,
		PHRate:               r.DefaultPHRate,
		OTRate9hr:            r.DefaultOTRate9hr,
		OTRate12hr:           r.DefaultOTRate12hr,
		SundayPHOTRate:       r.DefaultSundayPHOTRate,
		PHOTRate:             r.DefaultPHOTRate,
		HostelFee:            r.DefaultHostelFee,
		UtilityCharges:       r.DefaultUtilityCharges,
		ConsultantFeePerHead: r.DefaultConsultantFeePerHead,
		BackPay:              r.DefaultBackPay,
		SpecialAllowance:     r.DefaultSpecialAllowance,
		NightShiftAllowance:  r.DefaultNightShiftAllowance,
		Deduction:            r.DefaultDeduction,
		Insurance:            r.DefaultInsurance,
	}
}

func NewRateTableRequest(t payroll.RateTable) RateTableRequest {
	return RateTableRequest{
		DefaultRate8hr:              t.Rate8hr,
		DefaultRate12hr:             t.Rate12hr,
		DefaultSundayRate:           t.SundayRate,
		DefaultPHRate:               t.PHRate,
		DefaultOTRate9hr:            t.OTRate9hr,
		DefaultOTRate12hr:           t.OTRate12hr,
		DefaultSundayPHOTRate:       t.SundayPHOTRate,
		DefaultPHOTRate:             t.PHOTRate,
		DefaultHostelFee:            t.HostelFee,
		DefaultUtilityCharges:       t.UtilityCharges,
		DefaultConsultantFeePerHead: t.ConsultantFeePerHead,
		DefaultBackPay:              t.BackPay,
		DefaultSpecialAllowance:     t.SpecialAllowance,
		DefaultNightShiftAllowance:  t.NightShiftAllowance,
		DefaultDeduction:            t.Deduction,
		DefaultInsurance:            t.Insurance,
	}
}

type CompanyResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"company_name"`
	Address   *string          `json:"company_address,omitempty"`
	Rates     RateTableRequest `json:"rates"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name    string           `json:"company_name"`
	Address *string          `json:"company_address,omitempty"`
	Rates   RateTableRequest `json:"rates"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must not exceed 255 characters",
		})
	}
	if err := r.Rates.Validate(); err != nil {
		if rateErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, rateErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	Name    *string `json:"company_name,omitempty"`
	Address *string `json:"company_address,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name cannot be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
