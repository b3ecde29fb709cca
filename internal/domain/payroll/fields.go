package payroll

import "github.com/shopspring/decimal"

// FieldMapping binds a summary field to the company default it falls back to.
// Several pairs do not share a name (overtime_rate <- default_ot_rate_9hr),
// so the binding is spelled out per field.
type FieldMapping struct {
	Field      string
	DefaultKey string
	Override   func(*RateOverrides) *decimal.Decimal
	Default    func(*RateTable) *decimal.Decimal
	Resolved   func(*ResolvedRates) *decimal.Decimal
}

var FieldMap = []FieldMapping{
	{
		Field:      "rate_8hr",
		DefaultKey: "default_rate_8hr",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.Rate8hr },
		Default:    func(t *RateTable) *decimal.Decimal { return t.Rate8hr },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.Rate8hr },
	},
	{
		Field:      "rate_12hr",
		DefaultKey: "default_rate_12hr",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.Rate12hr },
		Default:    func(t *RateTable) *decimal.Decimal { return t.Rate12hr },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.Rate12hr },
	},
	{
		Field:      "sunday_rate",
		DefaultKey: "default_sunday_rate",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.SundayRate },
		Default:    func(t *RateTable) *decimal.Decimal { return t.SundayRate },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.SundayRate },
	},
	{
		Field:      "ph_rate",
		DefaultKey: "default_ph_rate",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.PHRate },
		Default:    func(t *RateTable) *decimal.Decimal { return t.PHRate },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.PHRate },
	},
	{
		Field:      "hostel_fee",
		DefaultKey: "default_hostel_fee",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.HostelFee },
		Default:    func(t *RateTable) *decimal.Decimal { return t.HostelFee },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.HostelFee },
	},
	{
		Field:      "utility_charges",
		DefaultKey: "default_utility_charges",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.UtilityCharges },
		Default:    func(t *RateTable) *decimal.Decimal { return t.UtilityCharges },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.UtilityCharges },
	},
	{
		Field:      "overtime_rate",
		DefaultKey: "default_ot_rate_9hr",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.OvertimeRate },
		Default:    func(t *RateTable) *decimal.Decimal { return t.OTRate9hr },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.OvertimeRate },
	},
	{
		Field:      "overtime_rate_12hr",
		DefaultKey: "default_ot_rate_12hr",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.OvertimeRate12hr },
		Default:    func(t *RateTable) *decimal.Decimal { return t.OTRate12hr },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.OvertimeRate12hr },
	},
	{
		Field:      "sunday_ph_ot_rate",
		DefaultKey: "default_sunday_ph_ot_rate",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.SundayPHOTRate },
		Default:    func(t *RateTable) *decimal.Decimal { return t.SundayPHOTRate },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.SundayPHOTRate },
	},
	{
		Field:      "fixed_allowance",
		DefaultKey: "default_consultant_fee_per_head",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.FixedAllowance },
		Default:    func(t *RateTable) *decimal.Decimal { return t.ConsultantFeePerHead },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.FixedAllowance },
	},
	{
		Field:      "back_pay",
		DefaultKey: "default_back_pay",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.BackPay },
		Default:    func(t *RateTable) *decimal.Decimal { return t.BackPay },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.BackPay },
	},
	{
		Field:      "special_allowance",
		DefaultKey: "default_special_allowance",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.SpecialAllowance },
		Default:    func(t *RateTable) *decimal.Decimal { return t.SpecialAllowance },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.SpecialAllowance },
	},
	{
		Field:      "night_shift_allowance",
		DefaultKey: "default_night_shift_allowance",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.NightShiftAllowance },
		Default:    func(t *RateTable) *decimal.Decimal { return t.NightShiftAllowance },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.NightShiftAllowance },
	},
	{
		Field:      "default_deduction",
		DefaultKey: "default_deduction",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.DefaultDeduction },
		Default:    func(t *RateTable) *decimal.Decimal { return t.Deduction },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.DefaultDeduction },
	},
	{
		Field:      "insurance",
		DefaultKey: "default_insurance",
		Override:   func(o *RateOverrides) *decimal.Decimal { return o.Insurance },
		Default:    func(t *RateTable) *decimal.Decimal { return t.Insurance },
		Resolved:   func(r *ResolvedRates) *decimal.Decimal { return &r.Insurance },
	},
}
