package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DailyRate divides the period's basic pay by the working days of both shift
// types. Zero working days yields a zero rate.
func DailyRate(basic decimal.Decimal, q payroll.Quantities) decimal.Decimal {
	days := q.TotalWorkingDays()
	if days.IsZero() {
		return decimal.Zero
	}
	return basic.Div(days)
}

// CalculateDeductions needs the basic figure from CalculateEarnings; the NPL
// amount is always derived here and never taken from the submission.
func CalculateDeductions(q payroll.Quantities, rates payroll.ResolvedRates, flat payroll.FlatItems, basic decimal.Decimal) payroll.Deductions {
	dailyRate := DailyRate(basic, q)

	d := payroll.Deductions{
		DailyRate:        dailyRate,
		NPL:              lineAmount(q.NPLDays, dailyRate),
		EPF:              flat.EPF,
		SOCSO:            flat.SOCSO,
		SIP:              flat.SIP,
		HostelFee:        rates.HostelFee,
		UtilityCharges:   rates.UtilityCharges,
		Advance:          flat.Advance,
		Medical:          flat.Medical,
		OtherDeductions:  flat.OtherDeductions,
		DefaultDeduction: rates.DefaultDeduction,
		Insurance:        rates.Insurance,
	}

	d.Total = decimal.Sum(
		d.NPL,
		d.EPF,
		d.SOCSO,
		d.SIP,
		d.HostelFee,
		d.UtilityCharges,
		d.Advance,
		d.Medical,
		d.OtherDeductions,
		d.DefaultDeduction,
		d.Insurance,
	)

	return d
}
