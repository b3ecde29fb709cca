package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// lineAmount is quantity x rate rounded to cents, half away from zero.
func lineAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate).Round(2)
}

// CalculateEarnings computes every earning line item and their sum.
func CalculateEarnings(q payroll.Quantities, rates payroll.ResolvedRates, flat payroll.FlatItems) payroll.Earnings {
	e := payroll.Earnings{
		// Both shift types accumulate into a single basic figure.
		Basic:               q.WorkingDays8hr.Mul(rates.Rate8hr).Add(q.WorkingDays12hr.Mul(rates.Rate12hr)).Round(2),
		Overtime:            lineAmount(q.OvertimeHours, rates.OvertimeRate),
		Overtime12hr:        lineAmount(q.Overtime12hrHours, rates.OvertimeRate12hr),
		Sunday:              lineAmount(q.SundayDays, rates.SundayRate),
		PublicHoliday:       lineAmount(q.PHDays, rates.PHRate),
		SundayPHOT:          lineAmount(q.SundayPHOTHours, rates.SundayPHOTRate),
		BackPay:             rates.BackPay,
		SpecialAllowance:    rates.SpecialAllowance,
		NightShiftAllowance: rates.NightShiftAllowance,
		FixedAllowance:      rates.FixedAllowance,
		OtherClaim:          flat.OtherClaim,
	}

	e.Total = decimal.Sum(
		e.Basic,
		e.Overtime,
		e.Overtime12hr,
		e.Sunday,
		e.PublicHoliday,
		e.SundayPHOT,
		e.BackPay,
		e.SpecialAllowance,
		e.NightShiftAllowance,
		e.FixedAllowance,
		e.OtherClaim,
	)

	return e
}
