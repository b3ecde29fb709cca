package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
)

// Compute runs resolve, earnings, deductions and net-pay validation for one
// submission. It performs no I/O. On a net-pay violation the partially built
// summary is returned alongside the error so callers can display it.
func Compute(in payroll.SalaryInputs, company payroll.CompanyRates) (payroll.SalarySummary, error) {
	rates := ResolveRates(in.Overrides, company.Rates)
	earnings := CalculateEarnings(in.Quantities, rates, in.Flat)
	deductions := CalculateDeductions(in.Quantities, rates, in.Flat, earnings.Basic)
	netPay := NetPay(earnings.Total, deductions.Total)

	summary := payroll.SalarySummary{
		CompanyID:    in.CompanyID,
		CompanyName:  company.CompanyName,
		EmployeeID:   in.EmployeeID,
		Period:       in.Period,
		Currency:     in.Currency,
		Quantities:   in.Quantities,
		Rates:        rates,
		Earnings:     earnings,
		Deductions:   deductions,
		AdvanceCount: in.AdvanceCount,
		MedicalCount: in.MedicalCount,
		PaymentDate:  in.PaymentDate,
		AccountNo:    in.AccountNo,
		FullBasics:   in.FullBasics,
		NetPay:       netPay,
	}

	if err := ValidateNetPay(netPay, in.FullBasics, in.Currency); err != nil {
		return summary, err
	}

	return summary, nil
}
