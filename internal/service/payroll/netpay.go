package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// NetPay floors earnings minus deductions at zero.
func NetPay(earningsTotal, deductionsTotal decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, earningsTotal.Sub(deductionsTotal))
}

// ValidateNetPay rejects a net pay above the full basics reference.
// Equality is accepted.
func ValidateNetPay(netPay, fullBasics decimal.Decimal, currency string) error {
	if netPay.GreaterThan(fullBasics) {
		return &payroll.NetPayExceedsFullBasicsError{
			Currency:   currency,
			NetPay:     netPay,
			FullBasics: fullBasics,
		}
	}
	return nil
}
