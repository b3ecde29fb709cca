package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ResolveRates fills every rate from the submission when supplied, else the
// company default, else zero. A zero RateTable (unknown company) is valid.
func ResolveRates(overrides payroll.RateOverrides, table payroll.RateTable) payroll.ResolvedRates {
	var resolved payroll.ResolvedRates

	for _, m := range payroll.FieldMap {
		value := decimal.Zero
		if v := m.Override(&overrides); v != nil {
			value = *v
		} else if v := m.Default(&table); v != nil {
			value = *v
		}
		*m.Resolved(&resolved) = value
	}

	return resolved
}
