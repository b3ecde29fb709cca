package company

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
)

// Company - Employer with its default payroll rate table
type Company struct {
	ID        int64
	Name      string
	Address   *string
	Rates     payroll.RateTable
	CreatedAt time.Time
	UpdatedAt time.Time
}
