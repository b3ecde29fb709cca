package company

import (
	"errors"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
)

var (
	// Shared with the payroll rate lookup so either check matches.
	ErrCompanyNotFound = payroll.ErrCompanyNotFound

	ErrCompanyNameExists = errors.New("company name already exists")
	ErrNoFieldsToUpdate  = errors.New("no updatable fields provided")
)
