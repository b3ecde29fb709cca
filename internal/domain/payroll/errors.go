package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrSummaryNotFound         = errors.New("salary summary not found")
	ErrSummaryAlreadyExists    = errors.New("salary summary already exists for this period")
	ErrNetPayExceedsFullBasics = errors.New("net pay exceeds full basics")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrStore                   = errors.New("payroll store failure")
)

// DuplicateSummaryError reports the employee and period that already has a summary.
type DuplicateSummaryError struct {
	EmployeeID int64
	Period     Period
}

func (e *DuplicateSummaryError) Error() string {
	return fmt.Sprintf("a summary for employee %d for %s already exists", e.EmployeeID, e.Period)
}

func (e *DuplicateSummaryError) Is(target error) bool {
	return target == ErrSummaryAlreadyExists
}

// NetPayExceedsFullBasicsError carries both figures so the caller can correct its inputs.
type NetPayExceedsFullBasicsError struct {
	Currency   string
	NetPay     decimal.Decimal
	FullBasics decimal.Decimal
}

func (e *NetPayExceedsFullBasicsError) Error() string {
	return fmt.Sprintf("net pay (%s %s) exceeds full basics reference (%s %s)",
		e.Currency, e.NetPay.StringFixed(2), e.Currency, e.FullBasics.StringFixed(2))
}

func (e *NetPayExceedsFullBasicsError) Is(target error) bool {
	return target == ErrNetPayExceedsFullBasics
}

// StoreError wraps a persistence failure other than the expected duplicate.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
