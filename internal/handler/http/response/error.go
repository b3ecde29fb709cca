package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var duplicate *payroll.DuplicateSummaryError
	if errors.As(err, &duplicate) {
		Conflict(w, duplicate.Error())
		return
	}

	var netPay *payroll.NetPayExceedsFullBasicsError
	if errors.As(err, &netPay) {
		UnprocessableEntity(w, "NET_PAY_EXCEEDS_FULL_BASICS", netPay.Error(), map[string]string{
			"net_pay":     netPay.NetPay.StringFixed(2),
			"full_basics": netPay.FullBasics.StringFixed(2),
			"currency":    netPay.Currency,
		})
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSummaryNotFound):
		NotFound(w, "Salary summary not found")
	case errors.Is(err, payroll.ErrSummaryAlreadyExists):
		Conflict(w, "Salary summary already exists for this period")
	case errors.Is(err, payroll.ErrStore):
		InternalServerError(w, "Failed to access payroll records")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")
	case errors.Is(err, company.ErrNoFieldsToUpdate):
		BadRequest(w, "No updatable fields provided", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
