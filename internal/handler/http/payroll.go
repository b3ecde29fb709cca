package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GenerateSummary(w http.ResponseWriter, r *http.Request)
	PreviewSummary(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
	DeleteSummary(w http.ResponseWriter, r *http.Request)

	// Documents
	Payslip(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SUMMARIES ==========

func (h *payrollHandlerImpl) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary summary generated", result)
}

func (h *payrollHandlerImpl) PreviewSummary(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.PreviewSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := summaryIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSummaryFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListSummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := summaryIDParam(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.DeleteSummary(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary summary deleted", nil)
}

// ========== DOCUMENTS ==========

func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	id, ok := summaryIDParam(w, r)
	if !ok {
		return
	}

	doc, err := h.payrollService.RenderPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslip-%s.pdf", id), doc)
}

func (h *payrollHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSummaryFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.payrollService.RenderMonthlyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, reportFilename(filter), doc)
}

// ========== PARAMS ==========

func summaryIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Summary ID is required", nil)
		return "", false
	}
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid summary ID", map[string]string{"id": "must be a valid UUID"})
		return "", false
	}
	return id, true
}

// parseSummaryFilter reads month, year, company_id and employee_type from the query string.
func parseSummaryFilter(r *http.Request) (payroll.SummaryFilter, error) {
	var (
		filter payroll.SummaryFilter
		errs   validator.ValidationErrors
	)
	query := r.URL.Query()

	if month := strings.TrimSpace(query.Get("month")); month != "" {
		filter.Month = &month
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a number"})
		} else {
			filter.Year = &year
		}
	}
	if raw := query.Get("company_id"); raw != "" {
		companyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "company_id", Message: "must be a number"})
		} else {
			filter.CompanyID = &companyID
		}
	}
	if employeeType := strings.ToLower(query.Get("employee_type")); employeeType != "" {
		filter.EmployeeType = &employeeType
	}

	if len(errs) > 0 {
		return payroll.SummaryFilter{}, errs
	}
	return filter, nil
}

func reportFilename(filter payroll.SummaryFilter) string {
	parts := []string{"salary-summary"}
	if filter.Month != nil {
		parts = append(parts, strings.ToLower(*filter.Month))
	}
	if filter.Year != nil {
		parts = append(parts, strconv.Itoa(*filter.Year))
	}
	return strings.Join(parts, "-") + ".pdf"
}
