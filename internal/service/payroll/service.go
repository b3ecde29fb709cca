package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rejection reasons reported to metrics.
const (
	RejectInvalidInput = "invalid_input"
	RejectDuplicate    = "duplicate"
	RejectNetPay       = "net_pay_exceeds_full_basics"
	RejectStore        = "store_error"
)

type PayrollServiceImpl struct {
	summaryRepo     payroll.SummaryRepository
	rateLookup      payroll.CompanyRateLookup
	renderer        payroll.DocumentRenderer
	metrics         payroll.Metrics
	logger          *slog.Logger
	defaultCurrency string
	now             func() time.Time
}

func NewPayrollService(
	summaryRepo payroll.SummaryRepository,
	rateLookup payroll.CompanyRateLookup,
	renderer payroll.DocumentRenderer,
	metrics payroll.Metrics,
	logger *slog.Logger,
	defaultCurrency string,
) payroll.PayrollService {
	if defaultCurrency == "" {
		defaultCurrency = payroll.DefaultCurrency
	}
	return &PayrollServiceImpl{
		summaryRepo:     summaryRepo,
		rateLookup:      rateLookup,
		renderer:        renderer,
		metrics:         metrics,
		logger:          logger,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// userIDFromContext returns the user_id claim when the request is authenticated.
func userIDFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

// loadCompanyRates treats an unknown company as one with no defaults.
func (s *PayrollServiceImpl) loadCompanyRates(ctx context.Context, companyID int64) (payroll.CompanyRates, error) {
	company, err := s.rateLookup.GetCompanyRates(ctx, companyID)
	if errors.Is(err, payroll.ErrCompanyNotFound) {
		s.logger.WarnContext(ctx, "company not found, resolving rates without defaults",
			slog.Int64("company_id", companyID))
		return payroll.CompanyRates{CompanyID: companyID}, nil
	}
	if err != nil {
		return payroll.CompanyRates{}, err
	}
	return company, nil
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GenerateSummary(ctx context.Context, req payroll.GenerateSummaryRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		s.metrics.SummaryRejected(RejectInvalidInput)
		return payroll.SummaryResponse{}, err
	}
	in := req.ToInputs(s.defaultCurrency, s.now())

	exists, err := s.summaryRepo.Exists(ctx, in.EmployeeID, in.Period)
	if err != nil {
		s.metrics.SummaryRejected(RejectStore)
		return payroll.SummaryResponse{}, err
	}
	if exists {
		return payroll.SummaryResponse{}, s.rejectDuplicate(ctx, in)
	}

	company, err := s.loadCompanyRates(ctx, in.CompanyID)
	if err != nil {
		s.metrics.SummaryRejected(RejectStore)
		return payroll.SummaryResponse{}, err
	}

	summary, err := Compute(in, company)
	if err != nil {
		s.metrics.SummaryRejected(RejectNetPay)
		s.logger.WarnContext(ctx, "salary summary rejected",
			slog.Int64("employee_id", in.EmployeeID),
			slog.String("period", in.Period.String()),
			slog.String("net_pay", summary.NetPay.StringFixed(2)),
			slog.String("full_basics", summary.FullBasics.StringFixed(2)),
		)
		return payroll.SummaryResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to generate summary id: %w", err)
	}
	summary.ID = id.String()
	summary.CreatedBy = userIDFromContext(ctx)

	created, err := s.summaryRepo.Create(ctx, summary)
	if err != nil {
		// Lost a race with a concurrent submission for the same period.
		if errors.Is(err, payroll.ErrSummaryAlreadyExists) {
			return payroll.SummaryResponse{}, s.rejectDuplicate(ctx, in)
		}
		s.metrics.SummaryRejected(RejectStore)
		s.logger.ErrorContext(ctx, "failed to persist salary summary",
			slog.Int64("employee_id", in.EmployeeID),
			slog.String("period", in.Period.String()),
			slog.Any("error", err),
		)
		return payroll.SummaryResponse{}, err
	}

	s.metrics.SummaryGenerated(created.Currency)
	s.logger.InfoContext(ctx, "salary summary generated",
		slog.String("summary_id", created.ID),
		slog.Int64("employee_id", created.EmployeeID),
		slog.String("period", created.Period.String()),
		slog.String("net_pay", created.NetPay.StringFixed(2)),
	)

	return mapToSummaryResponse(created), nil
}

func (s *PayrollServiceImpl) rejectDuplicate(ctx context.Context, in payroll.SalaryInputs) error {
	s.metrics.SummaryRejected(RejectDuplicate)
	s.logger.WarnContext(ctx, "salary summary already exists",
		slog.Int64("employee_id", in.EmployeeID),
		slog.String("period", in.Period.String()),
	)
	return &payroll.DuplicateSummaryError{EmployeeID: in.EmployeeID, Period: in.Period}
}

// PreviewSummary computes a summary without the duplicate check and without persisting.
func (s *PayrollServiceImpl) PreviewSummary(ctx context.Context, req payroll.GenerateSummaryRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}
	in := req.ToInputs(s.defaultCurrency, s.now())

	company, err := s.loadCompanyRates(ctx, in.CompanyID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary, err := Compute(in, company)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	return mapToSummaryResponse(summary), nil
}

// ========== READ / DELETE ==========

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, id string) (payroll.SummaryResponse, error) {
	summary, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	return mapToSummaryResponse(summary), nil
}

func (s *PayrollServiceImpl) ListSummaries(ctx context.Context, filter payroll.SummaryFilter) (payroll.ListSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSummaryResponse{}, err
	}

	summaries, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListSummaryResponse{}, err
	}

	responses := make([]payroll.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, mapToSummaryResponse(summary))
	}

	totals := SumSummaries(summaries)
	return payroll.ListSummaryResponse{
		Summaries: responses,
		Totals: payroll.SummaryTotalsResponse{
			Count:           totals.Count,
			Basic:           totals.Basic,
			EarningsTotal:   totals.EarningsTotal,
			DeductionsTotal: totals.DeductionsTotal,
			NetPay:          totals.NetPay,
		},
	}, nil
}

func (s *PayrollServiceImpl) DeleteSummary(ctx context.Context, id string) error {
	if err := s.summaryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "salary summary deleted", slog.String("summary_id", id))
	return nil
}

// ========== DOCUMENTS ==========

func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	summary, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Payslip(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return doc, nil
}

func (s *PayrollServiceImpl) RenderMonthlyReport(ctx context.Context, filter payroll.SummaryFilter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.MonthlyReport(filter, summaries, SumSummaries(summaries))
	if err != nil {
		return nil, fmt.Errorf("failed to render monthly report: %w", err)
	}
	return doc, nil
}

// SumSummaries totals the report columns. Every addend is already rounded to cents.
func SumSummaries(summaries []payroll.SalarySummary) payroll.SummaryTotals {
	totals := payroll.SummaryTotals{
		Count:           len(summaries),
		Basic:           decimal.Zero,
		EarningsTotal:   decimal.Zero,
		DeductionsTotal: decimal.Zero,
		NetPay:          decimal.Zero,
	}
	for _, s := range summaries {
		totals.Basic = totals.Basic.Add(s.Earnings.Basic)
		totals.EarningsTotal = totals.EarningsTotal.Add(s.Earnings.Total)
		totals.DeductionsTotal = totals.DeductionsTotal.Add(s.Deductions.Total)
		totals.NetPay = totals.NetPay.Add(s.NetPay)
	}
	return totals
}

// ========== MAPPERS ==========

func mapToSummaryResponse(s payroll.SalarySummary) payroll.SummaryResponse {
	resp := payroll.SummaryResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		CompanyName:  s.CompanyName,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		EmployeeType: s.EmployeeType,
		Month:        s.Period.Month,
		Year:         s.Period.Year,
		Currency:     s.Currency,

		WorkingDays8hr:    s.Quantities.WorkingDays8hr,
		Rate8hr:           s.Rates.Rate8hr,
		WorkingDays12hr:   s.Quantities.WorkingDays12hr,
		Rate12hr:          s.Rates.Rate12hr,
		Basic:             s.Earnings.Basic,
		OvertimeHours:     s.Quantities.OvertimeHours,
		OvertimeRate:      s.Rates.OvertimeRate,
		Overtime:          s.Earnings.Overtime,
		Overtime12hrHours: s.Quantities.Overtime12hrHours,
		OvertimeRate12hr:  s.Rates.OvertimeRate12hr,
		Overtime12hr:      s.Earnings.Overtime12hr,
		SundayDays:        s.Quantities.SundayDays,
		SundayRate:        s.Rates.SundayRate,
		Sunday:            s.Earnings.Sunday,
		PHDays:            s.Quantities.PHDays,
		PHRate:            s.Rates.PHRate,
		PublicHoliday:     s.Earnings.PublicHoliday,
		SundayPHOTHours:   s.Quantities.SundayPHOTHours,
		SundayPHOTRate:    s.Rates.SundayPHOTRate,
		SundayPHOT:        s.Earnings.SundayPHOT,

		FixedAllowance:      s.Earnings.FixedAllowance,
		BackPay:             s.Earnings.BackPay,
		SpecialAllowance:    s.Earnings.SpecialAllowance,
		NightShiftAllowance: s.Earnings.NightShiftAllowance,
		OtherClaim:          s.Earnings.OtherClaim,

		EPF:              s.Deductions.EPF,
		SOCSO:            s.Deductions.SOCSO,
		SIP:              s.Deductions.SIP,
		HostelFee:        s.Deductions.HostelFee,
		UtilityCharges:   s.Deductions.UtilityCharges,
		OtherDeductions:  s.Deductions.OtherDeductions,
		DefaultDeduction: s.Deductions.DefaultDeduction,
		Advance:          s.Deductions.Advance,
		AdvanceCount:     s.AdvanceCount,
		Medical:          s.Deductions.Medical,
		MedicalCount:     s.MedicalCount,
		Insurance:        s.Deductions.Insurance,
		NPLDays:          s.Quantities.NPLDays,
		DailyRate:        s.Deductions.DailyRate.Round(2),
		NPLAmount:        s.Deductions.NPL,

		FullBasics:      s.FullBasics,
		EarningsTotal:   s.Earnings.Total,
		DeductionsTotal: s.Deductions.Total,
		NetPay:          s.NetPay,

		AccountNo: s.AccountNo,
		CreatedBy: s.CreatedBy,
	}

	if s.PaymentDate != nil {
		d := s.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	if !s.CreatedAt.IsZero() {
		createdAt := s.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}
