package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// summaryColumns is shared by insert and select; summaryArgs and
// summaryDest must follow the same order.
var summaryColumns = []string{
	"id", "company_id", "company_name", "employee_id", "month", "year", "currency",

	"working_days_8hr", "working_days_12hr", "overtime_hours", "overtime_12hr_hours",
	"sunday_days", "ph_days", "sunday_ph_ot_hours", "npl_days",

	"rate_8hr", "rate_12hr", "sunday_rate", "ph_rate", "hostel_fee", "utility_charges",
	"overtime_rate", "overtime_rate_12hr", "sunday_ph_ot_rate", "fixed_allowance",
	"back_pay", "special_allowance", "night_shift_allowance", "default_deduction", "insurance",

	"basic", "overtime_amount", "overtime_12hr_amount", "sunday_amount", "ph_amount",
	"sunday_ph_ot_amount", "oth_claim", "total_earnings",

	"daily_rate", "npl_amount", "epf_deduction", "socso_deduction", "sip_deduction",
	"advance", "medical", "other_deductions", "total_deductions",

	"advance_count", "medical_count", "payment_date", "account_no", "full_basics", "net_pay", "created_by",
}

func summaryArgs(s payroll.SalarySummary) []interface{} {
	return []interface{}{
		s.ID, s.CompanyID, s.CompanyName, s.EmployeeID, s.Period.Month, s.Period.Year, s.Currency,

		s.Quantities.WorkingDays8hr, s.Quantities.WorkingDays12hr, s.Quantities.OvertimeHours, s.Quantities.Overtime12hrHours,
		s.Quantities.SundayDays, s.Quantities.PHDays, s.Quantities.SundayPHOTHours, s.Quantities.NPLDays,

		s.Rates.Rate8hr, s.Rates.Rate12hr, s.Rates.SundayRate, s.Rates.PHRate, s.Rates.HostelFee, s.Rates.UtilityCharges,
		s.Rates.OvertimeRate, s.Rates.OvertimeRate12hr, s.Rates.SundayPHOTRate, s.Rates.FixedAllowance,
		s.Rates.BackPay, s.Rates.SpecialAllowance, s.Rates.NightShiftAllowance, s.Rates.DefaultDeduction, s.Rates.Insurance,

		s.Earnings.Basic, s.Earnings.Overtime, s.Earnings.Overtime12hr, s.Earnings.Sunday, s.Earnings.PublicHoliday,
		s.Earnings.SundayPHOT, s.Earnings.OtherClaim, s.Earnings.Total,

		s.Deductions.DailyRate, s.Deductions.NPL, s.Deductions.EPF, s.Deductions.SOCSO, s.Deductions.SIP,
		s.Deductions.Advance, s.Deductions.Medical, s.Deductions.OtherDeductions, s.Deductions.Total,

		s.AdvanceCount, s.MedicalCount, s.PaymentDate, s.AccountNo, s.FullBasics, s.NetPay, s.CreatedBy,
	}
}

func summaryDest(s *payroll.SalarySummary) []interface{} {
	return []interface{}{
		&s.ID, &s.CompanyID, &s.CompanyName, &s.EmployeeID, &s.Period.Month, &s.Period.Year, &s.Currency,

		&s.Quantities.WorkingDays8hr, &s.Quantities.WorkingDays12hr, &s.Quantities.OvertimeHours, &s.Quantities.Overtime12hrHours,
		&s.Quantities.SundayDays, &s.Quantities.PHDays, &s.Quantities.SundayPHOTHours, &s.Quantities.NPLDays,

		&s.Rates.Rate8hr, &s.Rates.Rate12hr, &s.Rates.SundayRate, &s.Rates.PHRate, &s.Rates.HostelFee, &s.Rates.UtilityCharges,
		&s.Rates.OvertimeRate, &s.Rates.OvertimeRate12hr, &s.Rates.SundayPHOTRate, &s.Rates.FixedAllowance,
		&s.Rates.BackPay, &s.Rates.SpecialAllowance, &s.Rates.NightShiftAllowance, &s.Rates.DefaultDeduction, &s.Rates.Insurance,

		&s.Earnings.Basic, &s.Earnings.Overtime, &s.Earnings.Overtime12hr, &s.Earnings.Sunday, &s.Earnings.PublicHoliday,
		&s.Earnings.SundayPHOT, &s.Earnings.OtherClaim, &s.Earnings.Total,

		&s.Deductions.DailyRate, &s.Deductions.NPL, &s.Deductions.EPF, &s.Deductions.SOCSO, &s.Deductions.SIP,
		&s.Deductions.Advance, &s.Deductions.Medical, &s.Deductions.OtherDeductions, &s.Deductions.Total,

		&s.AdvanceCount, &s.MedicalCount, &s.PaymentDate, &s.AccountNo, &s.FullBasics, &s.NetPay, &s.CreatedBy,
	}
}

// fillRateLines restores line items that are stored only as their rate.
func fillRateLines(s *payroll.SalarySummary) {
	s.Earnings.BackPay = s.Rates.BackPay
	s.Earnings.SpecialAllowance = s.Rates.SpecialAllowance
	s.Earnings.NightShiftAllowance = s.Rates.NightShiftAllowance
	s.Earnings.FixedAllowance = s.Rates.FixedAllowance
	s.Deductions.HostelFee = s.Rates.HostelFee
	s.Deductions.UtilityCharges = s.Rates.UtilityCharges
	s.Deductions.DefaultDeduction = s.Rates.DefaultDeduction
	s.Deductions.Insurance = s.Rates.Insurance
}

func selectSummaryColumns() string {
	cols := make([]string, 0, len(summaryColumns)+4)
	for _, col := range summaryColumns {
		cols = append(cols, "ss."+col)
	}
	cols = append(cols, "ss.created_at", "e.name", "e.position", "e.employee_type")
	return strings.Join(cols, ", ")
}

func scanSummary(row pgx.Row) (payroll.SalarySummary, error) {
	var s payroll.SalarySummary
	dest := summaryDest(&s)
	dest = append(dest, &s.CreatedAt, &s.EmployeeName, &s.EmployeePosition, &s.EmployeeType)
	if err := row.Scan(dest...); err != nil {
		return payroll.SalarySummary{}, err
	}
	fillRateLines(&s)
	return s, nil
}

type salarySummaryRepositoryImpl struct {
	db *database.DB
}

func NewSalarySummaryRepository(db *database.DB) payroll.SummaryRepository {
	return &salarySummaryRepositoryImpl{db: db}
}

// Exists implements payroll.SummaryRepository.
func (r *salarySummaryRepositoryImpl) Exists(ctx context.Context, employeeID int64, period payroll.Period) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM salary_summaries WHERE employee_id = $1 AND month = $2 AND year = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, period.Month, period.Year).Scan(&exists); err != nil {
		return false, &payroll.StoreError{Op: "check existing salary summary", Err: err}
	}
	return exists, nil
}

// Create implements payroll.SummaryRepository. The unique constraint on
// (employee_id, month, year) decides concurrent submissions.
func (r *salarySummaryRepositoryImpl) Create(ctx context.Context, summary payroll.SalarySummary) (payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	placeholders := make([]string, len(summaryColumns))
	for i := range summaryColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := `INSERT INTO salary_summaries (` + strings.Join(summaryColumns, ", ") + `)
		VALUES (` + strings.Join(placeholders, ", ") + `)
		RETURNING created_at`

	if err := q.QueryRow(ctx, query, summaryArgs(summary)...).Scan(&summary.CreatedAt); err != nil {
		if isUniqueViolation(err, "uk_salary_summary_employee_period") {
			return payroll.SalarySummary{}, payroll.ErrSummaryAlreadyExists
		}
		return payroll.SalarySummary{}, &payroll.StoreError{Op: "insert salary summary", Err: err}
	}

	return summary, nil
}

// GetByID implements payroll.SummaryRepository.
func (r *salarySummaryRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + selectSummaryColumns() + `
		FROM salary_summaries ss
		LEFT JOIN employees e ON e.id = ss.employee_id
		WHERE ss.id = $1
	`

	summary, err := scanSummary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalarySummary{}, payroll.ErrSummaryNotFound
		}
		return payroll.SalarySummary{}, &payroll.StoreError{Op: "get salary summary", Err: err}
	}
	return summary, nil
}

// List implements payroll.SummaryRepository.
func (r *salarySummaryRepositoryImpl) List(ctx context.Context, filter payroll.SummaryFilter) ([]payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + selectSummaryColumns() + `
		FROM salary_summaries ss
		LEFT JOIN employees e ON e.id = ss.employee_id
		WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND ss.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND ss.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.CompanyID != nil {
		query += fmt.Sprintf(" AND ss.company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}
	if filter.EmployeeType != nil {
		query += fmt.Sprintf(" AND e.employee_type = $%d", argIdx)
		args = append(args, *filter.EmployeeType)
	}

	query += " ORDER BY e.name NULLS LAST, ss.employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, &payroll.StoreError{Op: "list salary summaries", Err: err}
	}
	defer rows.Close()

	summaries := make([]payroll.SalarySummary, 0)
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, &payroll.StoreError{Op: "scan salary summary", Err: err}
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, &payroll.StoreError{Op: "list salary summaries", Err: err}
	}

	return summaries, nil
}

// Delete implements payroll.SummaryRepository.
func (r *salarySummaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_summaries WHERE id = $1`, id)
	if err != nil {
		return &payroll.StoreError{Op: "delete salary summary", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSummaryNotFound
	}
	return nil
}
