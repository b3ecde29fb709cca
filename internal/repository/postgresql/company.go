package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `
	id, name, address,
	default_rate_8hr, default_rate_12hr, default_sunday_rate, default_ph_rate,
	default_ot_rate_9hr, default_ot_rate_12hr, default_sunday_ph_ot_rate, default_ph_ot_rate,
	default_hostel_fee, default_utility_charges, default_consultant_fee_per_head,
	default_back_pay, default_special_allowance, default_night_shift_allowance,
	default_deduction, default_insurance,
	created_at, updated_at`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// rateTableArgs lists the default columns in companyColumns order.
func rateTableArgs(t *payroll.RateTable) []interface{} {
	return []interface{}{
		t.Rate8hr, t.Rate12hr, t.SundayRate, t.PHRate,
		t.OTRate9hr, t.OTRate12hr, t.SundayPHOTRate, t.PHOTRate,
		t.HostelFee, t.UtilityCharges, t.ConsultantFeePerHead,
		t.BackPay, t.SpecialAllowance, t.NightShiftAllowance,
		t.Deduction, t.Insurance,
	}
}

func rateTableDest(t *payroll.RateTable) []interface{} {
	return []interface{}{
		&t.Rate8hr, &t.Rate12hr, &t.SundayRate, &t.PHRate,
		&t.OTRate9hr, &t.OTRate12hr, &t.SundayPHOTRate, &t.PHOTRate,
		&t.HostelFee, &t.UtilityCharges, &t.ConsultantFeePerHead,
		&t.BackPay, &t.SpecialAllowance, &t.NightShiftAllowance,
		&t.Deduction, &t.Insurance,
	}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	dest := []interface{}{&c.ID, &c.Name, &c.Address}
	dest = append(dest, rateTableDest(&c.Rates)...)
	dest = append(dest, &c.CreatedAt, &c.UpdatedAt)
	err := row.Scan(dest...)
	return c, err
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	found, err := scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company with id %d: %w", id, err)
	}

	return found, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (
			name, address,
			default_rate_8hr, default_rate_12hr, default_sunday_rate, default_ph_rate,
			default_ot_rate_9hr, default_ot_rate_12hr, default_sunday_ph_ot_rate, default_ph_ot_rate,
			default_hostel_fee, default_utility_charges, default_consultant_fee_per_head,
			default_back_pay, default_special_allowance, default_night_shift_allowance,
			default_deduction, default_insurance
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + companyColumns

	args := []interface{}{newCompany.Name, newCompany.Address}
	args = append(args, rateTableArgs(&newCompany.Rates)...)

	created, err := scanCompany(q.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err, "uk_companies_name") {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to insert company: %w", err)
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) == 0 {
		return company.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		if isUniqueViolation(err, "uk_companies_name") {
			return company.ErrCompanyNameExists
		}
		return fmt.Errorf("failed to update company with id %d: %w", id, err)
	}
	return nil
}

// UpdateRates replaces the whole default rate table; null fields clear a default.
func (c *companyRepositoryImpl) UpdateRates(ctx context.Context, id int64, rates company.RateTableRequest) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies SET
			default_rate_8hr = $1, default_rate_12hr = $2, default_sunday_rate = $3, default_ph_rate = $4,
			default_ot_rate_9hr = $5, default_ot_rate_12hr = $6, default_sunday_ph_ot_rate = $7, default_ph_ot_rate = $8,
			default_hostel_fee = $9, default_utility_charges = $10, default_consultant_fee_per_head = $11,
			default_back_pay = $12, default_special_allowance = $13, default_night_shift_allowance = $14,
			default_deduction = $15, default_insurance = $16,
			updated_at = NOW()
		WHERE id = $17
		RETURNING ` + companyColumns

	table := rates.ToRateTable()
	args := append(rateTableArgs(&table), id)

	updated, err := scanCompany(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update rates for company %d: %w", id, err)
	}
	return updated, nil
}

type companyRateLookupImpl struct {
	db *database.DB
}

// NewCompanyRateLookup reads company default rates for the payroll engine.
func NewCompanyRateLookup(db *database.DB) payroll.CompanyRateLookup {
	return &companyRateLookupImpl{db: db}
}

// GetCompanyRates implements payroll.CompanyRateLookup.
func (c *companyRateLookupImpl) GetCompanyRates(ctx context.Context, companyID int64) (payroll.CompanyRates, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT
			id, name,
			default_rate_8hr, default_rate_12hr, default_sunday_rate, default_ph_rate,
			default_ot_rate_9hr, default_ot_rate_12hr, default_sunday_ph_ot_rate, default_ph_ot_rate,
			default_hostel_fee, default_utility_charges, default_consultant_fee_per_head,
			default_back_pay, default_special_allowance, default_night_shift_allowance,
			default_deduction, default_insurance
		FROM companies
		WHERE id = $1
	`

	var rates payroll.CompanyRates
	dest := append([]interface{}{&rates.CompanyID, &rates.CompanyName}, rateTableDest(&rates.Rates)...)
	if err := q.QueryRow(ctx, query, companyID).Scan(dest...); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CompanyRates{}, payroll.ErrCompanyNotFound
		}
		return payroll.CompanyRates{}, fmt.Errorf("failed to get rates for company %d: %w", companyID, err)
	}

	return rates, nil
}
