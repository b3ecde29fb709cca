package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
	}
}

// inTx runs fn inside a transaction. A nil db runs fn directly.
func (c *CompanyServiceImpl) inTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if c.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, c.db, func(tx pgx.Tx) error {
		return fn(postgresql.WithTx(ctx, tx))
	})
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, found := range companies {
		responses = append(responses, mapToCompanyResponse(found))
	}
	return responses, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	var newCompany company.Company
	err := c.inTx(ctx, func(txCtx context.Context) error {
		var err error
		newCompany, err = c.companyRepo.Create(txCtx, company.Company{
			Name:    req.Name,
			Address: req.Address,
			Rates:   req.Rates.ToRateTable(),
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.InfoContext(ctx, "Created company", "company_id", newCompany.ID, "name", newCompany.Name)
	return mapToCompanyResponse(newCompany), nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id int64) (company.CompanyResponse, error) {
	found, err := c.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return mapToCompanyResponse(found), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Name == nil && req.Address == nil {
		return company.ErrNoFieldsToUpdate
	}

	return c.companyRepo.Update(ctx, id, req)
}

// UpdateRates implements company.CompanyService.
func (c *CompanyServiceImpl) UpdateRates(ctx context.Context, id int64, req company.RateTableRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := c.companyRepo.UpdateRates(ctx, id, req)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.InfoContext(ctx, "Updated company default rates", "company_id", id)
	return mapToCompanyResponse(updated), nil
}

func mapToCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Rates:     company.NewRateTableRequest(c.Rates),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
