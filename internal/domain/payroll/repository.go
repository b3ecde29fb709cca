package payroll

import "context"

// SummaryRepository persists salary summaries. Create must reject a second
// summary for the same employee and period with ErrSummaryAlreadyExists.
type SummaryRepository interface {
	Exists(ctx context.Context, employeeID int64, period Period) (bool, error)
	Create(ctx context.Context, summary SalarySummary) (SalarySummary, error)
	GetByID(ctx context.Context, id string) (SalarySummary, error)
	List(ctx context.Context, filter SummaryFilter) ([]SalarySummary, error)
	Delete(ctx context.Context, id string) error
}

// CompanyRateLookup reads a company's default rate table.
// Returns ErrCompanyNotFound when the company does not exist.
type CompanyRateLookup interface {
	GetCompanyRates(ctx context.Context, companyID int64) (CompanyRates, error)
}
