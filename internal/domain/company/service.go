package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, id int64) (CompanyResponse, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) error
	UpdateRates(ctx context.Context, id int64, req RateTableRequest) (CompanyResponse, error)
}
