package payroll

import "context"

type PayrollService interface {
	GenerateSummary(ctx context.Context, req GenerateSummaryRequest) (SummaryResponse, error)
	PreviewSummary(ctx context.Context, req GenerateSummaryRequest) (SummaryResponse, error)
	GetSummary(ctx context.Context, id string) (SummaryResponse, error)
	ListSummaries(ctx context.Context, filter SummaryFilter) (ListSummaryResponse, error)
	DeleteSummary(ctx context.Context, id string) error
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
	RenderMonthlyReport(ctx context.Context, filter SummaryFilter) ([]byte, error)
}

// DocumentRenderer turns summaries into printable documents.
type DocumentRenderer interface {
	Payslip(summary SalarySummary) ([]byte, error)
	MonthlyReport(filter SummaryFilter, summaries []SalarySummary, totals SummaryTotals) ([]byte, error)
}

// Metrics records generation outcomes.
type Metrics interface {
	SummaryGenerated(currency string)
	SummaryRejected(reason string)
}
