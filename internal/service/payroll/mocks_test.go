package payroll

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/mock"
)

type mockSummaryRepository struct {
	mock.Mock
}

func (m *mockSummaryRepository) Exists(ctx context.Context, employeeID int64, period payroll.Period) (bool, error) {
	args := m.Called(ctx, employeeID, period)
	return args.Bool(0), args.Error(1)
}

func (m *mockSummaryRepository) Create(ctx context.Context, summary payroll.SalarySummary) (payroll.SalarySummary, error) {
	args := m.Called(ctx, summary)
	if fn, ok := args.Get(0).(func(context.Context, payroll.SalarySummary) payroll.SalarySummary); ok {
		return fn(ctx, summary), args.Error(1)
	}
	return args.Get(0).(payroll.SalarySummary), args.Error(1)
}

func (m *mockSummaryRepository) GetByID(ctx context.Context, id string) (payroll.SalarySummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.SalarySummary), args.Error(1)
}

func (m *mockSummaryRepository) List(ctx context.Context, filter payroll.SummaryFilter) ([]payroll.SalarySummary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.SalarySummary), args.Error(1)
}

func (m *mockSummaryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRateLookup struct {
	mock.Mock
}

func (m *mockRateLookup) GetCompanyRates(ctx context.Context, companyID int64) (payroll.CompanyRates, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(payroll.CompanyRates), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Payslip(summary payroll.SalarySummary) ([]byte, error) {
	args := m.Called(summary)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockRenderer) MonthlyReport(filter payroll.SummaryFilter, summaries []payroll.SalarySummary, totals payroll.SummaryTotals) ([]byte, error) {
	args := m.Called(filter, summaries, totals)
	return args.Get(0).([]byte), args.Error(1)
}

type summaryKey struct {
	employeeID int64
	month      string
	year       int
}

// memorySummaryStore enforces the per-period uniqueness the way the
// database constraint does.
type memorySummaryStore struct {
	mu        sync.Mutex
	summaries map[summaryKey]payroll.SalarySummary
}

func newMemorySummaryStore() *memorySummaryStore {
	return &memorySummaryStore{summaries: make(map[summaryKey]payroll.SalarySummary)}
}

func (s *memorySummaryStore) Exists(_ context.Context, employeeID int64, period payroll.Period) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.summaries[summaryKey{employeeID, period.Month, period.Year}]
	return ok, nil
}

func (s *memorySummaryStore) Create(_ context.Context, summary payroll.SalarySummary) (payroll.SalarySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := summaryKey{summary.EmployeeID, summary.Period.Month, summary.Period.Year}
	if _, ok := s.summaries[key]; ok {
		return payroll.SalarySummary{}, payroll.ErrSummaryAlreadyExists
	}
	summary.CreatedAt = time.Now()
	s.summaries[key] = summary
	return summary, nil
}

func (s *memorySummaryStore) GetByID(_ context.Context, id string) (payroll.SalarySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, summary := range s.summaries {
		if summary.ID == id {
			return summary, nil
		}
	}
	return payroll.SalarySummary{}, payroll.ErrSummaryNotFound
}

func (s *memorySummaryStore) List(_ context.Context, _ payroll.SummaryFilter) ([]payroll.SalarySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payroll.SalarySummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		out = append(out, summary)
	}
	return out, nil
}

func (s *memorySummaryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, summary := range s.summaries {
		if summary.ID == id {
			delete(s.summaries, key)
			return nil
		}
	}
	return payroll.ErrSummaryNotFound
}
