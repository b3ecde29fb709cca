package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret = "test-secret-key-for-jwt"
	testSummaryID     = "0195f7a2-3c1e-7b4a-8a2b-6b8b8b8b8b8b"
)

type mockPayrollService struct {
	mock.Mock
}

func (m *mockPayrollService) GenerateSummary(ctx context.Context, req payroll.GenerateSummaryRequest) (payroll.SummaryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.SummaryResponse), args.Error(1)
}

func (m *mockPayrollService) PreviewSummary(ctx context.Context, req payroll.GenerateSummaryRequest) (payroll.SummaryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.SummaryResponse), args.Error(1)
}

func (m *mockPayrollService) GetSummary(ctx context.Context, id string) (payroll.SummaryResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.SummaryResponse), args.Error(1)
}

func (m *mockPayrollService) ListSummaries(ctx context.Context, filter payroll.SummaryFilter) (payroll.ListSummaryResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(payroll.ListSummaryResponse), args.Error(1)
}

func (m *mockPayrollService) DeleteSummary(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPayrollService) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockPayrollService) RenderMonthlyReport(ctx context.Context, filter payroll.SummaryFilter) ([]byte, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]byte), args.Error(1)
}

type mockCompanyService struct {
	mock.Mock
}

func (m *mockCompanyService) List(ctx context.Context) ([]company.CompanyResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]company.CompanyResponse), args.Error(1)
}

func (m *mockCompanyService) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(company.CompanyResponse), args.Error(1)
}

func (m *mockCompanyService) GetByID(ctx context.Context, id int64) (company.CompanyResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.CompanyResponse), args.Error(1)
}

func (m *mockCompanyService) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockCompanyService) UpdateRates(ctx context.Context, id int64, req company.RateTableRequest) (company.CompanyResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(company.CompanyResponse), args.Error(1)
}

type testServer struct {
	handler http.Handler
	jwt     jwt.Service
	payroll *mockPayrollService
	company *mockCompanyService
	metrics http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		jwt:     jwt.NewJWTService(handlerTestSecret, time.Hour),
		payroll: new(mockPayrollService),
		company: new(mockCompanyService),
		metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		}),
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ts.handler = NewRouter(ts.jwt, NewPayrollHandler(ts.payroll), NewCompanyHandler(ts.company), ts.metrics, logger,
		RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}, LogLevel: slog.LevelError})
	return ts
}

func (ts *testServer) token(t *testing.T, isAdmin bool) string {
	t.Helper()
	token, _, err := ts.jwt.GenerateAccessToken("user-1", isAdmin)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ===== PAYROLL HANDLER TESTS =====

func TestPayrollHandler_GenerateSummary_Created(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.payroll.On("GenerateSummary", mock.Anything, mock.MatchedBy(func(req payroll.GenerateSummaryRequest) bool {
		return req.EmployeeID == 7 && req.Month == "March" && req.Year == 2025
	})).Return(payroll.SummaryResponse{ID: testSummaryID, EmployeeID: 7, Month: "March", Year: 2025, NetPay: decimal.RequireFromString("1830.00")}, nil)

	// Act
	rec := ts.do(t, http.MethodPost, "/api/v1/payroll/summaries", ts.token(t, false), map[string]interface{}{
		"employee_id":      7,
		"company_id":       3,
		"month":            "March",
		"year":             2025,
		"working_days_8hr": "22",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	ts.payroll.AssertExpectations(t)
}

func TestPayrollHandler_GenerateSummary_Duplicate(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	dup := &payroll.DuplicateSummaryError{EmployeeID: 7, Period: payroll.Period{Month: "March", Year: 2025}}
	ts.payroll.On("GenerateSummary", mock.Anything, mock.Anything).Return(payroll.SummaryResponse{}, dup)

	// Act
	rec := ts.do(t, http.MethodPost, "/api/v1/payroll/summaries", ts.token(t, false), map[string]interface{}{"employee_id": 7})

	// Assert
	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "a summary for employee 7 for March 2025 already exists", resp.Error.Message)
}

func TestPayrollHandler_GenerateSummary_NetPayExceedsFullBasics(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	netPayErr := &payroll.NetPayExceedsFullBasicsError{
		Currency:   "MYR",
		NetPay:     decimal.RequireFromString("1830.01"),
		FullBasics: decimal.RequireFromString("1830.00"),
	}
	ts.payroll.On("GenerateSummary", mock.Anything, mock.Anything).Return(payroll.SummaryResponse{}, netPayErr)

	// Act
	rec := ts.do(t, http.MethodPost, "/api/v1/payroll/summaries", ts.token(t, false), map[string]interface{}{"employee_id": 7})

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NET_PAY_EXCEEDS_FULL_BASICS", resp.Error.Code)
	assert.Equal(t, "net pay (MYR 1830.01) exceeds full basics reference (MYR 1830.00)", resp.Error.Message)
	assert.Equal(t, "1830.01", resp.Error.Details["net_pay"])
	assert.Equal(t, "1830.00", resp.Error.Details["full_basics"])
}

func TestPayrollHandler_GenerateSummary_InvalidBody(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/summaries", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.token(t, false))
	rec := httptest.NewRecorder()

	// Act
	ts.handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.payroll.AssertNotCalled(t, "GenerateSummary", mock.Anything, mock.Anything)
}

func TestPayrollHandler_RequiresToken(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	foreign := jwt.NewJWTService("another-secret", time.Hour)
	token, _, err := foreign.GenerateAccessToken("user-1", true)
	require.NoError(t, err)
	rec = ts.do(t, http.MethodGet, "/api/v1/payroll/summaries", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPayrollHandler_ListSummaries_ParsesFilter(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.payroll.On("ListSummaries", mock.Anything, mock.MatchedBy(func(f payroll.SummaryFilter) bool {
		return f.Month != nil && *f.Month == "march" &&
			f.Year != nil && *f.Year == 2025 &&
			f.CompanyID != nil && *f.CompanyID == 3 &&
			f.EmployeeType != nil && *f.EmployeeType == "foreign"
	})).Return(payroll.ListSummaryResponse{Summaries: []payroll.SummaryResponse{}}, nil)

	// Act
	rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries?month=march&year=2025&company_id=3&employee_type=Foreign", ts.token(t, false), nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	ts.payroll.AssertExpectations(t)
}

func TestPayrollHandler_ListSummaries_BadQuery(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	// Act
	rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries?year=twenty&company_id=x", ts.token(t, false), nil)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Error.Details, "year")
	assert.Contains(t, resp.Error.Details, "company_id")
}

func TestPayrollHandler_GetSummary(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.payroll.On("GetSummary", mock.Anything, testSummaryID).Return(payroll.SummaryResponse{ID: testSummaryID}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/"+testSummaryID, ts.token(t, false), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.payroll.On("GetSummary", mock.Anything, testSummaryID).Return(payroll.SummaryResponse{}, payroll.ErrSummaryNotFound)

		rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/"+testSummaryID, ts.token(t, false), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/not-a-uuid", ts.token(t, false), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.payroll.AssertNotCalled(t, "GetSummary", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		storeErr := &payroll.StoreError{Op: "get salary summary", Err: io.ErrUnexpectedEOF}
		ts.payroll.On("GetSummary", mock.Anything, testSummaryID).Return(payroll.SummaryResponse{}, storeErr)

		rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/"+testSummaryID, ts.token(t, false), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPayrollHandler_DeleteSummary_AdminOnly(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.payroll.On("DeleteSummary", mock.Anything, testSummaryID).Return(nil)

	// Act
	forbidden := ts.do(t, http.MethodDelete, "/api/v1/payroll/summaries/"+testSummaryID, ts.token(t, false), nil)
	deleted := ts.do(t, http.MethodDelete, "/api/v1/payroll/summaries/"+testSummaryID, ts.token(t, true), nil)

	// Assert
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Equal(t, http.StatusOK, deleted.Code)
	ts.payroll.AssertNumberOfCalls(t, "DeleteSummary", 1)
}

func TestPayrollHandler_Payslip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	doc := []byte("%PDF-1.3 test")
	ts.payroll.On("RenderPayslip", mock.Anything, testSummaryID).Return(doc, nil)

	// Act
	rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/"+testSummaryID+"/payslip", ts.token(t, false), nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-"+testSummaryID+".pdf")
	assert.Equal(t, doc, rec.Body.Bytes())
}

func TestPayrollHandler_MonthlyReport(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.payroll.On("RenderMonthlyReport", mock.Anything, mock.Anything).Return([]byte("%PDF-1.3"), nil)

	// Act
	rec := ts.do(t, http.MethodGet, "/api/v1/payroll/summaries/report?month=March&year=2025", ts.token(t, false), nil)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "salary-summary-march-2025.pdf")
}

// ===== COMPANY HANDLER TESTS =====

func TestCompanyHandler_Create_AdminOnly(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.company.On("Create", mock.Anything, mock.Anything).Return(company.CompanyResponse{ID: 3, Name: "Syarikat Maju"}, nil)
	body := map[string]interface{}{"company_name": "Syarikat Maju", "rates": map[string]string{"default_rate_8hr": "80"}}

	// Act
	forbidden := ts.do(t, http.MethodPost, "/api/v1/companies", ts.token(t, false), body)
	created := ts.do(t, http.MethodPost, "/api/v1/companies", ts.token(t, true), body)

	// Assert
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Equal(t, http.StatusCreated, created.Code)
}

func TestCompanyHandler_GetByID(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.company.On("GetByID", mock.Anything, int64(404)).Return(company.CompanyResponse{}, company.ErrCompanyNotFound)

	notFound := ts.do(t, http.MethodGet, "/api/v1/companies/404", ts.token(t, false), nil)
	badID := ts.do(t, http.MethodGet, "/api/v1/companies/abc", ts.token(t, false), nil)

	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, http.StatusBadRequest, badID.Code)
}

func TestCompanyHandler_UpdateRates(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.company.On("UpdateRates", mock.Anything, int64(3), mock.MatchedBy(func(req company.RateTableRequest) bool {
		return req.DefaultOTRate9hr != nil && req.DefaultOTRate9hr.Equal(decimal.NewFromInt(15))
	})).Return(company.CompanyResponse{ID: 3}, nil)

	// Act
	rec := ts.do(t, http.MethodPut, "/api/v1/companies/3/rates", ts.token(t, true), map[string]string{"default_ot_rate_9hr": "15"})

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	ts.company.AssertExpectations(t)
}

// ===== ROUTER TESTS =====

func TestRouter_PublicEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	heartbeat := ts.do(t, http.MethodGet, "/", "", nil)
	metrics := ts.do(t, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, heartbeat.Code)
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "# metrics")
}
