package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/insure-atlas/pkg/models/api"
	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/export"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReports struct {
	mock.Mock
}

func (m *mockReports) Report(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (dashboard.Report, error) {
	args := m.Called(ctx, rt, dr)
	return args.Get(0).(dashboard.Report), args.Error(1)
}

func (m *mockReports) Page(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (*view.Document, error) {
	args := m.Called(ctx, rt, dr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*view.Document), args.Error(1)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Series(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (domain.Series, error) {
	args := m.Called(ctx, rt, dr)
	return args.Get(0).(domain.Series), args.Error(1)
}

func (m *mockSource) PolicyDistribution(ctx context.Context) (domain.Breakdown, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Breakdown), args.Error(1)
}

func (m *mockSource) ClaimsAnalysis(ctx context.Context) (domain.Breakdown, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Breakdown), args.Error(1)
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Export(ctx context.Context, req export.Request) (*export.Artifact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Artifact), args.Error(1)
}

func (m *mockExporter) Status() export.Status {
	args := m.Called()
	return args.Get(0).(export.Status)
}

type mockCharts struct {
	mock.Mock
}

func (m *mockCharts) Series(s domain.Series) ([]byte, error) {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCharts) Breakdown(b domain.Breakdown) ([]byte, error) {
	args := m.Called(b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mocks struct {
	reports  *mockReports
	source   *mockSource
	exporter *mockExporter
	charts   *mockCharts
}

func newHandler() (*Handler, mocks) {
	m := mocks{
		reports:  new(mockReports),
		source:   new(mockSource),
		exporter: new(mockExporter),
		charts:   new(mockCharts),
	}
	return NewHandler(m.reports, m.source, m.exporter, m.charts), m
}

func withParams(req *http.Request, params map[string]string) *http.Request {
	ctx := chi.NewRouteContext()
	for k, v := range params {
		ctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

var claimsQuarter = domain.Series{
	Type:   domain.ReportTypeClaims,
	Range:  domain.DateRangeQuarter,
	Points: []domain.Point{{Label: "Q1", Value: 37}, {Label: "Q2", Value: 32}},
}

func TestGetReport(t *testing.T) {
	tests := []struct {
		name           string
		params         map[string]string
		setupMock      func(m mocks)
		expectedStatus int
		expectedTotal  string
	}{
		{
			name:   "successful response",
			params: map[string]string{"type": "claims", "range": "quarter"},
			setupMock: func(m mocks) {
				m.reports.On("Report", mock.Anything, domain.ReportTypeClaims, domain.DateRangeQuarter).
					Return(dashboard.NewReport(claimsQuarter), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "69",
		},
		{
			name:           "unknown report type",
			params:         map[string]string{"type": "sales", "range": "quarter"},
			setupMock:      func(m mocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown date range",
			params:         map[string]string{"type": "claims", "range": "week"},
			setupMock:      func(m mocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing series",
			params: map[string]string{"type": "revenue", "range": "year"},
			setupMock: func(m mocks) {
				m.reports.On("Report", mock.Anything, domain.ReportTypeRevenue, domain.DateRangeYear).
					Return(dashboard.Report{}, provider.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			tt.setupMock(m)

			req := withParams(httptest.NewRequest("GET", "/reports", nil), tt.params)
			rec := httptest.NewRecorder()

			h.GetReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response api.Report
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tt.expectedTotal, response.TotalDisplay)
				assert.Equal(t, "Quarterly Claims Report", response.Heading)
				require.Len(t, response.Rows, 2)
				assert.Equal(t, "53.6%", response.Rows[0].Percent)
			}
			m.reports.AssertExpectations(t)
		})
	}
}

func TestGetChart(t *testing.T) {
	h, m := newHandler()
	m.reports.On("Report", mock.Anything, domain.ReportTypeClaims, domain.DateRangeQuarter).
		Return(dashboard.NewReport(claimsQuarter), nil)
	m.charts.On("Series", claimsQuarter).Return([]byte("\x89PNG"), nil)

	req := withParams(httptest.NewRequest("GET", "/chart.png", nil), map[string]string{"type": "claims", "range": "quarter"})
	rec := httptest.NewRecorder()

	h.GetChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
	m.charts.AssertExpectations(t)
}

func TestGetBreakdown(t *testing.T) {
	b := domain.Breakdown{
		Title: "Claims Analysis",
		Rows:  []domain.BreakdownRow{{Name: "Paid", Label: "Paid", Count: 10, Amount: 31000, Color: "198754"}},
	}

	t.Run("claims", func(t *testing.T) {
		h, m := newHandler()
		m.source.On("ClaimsAnalysis", mock.Anything).Return(b, nil)

		req := withParams(httptest.NewRequest("GET", "/breakdowns/claims", nil), map[string]string{"name": "claims"})
		rec := httptest.NewRecorder()
		h.GetBreakdown(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response api.Breakdown
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Claims Analysis", response.Title)
		assert.Equal(t, "#198754", response.Rows[0].Color)
	})

	t.Run("policy chart", func(t *testing.T) {
		h, m := newHandler()
		m.source.On("PolicyDistribution", mock.Anything).Return(b, nil)
		m.charts.On("Breakdown", b).Return([]byte("pie"), nil)

		req := withParams(httptest.NewRequest("GET", "/breakdowns/policy/chart.png", nil), map[string]string{"name": "policy"})
		rec := httptest.NewRecorder()
		h.GetBreakdownChart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pie", rec.Body.String())
	})

	t.Run("unknown", func(t *testing.T) {
		h, _ := newHandler()
		req := withParams(httptest.NewRequest("GET", "/breakdowns/x", nil), map[string]string{"name": "x"})
		rec := httptest.NewRecorder()
		h.GetBreakdown(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestExport(t *testing.T) {
	artifact := &export.Artifact{
		Filename:    "Revenue_Report_monthly_2025-05-20.pdf",
		ContentType: export.ContentType,
		Data:        []byte("%PDF-1.3"),
		Location:    "s3://reports/Revenue_Report_monthly_2025-05-20.pdf",
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func(m mocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "defaults to all",
			query: "",
			setupMock: func(m mocks) {
				m.exporter.On("Export", mock.Anything, export.Request{
					Type: domain.ReportTypeRevenue, Range: domain.DateRangeMonth, Scope: domain.ScopeAll,
				}).Return(artifact, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "%PDF-1.3",
		},
		{
			name:           "unknown scope",
			query:          "?scope=everything",
			setupMock:      func(m mocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "busy",
			query: "?scope=main",
			setupMock: func(m mocks) {
				m.exporter.On("Export", mock.Anything, mock.Anything).Return(nil, export.ErrInProgress)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:  "stage failure shows the generic notice",
			query: "?scope=claims",
			setupMock: func(m mocks) {
				m.exporter.On("Export", mock.Anything, mock.Anything).
					Return(nil, &export.Error{Stage: export.StageCapture, Err: errors.New("detached")})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   export.FailureNotice + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			tt.setupMock(m)

			req := withParams(httptest.NewRequest("POST", "/export"+tt.query, nil), map[string]string{"type": "revenue", "range": "month"})
			rec := httptest.NewRecorder()

			h.Export(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="Revenue_Report_monthly_2025-05-20.pdf"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, artifact.Location, rec.Header().Get("X-Export-Location"))
			}
			m.exporter.AssertExpectations(t)
		})
	}
}

func TestExportStatus(t *testing.T) {
	h, m := newHandler()
	m.exporter.On("Status").Return(export.Status{Busy: false})

	rec := httptest.NewRecorder()
	h.ExportStatus(rec, httptest.NewRequest("GET", "/exports/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.ExportStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.False(t, response.Busy)
	assert.Nil(t, response.Current)
}
