package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDomainPolicyToApi(t *testing.T) {
	p := domain.Policy{
		ID:           1,
		PolicyNumber: "POL-2025-001",
		Type:         "Auto",
		ClientName:   "John Doe",
		StartDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Premium:      decimal.NewFromInt(1200),
		Status:       "Active",
	}

	got := MapDomainPolicyToApi(p)

	assert.Equal(t, "2025-01-15", got.StartDate)
	assert.Equal(t, "2026-01-14", got.EndDate)
	assert.True(t, got.Premium.Equal(decimal.NewFromInt(1200)))
}

func TestMapSlice_Empty(t *testing.T) {
	got := MapSlice([]domain.Client(nil), MapDomainClientToApi)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMapDashboardReportToApi(t *testing.T) {
	r := dashboard.NewReport(domain.Series{
		Type:   domain.ReportTypeRevenue,
		Range:  domain.DateRangeMonth,
		Points: []domain.Point{{Label: "Jan", Value: 1000}, {Label: "Feb", Value: 3000}},
	})

	got := MapDashboardReportToApi(r)

	assert.Equal(t, "Monthly Revenue Report", got.Heading)
	assert.Equal(t, "$4,000", got.TotalDisplay)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "75.0%", got.Rows[1].Percent)
}

func TestMapDomainBreakdownToApi(t *testing.T) {
	got := MapDomainBreakdownToApi(domain.Breakdown{
		Title: "Claims Analysis",
		Rows: []domain.BreakdownRow{
			{Name: "Paid", Label: "Paid", Count: 10, Amount: 31000, Color: "198754"},
			{Name: "Denied", Label: "Denied", Count: 2},
		},
	})

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "#198754", got.Rows[0].Color)
	assert.Equal(t, "$31,000", got.Rows[0].Display)
	assert.Empty(t, got.Rows[1].Color)
}

func TestMapExportStatusToApi(t *testing.T) {
	assert.Nil(t, MapExportStatusToApi(export.Status{}).Current)

	started := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	got := MapExportStatusToApi(export.Status{
		Busy: true,
		Current: &export.Job{
			ID:        "job-1",
			Request:   export.Request{Type: domain.ReportTypeClaims, Range: domain.DateRangeYear, Scope: domain.ScopeMain},
			StartedAt: started,
		},
	})
	require.NotNil(t, got.Current)
	assert.True(t, got.Busy)
	assert.Equal(t, "claims", got.Current.Type)
	assert.Equal(t, "main", got.Current.Scope)
	assert.Equal(t, started, got.Current.StartedAt)
}
