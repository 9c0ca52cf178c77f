package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestService_Report(t *testing.T) {
	svc := NewService(memory.NewStore())

	tests := []struct {
		name      string
		rt        domain.ReportType
		dr        domain.DateRange
		heading   string
		total     string
		firstRow  Row
		rowsCount int
	}{
		{
			name:      "monthly revenue",
			rt:        domain.ReportTypeRevenue,
			dr:        domain.DateRangeMonth,
			heading:   "Monthly Revenue Report",
			total:     "$208,000",
			firstRow:  Row{Label: "Jan", Value: 35000, Display: "$35,000", Percent: "16.8%"},
			rowsCount: 5,
		},
		{
			name:      "quarterly claims",
			rt:        domain.ReportTypeClaims,
			dr:        domain.DateRangeQuarter,
			heading:   "Quarterly Claims Report",
			total:     "69",
			firstRow:  Row{Label: "Q1", Value: 37, Display: "37", Percent: "53.6%"},
			rowsCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := svc.Report(context.Background(), tt.rt, tt.dr)
			require.NoError(t, err)

			assert.Equal(t, tt.heading, r.Heading())
			assert.Equal(t, tt.total, r.TotalDisplay)
			require.Len(t, r.Rows, tt.rowsCount)
			assert.Equal(t, tt.firstRow, r.Rows[0])
		})
	}
}

func TestService_Page(t *testing.T) {
	svc := NewService(memory.NewStore())

	doc, err := svc.Page(context.Background(), domain.ReportTypePolicies, domain.DateRangeYear)
	require.NoError(t, err)

	for _, id := range []string{SectionMain, SectionPolicy, SectionClaims} {
		section, err := doc.Section(id)
		require.NoError(t, err, id)
		assert.True(t, doc.Attached(section))

		charts := section.QueryAll(view.KindChart)
		require.Len(t, charts, 1)
		assert.False(t, charts[0].Hidden)
		assert.NotNil(t, section.QueryClass(view.ClassTableResponsive))
	}

	main, _ := doc.Section(SectionMain)
	assert.Equal(t, view.ChartLine, main.QueryAll(view.KindChart)[0].Chart.Kind)
	assert.Equal(t, "Yearly Policy Sales Report", main.QueryAll(view.KindHeading)[0].Text)

	policy, _ := doc.Section(SectionPolicy)
	table := policy.QueryAll(view.KindTable)[0].Table
	assert.Equal(t, "Policy Type", table.Columns[0].Header)
	assert.Equal(t, []string{"Auto Insurance", "78", "$93,600"}, table.Rows[0])
}

func TestService_PageErrors(t *testing.T) {
	boom := errors.New("boom")
	series := domain.Series{Type: domain.ReportTypeRevenue, Range: domain.DateRangeMonth, Points: []domain.Point{{Label: "Jan", Value: 1}}}

	source := new(mockSource)
	source.On("Series", mock.Anything, domain.ReportTypeRevenue, domain.DateRangeMonth).Return(series, nil)
	source.On("PolicyDistribution", mock.Anything).Return(domain.Breakdown{}, nil)
	source.On("ClaimsAnalysis", mock.Anything).Return(domain.Breakdown{}, boom)

	_, err := NewService(source).Page(context.Background(), domain.ReportTypeRevenue, domain.DateRangeMonth)
	assert.ErrorIs(t, err, boom)
	source.AssertExpectations(t)

	source = new(mockSource)
	source.On("Series", mock.Anything, domain.ReportTypeClients, domain.DateRangeYear).Return(domain.Series{}, boom)
	_, err = NewService(source).Report(context.Background(), domain.ReportTypeClients, domain.DateRangeYear)
	assert.ErrorIs(t, err, boom)
}
