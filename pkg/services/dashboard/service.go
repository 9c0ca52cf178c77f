package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/charts"
	"github.com/de-tools/insure-atlas/pkg/render/format"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
)

const (
	SectionMain   = "main"
	SectionPolicy = "policy"
	SectionClaims = "claims"
)

// Row is one formatted line of the series table.
type Row struct {
	Label   string
	Value   float64
	Display string
	Percent string
}

// Report is a series with everything derived from it for display.
type Report struct {
	Type           domain.ReportType
	Range          domain.DateRange
	Info           domain.ReportInfo
	DateRangeTitle string
	Period         string
	Series         domain.Series
	Total          float64
	TotalDisplay   string
	Rows           []Row
}

// Heading is the card heading of the main section, e.g. "Monthly Revenue Report".
func (r Report) Heading() string {
	return r.DateRangeTitle + " " + r.Info.Title
}

type Service interface {
	Report(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (Report, error)
	// Page builds the mounted reports page for the selected report type and date range.
	Page(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (*view.Document, error)
}

type service struct {
	source provider.ReportSource
}

func NewService(source provider.ReportSource) Service {
	return &service{source: source}
}

func (s *service) Report(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (Report, error) {
	series, err := s.source.Series(ctx, rt, dr)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load %s/%s series: %w", rt, dr, err)
	}
	return NewReport(series), nil
}

// NewReport derives totals and per-row shares from a series.
func NewReport(series domain.Series) Report {
	total := series.Total()
	rows := make([]Row, len(series.Points))
	for i, p := range series.Points {
		rows[i] = Row{
			Label:   p.Label,
			Value:   p.Value,
			Display: format.Value(series.Type, p.Value),
			Percent: format.ShareOfTotal(p.Value, total),
		}
	}
	return Report{
		Type:           series.Type,
		Range:          series.Range,
		Info:           series.Type.Info(),
		DateRangeTitle: series.Range.Title(),
		Period:         series.Range.Period(),
		Series:         series,
		Total:          total,
		TotalDisplay:   format.Value(series.Type, total),
		Rows:           rows,
	}
}

func (s *service) Page(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (*view.Document, error) {
	report, err := s.Report(ctx, rt, dr)
	if err != nil {
		return nil, err
	}
	policies, err := s.source.PolicyDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy distribution: %w", err)
	}
	claims, err := s.source.ClaimsAnalysis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims analysis: %w", err)
	}

	body := view.Container("reports", "container-fluid",
		MainSection(report),
		BreakdownSection(SectionPolicy, policies),
		BreakdownSection(SectionClaims, claims),
	)
	return view.NewDocument(body), nil
}

func MainSection(r Report) *view.Node {
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = []string{row.Label, row.Display, row.Percent}
	}
	total := view.Text(fmt.Sprintf("%s: %s", r.Info.TotalLabel, r.TotalDisplay))
	total.Bold = true

	return view.Container(SectionMain, "card",
		view.Heading(r.Heading()),
		view.Text(r.Period),
		total,
		view.Chart(charts.For(r.Type).Kind, r.Info.SeriesName),
		view.Container("", view.ClassTableResponsive, view.TableNode(view.Table{
			Columns: []view.Column{
				{Header: "Period"},
				{Header: "Value", Align: view.AlignRight},
				{Header: "% of Total", Align: view.AlignRight},
			},
			Rows: rows,
		})),
	)
}

func BreakdownSection(id string, b domain.Breakdown) *view.Node {
	rows := make([][]string, len(b.Rows))
	for i, row := range b.Rows {
		rows[i] = []string{row.Label, strconv.Itoa(row.Count), format.Currency(row.Amount)}
	}
	return view.Container(id, "card",
		view.Heading(b.Title),
		view.Chart(view.ChartPie, b.Title),
		view.Container("", view.ClassTableResponsive, view.TableNode(view.Table{
			Columns: []view.Column{
				{Header: b.NameHeader},
				{Header: b.CountHeader, Align: view.AlignRight},
				{Header: b.AmountHead, Align: view.AlignRight},
			},
			Rows: rows,
		})),
	)
}
