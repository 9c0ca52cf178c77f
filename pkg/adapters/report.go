package adapters

import (
	"github.com/de-tools/insure-atlas/pkg/models/api"
	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/format"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/export"
)

func MapDashboardReportToApi(r dashboard.Report) api.Report {
	rows := make([]api.ReportRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, api.ReportRow{
			Label:   row.Label,
			Value:   row.Value,
			Display: row.Display,
			Percent: row.Percent,
		})
	}
	return api.Report{
		Type:         string(r.Type),
		Range:        string(r.Range),
		Title:        r.Info.Title,
		Heading:      r.Heading(),
		Period:       r.Period,
		TotalLabel:   r.Info.TotalLabel,
		Total:        r.Total,
		TotalDisplay: r.TotalDisplay,
		Rows:         rows,
	}
}

func MapDomainBreakdownToApi(b domain.Breakdown) api.Breakdown {
	rows := make([]api.BreakdownRow, 0, len(b.Rows))
	for _, row := range b.Rows {
		color := ""
		if row.Color != "" {
			color = "#" + row.Color
		}
		rows = append(rows, api.BreakdownRow{
			Name:    row.Name,
			Label:   row.Label,
			Count:   row.Count,
			Amount:  row.Amount,
			Display: format.Currency(row.Amount),
			Color:   color,
		})
	}
	return api.Breakdown{
		Title:       b.Title,
		NameHeader:  b.NameHeader,
		CountHeader: b.CountHeader,
		AmountHead:  b.AmountHead,
		Rows:        rows,
	}
}

func MapExportStatusToApi(s export.Status) api.ExportStatus {
	status := api.ExportStatus{Busy: s.Busy}
	if s.Current != nil {
		status.Current = &api.ExportJob{
			ID:        s.Current.ID,
			Type:      string(s.Current.Request.Type),
			Range:     string(s.Current.Request.Range),
			Scope:     string(s.Current.Request.Scope),
			StartedAt: s.Current.StartedAt,
		}
	}
	return status
}
