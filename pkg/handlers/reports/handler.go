package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/de-tools/insure-atlas/pkg/adapters"
	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/export"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	breakdownPolicy = "policy"
	breakdownClaims = "claims"
)

type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.Artifact, error)
	Status() export.Status
}

type ChartRenderer interface {
	Series(s domain.Series) ([]byte, error)
	Breakdown(b domain.Breakdown) ([]byte, error)
}

type Handler struct {
	reports  dashboard.Service
	source   provider.ReportSource
	exporter Exporter
	charts   ChartRenderer
}

func NewHandler(reports dashboard.Service, source provider.ReportSource, exporter Exporter, charts ChartRenderer) *Handler {
	return &Handler{
		reports:  reports,
		source:   source,
		exporter: exporter,
		charts:   charts,
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rt, dr, ok := parseSelection(w, r)
	if !ok {
		return
	}

	report, err := h.reports.Report(ctx, rt, dr)
	if err != nil {
		logger.Error().Err(err).Str("type", string(rt)).Str("range", string(dr)).Msg("failed to load report")
		writeLoadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(adapters.MapDashboardReportToApi(report))
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rt, dr, ok := parseSelection(w, r)
	if !ok {
		return
	}

	report, err := h.reports.Report(ctx, rt, dr)
	if err != nil {
		logger.Error().Err(err).Str("type", string(rt)).Str("range", string(dr)).Msg("failed to load report")
		writeLoadError(w, err)
		return
	}

	png, err := h.charts.Series(report.Series)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	writePNG(w, png, logger)
}

func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	b, ok := h.loadBreakdown(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapDomainBreakdownToApi(b))
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode breakdown")
	}
}

func (h *Handler) GetBreakdownChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	b, ok := h.loadBreakdown(w, r)
	if !ok {
		return
	}

	png, err := h.charts.Breakdown(b)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render breakdown chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	writePNG(w, png, logger)
}

func (h *Handler) loadBreakdown(w http.ResponseWriter, r *http.Request) (domain.Breakdown, bool) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	var (
		b   domain.Breakdown
		err error
	)
	switch name {
	case breakdownPolicy:
		b, err = h.source.PolicyDistribution(ctx)
	case breakdownClaims:
		b, err = h.source.ClaimsAnalysis(ctx)
	default:
		http.Error(w, fmt.Sprintf("unknown breakdown %q", name), http.StatusNotFound)
		return domain.Breakdown{}, false
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("breakdown", name).Msg("failed to load breakdown")
		writeLoadError(w, err)
		return domain.Breakdown{}, false
	}
	return b, true
}

// Export renders the reports page to PDF and streams it back as a download.
// The scope query parameter defaults to all.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rt, dr, ok := parseSelection(w, r)
	if !ok {
		return
	}
	scopeParam := r.URL.Query().Get("scope")
	if scopeParam == "" {
		scopeParam = string(domain.ScopeAll)
	}
	scope, err := domain.ParseScope(scopeParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artifact, err := h.exporter.Export(ctx, export.Request{Type: rt, Range: dr, Scope: scope})
	switch {
	case errors.Is(err, export.ErrInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		var stageErr *export.Error
		if errors.As(err, &stageErr) {
			logger.Error().Err(stageErr.Err).Str("stage", string(stageErr.Stage)).Msg("export failed")
		} else {
			logger.Error().Err(err).Msg("export failed")
		}
		http.Error(w, export.FailureNotice, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	if artifact.Location != "" {
		w.Header().Set("X-Export-Location", artifact.Location)
	}
	if _, err := w.Write(artifact.Data); err != nil {
		logger.Error().Err(err).Msg("failed to write export")
	}
}

func (h *Handler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapExportStatusToApi(h.exporter.Status()))
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode export status")
	}
}

func parseSelection(w http.ResponseWriter, r *http.Request) (domain.ReportType, domain.DateRange, bool) {
	rt, err := domain.ParseReportType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	dr, err := domain.ParseDateRange(chi.URLParam(r, "range"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	return rt, dr, true
}

func writeLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, provider.ErrNotFound) {
		http.Error(w, "report data not found", http.StatusNotFound)
		return
	}
	http.Error(w, "failed to load report data", http.StatusInternalServerError)
}

func writePNG(w http.ResponseWriter, png []byte, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if _, err := w.Write(png); err != nil {
		logger.Error().Err(err).Msg("failed to write chart")
	}
}
