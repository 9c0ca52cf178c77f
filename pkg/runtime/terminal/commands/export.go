package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/delivery"
	pdfexport "github.com/de-tools/insure-atlas/pkg/services/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const localSink = "local"

type ExportCmd struct {
	reportType string
	dateRange  string
	scope      string
	outDir     string
	sink       string
	sinksFile  string
	env        Env
}

func NewExportCmd(env Env) *cobra.Command {
	ec := &ExportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the reports page to PDF",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.reportType, "type", string(domain.ReportTypeRevenue), "Report type (revenue, policies, claims, clients)")
	cmd.Flags().StringVar(&ec.dateRange, "range", string(domain.DateRangeMonth), "Date range (month, quarter, year)")
	cmd.Flags().StringVar(&ec.scope, "scope", string(domain.ScopeAll), "Export scope (all, main, policy, claims)")
	cmd.Flags().StringVar(&ec.outDir, "out", ".", "Directory the PDF is written to")
	cmd.Flags().StringVar(&ec.sink, "sink", "", "Sink profile to deliver the PDF to instead of --out")
	cmd.Flags().StringVar(&ec.sinksFile, "sinks-file", "", "Path to the sink profiles file")

	cmd.MarkFlagsMutuallyExclusive("out", "sink")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req, err := ec.request()
	if err != nil {
		return err
	}

	sink, err := ec.openSink(ctx)
	if err != nil {
		return err
	}

	p, closeFn, err := ec.env.OpenProvider(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	exporter := pdfexport.NewExporter(dashboard.NewService(p),
		pdfexport.WithSink(sink),
		pdfexport.WithClock(ec.env.Now),
	)
	artifact, err := exporter.Export(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("request", req.String()).Msg("export failed")
		return fmt.Errorf("%s: %w", pdfexport.FailureNotice, err)
	}

	return ec.env.Reporter.Artifact(artifact)
}

func (ec *ExportCmd) request() (pdfexport.Request, error) {
	rt, err := domain.ParseReportType(ec.reportType)
	if err != nil {
		return pdfexport.Request{}, err
	}
	dr, err := domain.ParseDateRange(ec.dateRange)
	if err != nil {
		return pdfexport.Request{}, err
	}
	scope, err := domain.ParseScope(ec.scope)
	if err != nil {
		return pdfexport.Request{}, err
	}
	return pdfexport.Request{Type: rt, Range: dr, Scope: scope}, nil
}

func (ec *ExportCmd) openSink(ctx context.Context) (delivery.Sink, error) {
	if ec.sink == "" {
		return delivery.NewFileSink(localSink, ec.outDir), nil
	}

	path, err := sinksFile(ec.sinksFile, ec.env)
	if err != nil {
		return nil, err
	}
	registry, err := delivery.NewRegistry(path)
	if err != nil {
		return nil, err
	}
	return registry.Open(ctx, ec.sink)
}

// sinksFile prefers the flag and falls back to export.sinks_file from the settings.
func sinksFile(flag string, env Env) (string, error) {
	if flag != "" {
		return flag, nil
	}
	settings, err := env.Settings()
	if err != nil {
		return "", err
	}
	if settings.Export.SinksFile == "" {
		return "", fmt.Errorf("no sinks file: pass --sinks-file or set export.sinks_file")
	}
	return settings.Export.SinksFile, nil
}
