package commands

import (
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type SeriesCmd struct {
	reportType string
	dateRange  string
	env        Env
}

func NewSeriesCmd(env Env) *cobra.Command {
	sc := &SeriesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print a report series with totals and shares",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.reportType, "type", string(domain.ReportTypeRevenue), "Report type (revenue, policies, claims, clients)")
	cmd.Flags().StringVar(&sc.dateRange, "range", string(domain.DateRangeMonth), "Date range (month, quarter, year)")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rt, err := domain.ParseReportType(sc.reportType)
	if err != nil {
		return err
	}
	dr, err := domain.ParseDateRange(sc.dateRange)
	if err != nil {
		return err
	}

	p, closeFn, err := sc.env.OpenProvider(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := dashboard.NewService(p).Report(ctx, rt, dr)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	return sc.env.Reporter.Handle(report)
}
