package export

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/compose"
	"github.com/de-tools/insure-atlas/pkg/render/format"
	"github.com/de-tools/insure-atlas/pkg/render/raster"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
)

const (
	titlePolicy  = "Policy Distribution by Type"
	titleClaims  = "Claims Analysis"
	titleSummary = "Report Data Summary"
)

// builder composes one export. Sections are captured one after another since a capture
// mutates chart visibility on the shared page.
type builder struct {
	ctx      context.Context
	raster   Rasterizer
	doc      *view.Document
	layout   compose.Layout
	report   dashboard.Report
	c        *compose.Composer
	sections []string
}

func (b *builder) build(scope domain.Scope, generated time.Time) error {
	info := b.report.Info
	if err := b.c.PlaceTitle(DocumentTitle(info, b.report.Range, generated)); err != nil {
		return stageError(StageCompose, err)
	}

	var err error
	switch scope {
	case domain.ScopeAll:
		err = b.all()
	case domain.ScopeMain:
		b.c.ResetCursor(b.layout.ContentTop)
		err = b.main()
	case domain.ScopePolicy:
		b.c.ResetCursor(b.layout.ContentTop)
		err = b.table(dashboard.SectionPolicy, titlePolicy, false)
	case domain.ScopeClaims:
		b.c.ResetCursor(b.layout.ContentTop)
		err = b.table(dashboard.SectionClaims, titleClaims, false)
	default:
		err = stageError(StageCompose, fmt.Errorf("%w: %q", domain.ErrUnknownScope, scope))
	}
	if err != nil {
		return err
	}

	err = b.c.StampFooters(func(page, total int) string {
		return FooterText(generated, page, total)
	})
	return stageError(StageCompose, err)
}

func (b *builder) all() error {
	if err := b.main(); err != nil {
		return err
	}
	if err := b.table(dashboard.SectionPolicy, titlePolicy, true); err != nil {
		return err
	}
	if err := b.table(dashboard.SectionClaims, titleClaims, true); err != nil {
		return err
	}
	return b.summary()
}

func (b *builder) main() error {
	bm, err := b.capture(dashboard.SectionMain, raster.ModeClone)
	if err != nil {
		return err
	}
	if err := b.c.PlaceImage(bm, b.c.ContentWidth()); err != nil {
		return stageError(StageCompose, err)
	}
	note := fmt.Sprintf("Note: %s chart data is included in the report summary.", b.report.Info.Title)
	if err := b.c.PlaceNote(note); err != nil {
		return stageError(StageCompose, err)
	}
	b.sections = append(b.sections, dashboard.SectionMain)
	return nil
}

// table places a section title followed by the capture of the section's table.
// When paginate is set the pair moves to a fresh page if it would not fit.
func (b *builder) table(id, title string, paginate bool) error {
	bm, err := b.capture(id, raster.ModeTable)
	if err != nil {
		return err
	}
	width := b.c.ContentWidth()
	if paginate {
		if err := b.c.EnsureRoom(b.layout.SectionTitleAdvance + bm.ScaledHeight(width)); err != nil {
			return stageError(StageCompose, err)
		}
	}
	if err := b.c.PlaceSectionTitle(title); err != nil {
		return stageError(StageCompose, err)
	}
	if err := b.c.PlaceImage(bm, width); err != nil {
		return stageError(StageCompose, err)
	}
	b.sections = append(b.sections, id)
	return nil
}

// summary writes the series as a plain table with its total on a page of its own.
func (b *builder) summary() error {
	r := b.report
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = []string{row.Label, row.Display}
	}

	err := b.c.NewPage()
	if err == nil {
		err = b.c.PlaceHeading(titleSummary, b.layout.SummaryFontSize)
	}
	if err == nil {
		b.c.ResetCursor(b.layout.ContentTop)
		err = b.c.PlaceSectionTitle(fmt.Sprintf("%s - %s", r.Info.Title, r.DateRangeTitle))
	}
	if err == nil {
		err = b.c.PlaceTable(compose.TableSpec{
			Columns: []compose.TableColumn{
				{Header: "Period"},
				{Header: "Value", Align: compose.AlignRight},
			},
			Rows:  rows,
			Total: []string{"Total", format.Value(r.Type, r.Total)},
		})
	}
	if err != nil {
		return stageError(StageCompose, err)
	}
	b.sections = append(b.sections, SectionSummary)
	return nil
}

func (b *builder) capture(id string, mode raster.Mode) (raster.Bitmap, error) {
	section, err := b.doc.Section(id)
	if err != nil {
		return raster.Bitmap{}, stageError(StageCapture, err)
	}
	bm, err := b.raster.Capture(b.ctx, b.doc, section, mode)
	if err != nil {
		return raster.Bitmap{}, stageError(StageCapture, fmt.Errorf("section %s: %w", id, err))
	}
	return bm, nil
}
