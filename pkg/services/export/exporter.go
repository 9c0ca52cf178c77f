package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/compose"
	"github.com/de-tools/insure-atlas/pkg/render/raster"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/delivery"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

const (
	ContentType = "application/pdf"
	// SectionSummary names the numeric summary page in Artifact.Sections.
	SectionSummary = "summary"
	creator        = "insure-atlas"
)

// Rasterizer captures a mounted section of the reports page as a bitmap.
type Rasterizer interface {
	Capture(ctx context.Context, doc *view.Document, section *view.Node, mode raster.Mode) (raster.Bitmap, error)
}

// Status is a snapshot of the exporter for polling clients.
type Status struct {
	Busy    bool
	Current *Job
}

type Option func(*Exporter)

func WithRasterizer(r Rasterizer) Option {
	return func(e *Exporter) { e.raster = r }
}

func WithSink(s delivery.Sink) Option {
	return func(e *Exporter) { e.sink = s }
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

func WithLayout(l compose.Layout) Option {
	return func(e *Exporter) { e.layout = l }
}

// Exporter turns the reports page into a PDF document. At most one export runs at a time.
type Exporter struct {
	pages  dashboard.Service
	raster Rasterizer
	sink   delivery.Sink
	layout compose.Layout
	now    func() time.Time

	guard *semaphore.Weighted
	busy  atomic.Bool

	mu      sync.Mutex
	current *Job
}

func NewExporter(pages dashboard.Service, opts ...Option) *Exporter {
	e := &Exporter{
		pages:  pages,
		raster: raster.NewCapturer(nil),
		layout: compose.DefaultLayout(),
		now:    time.Now,
		guard:  semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

func (e *Exporter) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{Busy: e.busy.Load(), Current: e.current}
}

// Start validates req and launches the export in the background. The exporter is busy
// when Start returns and stays busy until the job settles. A second Start while a job
// is in flight fails with ErrInProgress.
func (e *Exporter) Start(ctx context.Context, req Request) (*Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !e.guard.TryAcquire(1) {
		return nil, ErrInProgress
	}
	e.busy.Store(true)

	job := newJob(uuid.NewString(), req, e.now())
	e.mu.Lock()
	e.current = job
	e.mu.Unlock()

	logger := zerolog.Ctx(ctx).With().Str("job_id", job.ID).Str("request", req.String()).Logger()
	ctx = logger.WithContext(ctx)

	go func() {
		artifact, err := e.run(ctx, req)
		if err != nil {
			logger.Error().Err(err).Msg("export failed")
		} else {
			logger.Info().
				Str("filename", artifact.Filename).
				Int("pages", artifact.Pages).
				Str("location", artifact.Location).
				Msg("export finished")
		}

		e.mu.Lock()
		e.current = nil
		e.mu.Unlock()
		e.busy.Store(false)
		e.guard.Release(1)
		job.finish(artifact, err)
	}()
	return job, nil
}

// Export runs an export to completion.
func (e *Exporter) Export(ctx context.Context, req Request) (*Artifact, error) {
	job, err := e.Start(ctx, req)
	if err != nil {
		return nil, err
	}
	return job.Result()
}

func (e *Exporter) run(ctx context.Context, req Request) (*Artifact, error) {
	logger := zerolog.Ctx(ctx)
	generated := e.now()

	report, err := e.pages.Report(ctx, req.Type, req.Range)
	if err != nil {
		return nil, stageError(StageCapture, err)
	}
	doc, err := e.pages.Page(ctx, req.Type, req.Range)
	if err != nil {
		return nil, stageError(StageCapture, err)
	}

	b := &builder{
		ctx:    ctx,
		raster: e.raster,
		doc:    doc,
		layout: e.layout,
		report: report,
		c: compose.New(e.layout, compose.Meta{
			Title:   report.Info.Title,
			Creator: creator,
			Created: generated,
		}),
	}
	if err := b.build(req.Scope, generated); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := b.c.Output(&buf); err != nil {
		return nil, stageError(StageCompose, err)
	}

	artifact := &Artifact{
		Filename:    Filename(report.Info, req.Range, generated),
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       b.c.PageCount(),
		Sections:    b.sections,
		GeneratedAt: generated,
	}
	logger.Debug().Strs("sections", b.sections).Int("pages", artifact.Pages).Msg("document composed")

	if e.sink != nil {
		location, err := e.sink.Deliver(ctx, artifact.Filename, artifact.ContentType, artifact.Data)
		if err != nil {
			return nil, stageError(StageSave, err)
		}
		artifact.Location = location
	}
	return artifact, nil
}

// Filename is "<title>_<date range title>_<UTC ISO date>.pdf" with spaces in the title replaced.
func Filename(info domain.ReportInfo, dr domain.DateRange, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf",
		strings.ReplaceAll(info.Title, " ", "_"),
		dr.Title(),
		at.UTC().Format("2006-01-02"),
	)
}

// DocumentTitle is the first line of every export, e.g. "Revenue Report - Monthly (5/20/2025)".
func DocumentTitle(info domain.ReportInfo, dr domain.DateRange, at time.Time) string {
	return fmt.Sprintf("%s - %s (%s)", info.Title, dr.Title(), at.Format("1/2/2006"))
}

func FooterText(at time.Time, page, total int) string {
	return fmt.Sprintf("Generated on %s - Page %d of %d", at.Format("1/2/2006, 3:04:05 PM"), page, total)
}
