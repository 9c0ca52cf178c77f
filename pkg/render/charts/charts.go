package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/format"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("chart has no data")

const (
	DefaultWidth  = 800
	DefaultHeight = 300
)

// Spec is how a report type is drawn on the dashboard.
type Spec struct {
	Kind  view.ChartKind
	Color string
}

func For(rt domain.ReportType) Spec {
	switch rt {
	case domain.ReportTypePolicies:
		return Spec{Kind: view.ChartLine, Color: "#198754"}
	case domain.ReportTypeClaims:
		return Spec{Kind: view.ChartBar, Color: "#dc3545"}
	case domain.ReportTypeClients:
		return Spec{Kind: view.ChartBar, Color: "#6f42c1"}
	default:
		return Spec{Kind: view.ChartBar, Color: "#0d6efd"}
	}
}

type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight}
}

// Series renders a report series as PNG using the chart kind of its report type.
func (r *Renderer) Series(s domain.Series) ([]byte, error) {
	if len(s.Points) == 0 || s.Total() == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoData, s.Type, s.Range)
	}
	spec := For(s.Type)
	if spec.Kind == view.ChartLine {
		return r.line(s, spec)
	}
	return r.bar(s, spec)
}

// Breakdown renders the counts of a breakdown as a pie, one slice per row.
func (r *Renderer) Breakdown(b domain.Breakdown) ([]byte, error) {
	if b.TotalCount() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, b.Title)
	}
	total := float64(b.TotalCount())
	values := make([]chart.Value, 0, len(b.Rows))
	for _, row := range b.Rows {
		if row.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(row.Count),
			Label: fmt.Sprintf("%s %s", row.Name, format.ShareOfTotal(float64(row.Count), total)),
			Style: chart.Style{FillColor: hex(row.Color), StrokeColor: drawing.ColorWhite},
		})
	}
	pie := chart.PieChart{
		Title:  b.Title,
		Width:  r.Height,
		Height: r.Height,
		Values: values,
	}
	return render(pie)
}

func (r *Renderer) bar(s domain.Series, spec Spec) ([]byte, error) {
	info := s.Type.Info()
	bars := make([]chart.Value, len(s.Points))
	for i, p := range s.Points {
		bars[i] = chart.Value{
			Value: p.Value,
			Label: p.Label,
			Style: chart.Style{FillColor: hex(spec.Color), StrokeColor: hex(spec.Color)},
		}
	}
	bc := chart.BarChart{
		Title:      info.SeriesName,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   max(20, r.Width/(2*len(bars)+2)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: maxValue(s) * 1.1},
			ValueFormatter: axisFormatter(s.Type),
		},
		Bars: bars,
	}
	return render(bc)
}

func (r *Renderer) line(s domain.Series, spec Spec) ([]byte, error) {
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	ticks := make([]chart.Tick, len(s.Points))
	for i, p := range s.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}
	// a single point gets a flat segment so the axis range is not empty
	if len(xs) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
	}

	color := hex(spec.Color)
	ch := chart.Chart{
		Title:      s.Type.Info().SeriesName,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: maxValue(s) * 1.1},
			ValueFormatter: axisFormatter(s.Type),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Type.Info().SeriesName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    6,
				},
			},
		},
	}
	return render(ch)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func render(c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func axisFormatter(rt domain.ReportType) chart.ValueFormatter {
	return func(v interface{}) string {
		f, ok := v.(float64)
		if !ok {
			return fmt.Sprint(v)
		}
		return format.Value(rt, f)
	}
}

func maxValue(s domain.Series) float64 {
	m := 0.0
	for _, p := range s.Points {
		m = max(m, p.Value)
	}
	return m
}

func hex(c string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}
