package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/de-tools/insure-atlas/pkg/render/view"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	ErrUnsupportedContent = errors.New("unsupported content")
	ErrEmptyCapture       = errors.New("nothing visible to capture")
)

var (
	colorText   = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	colorMuted  = color.RGBA{R: 108, G: 117, B: 125, A: 255}
	colorHeader = color.RGBA{R: 248, G: 249, B: 250, A: 255}
	colorRule   = color.RGBA{R: 222, G: 226, B: 230, A: 255}
)

// Bitmap is a PNG-encoded capture with its pixel dimensions.
type Bitmap struct {
	PNG    []byte
	Width  int
	Height int
}

// ScaledHeight returns the height that keeps the aspect ratio at the given width.
func (b Bitmap) ScaledHeight(width float64) float64 {
	if b.Width == 0 {
		return 0
	}
	return float64(b.Height) * width / float64(b.Width)
}

// Painter draws a view subtree onto a white canvas.
type Painter struct {
	Face     font.Face
	Scale    int
	Padding  int
	RowPad   int
	CellPad  int
	MinWidth int
}

func NewPainter() *Painter {
	return &Painter{
		Face:     basicfont.Face7x13,
		Scale:    2,
		Padding:  12,
		RowPad:   9,
		CellPad:  12,
		MinWidth: 320,
	}
}

func (p *Painter) Render(n *view.Node) (Bitmap, error) {
	w, h, err := p.measure(n)
	if err != nil {
		return Bitmap{}, err
	}
	if h == 0 {
		return Bitmap{}, ErrEmptyCapture
	}
	w = max(w+2*p.Padding, p.MinWidth)
	h += 2 * p.Padding

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, xdraw.Src)
	p.paint(canvas, n, p.Padding, p.Padding, w-2*p.Padding)

	out := image.Image(canvas)
	if p.Scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, w*p.Scale, h*p.Scale))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
		out = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return Bitmap{}, fmt.Errorf("encode png: %w", err)
	}
	b := out.Bounds()
	return Bitmap{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

func (p *Painter) lineHeight() int {
	return p.Face.Metrics().Height.Ceil()
}

func (p *Painter) textWidth(s string) int {
	return font.MeasureString(p.Face, s).Ceil()
}

func (p *Painter) rowHeight() int {
	return p.lineHeight() + p.RowPad
}

func (p *Painter) measure(n *view.Node) (int, int, error) {
	if n.Hidden {
		return 0, 0, nil
	}
	switch n.Kind {
	case view.KindHeading:
		return p.textWidth(n.Text), p.lineHeight() + 10, nil
	case view.KindText:
		return p.textWidth(n.Text), p.lineHeight() + 6, nil
	case view.KindTable:
		if n.Table == nil {
			return 0, 0, fmt.Errorf("%w: table node without data", ErrUnsupportedContent)
		}
		widths := p.columnWidths(n.Table)
		total := 0
		for _, cw := range widths {
			total += cw
		}
		return total, (len(n.Table.Rows) + 1) * p.rowHeight(), nil
	case view.KindChart:
		return 0, 0, fmt.Errorf("%w: visible %s chart", ErrUnsupportedContent, n.Chart.Kind)
	case view.KindContainer:
		var w, h int
		for _, c := range n.Children {
			cw, ch, err := p.measure(c)
			if err != nil {
				return 0, 0, err
			}
			w = max(w, cw)
			h += ch
		}
		return w, h, nil
	default:
		return 0, 0, fmt.Errorf("%w: node kind %s", ErrUnsupportedContent, n.Kind)
	}
}

func (p *Painter) columnWidths(t *view.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = p.textWidth(c.Header) + 2*p.CellPad
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], p.textWidth(row[i])+2*p.CellPad)
		}
	}
	return widths
}

// paint draws n at (x, y) and returns the height it consumed.
func (p *Painter) paint(dst *image.RGBA, n *view.Node, x, y, width int) int {
	if n.Hidden {
		return 0
	}
	switch n.Kind {
	case view.KindHeading:
		p.text(dst, n.Text, x, y, colorText, true)
		return p.lineHeight() + 10
	case view.KindText:
		p.text(dst, n.Text, x, y, colorMuted, n.Bold)
		return p.lineHeight() + 6
	case view.KindTable:
		return p.table(dst, n.Table, x, y)
	case view.KindContainer:
		consumed := 0
		for _, c := range n.Children {
			consumed += p.paint(dst, c, x, y+consumed, width)
		}
		return consumed
	}
	return 0
}

func (p *Painter) table(dst *image.RGBA, t *view.Table, x, y int) int {
	widths := p.columnWidths(t)
	tableWidth := 0
	for _, w := range widths {
		tableWidth += w
	}
	rh := p.rowHeight()

	fill(dst, image.Rect(x, y, x+tableWidth, y+rh), colorHeader)
	p.row(dst, t.Columns, headers(t.Columns), widths, x, y, true)
	fill(dst, image.Rect(x, y+rh-1, x+tableWidth, y+rh), colorRule)

	for i, r := range t.Rows {
		top := y + (i+1)*rh
		p.row(dst, t.Columns, r, widths, x, top, false)
		fill(dst, image.Rect(x, top+rh-1, x+tableWidth, top+rh), colorRule)
	}
	return (len(t.Rows) + 1) * rh
}

func (p *Painter) row(dst *image.RGBA, cols []view.Column, cells []string, widths []int, x, y int, bold bool) {
	cx := x
	for i, w := range widths {
		if i >= len(cells) {
			break
		}
		tx := cx + p.CellPad
		if cols[i].Align == view.AlignRight {
			tx = cx + w - p.CellPad - p.textWidth(cells[i])
		}
		p.text(dst, cells[i], tx, y+p.RowPad/2, colorText, bold)
		cx += w
	}
}

// text draws s with its top-left corner at (x, y). Bold is emulated by a one pixel overstrike.
func (p *Painter) text(dst *image.RGBA, s string, x, y int, c color.Color, bold bool) {
	ascent := p.Face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: p.Face}
	d.Dot = fixed.P(x, y+ascent)
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(x+1, y+ascent)
		d.DrawString(s)
	}
}

func headers(cols []view.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}
