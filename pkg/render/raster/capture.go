package raster

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/render/view"
)

var (
	ErrDetached     = errors.New("section is not attached to the document")
	ErrMissingTable = errors.New("section has no table")
)

type Mode int

const (
	// ModeClone captures an off-screen copy of the whole section.
	ModeClone Mode = iota
	// ModeTable captures only the section's table wrapper.
	ModeTable
)

func (m Mode) String() string {
	if m == ModeTable {
		return "table"
	}
	return "clone"
}

// Capturer turns mounted sections into bitmaps. Charts cannot be painted, so they
// are hidden for the duration of a capture and restored afterwards.
type Capturer struct {
	painter *Painter
}

func NewCapturer(painter *Painter) *Capturer {
	if painter == nil {
		painter = NewPainter()
	}
	return &Capturer{painter: painter}
}

func (c *Capturer) Capture(ctx context.Context, doc *view.Document, section *view.Node, mode Mode) (Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return Bitmap{}, err
	}
	if section == nil || !doc.Attached(section) {
		return Bitmap{}, ErrDetached
	}

	restore := hideCharts(section)
	defer restore()

	switch mode {
	case ModeClone:
		clone := section.Clone()
		if err := doc.AttachOffscreen(clone); err != nil {
			return Bitmap{}, fmt.Errorf("attach clone: %w", err)
		}
		defer doc.DetachOffscreen(clone)
		return c.painter.Render(clone)
	case ModeTable:
		wrapper := section.QueryClass(view.ClassTableResponsive)
		if wrapper == nil {
			return Bitmap{}, fmt.Errorf("%w: %q", ErrMissingTable, section.ID)
		}
		return c.painter.Render(wrapper)
	default:
		return Bitmap{}, fmt.Errorf("unknown capture mode %d", mode)
	}
}

// hideCharts hides every chart of the section and returns a func restoring the
// visibility each chart had before.
func hideCharts(section *view.Node) func() {
	charts := section.QueryAll(view.KindChart)
	previous := make([]bool, len(charts))
	for i, ch := range charts {
		previous[i] = ch.Hidden
		ch.Hidden = true
	}
	return func() {
		for i, ch := range charts {
			ch.Hidden = previous[i]
		}
	}
}
