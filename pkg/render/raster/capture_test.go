package raster

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mainSection() *view.Node {
	return view.Container("main", "card",
		view.Heading("Monthly Revenue Report"),
		view.Text("Jan - May 2025"),
		view.Chart(view.ChartBar, "Revenue"),
		view.Container("", view.ClassTableResponsive, view.TableNode(view.Table{
			Columns: []view.Column{{Header: "Period"}, {Header: "Value", Align: view.AlignRight}},
			Rows:    [][]string{{"Jan", "$35,000"}, {"Feb", "$42,000"}},
		})),
	)
}

func TestCapture_CloneRestoresCharts(t *testing.T) {
	section := mainSection()
	legend := view.Chart(view.ChartPie, "hidden already")
	legend.Hidden = true
	section.Append(legend)
	doc := view.NewDocument(view.Container("page", "", section))

	bm, err := NewCapturer(nil).Capture(context.Background(), doc, section, ModeClone)
	require.NoError(t, err)

	assert.False(t, section.QueryAll(view.KindChart)[0].Hidden)
	assert.True(t, legend.Hidden)
	assert.Equal(t, 0, doc.OffscreenCount())

	img, err := png.Decode(bytes.NewReader(bm.PNG))
	require.NoError(t, err)
	assert.Equal(t, bm.Width, img.Bounds().Dx())
	assert.Equal(t, bm.Height, img.Bounds().Dy())
	assert.Zero(t, bm.Width%2)
}

func TestCapture_TableOnly(t *testing.T) {
	section := mainSection()
	doc := view.NewDocument(view.Container("page", "", section))
	capturer := NewCapturer(nil)

	table, err := capturer.Capture(context.Background(), doc, section, ModeTable)
	require.NoError(t, err)
	whole, err := capturer.Capture(context.Background(), doc, section, ModeClone)
	require.NoError(t, err)

	assert.Less(t, table.Height, whole.Height)
}

func TestCapture_Failures(t *testing.T) {
	section := mainSection()
	doc := view.NewDocument(view.Container("page", ""))
	capturer := NewCapturer(nil)

	_, err := capturer.Capture(context.Background(), doc, section, ModeClone)
	assert.ErrorIs(t, err, ErrDetached)

	bare := view.Container("claims", "card", view.Heading("Claims Analysis"), view.Chart(view.ChartPie, "Claims"))
	doc = view.NewDocument(view.Container("page", "", bare))
	_, err = capturer.Capture(context.Background(), doc, bare, ModeTable)
	assert.ErrorIs(t, err, ErrMissingTable)
	assert.False(t, bare.QueryAll(view.KindChart)[0].Hidden)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = capturer.Capture(ctx, doc, bare, ModeClone)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPainter_RejectsVisibleCharts(t *testing.T) {
	_, err := NewPainter().Render(mainSection())
	assert.ErrorIs(t, err, ErrUnsupportedContent)

	_, err = NewPainter().Render(view.Container("", ""))
	assert.ErrorIs(t, err, ErrEmptyCapture)
}

func TestBitmap_ScaledHeight(t *testing.T) {
	bm := Bitmap{Width: 800, Height: 400}
	assert.InDelta(t, 95.0, bm.ScaledHeight(190), 1e-9)
	assert.Zero(t, Bitmap{}.ScaledHeight(190))
}
