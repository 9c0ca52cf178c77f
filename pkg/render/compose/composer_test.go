package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/de-tools/insure-atlas/pkg/render/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitmap(t *testing.T, w, h int) raster.Bitmap {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return raster.Bitmap{PNG: buf.Bytes(), Width: w, Height: h}
}

func newComposer() *Composer {
	return New(DefaultLayout(), Meta{
		Title:   "Revenue Report",
		Creator: "insure-atlas",
		Created: time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC),
	})
}

func TestComposer_TitleAndImageAdvanceCursor(t *testing.T) {
	c := newComposer()
	assert.Equal(t, 20.0, c.CursorY())
	assert.Equal(t, 1, c.PageIndex())
	assert.InDelta(t, 190.0, c.ContentWidth(), 0.01)

	require.NoError(t, c.PlaceTitle("Revenue Report - Monthly (5/20/2025)"))
	assert.Equal(t, 30.0, c.CursorY())

	require.NoError(t, c.PlaceImage(bitmap(t, 800, 400), c.ContentWidth()))
	assert.InDelta(t, 30+95+15, c.CursorY(), 0.01)

	require.NoError(t, c.PlaceNote("Note: Revenue Report chart data is included in the report summary."))
	assert.InDelta(t, 150, c.CursorY(), 0.01)

	placements := c.Placements()
	require.Len(t, placements, 3)
	assert.Equal(t, PlacedTitle, placements[0].Kind)
	assert.Equal(t, 20.0, placements[0].Y)
	assert.Equal(t, PlacedImage, placements[1].Kind)
	assert.InDelta(t, 95, placements[1].Height, 0.01)
	assert.Equal(t, PlacedNote, placements[2].Kind)
}

func TestComposer_BreakIfPastSafe(t *testing.T) {
	c := newComposer()

	c.ResetCursor(236.9)
	require.NoError(t, c.BreakIfPastSafe())
	assert.Equal(t, 1, c.PageCount())

	c.ResetCursor(237.5)
	require.NoError(t, c.BreakIfPastSafe())
	assert.Equal(t, 2, c.PageCount())
	assert.Equal(t, 2, c.PageIndex())
	assert.Equal(t, 20.0, c.CursorY())
}

func TestComposer_ImageStartsNewPagePastThreshold(t *testing.T) {
	c := newComposer()
	c.ResetCursor(250)

	require.NoError(t, c.PlaceImage(bitmap(t, 400, 100), 190))

	p := c.Placements()[0]
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20.0, p.Y)
}

func TestComposer_EnsureRoom(t *testing.T) {
	c := newComposer()

	c.ResetCursor(150)
	require.NoError(t, c.EnsureRoom(100))
	assert.Equal(t, 1, c.PageCount())

	require.NoError(t, c.EnsureRoom(200))
	assert.Equal(t, 2, c.PageCount())

	require.NoError(t, c.EnsureRoom(400))
	assert.Equal(t, 2, c.PageCount())
}

func TestComposer_PlaceTable(t *testing.T) {
	c := newComposer()
	c.ResetCursor(30)

	err := c.PlaceTable(TableSpec{
		Columns: []TableColumn{{Header: "Period"}, {Header: "Value", Align: AlignRight}},
		Rows:    [][]string{{"Jan", "$35,000"}, {"Feb", "$42,000"}},
		Total:   []string{"Total Revenue", "$77,000"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30+5+5+7+7+3+8+7, c.CursorY(), 0.01)

	p := c.Placements()[0]
	assert.Equal(t, PlacedTable, p.Kind)
	assert.InDelta(t, 42, p.Height, 0.01)
}

func TestComposer_PlaceTableValidation(t *testing.T) {
	c := newComposer()

	err := c.PlaceTable(TableSpec{})
	assert.ErrorIs(t, err, ErrColumnMismatch)

	err = c.PlaceTable(TableSpec{
		Columns: []TableColumn{{Header: "Period"}, {Header: "Value"}},
		Rows:    [][]string{{"Jan"}},
	})
	assert.ErrorIs(t, err, ErrColumnMismatch)
}

func TestComposer_LongTablePaginates(t *testing.T) {
	c := newComposer()
	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Row %d", i), "1"}
	}

	require.NoError(t, c.PlaceTable(TableSpec{
		Columns: []TableColumn{{Header: "Period"}, {Header: "Value", Align: AlignRight}},
		Rows:    rows,
	}))
	assert.Equal(t, 2, c.PageCount())
	assert.LessOrEqual(t, c.CursorY(), 297.0-20+7)
}

func TestComposer_StampFootersOnce(t *testing.T) {
	c := newComposer()
	require.NoError(t, c.PlaceTitle("Claims Report"))
	require.NoError(t, c.NewPage())
	require.NoError(t, c.PlaceTitle("Report Data Summary"))

	require.NoError(t, c.StampFooters(func(page, total int) string {
		return fmt.Sprintf("Page %d of %d", page, total)
	}))

	var footers []Placement
	for _, p := range c.Placements() {
		if p.Kind == PlacedFooter {
			footers = append(footers, p)
		}
	}
	require.Len(t, footers, 2)
	assert.Equal(t, "Page 1 of 2", footers[0].Text)
	assert.Equal(t, "Page 2 of 2", footers[1].Text)
	assert.InDelta(t, 287.0, footers[1].Y, 0.01)

	assert.ErrorIs(t, c.StampFooters(func(int, int) string { return "" }), ErrSealed)
	assert.ErrorIs(t, c.PlaceTitle("late"), ErrSealed)
	assert.ErrorIs(t, c.NewPage(), ErrSealed)
	assert.ErrorIs(t, c.PlaceImage(bitmap(t, 10, 10), 190), ErrSealed)

	var out bytes.Buffer
	require.NoError(t, c.Output(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestComposer_RejectsEmptyBitmap(t *testing.T) {
	c := newComposer()
	assert.ErrorIs(t, c.PlaceImage(raster.Bitmap{}, 190), ErrEmptyBitmap)
	assert.Empty(t, c.Placements())
}
