package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/insure-atlas/pkg/render/raster"
	"github.com/go-pdf/fpdf"
)

var (
	ErrSealed         = errors.New("document footers already stamped")
	ErrEmptyBitmap    = errors.New("bitmap has no pixels")
	ErrColumnMismatch = errors.New("row does not match table columns")
)

var (
	colorTitle = [3]int{40, 40, 40}
	colorMuted = [3]int{100, 100, 100}
	colorBody  = [3]int{0, 0, 0}
	colorRule  = [3]int{200, 200, 200}
)

type PlacementKind string

const (
	PlacedTitle        PlacementKind = "title"
	PlacedSectionTitle PlacementKind = "section_title"
	PlacedNote         PlacementKind = "note"
	PlacedImage        PlacementKind = "image"
	PlacedTable        PlacementKind = "table"
	PlacedFooter       PlacementKind = "footer"
)

// Placement records one block written to the document.
type Placement struct {
	Page   int
	Kind   PlacementKind
	Text   string
	Y      float64
	Height float64
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

type TableColumn struct {
	Header string
	Align  Align
}

// TableSpec is a plain-text table: bold header, rule, rows, rule, bold total row.
type TableSpec struct {
	Columns []TableColumn
	Rows    [][]string
	Total   []string
}

type Meta struct {
	Title   string
	Creator string
	Created time.Time
}

// Composer lays blocks out top to bottom on fixed-size pages, tracking the cursor
// and breaking pages when content would run into the bottom of the page.
type Composer struct {
	pdf        *fpdf.Fpdf
	layout     Layout
	pageWidth  float64
	pageHeight float64
	cursorY    float64
	images     int
	sealed     bool
	placements []Placement
}

func New(layout Layout, meta Meta) *Composer {
	pdf := fpdf.New(layout.Orientation, layout.Unit, layout.PageSize, "")
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, 0)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	return &Composer{
		pdf:        pdf,
		layout:     layout,
		pageWidth:  w,
		pageHeight: h,
		cursorY:    layout.TitleY,
	}
}

func (c *Composer) CursorY() float64 {
	return c.cursorY
}

// PageIndex is the 1-based number of the page currently written to.
func (c *Composer) PageIndex() int {
	return c.pdf.PageNo()
}

func (c *Composer) PageCount() int {
	return c.pdf.PageCount()
}

func (c *Composer) ContentWidth() float64 {
	return c.pageWidth - 2*c.layout.Margin
}

func (c *Composer) Placements() []Placement {
	return append([]Placement(nil), c.placements...)
}

// ResetCursor moves the cursor to y on the current page.
func (c *Composer) ResetCursor(y float64) {
	c.cursorY = y
}

func (c *Composer) NewPage() error {
	if c.sealed {
		return ErrSealed
	}
	c.pdf.AddPage()
	c.cursorY = c.layout.ContinuationTop
	return c.err("add page")
}

// BreakIfPastSafe starts a new page when the cursor is below the safe-break threshold.
func (c *Composer) BreakIfPastSafe() error {
	if c.cursorY > c.pageHeight-c.layout.SafeBreak {
		return c.NewPage()
	}
	return nil
}

// EnsureRoom starts a new page when a block of the given height would not fit above
// the footer band. A block taller than an empty page is left to overflow.
func (c *Composer) EnsureRoom(height float64) error {
	if err := c.BreakIfPastSafe(); err != nil {
		return err
	}
	if c.cursorY+height > c.bodyLimit() && c.cursorY > c.layout.ContinuationTop {
		return c.NewPage()
	}
	return nil
}

func (c *Composer) PlaceTitle(text string) error {
	return c.centered(PlacedTitle, text, c.layout.TitleFontSize, colorTitle, c.layout.TitleAdvance)
}

// PlaceHeading is PlaceTitle at a custom font size.
func (c *Composer) PlaceHeading(text string, size float64) error {
	return c.centered(PlacedTitle, text, size, colorTitle, c.layout.TitleAdvance)
}

func (c *Composer) PlaceSectionTitle(text string) error {
	return c.centered(PlacedSectionTitle, text, c.layout.SectionFontSize, colorTitle, c.layout.SectionTitleAdvance)
}

func (c *Composer) PlaceNote(text string) error {
	return c.centered(PlacedNote, text, c.layout.NoteFontSize, colorMuted, c.layout.NoteAdvance)
}

// PlaceImage writes the bitmap at the left margin scaled to width, keeping its aspect ratio.
func (c *Composer) PlaceImage(bm raster.Bitmap, width float64) error {
	if c.sealed {
		return ErrSealed
	}
	if bm.Width <= 0 || bm.Height <= 0 || len(bm.PNG) == 0 {
		return ErrEmptyBitmap
	}
	if err := c.BreakIfPastSafe(); err != nil {
		return err
	}

	height := bm.ScaledHeight(width)
	c.images++
	name := fmt.Sprintf("capture-%d", c.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(bm.PNG))
	if err := c.err("register image"); err != nil {
		return err
	}
	c.pdf.ImageOptions(name, c.layout.Margin, c.cursorY, width, height, false, opts, 0, "")
	if err := c.err("place image"); err != nil {
		return err
	}

	c.record(PlacedImage, name, height)
	c.cursorY += height + c.layout.ImageSpacing
	return nil
}

// PlaceTable writes spec starting at the cursor. The first column is left aligned at the
// margin; the others are anchored at equal fractions of the content width.
func (c *Composer) PlaceTable(spec TableSpec) error {
	if c.sealed {
		return ErrSealed
	}
	if len(spec.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrColumnMismatch)
	}
	for _, row := range append(append([][]string(nil), spec.Rows...), spec.Total) {
		if row != nil && len(row) != len(spec.Columns) {
			return fmt.Errorf("%w: %d cells for %d columns", ErrColumnMismatch, len(row), len(spec.Columns))
		}
	}

	l := c.layout
	start := c.cursorY
	c.pdf.SetTextColor(colorBody[0], colorBody[1], colorBody[2])
	c.pdf.SetFont(l.FontFamily, "B", l.TableFontSize)
	c.writeRow(spec.Columns, headerCells(spec.Columns))
	c.cursorY += l.TableHeaderAdvance
	c.rule()
	c.cursorY += l.RuleAdvance

	c.pdf.SetFont(l.FontFamily, "", l.TableFontSize)
	for _, row := range spec.Rows {
		if c.cursorY > c.bodyLimit() {
			if err := c.NewPage(); err != nil {
				return err
			}
			c.pdf.SetTextColor(colorBody[0], colorBody[1], colorBody[2])
			c.pdf.SetFont(l.FontFamily, "", l.TableFontSize)
		}
		c.writeRow(spec.Columns, row)
		c.cursorY += l.RowHeight
	}

	if spec.Total != nil {
		c.cursorY += l.TotalGap
		c.rule()
		c.cursorY += l.TotalRuleAdvance
		c.pdf.SetFont(l.FontFamily, "B", l.TableFontSize)
		c.writeRow(spec.Columns, spec.Total)
		c.cursorY += l.RowHeight
	}
	if err := c.err("place table"); err != nil {
		return err
	}

	c.placements = append(c.placements, Placement{
		Page:   c.PageIndex(),
		Kind:   PlacedTable,
		Text:   spec.Columns[0].Header,
		Y:      start,
		Height: c.cursorY - start,
	})
	return nil
}

// StampFooters writes text(page, total) centered at the bottom of every page.
// It can run only once, after all content is placed; the document accepts no
// further content afterwards.
func (c *Composer) StampFooters(text func(page, total int) string) error {
	if c.sealed {
		return ErrSealed
	}
	c.sealed = true

	l := c.layout
	current := c.pdf.PageNo()
	total := c.pdf.PageCount()
	c.pdf.SetFont(l.FontFamily, "", l.FooterFontSize)
	c.pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	for i := 1; i <= total; i++ {
		c.pdf.SetPage(i)
		// SetFont skips unchanged fonts; the size operator must land in this page's stream.
		c.pdf.SetFontSize(l.FooterFontSize)
		s := text(i, total)
		y := c.pageHeight - l.FooterOffset
		c.pdf.Text((c.pageWidth-c.pdf.GetStringWidth(s))/2, y, s)
		c.placements = append(c.placements, Placement{Page: i, Kind: PlacedFooter, Text: s, Y: y})
	}
	c.pdf.SetPage(current)
	return c.err("stamp footers")
}

func (c *Composer) Output(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

func (c *Composer) centered(kind PlacementKind, text string, size float64, color [3]int, advance float64) error {
	if c.sealed {
		return ErrSealed
	}
	c.pdf.SetFont(c.layout.FontFamily, "", size)
	c.pdf.SetTextColor(color[0], color[1], color[2])
	c.pdf.Text((c.pageWidth-c.pdf.GetStringWidth(text))/2, c.cursorY, text)
	if err := c.err(string(kind)); err != nil {
		return err
	}
	c.record(kind, text, advance)
	c.cursorY += advance
	return nil
}

func (c *Composer) writeRow(cols []TableColumn, cells []string) {
	for i, col := range cols {
		s := cells[i]
		if col.Align == AlignLeft {
			x := c.layout.Margin
			if i > 0 {
				x = c.anchor(i-1, len(cols)) + 2
			}
			c.pdf.Text(x, c.cursorY, s)
			continue
		}
		c.pdf.Text(c.anchor(i, len(cols))-c.pdf.GetStringWidth(s), c.cursorY, s)
	}
}

// anchor is the right edge of column i of n.
func (c *Composer) anchor(i, n int) float64 {
	if n == 1 {
		return c.pageWidth - c.layout.Margin
	}
	return c.layout.Margin + c.ContentWidth()*float64(i+1)/float64(n)
}

func (c *Composer) rule() {
	c.pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	c.pdf.Line(c.layout.Margin, c.cursorY, c.pageWidth-c.layout.Margin, c.cursorY)
}

func (c *Composer) bodyLimit() float64 {
	return c.pageHeight - c.layout.FooterReserve
}

func (c *Composer) record(kind PlacementKind, text string, height float64) {
	c.placements = append(c.placements, Placement{
		Page:   c.PageIndex(),
		Kind:   kind,
		Text:   text,
		Y:      c.cursorY,
		Height: height,
	})
}

func (c *Composer) err(op string) error {
	if c.pdf.Ok() {
		return nil
	}
	return fmt.Errorf("%s: %w", op, c.pdf.Error())
}

func headerCells(cols []TableColumn) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Header
	}
	return out
}
