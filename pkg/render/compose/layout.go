package compose

// Layout holds the page geometry and typography of an exported report.
// All distances are in the document unit (millimetres by default).
type Layout struct {
	Orientation string
	Unit        string
	PageSize    string
	FontFamily  string

	Margin float64
	// TitleY is the baseline of the document title on the first page.
	TitleY float64
	// ContentTop is where section content starts below the title.
	ContentTop float64
	// ContinuationTop is the cursor position on pages added by a break.
	ContinuationTop float64
	// SafeBreak is the distance from the bottom edge past which no new block may start.
	SafeBreak float64
	// FooterReserve is the band at the bottom kept free for the footer.
	FooterReserve float64
	FooterOffset  float64

	TitleAdvance        float64
	SectionTitleAdvance float64
	NoteAdvance         float64
	ImageSpacing        float64
	TableHeaderAdvance  float64
	RuleAdvance         float64
	RowHeight           float64
	TotalGap            float64
	TotalRuleAdvance    float64

	TitleFontSize   float64
	SummaryFontSize float64
	SectionFontSize float64
	NoteFontSize    float64
	TableFontSize   float64
	FooterFontSize  float64
}

func DefaultLayout() Layout {
	return Layout{
		Orientation: "P",
		Unit:        "mm",
		PageSize:    "A4",
		FontFamily:  "Helvetica",

		Margin:          10,
		TitleY:          20,
		ContentTop:      30,
		ContinuationTop: 20,
		SafeBreak:       60,
		FooterReserve:   20,
		FooterOffset:    10,

		TitleAdvance:        10,
		SectionTitleAdvance: 10,
		NoteAdvance:         10,
		ImageSpacing:        15,
		TableHeaderAdvance:  5,
		RuleAdvance:         5,
		RowHeight:           7,
		TotalGap:            3,
		TotalRuleAdvance:    8,

		TitleFontSize:   18,
		SummaryFontSize: 16,
		SectionFontSize: 14,
		NoteFontSize:    12,
		TableFontSize:   10,
		FooterFontSize:  10,
	}
}
