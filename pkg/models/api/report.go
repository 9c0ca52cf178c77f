package api

type ReportRow struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Percent string  `json:"percent_of_total"`
}

type Report struct {
	Type         string      `json:"type"`
	Range        string      `json:"range"`
	Title        string      `json:"title"`
	Heading      string      `json:"heading"`
	Period       string      `json:"period"`
	TotalLabel   string      `json:"total_label"`
	Total        float64     `json:"total"`
	TotalDisplay string      `json:"total_display"`
	Rows         []ReportRow `json:"rows"`
}

type BreakdownRow struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Amount  float64 `json:"amount"`
	Display string  `json:"amount_display"`
	Color   string  `json:"color,omitempty"`
}

type Breakdown struct {
	Title       string         `json:"title"`
	NameHeader  string         `json:"name_header"`
	CountHeader string         `json:"count_header"`
	AmountHead  string         `json:"amount_header"`
	Rows        []BreakdownRow `json:"rows"`
}
