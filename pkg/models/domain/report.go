package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownDateRange  = errors.New("unknown date range")
	ErrUnknownScope      = errors.New("unknown export scope")
)

type ReportType string

const (
	ReportTypeRevenue  ReportType = "revenue"
	ReportTypePolicies ReportType = "policies"
	ReportTypeClaims   ReportType = "claims"
	ReportTypeClients  ReportType = "clients"
)

// ReportTypes lists every report type in selector order.
var ReportTypes = []ReportType{ReportTypeRevenue, ReportTypePolicies, ReportTypeClaims, ReportTypeClients}

type DateRange string

const (
	DateRangeMonth   DateRange = "month"
	DateRangeQuarter DateRange = "quarter"
	DateRangeYear    DateRange = "year"
)

var DateRanges = []DateRange{DateRangeMonth, DateRangeQuarter, DateRangeYear}

// Scope selects which sections of the reports page an export covers.
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeMain   Scope = "main"
	ScopePolicy Scope = "policy"
	ScopeClaims Scope = "claims"
)

var Scopes = []Scope{ScopeAll, ScopeMain, ScopePolicy, ScopeClaims}

func ParseReportType(s string) (ReportType, error) {
	for _, rt := range ReportTypes {
		if string(rt) == s {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

func ParseDateRange(s string) (DateRange, error) {
	for _, dr := range DateRanges {
		if string(dr) == s {
			return dr, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDateRange, s)
}

func ParseScope(s string) (Scope, error) {
	for _, sc := range Scopes {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScope, s)
}

// ReportInfo holds the presentation metadata of a report type.
type ReportInfo struct {
	Title      string
	TotalLabel string
	SeriesName string
	Currency   bool
}

func (rt ReportType) Info() ReportInfo {
	switch rt {
	case ReportTypeRevenue:
		return ReportInfo{Title: "Revenue Report", TotalLabel: "Total Revenue", SeriesName: "Revenue", Currency: true}
	case ReportTypePolicies:
		return ReportInfo{Title: "Policy Sales Report", TotalLabel: "Total Policies Sold", SeriesName: "Policies"}
	case ReportTypeClaims:
		return ReportInfo{Title: "Claims Report", TotalLabel: "Total Claims Filed", SeriesName: "Claims"}
	case ReportTypeClients:
		return ReportInfo{Title: "New Clients Report", TotalLabel: "Total New Clients", SeriesName: "Clients"}
	default:
		return ReportInfo{Title: "Report"}
	}
}

func (dr DateRange) Title() string {
	switch dr {
	case DateRangeMonth:
		return "Monthly"
	case DateRangeQuarter:
		return "Quarterly"
	case DateRangeYear:
		return "Yearly"
	default:
		return ""
	}
}

// Period is the caption shown next to the report header.
func (dr DateRange) Period() string {
	switch dr {
	case DateRangeMonth:
		return "Jan - May 2025"
	case DateRangeQuarter:
		return "Q1 - Q2 2025"
	default:
		return "2024 - 2025"
	}
}

// Point is one label/value pair of a report series.
type Point struct {
	Label string
	Value float64
}

// Series is the ordered data of one report type at one date range granularity.
type Series struct {
	Type   ReportType
	Range  DateRange
	Points []Point
}

// Total sums every point of the series. It is derived on each call.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.Value
	}
	return total
}

// PercentOfTotal returns value/total*100, or 0 when the total is zero.
func (s Series) PercentOfTotal(value float64) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return value / total * 100
}

// Clone returns a copy that shares no backing array with s.
func (s Series) Clone() Series {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	return Series{Type: s.Type, Range: s.Range, Points: points}
}

// BreakdownRow is one category of a breakdown table, e.g. a policy type or a claim status.
type BreakdownRow struct {
	Name   string
	Label  string
	Count  int
	Amount float64
	Color  string
}

// Breakdown is a categorical distribution rendered as a pie chart and a table.
type Breakdown struct {
	Title       string
	NameHeader  string
	CountHeader string
	AmountHead  string
	Rows        []BreakdownRow
}

func (b Breakdown) Clone() Breakdown {
	rows := make([]BreakdownRow, len(b.Rows))
	copy(rows, b.Rows)
	b.Rows = rows
	return b
}

func (b Breakdown) TotalCount() int {
	var total int
	for _, r := range b.Rows {
		total += r.Count
	}
	return total
}
