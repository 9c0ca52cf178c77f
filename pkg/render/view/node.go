// Package view models the rendered reports page: a tree of sections, headings,
// text, tables and charts, each with a visibility flag.
package view

type Kind int

const (
	KindContainer Kind = iota
	KindHeading
	KindText
	KindTable
	KindChart
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindHeading:
		return "heading"
	case KindText:
		return "text"
	case KindTable:
		return "table"
	case KindChart:
		return "chart"
	default:
		return "unknown"
	}
}

// ClassTableResponsive marks the wrapper around a section's data table.
const ClassTableResponsive = "table-responsive"

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

type Column struct {
	Header string
	Align  Align
}

type Table struct {
	Columns []Column
	Rows    [][]string
}

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartPie  ChartKind = "pie"
)

// ChartSlot references a chart by kind. The pixels are produced by the chart renderer,
// never by the rasterizer.
type ChartSlot struct {
	Kind  ChartKind
	Title string
}

type Node struct {
	ID       string
	Class    string
	Kind     Kind
	Text     string
	Bold     bool
	Hidden   bool
	Table    *Table
	Chart    *ChartSlot
	Children []*Node

	parent *Node
}

func Container(id, class string, children ...*Node) *Node {
	n := &Node{ID: id, Class: class, Kind: KindContainer}
	n.Append(children...)
	return n
}

func Heading(text string) *Node {
	return &Node{Kind: KindHeading, Text: text, Bold: true}
}

func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

func TableNode(t Table) *Node {
	return &Node{Kind: KindTable, Table: &t}
}

func Chart(kind ChartKind, title string) *Node {
	return &Node{Kind: KindChart, Chart: &ChartSlot{Kind: kind, Title: title}}
}

func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.parent = n
		n.Children = append(n.Children, c)
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and its descendants depth-first. Returning false prunes the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// QueryAll returns every descendant (n included) of the given kind in document order.
func (n *Node) QueryAll(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// QueryClass returns the first descendant (n included) carrying class, or nil.
func (n *Node) QueryClass(class string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Class == class {
			found = c
			return false
		}
		return true
	})
	return found
}

// Clone deep-copies the subtree. The copy has no parent.
func (n *Node) Clone() *Node {
	cp := &Node{
		ID:     n.ID,
		Class:  n.Class,
		Kind:   n.Kind,
		Text:   n.Text,
		Bold:   n.Bold,
		Hidden: n.Hidden,
	}
	if n.Table != nil {
		t := Table{Columns: append([]Column(nil), n.Table.Columns...)}
		for _, row := range n.Table.Rows {
			t.Rows = append(t.Rows, append([]string(nil), row...))
		}
		cp.Table = &t
	}
	if n.Chart != nil {
		slot := *n.Chart
		cp.Chart = &slot
	}
	for _, c := range n.Children {
		cp.Append(c.Clone())
	}
	return cp
}

func (n *Node) root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}
