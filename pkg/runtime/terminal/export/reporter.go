package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/delivery"
	pdfexport "github.com/de-tools/insure-atlas/pkg/services/export"
)

type TableConfig struct {
	LabelWidth   int
	ValueWidth   int
	PercentWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:   16,
		ValueWidth:   16,
		PercentWidth: 12,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const reportTemplate = `
{{.Heading}}
Period: {{.Period}}
{{.Info.TotalLabel}}: {{.TotalDisplay}}

{{separator}}
{{formatRow "Period" "Value" "% of Total"}}
{{separator}}
{{range .Rows}}{{formatRow .Label .Display .Percent}}
{{end}}{{separator}}
`

const artifactTemplate = `Saved {{.Filename}} ({{.Pages}} {{if eq .Pages 1}}page{{else}}pages{{end}}, {{len .Data}} bytes)
Sections: {{join .Sections ", "}}
{{if .Location}}Location: {{.Location}}
{{end}}`

const profilesTemplate = `{{range .}}{{.Name}}	{{.Type}}	{{if eq .Type "s3"}}s3://{{.Bucket}}/{{.Prefix}}{{else}}{{.Dir}}{{end}}
{{else}}no sink profiles configured
{{end}}`

// Handle prints the series table of a report.
func (c *Reporter) Handle(report dashboard.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(label, value, percent string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value,
				c.config.PercentWidth, percent)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.PercentWidth+2))
		},
	}
	return c.execute("report", reportTemplate, funcMap, report)
}

func (c *Reporter) Artifact(a *pdfexport.Artifact) error {
	return c.execute("artifact", artifactTemplate, template.FuncMap{"join": strings.Join}, a)
}

func (c *Reporter) Profiles(profiles []delivery.Profile) error {
	return c.execute("profiles", profilesTemplate, nil, profiles)
}

func (c *Reporter) execute(name, text string, funcs template.FuncMap, data any) error {
	t, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}
