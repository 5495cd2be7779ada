package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/payroll"
)

type TableConfig struct {
	RegionWidth  int
	WrittenWidth int
	DroppedWidth int
	NoteWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		RegionWidth:  20,
		WrittenWidth: 8,
		DroppedWidth: 8,
		NoteWidth:    24,
	}
}

// Reporter prints a console summary of a generated payroll report: the
// resolved week, the output file, and how each region's row budget was
// spent. Truncated regions are the one place a dropped line is visible.
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

func (c *Reporter) Handle(report *payroll.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(region string, written, dropped any, note string) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*v | %-*s |",
				c.config.RegionWidth, region,
				c.config.WrittenWidth, written,
				c.config.DroppedWidth, dropped,
				c.config.NoteWidth, note)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.RegionWidth+2),
				strings.Repeat("-", c.config.WrittenWidth+2),
				strings.Repeat("-", c.config.DroppedWidth+2),
				strings.Repeat("-", c.config.NoteWidth+2))
		},
		"label": func(o domain.RegionOutcome) string {
			return o.Region.Label()
		},
		"note": func(o domain.RegionOutcome) string {
			if o.Truncated() {
				return "row budget exceeded"
			}
			return ""
		},
		"size": func(data []byte) int {
			return len(data)
		},
	}

	tmpl := `
Weekly Payroll Export

Week: {{.Week.StartISO}} to {{.Week.EndISO}}
File: {{.Filename}} ({{size .Data}} bytes)

{{separator}}
{{formatRow "Region" "Written" "Dropped" ""}}
{{separator}}
{{range .Outcomes}}{{formatRow (label .) .Written .Dropped (note .)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
