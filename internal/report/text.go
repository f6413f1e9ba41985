package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/dataspectre/internal/classifier"
)

// TextReporter generates human-readable terminal reports
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

// Generate generates a text report
func (r *TextReporter) Generate(data Data) error {
	// Header
	fmt.Fprintf(r.writer, "Dataspectre Report\n")
	fmt.Fprintf(r.writer, "==================\n\n")
	fmt.Fprintf(r.writer, "Scan Time: %s\n", data.ScannedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.writer, "Repository: %s\n", data.RepoPath)
	fmt.Fprintf(r.writer, "Total References: %d\n\n", data.TotalDatasets)

	if data.TotalDatasets == 0 {
		fmt.Fprintf(r.writer, "%s\n", color.GreenString("No dataset references found"))
		return nil
	}

	r.printTypeSummary(data.Types)
	r.printReferences(data.Datasets)
	r.printRiskSummary(data.Datasets)

	return nil
}

func (r *TextReporter) printTypeSummary(types map[string]int) {
	fmt.Fprintf(r.writer, "Reference Types\n")
	fmt.Fprintf(r.writer, "---------------\n")
	for _, kind := range sortedKinds(types) {
		fmt.Fprintf(r.writer, "%s: %d\n", titleKind(kind), types[kind])
	}
	fmt.Fprintf(r.writer, "\n")
}

func (r *TextReporter) printReferences(datasets []classifier.Enriched) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.writer)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Reference", "Type", "File", "Licence", "Risk"})
	for _, d := range datasets {
		tw.AppendRow(table.Row{
			d.Value,
			titleKind(string(d.Kind)),
			d.OriginFile,
			d.Licence,
			riskString(d.Risk),
		})
	}
	tw.Render()
	fmt.Fprintf(r.writer, "\n")
}

func (r *TextReporter) printRiskSummary(datasets []classifier.Enriched) {
	review := 0
	for _, d := range datasets {
		if d.Risk == classifier.RiskReview {
			review++
		}
	}

	if review > 0 {
		fmt.Fprintf(r.writer, "%s: %d\n", color.YellowString("Needs Review"), review)
		for _, d := range datasets {
			if d.Risk != classifier.RiskReview {
				continue
			}
			fmt.Fprintf(r.writer, "  %s: %s\n", color.YellowString("[REVIEW]"), d.Value)
			if d.Notes != "" {
				fmt.Fprintf(r.writer, "    %s\n", d.Notes)
			}
		}
		fmt.Fprintf(r.writer, "\n")
	}

	if low := len(datasets) - review; low > 0 {
		fmt.Fprintf(r.writer, "%s\n", color.GreenString("Low Risk: %d", low))
	}
}

func riskString(risk classifier.Risk) string {
	if risk == classifier.RiskLow {
		return color.GreenString(string(risk))
	}
	return color.YellowString(string(risk))
}
