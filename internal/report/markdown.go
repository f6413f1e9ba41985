package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter renders the human-readable summary document.
type MarkdownReporter struct {
	writer io.Writer
}

// NewMarkdownReporter creates a new markdown reporter
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{writer: w}
}

// Generate writes the markdown summary document.
func (r *MarkdownReporter) Generate(data Data) error {
	_, err := io.WriteString(r.writer, Markdown(data))
	return err
}

// Markdown renders the summary.md document for a scan.
func Markdown(data Data) string {
	var b strings.Builder

	b.WriteString("# Dataset Passport Summary\n\n")
	fmt.Fprintf(&b, "**Scanned at:** %s  \n", data.ScannedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Total datasets found:** %d\n\n", data.TotalDatasets)

	b.WriteString("## Dataset Types\n\n")
	for _, kind := range sortedKinds(data.Types) {
		fmt.Fprintf(&b, "- **%s:** %d\n", titleKind(kind), data.Types[kind])
	}

	if len(data.Datasets) > 0 {
		b.WriteString("\n## Dataset References\n\n")
		for i, d := range data.Datasets {
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, d.Value)
			fmt.Fprintf(&b, "- **Type:** %s\n", titleKind(string(d.Kind)))
			fmt.Fprintf(&b, "- **File:** `%s`\n", d.OriginFile)
			fmt.Fprintf(&b, "- **Licence:** %s  \n", d.Licence)
			fmt.Fprintf(&b, "- **Source:** %s  \n", d.LicenceSource)
			fmt.Fprintf(&b, "- **Risk:** %s  \n", d.Risk)
			if d.Notes != "" {
				fmt.Fprintf(&b, "- **Notes:** %s\n", d.Notes)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\n## No datasets found\n\nNo dataset references were detected in this repository.\n")
	}

	b.WriteString("\n---\n*Generated by dataspectre*\n")
	return b.String()
}
