package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/dataspectre/internal/classifier"
	"github.com/ppiankov/dataspectre/internal/scanner"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

// SARIFReporter generates SARIF 2.1.0 output for CI code-scanning uploads.
type SARIFReporter struct {
	writer io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(w io.Writer) *SARIFReporter {
	return &SARIFReporter{writer: w}
}

type sarifLog struct {
	Schema  string     `json:"$schema,omitempty"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name,omitempty"`
	ShortDescription sarifMessage `json:"shortDescription,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level,omitempty"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation *sarifPhysicalLocation `json:"physicalLocation,omitempty"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRuleMeta struct {
	Name        string
	Description string
}

var sarifRules = map[scanner.Kind]sarifRuleMeta{
	scanner.KindLoaderCall: {
		Name:        "HfLoaderCall",
		Description: "Dataset loaded through a Hugging Face loader call",
	},
	scanner.KindTabularRead: {
		Name:        "TabularReadCall",
		Description: "Tabular data file read through a CSV-reading call",
	},
	scanner.KindFileLiteral: {
		Name:        "FileURLLiteral",
		Description: "Quoted literal naming a data file",
	},
	scanner.KindDatasetURL: {
		Name:        "HfDatasetURL",
		Description: "URL pointing at a hosted dataset card",
	},
}

// Generate writes scan results as a SARIF log with one result per reference.
func (r *SARIFReporter) Generate(data Data) error {
	results := make([]sarifResult, 0, len(data.Datasets))
	usedRules := make(map[string]sarifRule)

	for _, d := range data.Datasets {
		ruleID := sarifRuleID(d.Kind)
		if meta, ok := sarifRules[d.Kind]; ok {
			usedRules[ruleID] = sarifRule{
				ID:               ruleID,
				Name:             meta.Name,
				ShortDescription: sarifMessage{Text: meta.Description},
			}
		}

		results = append(results, sarifResult{
			RuleID:  ruleID,
			Level:   sarifLevel(d.Risk),
			Message: sarifMessage{Text: sarifResultMessage(d)},
			Locations: []sarifLocation{{
				PhysicalLocation: &sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: d.OriginFile},
				},
			}},
		})
	}

	rules := make([]sarifRule, 0, len(usedRules))
	for _, kind := range []scanner.Kind{scanner.KindLoaderCall, scanner.KindTabularRead, scanner.KindFileLiteral, scanner.KindDatasetURL} {
		if rule, ok := usedRules[sarifRuleID(kind)]; ok {
			rules = append(rules, rule)
		}
	}

	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:    data.Tool,
					Version: data.Version,
					Rules:   rules,
				},
			},
			Results: results,
		}},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}

func sarifRuleID(kind scanner.Kind) string {
	return "dataspectre/" + strings.ToUpper(string(kind))
}

func sarifLevel(risk classifier.Risk) string {
	if risk == classifier.RiskLow {
		return "note"
	}
	return "warning"
}

func sarifResultMessage(d classifier.Enriched) string {
	msg := fmt.Sprintf("%s: licence %q (%s)", d.Value, d.Licence, d.LicenceSource)
	if d.Notes != "" {
		msg += " - " + d.Notes
	}
	return msg
}
