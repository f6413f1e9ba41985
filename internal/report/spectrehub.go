package report

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppiankov/dataspectre/internal/classifier"
)

// spectre/v1 envelope types

type spectreEnvelope struct {
	Schema    string           `json:"schema"`
	Tool      string           `json:"tool"`
	Version   string           `json:"version"`
	Timestamp string           `json:"timestamp"`
	Target    spectreTarget    `json:"target"`
	Findings  []spectreFinding `json:"findings"`
	Summary   spectreSummary   `json:"summary"`
}

type spectreTarget struct {
	Type    string `json:"type"`
	URIHash string `json:"uri_hash"`
}

type spectreFinding struct {
	ID       string         `json:"id"`
	Severity string         `json:"severity"`
	Location string         `json:"location"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type spectreSummary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Info   int `json:"info"`
}

// HashRepo produces a sha256 hash of the repository path for target
// identification without leaking the path itself.
func HashRepo(repoPath string) string {
	h := sha256.Sum256([]byte(repoPath))
	return fmt.Sprintf("sha256:%x", h)
}

// SpectreHubReporter generates spectre/v1 JSON envelope output.
type SpectreHubReporter struct {
	writer io.Writer
}

// NewSpectreHubReporter creates a new SpectreHub reporter.
func NewSpectreHubReporter(w io.Writer) *SpectreHubReporter {
	return &SpectreHubReporter{writer: w}
}

// Generate writes review-risk references as a spectre/v1 envelope. Low-risk
// references carry no finding, matching the family convention of reporting
// only actionable entries.
func (r *SpectreHubReporter) Generate(data Data) error {
	envelope := spectreEnvelope{
		Schema:    "spectre/v1",
		Tool:      data.Tool,
		Version:   data.Version,
		Timestamp: data.ScannedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Target: spectreTarget{
			Type:    "repository",
			URIHash: HashRepo(data.RepoPath),
		},
	}

	for _, d := range data.Datasets {
		if d.Risk == classifier.RiskLow {
			continue
		}
		severity := "medium"
		envelope.Findings = append(envelope.Findings, spectreFinding{
			ID:       string(d.Kind),
			Severity: severity,
			Location: d.OriginFile,
			Message:  fmt.Sprintf("%s: licence %q needs review - %s", d.Value, d.Licence, d.Notes),
			Metadata: map[string]any{
				"licence":        d.Licence,
				"licence_source": string(d.LicenceSource),
			},
		})
		countSeverity(&envelope.Summary, severity)
	}

	envelope.Summary.Total = len(envelope.Findings)
	if envelope.Findings == nil {
		envelope.Findings = []spectreFinding{}
	}

	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

func countSeverity(s *spectreSummary, severity string) {
	switch severity {
	case "high":
		s.High++
	case "medium":
		s.Medium++
	case "low":
		s.Low++
	case "info":
		s.Info++
	}
}
