package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/dataspectre/internal/report"
)

// Finding is a flattened, identity-comparable reference from a passport report.
type Finding struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Risk  string `json:"risk"`
}

func (f Finding) key() string {
	return fmt.Sprintf("%s|%s|%s", f.Kind, strings.ToLower(f.Value), f.Risk)
}

// DiffResult holds the outcome of comparing current findings against a baseline.
type DiffResult struct {
	New       []Finding
	Resolved  []Finding
	Unchanged []Finding
}

// Flatten converts a passport report into a flat finding list.
func Flatten(data report.Data) []Finding {
	var findings []Finding
	for _, d := range data.Datasets {
		findings = append(findings, Finding{
			Kind:  string(d.Kind),
			Value: d.Value,
			Risk:  string(d.Risk),
		})
	}
	return findings
}

// Load reads a previous summary.json report and extracts findings.
func Load(path string) ([]Finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	var data report.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	return Flatten(data), nil
}

// Diff compares current findings against a baseline.
func Diff(current, baseline []Finding) DiffResult {
	baseMap := make(map[string]struct{}, len(baseline))
	for _, f := range baseline {
		baseMap[f.key()] = struct{}{}
	}
	curMap := make(map[string]struct{}, len(current))
	for _, f := range current {
		curMap[f.key()] = struct{}{}
	}

	var result DiffResult
	for _, f := range current {
		if _, exists := baseMap[f.key()]; exists {
			result.Unchanged = append(result.Unchanged, f)
		} else {
			result.New = append(result.New, f)
		}
	}
	for _, f := range baseline {
		if _, exists := curMap[f.key()]; !exists {
			result.Resolved = append(result.Resolved, f)
		}
	}
	return result
}
