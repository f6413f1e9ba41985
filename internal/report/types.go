package report

import (
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/dataspectre/internal/classifier"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reporter renders a scan report to its output.
type Reporter interface {
	Generate(data Data) error
}

// Data is the full passport payload written to summary.json.
type Data struct {
	Tool          string                `json:"tool"`
	Version       string                `json:"version"`
	ScannedAt     time.Time             `json:"scanned_at"`
	RepoPath      string                `json:"repo_path"`
	TotalDatasets int                   `json:"total_datasets"`
	Datasets      []classifier.Enriched `json:"datasets"`
	Types         map[string]int        `json:"types"`
}

// New assembles report data from enriched references. TotalDatasets and the
// per-kind counts are derived here and nowhere else.
func New(tool, version, repoPath string, scannedAt time.Time, datasets []classifier.Enriched) Data {
	types := make(map[string]int)
	for _, d := range datasets {
		types[string(d.Kind)]++
	}
	return Data{
		Tool:          tool,
		Version:       version,
		ScannedAt:     scannedAt,
		RepoPath:      repoPath,
		TotalDatasets: len(datasets),
		Datasets:      datasets,
		Types:         types,
	}
}

var kindTitler = cases.Title(language.English)

// titleKind converts a kind tag into display form, e.g. "hf_loader_call"
// becomes "Hf Loader Call".
func titleKind(kind string) string {
	return kindTitler.String(strings.ReplaceAll(kind, "_", " "))
}

func sortedKinds(types map[string]int) []string {
	kinds := make([]string, 0, len(types))
	for kind := range types {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
