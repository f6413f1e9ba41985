package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ppiankov/dataspectre/internal/scanner"
)

// hubDatasetPrefix is stripped from hosted references before the lookup.
const hubDatasetPrefix = "https://huggingface.co/datasets/"

// dataFileExtensions mark a reference as a local data file.
var dataFileExtensions = []string{".csv", ".jsonl", ".parquet", ".zip"}

// LicenceLookup resolves a hosted dataset identifier to its declared licence.
// An empty licence with nil error means the dataset has no licence field.
type LicenceLookup interface {
	DatasetLicence(ctx context.Context, id string) (string, error)
}

// Classifier assigns licence and risk metadata to scanned references.
type Classifier struct {
	lookup LicenceLookup // nil disables remote lookups
}

// New creates a classifier. A nil lookup sends every hosted reference down the
// heuristic path (offline mode).
func New(lookup LicenceLookup) *Classifier {
	return &Classifier{lookup: lookup}
}

// outcome is the classification produced by one decision rule.
type outcome struct {
	licence string
	source  LicenceSource
	notes   string
	risk    Risk
}

// rule is one predicate/outcome pair of the decision table.
type rule struct {
	name     string
	applies  func(scanner.Reference) bool
	classify func(ctx context.Context, c *Classifier, ref scanner.Reference) outcome
}

// decisionTable is evaluated in order; the first rule whose predicate matches
// wins. The final rule matches everything.
var decisionTable = []rule{
	{name: "hosted-dataset", applies: isHostedDataset, classify: classifyHostedDataset},
	{name: "external-url", applies: isURL, classify: classifyURL},
	{name: "local-data-file", applies: isLocalDataFile, classify: classifyLocalDataFile},
	{name: "fallback", applies: func(scanner.Reference) bool { return true }, classify: classifyFallback},
}

// ClassifyAll enriches every reference independently, preserving order. It
// never fails: lookup errors degrade to the heuristic fallback per reference.
func (c *Classifier) ClassifyAll(ctx context.Context, refs []scanner.Reference) []Enriched {
	enriched := make([]Enriched, 0, len(refs))
	for _, ref := range refs {
		enriched = append(enriched, c.Classify(ctx, ref))
	}
	return enriched
}

// Classify produces exactly one enriched reference.
func (c *Classifier) Classify(ctx context.Context, ref scanner.Reference) Enriched {
	for _, r := range decisionTable {
		if !r.applies(ref) {
			continue
		}
		o := r.classify(ctx, c, ref)
		return Enriched{
			Reference:     ref,
			Licence:       o.licence,
			LicenceSource: o.source,
			Risk:          o.risk,
			Notes:         o.notes,
		}
	}
	// Unreachable: the fallback rule matches everything.
	return Enriched{Reference: ref, Licence: LicenceUnknown, LicenceSource: SourceHeuristic, Risk: RiskReview}
}

func isHostedDataset(ref scanner.Reference) bool {
	return ref.Kind == scanner.KindLoaderCall || ref.Kind == scanner.KindDatasetURL
}

func classifyHostedDataset(ctx context.Context, c *Classifier, ref scanner.Reference) outcome {
	id := strings.ReplaceAll(ref.Value, hubDatasetPrefix, "")
	id = strings.Trim(strings.TrimSpace(id), "/")

	if c.lookup != nil {
		licence, err := c.lookup.DatasetLicence(ctx, id)
		if err != nil {
			slog.Debug("Dataset licence lookup failed", "dataset", id, "error", err)
		} else if licence != "" {
			return outcome{
				licence: licence,
				source:  SourceRemoteLookup,
				notes:   fmt.Sprintf("License read from HF card for '%s'", id),
				risk:    riskFromLicence(licence),
			}
		}
	}
	return outcome{
		licence: LicenceUnknown,
		source:  SourceHeuristic,
		notes:   fmt.Sprintf("No license field found for '%s'", id),
		risk:    RiskReview,
	}
}

func isURL(ref scanner.Reference) bool {
	return strings.HasPrefix(ref.Value, "http://") || strings.HasPrefix(ref.Value, "https://")
}

func classifyURL(_ context.Context, _ *Classifier, ref scanner.Reference) outcome {
	var host string
	if u, err := url.Parse(ref.Value); err == nil {
		host = strings.ToLower(u.Host)
	}

	switch {
	case strings.Contains(host, "data.gov") || strings.Contains(host, "europa.eu"):
		return outcome{
			licence: "Open Government",
			source:  SourceHeuristic,
			notes:   fmt.Sprintf("Public sector domain '%s'", host),
			risk:    RiskLow,
		}
	case strings.Contains(host, "kaggle.com"):
		return outcome{
			licence: "Varies (Kaggle)",
			source:  SourceHeuristic,
			notes:   "Check the dataset page license on Kaggle",
			risk:    RiskReview,
		}
	case strings.Contains(host, "huggingface.co"):
		return outcome{
			licence: LicenceUnknown,
			source:  SourceHeuristic,
			notes:   "HF link but not a dataset card; inspect manually",
			risk:    RiskReview,
		}
	default:
		return outcome{
			licence: LicenceUnknown,
			source:  SourceHeuristic,
			notes:   fmt.Sprintf("External host '%s'", host),
			risk:    RiskReview,
		}
	}
}

func isLocalDataFile(ref scanner.Reference) bool {
	value := strings.ToLower(ref.Value)
	for _, ext := range dataFileExtensions {
		if strings.HasSuffix(value, ext) {
			return true
		}
	}
	return false
}

func classifyLocalDataFile(_ context.Context, _ *Classifier, _ scanner.Reference) outcome {
	return outcome{
		licence: "Proprietary/Project-internal",
		source:  SourceHeuristic,
		notes:   "Local file path in repo",
		risk:    RiskReview,
	}
}

func classifyFallback(_ context.Context, _ *Classifier, _ scanner.Reference) outcome {
	return outcome{
		licence: LicenceUnknown,
		source:  SourceHeuristic,
		notes:   "Pattern matched but no license inference",
		risk:    RiskReview,
	}
}
