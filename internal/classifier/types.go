package classifier

import "github.com/ppiankov/dataspectre/internal/scanner"

// LicenceSource tags how a licence guess was derived.
type LicenceSource string

const (
	SourceRemoteLookup LicenceSource = "remote_lookup"
	SourceHeuristic    LicenceSource = "heuristic"
)

// Risk is the coarse advisory flag on legal/compliance exposure.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskReview Risk = "review"
)

// LicenceUnknown is the literal used when no licence could be inferred.
const LicenceUnknown = "Unknown"

// Enriched is a scanned reference plus its licence classification.
type Enriched struct {
	scanner.Reference
	Licence       string        `json:"licence"`
	LicenceSource LicenceSource `json:"licence_source"`
	Risk          Risk          `json:"risk_flag"`
	Notes         string        `json:"notes"`
}
