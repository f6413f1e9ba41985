package classifier

import "strings"

// permissiveMarkers are substrings that mark a licence as clearly permissive:
// public-domain marks, common permissive licences, open-data marks.
var permissiveMarkers = []string{
	"cc0",
	"public domain",
	"open government",
	"odc",
	"apache",
	"mit",
	"bsd",
}

// attributionMarkers are community licences whose attribution requirement does
// not by itself elevate risk.
var attributionMarkers = []string{"cc-by", "cc by"}

// inconclusiveLicences are values that name no usable licence at all.
var inconclusiveLicences = map[string]struct{}{
	"unknown": {},
	"":        {},
	"none":    {},
	"other":   {},
}

// riskFromLicence maps a licence string onto the two-valued risk flag. Only
// explicitly recognized permissive licences come back low; everything else is
// conservatively flagged for review.
func riskFromLicence(licence string) Risk {
	l := strings.ToLower(licence)

	for _, marker := range permissiveMarkers {
		if strings.Contains(l, marker) {
			return RiskLow
		}
	}
	for _, marker := range attributionMarkers {
		if strings.Contains(l, marker) {
			return RiskLow
		}
	}
	if _, ok := inconclusiveLicences[l]; ok {
		return RiskReview
	}
	return RiskReview
}
