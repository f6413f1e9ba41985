package scanner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule ties a capture pattern to the kind it produces and the capture policy
// used to turn a raw match into a reference value.
type rule struct {
	kind Kind
	re   *regexp.Regexp
	// group selects a single 1-based capture group to keep. Zero means all
	// capture groups are concatenated.
	group int
}

var rules = []rule{
	{
		kind: KindLoaderCall,
		re:   regexp.MustCompile(`(?i)load_dataset\s*\(\s*['"]([^'"]+)['"]`),
	},
	{
		kind: KindTabularRead,
		re:   regexp.MustCompile(`(?i)(?:pd\.read_csv|pandas\.read_csv)\s*\(\s*['"]([^'"]+)['"]`),
	},
	{
		kind: KindFileLiteral,
		re:   regexp.MustCompile(`(?i)['"]([^'"]*(?:\.csv|\.jsonl|\.parquet|\.zip))['"]`),
	},
	{
		// Scheme and host are matched so both bare and quoted URL forms hit,
		// but only the org/name path identifies the dataset.
		kind:  KindDatasetURL,
		re:    regexp.MustCompile(`(?i)['"]?(https?://)?(?:www\.)?huggingface\.co/datasets/([^'"\s]+)['"]?`),
		group: 2,
	},
}

// genericTokens are strings that match the literal pattern but carry no
// dataset identity (bare extensions, placeholder argument names).
var genericTokens = map[string]struct{}{
	"name":         {},
	"dataset_name": {},
	".csv":         {},
	".jsonl":       {},
	".parquet":     {},
	".zip":         {},
}

// extract applies the rule to raw file text and returns the normalized values
// that survive the denylist.
func (r rule) extract(text string) []string {
	var values []string
	for _, match := range r.re.FindAllStringSubmatch(text, -1) {
		var value string
		if r.group > 0 {
			value = match[r.group]
		} else {
			value = strings.Join(match[1:], "")
		}
		value = strings.TrimSpace(value)
		if !validValue(value) {
			continue
		}
		values = append(values, value)
	}
	return values
}

func validValue(value string) bool {
	if utf8.RuneCountInString(value) < 3 {
		return false
	}
	_, generic := genericTokens[value]
	return !generic
}
