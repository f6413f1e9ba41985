package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PassportDirName is the reserved metadata directory under the scanned root.
const PassportDirName = ".passport"

const (
	summaryJSONName = "summary.json"
	summaryMDName   = "summary.md"
)

// WritePassport writes summary.json and summary.md under the passport
// directory, creating it if absent and overwriting any previous run. Write
// failures here are the only fatal errors in the pipeline.
func WritePassport(root string, data Data) error {
	dir := filepath.Join(root, PassportDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create passport directory: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, summaryJSONName), append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", summaryJSONName, err)
	}

	if err := os.WriteFile(filepath.Join(dir, summaryMDName), []byte(Markdown(data)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", summaryMDName, err)
	}
	return nil
}
