package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const maxFileSize = 10 * 1024 * 1024 // skip files > 10MB

// textExtensions is the allow-set of file types worth scanning.
var textExtensions = map[string]struct{}{
	".py":    {},
	".ipynb": {},
	".md":    {},
	".txt":   {},
	".yml":   {},
	".yaml":  {},
	".json":  {},
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]struct{}{
	".git":              {},
	".passport":         {},
	"node_modules":      {},
	"venv":              {},
	"env":               {},
	"dist":              {},
	"build":             {},
	".ipynb_checkpoints": {},
	"data":              {},
}

// skipFiles are repo-relative paths whose own example snippets would
// otherwise show up as references.
var skipFiles = map[string]struct{}{
	"README.md":                      {},
	".github/workflows/passport.yml": {},
}

// RepoScanner walks a repository tree and extracts dataset references.
type RepoScanner struct {
	repoPath  string
	extraSkip map[string]struct{}
}

// NewRepoScanner creates a scanner rooted at repoPath. Additional directory
// names to skip may be supplied on top of the built-in skip set.
func NewRepoScanner(repoPath string, extraSkipDirs ...string) *RepoScanner {
	extra := make(map[string]struct{}, len(extraSkipDirs))
	for _, dir := range extraSkipDirs {
		extra[dir] = struct{}{}
	}
	return &RepoScanner{
		repoPath:  repoPath,
		extraSkip: extra,
	}
}

// Scan walks the repository and returns the deduplicated references found in
// all eligible files, in discovery order. Unreadable files are logged and
// skipped; only a walk-level failure aborts the scan.
func (s *RepoScanner) Scan(ctx context.Context) ([]Reference, error) {
	var refs []Reference
	seen := make(map[string]struct{}) // dedup on kind + lowercased value
	scannedAt := time.Now()

	err := filepath.WalkDir(s.repoPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Warn("Cannot access path", "path", path, "error", walkErr)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != s.repoPath && s.skippedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if info, err := d.Info(); err == nil && info.Size() > maxFileSize {
			return nil
		}

		rel, err := filepath.Rel(s.repoPath, path)
		if err != nil {
			return nil
		}
		relSlash := filepath.ToSlash(rel)
		if _, skip := skipFiles[relSlash]; skip {
			return nil
		}
		if _, ok := textExtensions[strings.ToLower(filepath.Ext(d.Name()))]; !ok {
			return nil
		}

		refs = s.scanFile(path, relSlash, scannedAt, seen, refs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return refs, nil
}

func (s *RepoScanner) skippedDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	if _, skip := skipDirs[name]; skip {
		return true
	}
	_, skip := s.extraSkip[name]
	return skip
}

// scanFile applies every pattern rule to one file. A read failure is logged
// and the file skipped; invalid byte sequences are dropped rather than fatal.
func (s *RepoScanner) scanFile(path, relSlash string, scannedAt time.Time, seen map[string]struct{}, refs []Reference) []Reference {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Skipping unreadable file", "file", relSlash, "error", err)
		return refs
	}
	text := strings.ToValidUTF8(string(data), "")

	for _, r := range rules {
		for _, value := range r.extract(text) {
			key := string(r.kind) + "|" + strings.ToLower(value)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			refs = append(refs, Reference{
				Kind:         r.kind,
				Value:        value,
				OriginFile:   relSlash,
				DiscoveredAt: scannedAt,
			})
		}
	}
	return refs
}
