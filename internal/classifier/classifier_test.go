package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/ppiankov/dataspectre/internal/scanner"
)

// stubLookup implements LicenceLookup with canned responses.
type stubLookup struct {
	licence string
	err     error
	calls   []string
}

func (s *stubLookup) DatasetLicence(_ context.Context, id string) (string, error) {
	s.calls = append(s.calls, id)
	return s.licence, s.err
}

func ref(kind scanner.Kind, value string) scanner.Reference {
	return scanner.Reference{Kind: kind, Value: value, OriginFile: "train.py"}
}

func TestClassifyHostedDataset_RemoteLookup(t *testing.T) {
	lookup := &stubLookup{licence: "cc-by-4.0"}
	c := New(lookup)

	enriched := c.Classify(context.Background(), ref(scanner.KindLoaderCall, "squad"))

	if enriched.Licence != "cc-by-4.0" {
		t.Errorf("expected licence cc-by-4.0, got %q", enriched.Licence)
	}
	if enriched.LicenceSource != SourceRemoteLookup {
		t.Errorf("expected remote_lookup source, got %q", enriched.LicenceSource)
	}
	if enriched.Risk != RiskLow {
		t.Errorf("expected low risk for cc-by licence, got %q", enriched.Risk)
	}
	if len(lookup.calls) != 1 || lookup.calls[0] != "squad" {
		t.Errorf("expected one lookup for 'squad', got %v", lookup.calls)
	}
}

func TestClassifyHostedDataset_StripsURLPrefix(t *testing.T) {
	lookup := &stubLookup{licence: "mit"}
	c := New(lookup)

	c.Classify(context.Background(), ref(scanner.KindLoaderCall, "https://huggingface.co/datasets/org/name/"))

	if len(lookup.calls) != 1 || lookup.calls[0] != "org/name" {
		t.Fatalf("expected normalized identifier 'org/name', got %v", lookup.calls)
	}
}

func TestClassifyHostedDataset_LookupFailure(t *testing.T) {
	lookup := &stubLookup{err: errors.New("timeout")}
	c := New(lookup)

	enriched := c.Classify(context.Background(), ref(scanner.KindDatasetURL, "org/name"))

	if enriched.Licence != LicenceUnknown {
		t.Errorf("expected Unknown licence, got %q", enriched.Licence)
	}
	if enriched.LicenceSource != SourceHeuristic {
		t.Errorf("expected heuristic source after failed lookup, got %q", enriched.LicenceSource)
	}
	if enriched.Risk != RiskReview {
		t.Errorf("expected review risk, got %q", enriched.Risk)
	}
	if enriched.Notes != "No license field found for 'org/name'" {
		t.Errorf("unexpected notes %q", enriched.Notes)
	}
}

func TestClassifyHostedDataset_EmptyLicence(t *testing.T) {
	lookup := &stubLookup{licence: ""}
	enriched := New(lookup).Classify(context.Background(), ref(scanner.KindLoaderCall, "squad"))

	if enriched.Licence != LicenceUnknown || enriched.Risk != RiskReview {
		t.Fatalf("expected Unknown/review for empty licence, got %q/%q", enriched.Licence, enriched.Risk)
	}
}

func TestClassifyHostedDataset_Offline(t *testing.T) {
	c := New(nil)
	enriched := c.Classify(context.Background(), ref(scanner.KindLoaderCall, "squad"))

	if enriched.Licence != LicenceUnknown || enriched.LicenceSource != SourceHeuristic || enriched.Risk != RiskReview {
		t.Fatalf("expected heuristic Unknown/review without lookup, got %+v", enriched)
	}
}

func TestClassifyURLBranches(t *testing.T) {
	c := New(&stubLookup{licence: "should-not-be-used"})

	tests := []struct {
		value   string
		licence string
		risk    Risk
	}{
		{"https://data.gov/dataset/example.csv", "Open Government", RiskLow},
		{"https://stats.europa.eu/file.zip", "Open Government", RiskLow},
		{"https://www.kaggle.com/datasets/foo/bar.csv", "Varies (Kaggle)", RiskReview},
		{"https://huggingface.co/org/model.zip", LicenceUnknown, RiskReview},
		{"https://example.com/data.csv", LicenceUnknown, RiskReview},
	}

	for _, tt := range tests {
		enriched := c.Classify(context.Background(), ref(scanner.KindFileLiteral, tt.value))
		if enriched.Licence != tt.licence {
			t.Errorf("%s: expected licence %q, got %q", tt.value, tt.licence, enriched.Licence)
		}
		if enriched.Risk != tt.risk {
			t.Errorf("%s: expected risk %q, got %q", tt.value, tt.risk, enriched.Risk)
		}
		if enriched.LicenceSource != SourceHeuristic {
			t.Errorf("%s: expected heuristic source, got %q", tt.value, enriched.LicenceSource)
		}
	}
}

func TestClassifyLocalDataFile(t *testing.T) {
	c := New(nil)
	enriched := c.Classify(context.Background(), ref(scanner.KindTabularRead, "local/data.csv"))

	if enriched.Licence != "Proprietary/Project-internal" {
		t.Errorf("expected project-internal licence, got %q", enriched.Licence)
	}
	if enriched.Risk != RiskReview {
		t.Errorf("expected review risk, got %q", enriched.Risk)
	}
	if enriched.Notes != "Local file path in repo" {
		t.Errorf("unexpected notes %q", enriched.Notes)
	}
}

func TestClassifyFallback(t *testing.T) {
	c := New(nil)
	enriched := c.Classify(context.Background(), ref(scanner.KindTabularRead, "some_table"))

	if enriched.Licence != LicenceUnknown || enriched.Risk != RiskReview {
		t.Fatalf("expected Unknown/review fallback, got %q/%q", enriched.Licence, enriched.Risk)
	}
	if enriched.Notes != "Pattern matched but no license inference" {
		t.Errorf("unexpected notes %q", enriched.Notes)
	}
}

func TestClassifyAllPreservesOrderAndCount(t *testing.T) {
	c := New(nil)
	refs := []scanner.Reference{
		ref(scanner.KindLoaderCall, "squad"),
		ref(scanner.KindTabularRead, "a/b.csv"),
		ref(scanner.KindFileLiteral, "https://example.com/x.zip"),
	}

	enriched := c.ClassifyAll(context.Background(), refs)
	if len(enriched) != len(refs) {
		t.Fatalf("expected %d enriched references, got %d", len(refs), len(enriched))
	}
	for i := range refs {
		if enriched[i].Value != refs[i].Value || enriched[i].Kind != refs[i].Kind {
			t.Errorf("entry %d: reference identity changed: %+v vs %+v", i, enriched[i].Reference, refs[i])
		}
	}
}
