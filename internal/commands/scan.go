package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/ppiankov/dataspectre/internal/baseline"
	"github.com/ppiankov/dataspectre/internal/classifier"
	"github.com/ppiankov/dataspectre/internal/hub"
	"github.com/ppiankov/dataspectre/internal/report"
	"github.com/ppiankov/dataspectre/internal/scanner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scanFlags struct {
	repoPath     string
	outputFormat string
	outputFile   string
	offline      bool
	timeout      time.Duration
	baselinePath string
	noPassport   bool
	failOnReview bool
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a repository and write its dataset passport",
	Long: `Scans the repository tree for dataset references, enriches each with a
best-guess licence and risk flag (querying the Hugging Face API for hosted
datasets), and writes .passport/summary.json and .passport/summary.md.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlags.repoPath, "repo", "r", ".", "Path to repository to scan")
	scanCmd.Flags().StringVarP(&scanFlags.outputFormat, "format", "f", "text", "Console output format: text, json, markdown, sarif, or spectrehub")
	scanCmd.Flags().StringVarP(&scanFlags.outputFile, "output", "o", "", "Console report file (default: stdout)")
	scanCmd.Flags().BoolVar(&scanFlags.offline, "offline", false, "Skip remote licence lookups")
	scanCmd.Flags().DurationVar(&scanFlags.timeout, "timeout", hub.DefaultTimeout, "Timeout per remote licence lookup")
	scanCmd.Flags().StringVar(&scanFlags.baselinePath, "baseline", "", "Path to previous summary.json for diff comparison")
	scanCmd.Flags().BoolVar(&scanFlags.noPassport, "no-passport", false, "Skip writing passport files, console report only")
	scanCmd.Flags().BoolVar(&scanFlags.failOnReview, "fail-on-review", false, "Exit with error if any reference needs licence review")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Apply config file defaults for flags not explicitly set
	applyConfigToScanFlags(cmd)

	ctx := context.Background()
	start := time.Now()

	// 1. Extract references from the repository
	printStatus("Scanning repository: %s", scanFlags.repoPath)
	repoScanner := scanner.NewRepoScanner(scanFlags.repoPath, cfg.ExcludeDirs...)
	references, err := repoScanner.Scan(ctx)
	if err != nil {
		return enhanceError("repository scan", err)
	}
	printStatus("Found %d dataset references", len(references))

	// 2. Classify licences and risk
	var lookup classifier.LicenceLookup
	if scanFlags.offline {
		printStatus("Offline mode: skipping remote licence lookups")
	} else {
		client := hub.NewClient(GetVersion())
		client.SetTimeout(scanFlags.timeout)
		lookup = client
	}
	printStatus("Classifying licences and risk...")
	enriched := classifier.New(lookup).ClassifyAll(ctx, references)

	// 3. Assemble report data
	data := report.New("dataspectre", GetVersion(), scanFlags.repoPath, time.Now(), enriched)

	// 4. Write passport artifacts
	if !scanFlags.noPassport {
		if err := report.WritePassport(scanFlags.repoPath, data); err != nil {
			return enhanceError("passport write", err)
		}
		printStatus("Wrote passport files to %s", filepath.Join(scanFlags.repoPath, report.PassportDirName))
	}

	// 5. Console report
	writer := os.Stdout
	if scanFlags.outputFile != "" {
		f, err := os.Create(scanFlags.outputFile)
		if err != nil {
			return enhanceError("output file creation", err)
		}
		defer func() { _ = f.Close() }()
		writer = f
	}
	if scanFlags.outputFile != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	reporter, err := selectReporter(scanFlags.outputFormat, writer)
	if err != nil {
		return err
	}
	if err := reporter.Generate(data); err != nil {
		return enhanceError("report generation", err)
	}

	// 6. Baseline comparison
	if scanFlags.baselinePath != "" {
		currentFindings := baseline.Flatten(data)
		baselineFindings, err := baseline.Load(scanFlags.baselinePath)
		if err != nil {
			return enhanceError("baseline load", err)
		}
		diff := baseline.Diff(currentFindings, baselineFindings)
		slog.Info("Baseline comparison",
			slog.Int("new", len(diff.New)),
			slog.Int("resolved", len(diff.Resolved)),
			slog.Int("unchanged", len(diff.Unchanged)),
		)
	}

	reviewCount := 0
	for _, d := range enriched {
		if d.Risk == classifier.RiskReview {
			reviewCount++
		}
	}
	slog.Info("Scan complete",
		slog.Int("reference_count", data.TotalDatasets),
		slog.Int("review_count", reviewCount),
		slog.Duration("duration", time.Since(start)),
	)

	if scanFlags.failOnReview && reviewCount > 0 {
		return fmt.Errorf("found %d references needing licence review", reviewCount)
	}

	return nil
}

func applyConfigToScanFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		scanFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("timeout").Changed {
		if d := cfg.TimeoutDuration(); d > 0 {
			scanFlags.timeout = d
		}
	}
	if !cmd.Flags().Lookup("offline").Changed && cfg.Offline {
		scanFlags.offline = true
	}
}
