package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagscan/internal/detection"
	"plagscan/internal/ingest"
	"plagscan/internal/report"
	"plagscan/internal/testsupport"
)

var (
	simpleText    = strings.Repeat("This is a simple test document.", 3)
	unrelatedText = strings.Repeat("Completely unrelated prose about cooking fresh pasta dough. ", 3)
)

func writeSampleCorpus(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "corpus")
	testsupport.WriteCorpus(t, dir, map[string]string{
		"a.txt":     simpleText,
		"b.txt":     simpleText,
		"c.txt":     unrelatedText,
		"short.txt": "too short",
		"notes.md":  simpleText,
	})
	return dir
}

func TestAnalyzeFolderPrintsSummary(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)

	out, _, err := runCLI(t, []string{"analyze", "--input-path", dir}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Found 1 suspicious pairs with threshold >= 0.80")
	requireContains(t, out, "Skipped 1 of 4 documents")
	requireContains(t, out, "a.txt")
	requireContains(t, out, "b.txt")
	requireContains(t, out, "1.000")
	requireNotContains(t, out, "c.txt")
	requireNotContains(t, out, "\x1b[")
}

func TestAnalyzeTableExportsJSON(t *testing.T) {
	isolateHome(t)
	input := filepath.Join(t.TempDir(), "docs.csv")
	testsupport.WriteTable(t, input, [][2]string{{"1", simpleText}, {"2", simpleText}, {"3", unrelatedText}})
	output := filepath.Join(t.TempDir(), "reports", "pairs.json")

	out, _, err := runCLI(t, []string{"analyze", "-i", input, "--output", output}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Saved report with 1 suspicious pairs to: "+output)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var pairs []detection.SuspiciousPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(pairs) != 1 || pairs[0].DocIDA != "1" || pairs[0].DocIDB != "2" {
		t.Fatalf("unexpected report %+v", pairs)
	}
}

func TestAnalyzeExportsSQLite(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)
	output := filepath.Join(t.TempDir(), "pairs.db")

	if _, _, err := runCLI(t, []string{"analyze", "--input-path", dir, "--output", output, "--threshold", "0"}, ""); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	pairs := testsupport.ReadReportDB(t, output)
	if len(pairs) != 3 {
		t.Fatalf("expected every pair at threshold 0, got %+v", pairs)
	}
	if pairs[0].DocIDA != "a.txt" || pairs[0].DocIDB != "b.txt" {
		t.Fatalf("unexpected first pair %+v", pairs[0])
	}
}

func TestAnalyzeJSONOutput(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)

	out, _, err := runCLI(t, []string{"analyze", "--input-path", dir, "--json", "--min-length", "0"}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var result detection.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v (%q)", err, out)
	}
	if result.RunID == "" || result.Documents != 4 || result.Analyzed != 4 || result.Skipped != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Pairs) != 1 {
		t.Fatalf("expected one pair, got %+v", result.Pairs)
	}
}

func TestAnalyzeUsesConfigSummaryLimit(t *testing.T) {
	isolateHome(t)
	dir := filepath.Join(t.TempDir(), "corpus")
	testsupport.WriteCorpus(t, dir, map[string]string{"x.txt": simpleText, "y.txt": simpleText, "z.txt": simpleText})
	cfg := testsupport.NewConfig(t, testsupport.WithSummaryLimit(1), testsupport.WithThreshold(1))
	configPath := testsupport.WriteConfigFile(t, t.TempDir(), cfg)

	out, _, err := runCLI(t, []string{"analyze", "--input-path", dir}, configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Found 3 suspicious pairs with threshold >= 1.00")
	requireContains(t, out, "... 2 more")
}

func TestAnalyzeRejectsMissingInput(t *testing.T) {
	isolateHome(t)
	_, _, err := runCLI(t, []string{"analyze", "--input-path", filepath.Join(t.TempDir(), "missing")}, "")
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestAnalyzeRejectsUnsupportedInput(t *testing.T) {
	isolateHome(t)
	input := filepath.Join(t.TempDir(), "docs.pdf")
	if err := os.WriteFile(input, []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"analyze", "--input-path", input}, "")
	var invalid *ingest.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestAnalyzeRejectsUnsupportedOutputBeforeWork(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)
	output := filepath.Join(t.TempDir(), "pairs.xml")

	_, _, err := runCLI(t, []string{"analyze", "--input-path", dir, "--output", output}, "")
	var unsupported *report.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err = %v", statErr)
	}
}

func TestAnalyzeRejectsInvalidThreshold(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)
	_, _, err := runCLI(t, []string{"analyze", "--input-path", dir, "--threshold", "1.5"}, "")
	var thresholdErr *detection.InvalidThresholdError
	if !errors.As(err, &thresholdErr) {
		t.Fatalf("expected InvalidThresholdError, got %v", err)
	}
}

func TestAnalyzeRequiresInputPath(t *testing.T) {
	isolateHome(t)
	if _, _, err := runCLI(t, []string{"analyze"}, ""); err == nil {
		t.Fatal("expected error when --input-path is missing")
	}
}

func TestCheckCommand(t *testing.T) {
	isolateHome(t)
	dir := writeSampleCorpus(t)

	out, _, err := runCLI(t, []string{"check", "--input-path", dir, "--output", filepath.Join(t.TempDir(), "r.csv")}, "")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "== Preflight ==")
	requireContains(t, out, "Input:")
	requireContains(t, out, "[OK]")

	out, _, err = runCLI(t, []string{"check", "--input-path", filepath.Join(dir, "missing")}, "")
	if err == nil {
		t.Fatal("expected failure for missing input")
	}
	requireContains(t, out, "[ERROR]")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "plagscan dev")
}
