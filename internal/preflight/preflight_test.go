package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"plagscan/internal/config"
)

func TestCheckInput_Directory(t *testing.T) {
	result := CheckInput(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckInput_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "docs.csv")
	if err := os.WriteFile(f, []byte("id,text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckInput(f); !result.Passed {
		t.Fatalf("expected pass for readable file, got: %s", result.Detail)
	}
}

func TestCheckInput_NotExist(t *testing.T) {
	result := CheckInput(filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing path")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckInput_Empty(t *testing.T) {
	if result := CheckInput(""); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestCheckOutput_NewNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "report.csv")
	if result := CheckOutput(path); !result.Passed {
		t.Fatalf("expected pass for creatable path, got: %s", result.Detail)
	}
}

func TestCheckOutput_Directory(t *testing.T) {
	if result := CheckOutput(t.TempDir()); result.Passed {
		t.Fatal("expected failure when output is a directory")
	}
}

func TestCheckOutput_ParentIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckOutput(filepath.Join(f, "report.csv")); result.Passed {
		t.Fatal("expected failure when parent is a file")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestRunAll(t *testing.T) {
	input := t.TempDir()
	cfg := config.Default()

	results := RunAll(&cfg, input, "")
	if len(results) != 1 {
		t.Fatalf("expected only the input check, got %+v", results)
	}

	cfg.Logging.Dir = filepath.Join(t.TempDir(), "missing-logs")
	results = RunAll(&cfg, input, filepath.Join(t.TempDir(), "out.json"))
	if len(results) != 3 {
		t.Fatalf("expected input, output and log checks, got %+v", results)
	}
	failed, ok := FirstFailure(results)
	if !ok || failed.Name != "Log directory" {
		t.Fatalf("expected log directory failure, got %+v (ok=%v)", failed, ok)
	}
}

func TestFirstFailure_AllPassed(t *testing.T) {
	if _, ok := FirstFailure([]Result{{Name: "x", Passed: true}}); ok {
		t.Fatal("expected no failure")
	}
}
