package report

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"plagscan/internal/detection"
	"plagscan/internal/fileutil"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

const lockRetryDelay = 50 * time.Millisecond

// Columns lists the exported fields in order.
var Columns = []string{"doc_id_a", "doc_id_b", "similarity"}

// UnsupportedFormatError reports an output path whose extension has no encoder.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q for %s: use .csv, .json or .db", e.Ext, e.Path)
}

// FormatFor maps an output path to its export format.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".json", ".jsn":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Rows converts pairs into string records matching Columns.
func Rows(pairs []detection.SuspiciousPair) [][]string {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.DocIDA, p.DocIDB, formatScore(p.Similarity)})
	}
	return rows
}

// Save writes pairs to path in the format implied by its extension.
// Parent directories are created as needed.
func Save(ctx context.Context, pairs []detection.SuspiciousPair, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutil.EnsureParent(path); err != nil {
		return err
	}

	lockPath, err := LockPath(path)
	if err != nil {
		return err
	}
	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire report lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("acquire report lock: %s is busy", path)
	}
	defer func() { _ = lock.Unlock() }()

	switch format {
	case FormatCSV:
		return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return writeCSV(w, pairs)
		})
	case FormatJSON:
		return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return writeJSON(w, pairs)
		})
	default:
		return writeSQLite(ctx, path, pairs)
	}
}

// LockPath returns the advisory lock file guarding exports to path. Locks live
// under os.TempDir keyed by the absolute report path, so nothing is left
// beside the report itself.
func LockPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(os.TempDir(), "plagscan-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

func writeCSV(w io.Writer, pairs []detection.SuspiciousPair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(Rows(pairs)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, pairs []detection.SuspiciousPair) error {
	if pairs == nil {
		pairs = []detection.SuspiciousPair{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(pairs); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
