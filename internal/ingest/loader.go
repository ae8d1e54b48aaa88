package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"plagscan/internal/detection"
)

// Required table columns.
const (
	ColumnID   = "id"
	ColumnText = "text"
)

const (
	textExt  = ".txt"
	tableExt = ".csv"
)

// Loader reads documents from an afero filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader over fs. Use afero.NewMemMapFs() in tests.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// NewOsLoader creates a Loader using the real operating system filesystem.
func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// Load dispatches on the kind of path: a directory is read as a folder of
// text files and a .csv file as a table.
func (l *Loader) Load(path string) ([]detection.Document, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, &InvalidInputError{Path: path, Reason: "input path does not exist", Err: err}
	}
	if info.IsDir() {
		return l.LoadFolder(path)
	}
	if strings.EqualFold(filepath.Ext(path), tableExt) {
		return l.LoadTable(path)
	}
	return nil, &InvalidInputError{Path: path, Reason: "input must be a directory or a .csv file"}
}

// LoadFolder reads every .txt file directly inside dir, sorted by name.
// Subdirectories are ignored. Byte order marks are stripped and malformed
// UTF-8 is replaced rather than rejected.
func (l *Loader) LoadFolder(dir string) ([]detection.Document, error) {
	ok, err := afero.DirExists(l.fs, dir)
	if err != nil {
		return nil, &InvalidInputError{Path: dir, Reason: "check directory", Err: err}
	}
	if !ok {
		return nil, &InvalidInputError{Path: dir, Reason: "input path is not a directory"}
	}

	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), textExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]detection.Document, 0, len(names))
	for _, name := range names {
		raw, err := afero.ReadFile(l.fs, filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		text, err := decodeText(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		docs = append(docs, detection.Document{ID: name, Text: text})
	}
	return docs, nil
}

// LoadTable reads a CSV file with a header row containing id and text
// columns. Other columns are ignored.
func (l *Loader) LoadTable(path string) ([]detection.Document, error) {
	ok, err := afero.Exists(l.fs, path)
	if err != nil || !ok {
		return nil, &InvalidInputError{Path: path, Reason: "CSV file does not exist", Err: err}
	}

	file, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(transform.NewReader(file, newDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MissingColumnError{Path: path, Column: ColumnID}
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	idCol, textCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnID:
			if idCol < 0 {
				idCol = i
			}
		case ColumnText:
			if textCol < 0 {
				textCol = i
			}
		}
	}
	if idCol < 0 {
		return nil, &MissingColumnError{Path: path, Column: ColumnID}
	}
	if textCol < 0 {
		return nil, &MissingColumnError{Path: path, Column: ColumnText}
	}

	var docs []detection.Document
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", path, line, err)
		}
		docs = append(docs, detection.Document{
			ID:   field(record, idCol),
			Text: field(record, textCol),
		})
	}
	return docs, nil
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

func newDecoder() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

func decodeText(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(newDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
