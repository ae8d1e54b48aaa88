package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"plagscan/internal/detection"
	"plagscan/internal/fileutil"
)

// TableName is the table written by SQLite exports.
const TableName = "suspicious_pairs"

const schema = `CREATE TABLE suspicious_pairs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	doc_id_a TEXT NOT NULL,
	doc_id_b TEXT NOT NULL,
	similarity REAL NOT NULL
)`

// writeSQLite builds a fresh database next to path and renames it into place.
func writeSQLite(ctx context.Context, path string, pairs []detection.SuspiciousPair) (err error) {
	tmpName, err := fileutil.TempSibling(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	db, err := sql.Open("sqlite", tmpName)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	pragmas := []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			return fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO suspicious_pairs (doc_id_a, doc_id_b, similarity) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range pairs {
		if _, err = stmt.ExecContext(ctx, p.DocIDA, p.DocIDB, p.Similarity); err != nil {
			return fmt.Errorf("insert pair: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if err = db.Close(); err != nil {
		return fmt.Errorf("close sqlite db: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
