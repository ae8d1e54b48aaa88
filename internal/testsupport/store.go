package testsupport

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"plagscan/internal/detection"
)

// ReadReportDB loads every pair stored in a SQLite report, in insertion order.
func ReadReportDB(t testing.TB, path string) []detection.SuspiciousPair {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	rows, err := db.Query("SELECT doc_id_a, doc_id_b, similarity FROM suspicious_pairs ORDER BY id")
	if err != nil {
		t.Fatalf("query %s: %v", path, err)
	}
	defer rows.Close()

	var pairs []detection.SuspiciousPair
	for rows.Next() {
		var p detection.SuspiciousPair
		if err := rows.Scan(&p.DocIDA, &p.DocIDB, &p.Similarity); err != nil {
			t.Fatalf("scan: %v", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	return pairs
}
