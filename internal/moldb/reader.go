// Package moldb implements the compound-database reader: a read-only view
// over a SQLite "compound database" of previously observed molecules,
// used by the CLI's --cid/--min/--max sweep and --matches.
//
// Grounded on original_source/src/main.rs's rusqlite usage (the
// cid/structure/is_contiguous/n_atoms/n_edges schema), rendered with
// database/sql + the mattn/go-sqlite3 driver.
// coding=utf-8
// @Project : moasm
// @File    : reader.go
package moldb

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCompoundNotFound is returned by Compound when no row matches the
// given cid.
var ErrCompoundNotFound = errors.New("moldb: compound not found")

// CompoundRow is one row of the compound database: a compound id, its
// canonical JSON graph structure (parsed by molio.ParseGraph), whether the
// underlying graph is contiguous (connected), and its atom/edge counts.
type CompoundRow struct {
	CID          int64
	Structure    string
	IsContiguous bool
	NAtoms       int
	NEdges       int
}

const selectColumns = `cid, structure, is_contiguous, n_atoms, n_edges`

// DB is a read-only handle onto the compound database.
type DB struct {
	conn *sql.DB
}

// Open opens the SQLite database at path. The engine never writes to it.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("moldb: open %s: %w", path, err)
	}
	return &DB{conn: conn}, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Compound fetches the single row for cid.
func (db *DB) Compound(cid int64) (CompoundRow, error) {
	row := db.conn.QueryRow(`SELECT `+selectColumns+` FROM compounds WHERE cid = ?`, cid)

	var r CompoundRow
	var contiguous int
	if err := row.Scan(&r.CID, &r.Structure, &contiguous, &r.NAtoms, &r.NEdges); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompoundRow{}, fmt.Errorf("%w: cid %d", ErrCompoundNotFound, cid)
		}
		return CompoundRow{}, fmt.Errorf("moldb: query cid %d: %w", cid, err)
	}
	r.IsContiguous = contiguous != 0
	return r, nil
}

// CompoundRange returns every contiguous compound with cid in [min, max],
// ordered by cid — the --min/--max sweep query.
func (db *DB) CompoundRange(min, max int64) ([]CompoundRow, error) {
	rows, err := db.conn.Query(
		`SELECT `+selectColumns+` FROM compounds WHERE cid BETWEEN ? AND ? AND is_contiguous != 0 ORDER BY cid`,
		min, max,
	)
	if err != nil {
		return nil, fmt.Errorf("moldb: query range [%d,%d]: %w", min, max, err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// SiblingsExcept returns up to limit contiguous compounds other than cid,
// used by --matches to search for reconstructed non-original graphs.
func (db *DB) SiblingsExcept(cid int64, limit int) ([]CompoundRow, error) {
	rows, err := db.conn.Query(
		`SELECT `+selectColumns+` FROM compounds WHERE cid != ? AND is_contiguous != 0 LIMIT ?`,
		cid, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("moldb: query siblings of %d: %w", cid, err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func scanAll(rows *sql.Rows) ([]CompoundRow, error) {
	var out []CompoundRow
	for rows.Next() {
		var r CompoundRow
		var contiguous int
		if err := rows.Scan(&r.CID, &r.Structure, &contiguous, &r.NAtoms, &r.NEdges); err != nil {
			return nil, fmt.Errorf("moldb: scan row: %w", err)
		}
		r.IsContiguous = contiguous != 0
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("moldb: iterate rows: %w", err)
	}
	return out, nil
}
