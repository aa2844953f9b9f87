package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// positionColumn keeps row order stable across save and load.
const positionColumn = "position"

// DB stores tables in a SQLite database file.
type DB struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at dsn.
func OpenSQLite(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Save replaces the table called name with the contents of t.
func (d *DB) Save(ctx context.Context, name string, t *Table) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return fmt.Errorf("drop table %s: %w", name, err)
	}

	cols := []string{quoteIdent(positionColumn) + " INTEGER PRIMARY KEY"}
	for _, h := range t.Header {
		cols = append(cols, quoteIdent(h)+" TEXT NOT NULL")
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	names := []string{quoteIdent(positionColumn)}
	for _, h := range t.Header {
		names = append(names, quoteIdent(h))
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(name),
		strings.Join(names, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", "))

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		args := make([]any, 0, len(row)+1)
		args = append(args, i)
		for _, f := range row {
			args = append(args, f)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads the table called name in saved order.
func (d *DB) Load(ctx context.Context, name string) (*Table, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", quoteIdent(name), quoteIdent(positionColumn))
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var header []string
	for _, c := range cols {
		if c != positionColumn {
			header = append(header, c)
		}
	}
	t := NewTable(header...)

	for rows.Next() {
		var pos int64
		fields := make([]string, len(header))
		dest := make([]any, 0, len(cols))
		fi := 0
		for _, c := range cols {
			if c == positionColumn {
				dest = append(dest, &pos)
				continue
			}
			dest = append(dest, &fields[fi])
			fi++
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		t.Rows = append(t.Rows, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return t, nil
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
