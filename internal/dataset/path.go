package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFile is returned by IsFile for missing paths and directories.
var ErrNotFile = errors.New("file does not exist")

// IsFile returns ErrNotFile unless path names an existing regular file.
func IsFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return ErrNotFile
	}
	return nil
}

// OutputPath returns input with its extension replaced by ".csv".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}

// IsSQLite reports whether path should be treated as a SQLite database.
func IsSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load reads a table from path. Flat files are decoded directly; SQLite
// databases are read from the table called name.
func Load(ctx context.Context, path, name string) (*Table, error) {
	if IsSQLite(path) {
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Load(ctx, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadFlat(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Save writes t to path, as the table called name when path is a SQLite
// database and as a flat file otherwise.
func Save(ctx context.Context, path, name string, t *Table) error {
	if IsSQLite(path) {
		db, err := OpenSQLite(path)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Save(ctx, name, t)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteFlat(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
