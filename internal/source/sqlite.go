package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
)

// DefaultQuery is used when no query is given.
const DefaultQuery = "SELECT id, label FROM options ORDER BY rowid"

// FromSQLite runs query against the database at dbPath, opened read-only.
// The query must return exactly two columns: id and label.
func FromSQLite(ctx context.Context, dbPath, query string) (option.List, error) {
	if strings.TrimSpace(query) == "" {
		query = DefaultQuery
	}
	db, err := openReadOnly(ctx, dbPath)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, fmt.Sprintf("open %s", dbPath), err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "query options", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "query columns", err)
	}
	if len(cols) != 2 {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("query must return 2 columns (id, label), got %d", len(cols)), nil)
	}

	var opts option.List
	for rows.Next() {
		var rawID, rawLabel any
		if err := rows.Scan(&rawID, &rawLabel); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		id, err := option.ParseID(rawID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(opts)+1, err)
		}
		label, err := cast.ToStringE(rawLabel)
		if err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("row %d: label", len(opts)+1), err)
		}
		opts = append(opts, option.Option{ID: id, DisplayString: label})
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "read rows", err)
	}
	return finish(opts)
}

// buildReadOnlyDSN creates a read-only WAL DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func openReadOnly(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", buildReadOnlyDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}
