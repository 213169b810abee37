package wordsource

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"
)

// rowsSource yields the first column of every row of a query.
type rowsSource struct {
	db    *sql.DB
	query string
	args  []any
}

// Rows returns a Source that runs query on db and yields the first column
// of each row. NULL values, empty strings and invalid UTF-8 are skipped. Any
// database/sql driver works; the CLI registers mattn/go-sqlite3.
func Rows(db *sql.DB, query string, args ...any) Source {
	return &rowsSource{db: db, query: query, args: args}
}

// Words runs the query and streams its rows.
func (s *rowsSource) Words(ctx context.Context, yield func(string) bool) error {
	if s.db == nil {
		return ErrNilDB
	}

	rows, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return fmt.Errorf("wordsource: query %q: %w", s.query, err)
	}
	defer rows.Close()

	var w sql.NullString
	for rows.Next() {
		if err = rows.Scan(&w); err != nil {
			return fmt.Errorf("wordsource: scan row: %w", err)
		}
		if !w.Valid || w.String == "" {
			logger.Debugf("wordsource: skipping empty row")
			continue
		}
		if !utf8.ValidString(w.String) {
			logger.Warningf("wordsource: skipping invalid UTF-8 row %q", w.String)
			continue
		}
		if !yield(w.String) {
			return nil
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("wordsource: iterate rows: %w", err)
	}

	return nil
}
