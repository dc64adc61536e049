package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"time"

	_ "modernc.org/sqlite"
)

// Query emits the result of a SQLite query, polling it on an interval. The
// query must return one to three text columns: id, label and detail.
type Query struct {
	dbPath   string
	query    string
	interval time.Duration

	last    []Row
	emitted bool
}

// NewQuery returns a polling source. Non-positive intervals default to one
// second.
func NewQuery(dbPath, query string, interval time.Duration) *Query {
	if interval <= 0 {
		interval = time.Second
	}
	return &Query{dbPath: dbPath, query: query, interval: interval}
}

func (q *Query) Name() string { return q.dbPath }

// Run opens the database and polls until ctx is done. Results are
// emitted only when they differ from the previous poll, or when a poll
// succeeds after a failed one. Failures after the first poll are reported
// and polling continues.
func (q *Query) Run(ctx context.Context, emit func([]Row), report Reporter) error {
	conn, err := Open(q.dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := q.poll(ctx, conn, emit); err != nil {
		return err
	}

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := q.poll(ctx, conn, emit); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Warn("source: poll failed", "db", q.dbPath, "err", err)
				report.report(fmt.Errorf("poll %s: %w", q.dbPath, err))
			}
		}
	}
}

// Open opens a SQLite database with the same pragmas the writer side uses.
func Open(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Set busy timeout so polls wait briefly on a concurrent writer
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return conn, nil
}

func (q *Query) poll(ctx context.Context, conn *sql.DB, emit func([]Row)) error {
	rows, err := Fetch(ctx, conn, q.query)
	if err != nil {
		q.emitted = false
		return err
	}
	if q.emitted && slices.Equal(rows, q.last) {
		return nil
	}
	q.last = rows
	q.emitted = true
	emit(slices.Clone(rows))
	return nil
}

// Fetch runs query and maps its columns to rows.
func Fetch(ctx context.Context, conn *sql.DB, query string) ([]Row, error) {
	res, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer res.Close()

	cols, err := res.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	if len(cols) < 1 || len(cols) > 3 {
		return nil, fmt.Errorf("query returns %d columns, want id[, label[, detail]]", len(cols))
	}

	var out []Row
	for res.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := res.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		r := Row{ID: vals[0].String, Label: vals[0].String}
		if len(vals) > 1 && vals[1].Valid {
			r.Label = vals[1].String
		}
		if len(vals) > 2 {
			r.Detail = vals[2].String
		}
		out = append(out, r)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
