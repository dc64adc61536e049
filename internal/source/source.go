// Package source produces successive versions of a row collection for the
// viewer: a watched text file, a polled SQLite query or a synthetic feed.
package source

import (
	"context"
	"strings"
)

// Row is one list entry.
type Row struct {
	ID     string
	Label  string
	Detail string
}

// Key is the identity extractor used for rows.
func Key(r Row, _ int) string { return r.ID }

// Source emits the full collection every time it changes. Run blocks until
// ctx is done or the source fails. Errors the source recovers from are passed
// to report and logged; report may be nil.
type Source interface {
	Name() string
	Run(ctx context.Context, emit func([]Row), report Reporter) error
}

// Reporter receives errors a source survives, such as a failed poll.
type Reporter func(error)

func (r Reporter) report(err error) {
	if r != nil {
		r(err)
	}
}

// ParseLines turns text into rows, one per non-empty line. A line is either
// "label", "id<TAB>label" or "id<TAB>label<TAB>detail". Lines starting with
// '#' are comments.
func ParseLines(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		r := Row{ID: parts[0], Label: parts[0]}
		if len(parts) > 1 {
			r.Label = parts[1]
		}
		if len(parts) > 2 {
			r.Detail = parts[2]
		}
		rows = append(rows, r)
	}
	return rows
}
