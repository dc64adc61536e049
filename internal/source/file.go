package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// File emits the rows of a text file and re-reads it whenever it changes.
type File struct {
	path string
}

// NewFile returns a source for path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return filepath.Base(f.path) }

// Run emits the current contents, then watches the file's directory so that
// editors that replace the file on save are handled too. A removed file
// yields an empty collection.
func (f *File) Run(ctx context.Context, emit func([]Row), report Reporter) error {
	abs, err := filepath.Abs(f.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", f.path, err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	rows, err := readRows(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	emit(rows)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	slog.Debug("source: watching file", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			rows, err := readRows(abs)
			if err != nil {
				if os.IsNotExist(err) {
					emit(nil)
					continue
				}
				slog.Warn("source: reread failed", "path", abs, "err", err)
				report.report(fmt.Errorf("read %s: %w", f.path, err))
				continue
			}
			emit(rows)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("source: watcher error", "path", abs, "err", err)
			report.report(fmt.Errorf("watch %s: %w", f.path, err))
		}
	}
}

func readRows(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(string(data)), nil
}
