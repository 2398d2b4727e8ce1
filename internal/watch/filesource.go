package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileSource is the concrete Source used by the CLI: the scraper glue
// mirrors each candidate container's text into one snapshot file inside a
// directory, and filesystem events stand in for DOM mutation notifications.
type FileSource struct {
	dir   string
	names []string
}

// NewFileSource creates a FileSource over dir. Each selector maps to one
// snapshot file; missing files read as empty (container not rendered yet).
func NewFileSource(dir string, selectors []string) *FileSource {
	names := make([]string, len(selectors))
	for i, sel := range selectors {
		names[i] = SelectorFilename(sel)
	}
	return &FileSource{dir: dir, names: names}
}

// SelectorFilename maps a candidate container selector to its snapshot
// filename: non-alphanumeric runes become dashes.
func SelectorFilename(selector string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, selector)
	return strings.Trim(slug, "-") + ".txt"
}

// ReadCandidates concatenates the current text of all candidate snapshots.
func (f *FileSource) ReadCandidates(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var parts []string
	for _, name := range f.names {
		data, err := os.ReadFile(filepath.Join(f.dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reading candidate %s: %w", name, err)
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// Mutations watches the snapshot directory and forwards write events as
// change notifications. Notifications are level-triggered (buffer of one);
// bursts coalesce naturally. The channel closes when ctx is done.
func (f *FileSource) Mutations(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fs watcher: %w", err)
	}
	if err := watcher.Add(f.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", f.dir, err)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Transient watch errors do not end observation; the
				// next poll or mutation recovers.
			}
		}
	}()
	return ch, nil
}
