package knowledge

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"freezer-inventory/pkg/log"
)

var ErrNoFile = errors.New("knowledge base has no backing file")

// Watcher reloads a Store when its file changes.
type Watcher struct {
	l     log.Logger
	store *Store
}

func NewWatcher(l log.Logger, store *Store) *Watcher {
	return &Watcher{l: l, store: store}
}

// Watch starts watching and returns once the watch is registered. The
// directory is watched rather than the file so that editors replacing the
// file by rename are seen. Watching stops when ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	path := w.store.Path()
	if path == "" {
		return ErrNoFile
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return err
	}

	go func() {
		defer fw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := w.store.Reload(ctx); err != nil {
					w.l.Errorf(ctx, "knowledge base reload failed, keeping previous: %v", err)
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.l.Warnf(ctx, "knowledge base watcher: %v", err)
			}
		}
	}()

	w.l.Infof(ctx, "watching knowledge base: path=%s", target)
	return nil
}
