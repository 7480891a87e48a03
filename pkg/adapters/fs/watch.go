package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/noteapp/pkg/core"
)

// Watch reports changes of the data file until ctx is cancelled, then closes
// the returned channel.
//
// The directory is watched rather than the file, so replacing the file by
// rename (as Save does) keeps being observed. Saves made through this store
// show up too; callers that only care about foreign edits must filter them.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := filepath.Abs(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve %s: %w", core.ErrFileAccess, s.Path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create watcher: %w", core.ErrFileAccess, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("%w: failed to watch %s: %w", core.ErrFileAccess, filepath.Dir(target), err)
	}

	events := make(chan core.Event, s.config.EventBuffer)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, target, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			s.logger.Debug("data file changed", "path", event.Name, "op", event.Op.String())

			select {
			case events <- core.Event{Type: eType, Path: s.Path, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
