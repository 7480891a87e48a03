package fs

import (
	"slices"
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	Versioning    bool       `json:"versioning"`
	ReadOnly      bool       `json:"read_only"`
	Formats       []string   `json:"formats"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	formats := make([]string, 0, len(s.serializers))
	for ext := range s.serializers {
		formats = append(formats, ext)
	}
	slices.Sort(formats)

	return StoreState{
		Path:          s.Path,
		Versioning:    s.config.Versioning,
		ReadOnly:      s.config.ReadOnly,
		Formats:       formats,
		WatcherActive: s.watcherActive,
		LastSave:      s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "file-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
