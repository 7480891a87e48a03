package core

import "context"

// Repository defines the contract for persisting the note collection.
// The whole collection is written and read at once; order is preserved.
type Repository interface {
	// Save replaces the stored collection with notes.
	Save(ctx context.Context, notes []*Note) error

	// Load returns the stored collection. A store that holds nothing yet
	// returns an empty slice and no error.
	Load(ctx context.Context) ([]*Note, error)
}

// Initializer is implemented by repositories that need setup before use
// (create directories, init version control).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

type contextKey string

// ChangeReasonKey is the context key for passing a change description (commit
// message) to Save when the repository keeps history.
const ChangeReasonKey contextKey = "change_reason"
