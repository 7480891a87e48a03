package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Service handles the business logic for notes: it keeps the collection
// grouped by category in memory and persists it through a Repository.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	mu         sync.RWMutex
	categories []*Category
}

// NewService creates a new Service with the predefined categories.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{repo: repo, logger: logger}
	s.reset()
	return s
}

func (s *Service) reset() {
	s.categories = make([]*Category, 0, len(PredefinedCategories))
	for _, name := range PredefinedCategories {
		s.categories = append(s.categories, &Category{name: name})
	}
}

// Load replaces the in-memory collection with the stored one. Notes are
// grouped by their category; relative order inside a category is kept.
func (s *Service) Load(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	for _, n := range notes {
		if err := s.categoryLocked(n.Category()).AddNote(n); err != nil {
			return err
		}
	}
	s.logger.Debug("notes loaded", "count", len(notes), "categories", len(s.categories))
	return nil
}

// Save writes the whole collection, category by category.
func (s *Service) Save(ctx context.Context) error {
	notes := s.Notes()
	if err := s.repo.Save(ctx, notes); err != nil {
		return err
	}
	s.logger.Debug("notes saved", "count", len(notes))
	return nil
}

// CreateNote builds a note and files it under its category, creating the
// category when it does not exist yet.
func (s *Service) CreateNote(title, content, category string) (*Note, error) {
	n, err := NewNote(title, content, category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.categoryLocked(n.Category()).AddNote(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddNote files an existing note under its category, keeping its timestamps.
func (s *Service) AddNote(n *Note) error {
	if n == nil {
		return fmt.Errorf("%w: note is nil", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryLocked(n.Category()).AddNote(n)
}

// NoteUpdate lists the fields to change; nil fields are left alone.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *string
}

// UpdateNote edits the first note titled title. Changing the category moves
// the note to the end of its new category.
func (s *Service) UpdateNote(title string, upd NoteUpdate) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, owner := s.findLocked(title)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	if upd.Title != nil {
		if err := n.SetTitle(*upd.Title); err != nil {
			return nil, err
		}
	}
	if upd.Content != nil {
		n.SetContent(*upd.Content)
	}
	if upd.Category != nil {
		n.SetCategory(*upd.Category)
		if n.Category() != owner.Name() {
			owner.RemoveNote(n)
			if err := s.categoryLocked(n.Category()).AddNote(n); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

// DeleteNote removes every note titled title from every category and
// returns how many were removed.
func (s *Service) DeleteNote(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, c := range s.categories {
		removed += c.RemoveNoteByTitle(title)
	}
	return removed
}

// FindNote returns the first note titled title.
func (s *Service) FindNote(title string) (*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, _ := s.findLocked(title)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return n, nil
}

// Notes returns every note, category by category.
func (s *Service) Notes() []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notes []*Note
	for _, c := range s.categories {
		notes = append(notes, c.notes...)
	}
	return notes
}

// Categories returns the categories in display order.
func (s *Service) Categories() []*Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Category looks a category up by name.
func (s *Service) Category(name string) (*Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Search filters and sorts the collection.
func (s *Service) Search(q Query) ([]*Note, error) {
	return q.Apply(s.Notes())
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

func (s *Service) findLocked(title string) (*Note, *Category) {
	for _, c := range s.categories {
		for _, n := range c.notes {
			if n.Title() == title {
				return n, c
			}
		}
	}
	return nil, nil
}

// categoryLocked returns the category called name, appending a new one when missing.
func (s *Service) categoryLocked(name string) *Category {
	for _, c := range s.categories {
		if c.name == name {
			return c
		}
	}
	c := &Category{name: name}
	s.categories = append(s.categories, c)
	return c
}
