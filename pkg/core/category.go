package core

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a named, ordered group of notes.
type Category struct {
	name  string
	notes []*Note
}

// NewCategory creates an empty category. The name is its identity and cannot
// change afterwards.
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	return &Category{name: name}, nil
}

func (c *Category) Name() string { return c.name }

// Len returns the number of notes in the category.
func (c *Category) Len() int { return len(c.notes) }

// AddNote appends a note at the end of the category.
func (c *Category) AddNote(n *Note) error {
	if n == nil {
		return fmt.Errorf("%w: only notes can be added to category %q", ErrValidation, c.name)
	}
	c.notes = append(c.notes, n)
	return nil
}

// RemoveNoteByTitle removes every note whose title equals title exactly and
// returns how many were removed.
func (c *Category) RemoveNoteByTitle(title string) int {
	kept := c.notes[:0]
	for _, n := range c.notes {
		if n.Title() != title {
			kept = append(kept, n)
		}
	}
	removed := len(c.notes) - len(kept)
	clear(c.notes[len(kept):])
	c.notes = kept
	return removed
}

// RemoveNote removes this exact note, compared by identity.
func (c *Category) RemoveNote(n *Note) bool {
	for i, cur := range c.notes {
		if cur == n {
			c.notes = slices.Delete(c.notes, i, i+1)
			return true
		}
	}
	return false
}

// Notes returns the notes in insertion order.
//
// The slice is a copy, so adding to or removing from it does not affect the
// category. The notes themselves are shared: edits through them are visible
// to the category.
func (c *Category) Notes() []*Note {
	out := make([]*Note, len(c.notes))
	copy(out, c.notes)
	return out
}

func (c *Category) String() string {
	return fmt.Sprintf("Категория: %s\nЗаметки: %d", c.name, len(c.notes))
}
