package core

import (
	"fmt"
	"strings"
	"time"
)

// DisplayTimeLayout is the seconds-precision layout used by Note.String.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// now is swapped in tests that need distinct timestamps.
var now = time.Now

// Note is a short titled text with a category and two timestamps.
//
// Fields are only reachable through accessors so that every mutation both
// validates its input and refreshes the modification time.
type Note struct {
	title      string
	content    string
	category   string
	createdAt  time.Time
	modifiedAt time.Time
}

// NewNote creates a note stamped with the current time.
// An empty category falls back to DefaultCategory.
func NewNote(title, content, category string) (*Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	ts := now()
	return &Note{
		title:      title,
		content:    content,
		category:   normalizeCategory(category),
		createdAt:  ts,
		modifiedAt: ts,
	}, nil
}

func (n *Note) Title() string         { return n.title }
func (n *Note) Content() string       { return n.content }
func (n *Note) Category() string      { return n.category }
func (n *Note) CreatedAt() time.Time  { return n.createdAt }
func (n *Note) ModifiedAt() time.Time { return n.modifiedAt }

// SetTitle replaces the title. Empty or blank titles are rejected and leave
// the note untouched.
func (n *Note) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	n.title = title
	n.touch()
	return nil
}

// SetContent replaces the content. Empty content is allowed.
func (n *Note) SetContent(content string) {
	n.content = content
	n.touch()
}

// SetCategory moves the note to another category name.
// An empty name falls back to DefaultCategory.
func (n *Note) SetCategory(category string) {
	n.category = normalizeCategory(category)
	n.touch()
}

func (n *Note) touch() {
	ts := now()
	if ts.Before(n.createdAt) {
		ts = n.createdAt
	}
	n.modifiedAt = ts
}

// Equal reports whether both notes carry the same fields.
// Timestamps are compared as instants.
func (n *Note) Equal(other *Note) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.title == other.title &&
		n.content == other.content &&
		n.category == other.category &&
		n.createdAt.Equal(other.createdAt) &&
		n.modifiedAt.Equal(other.modifiedAt)
}

// String renders the note as a human readable block. It is meant for display
// only; the persisted form is Record.
func (n *Note) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelTitle, n.title)
	fmt.Fprintf(&b, "%s %s\n", labelContent, n.content)
	fmt.Fprintf(&b, "%s %s\n", labelCategory, n.category)
	fmt.Fprintf(&b, "%s %s\n", labelCreated, n.createdAt.Format(DisplayTimeLayout))
	fmt.Fprintf(&b, "%s %s", labelModified, n.modifiedAt.Format(DisplayTimeLayout))
	return b.String()
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: note title cannot be empty", ErrValidation)
	}
	return nil
}

func normalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return DefaultCategory
	}
	return category
}
