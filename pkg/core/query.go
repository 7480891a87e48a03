package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SortField selects the key notes are ordered by.
type SortField string

const (
	SortNone     SortField = ""
	SortTitle    SortField = "title"
	SortCreated  SortField = "created"
	SortModified SortField = "modified"
	SortCategory SortField = "category"
)

// ParseSortField maps user input to a SortField.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortNone, SortTitle, SortCreated, SortModified, SortCategory:
		return f, nil
	default:
		return SortNone, fmt.Errorf("%w: unknown sort field %q", ErrValidation, s)
	}
}

// Query filters and orders notes.
type Query struct {
	// Text is matched case-insensitively against title and content.
	Text string
	// Category is a glob (doublestar syntax) matched against the whole
	// category name. A slash is an ordinary character, so "*" also matches
	// "Дом/Гараж".
	Category string
	SortBy   SortField
	Desc     bool
}

// Apply returns the notes matching q, ordered as q asks. Without a sort field
// the input order is kept. Sorting is stable.
func (q Query) Apply(notes []*Note) ([]*Note, error) {
	pattern := flattenSlashes(q.Category)
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid category pattern %q", ErrValidation, q.Category)
	}
	needle := strings.ToLower(q.Text)

	out := make([]*Note, 0, len(notes))
	for _, n := range notes {
		if pattern != "" {
			ok, err := doublestar.Match(pattern, flattenSlashes(n.Category()))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			if !ok {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title()), needle) &&
			!strings.Contains(strings.ToLower(n.Content()), needle) {
			continue
		}
		out = append(out, n)
	}

	if q.SortBy != SortNone {
		cmpFn, err := comparator(q.SortBy)
		if err != nil {
			return nil, err
		}
		if q.Desc {
			asc := cmpFn
			cmpFn = func(a, b *Note) int { return asc(b, a) }
		}
		slices.SortStableFunc(out, cmpFn)
	}
	return out, nil
}

// slashStandIn replaces '/' before matching so doublestar never sees a
// path separator in a category name.
const slashStandIn = "\uE000"

func flattenSlashes(s string) string {
	return strings.ReplaceAll(s, "/", slashStandIn)
}

func comparator(field SortField) (func(a, b *Note) int, error) {
	switch field {
	case SortTitle:
		return func(a, b *Note) int {
			return cmp.Compare(strings.ToLower(a.Title()), strings.ToLower(b.Title()))
		}, nil
	case SortCategory:
		return func(a, b *Note) int { return cmp.Compare(a.Category(), b.Category()) }, nil
	case SortCreated:
		return func(a, b *Note) int { return a.CreatedAt().Compare(b.CreatedAt()) }, nil
	case SortModified:
		return func(a, b *Note) int { return a.ModifiedAt().Compare(b.ModifiedAt()) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort field %q", ErrValidation, field)
	}
}
