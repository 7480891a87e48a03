package core

import (
	"fmt"
	"time"
)

// Record keys.
const (
	KeyTitle      = "title"
	KeyContent    = "content"
	KeyCategory   = "category"
	KeyCreatedAt  = "created_at"
	KeyModifiedAt = "modified_at"
)

// RecordKeys lists the record keys in their persisted order.
var RecordKeys = []string{KeyTitle, KeyContent, KeyCategory, KeyCreatedAt, KeyModifiedAt}

// Record is the flat key-value form of a Note, as written to the data file.
type Record map[string]any

// ToRecord converts the note into its persisted form.
// Timestamps are rendered as RFC 3339 with nanoseconds.
func (n *Note) ToRecord() Record {
	return Record{
		KeyTitle:      n.title,
		KeyContent:    n.content,
		KeyCategory:   n.category,
		KeyCreatedAt:  n.createdAt.Format(time.RFC3339Nano),
		KeyModifiedAt: n.modifiedAt.Format(time.RFC3339Nano),
	}
}

// FromRecord rebuilds a note from its persisted form, keeping the stored
// timestamps instead of the construction time.
//
// A missing category falls back to DefaultCategory. Missing title, content or
// timestamps fail with ErrParse. A modification time earlier than the
// creation time is raised to the creation time.
func FromRecord(r Record) (*Note, error) {
	title, err := r.requireString(KeyTitle)
	if err != nil {
		return nil, err
	}
	content, err := r.requireString(KeyContent)
	if err != nil {
		return nil, err
	}

	category := DefaultCategory
	if v, ok := r[KeyCategory]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a string, got %T", ErrParse, KeyCategory, v)
		}
		category = s
	}

	created, err := r.requireTime(KeyCreatedAt)
	if err != nil {
		return nil, err
	}
	modified, err := r.requireTime(KeyModifiedAt)
	if err != nil {
		return nil, err
	}
	if modified.Before(created) {
		// Naive local timestamps can invert across a DST fall-back.
		modified = created
	}

	n, err := NewNote(title, content, category)
	if err != nil {
		return nil, err
	}
	n.createdAt = created
	n.modifiedAt = modified
	return n, nil
}

// String returns the value under key as text, or "" when absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (r Record) requireString(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrParse, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrParse, key, v)
	}
	return s, nil
}

func (r Record) requireTime(key string) (time.Time, error) {
	v, ok := r[key]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing %q", ErrParse, key)
	}
	switch t := v.(type) {
	case time.Time:
		// YAML may hand over already decoded timestamps.
		return t, nil
	case string:
		ts, err := ParseTimestamp(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q: %w", key, err)
		}
		return ts, nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q must be a timestamp string, got %T", ErrParse, key, v)
	}
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
}

// localLayouts are ISO-8601 forms without a zone offset; they are read in local time.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts RFC 3339 and offset-less ISO-8601 date-times,
// with or without fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid ISO-8601 timestamp %q", ErrParse, s)
}
