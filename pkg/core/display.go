package core

import (
	"fmt"
	"strings"
	"time"
)

// Labels of the display block produced by Note.String.
const (
	labelTitle    = "Заголовок:"
	labelContent  = "Текст:"
	labelCategory = "Категория:"
	labelCreated  = "Создано:"
	labelModified = "Изменено:"
)

// ParseDisplayString reads back a block produced by Note.String, or by the
// older format that had no category line, in which case fallbackCategory is
// used. It exists for importing legacy data files; the block loses sub-second
// precision so it is not a storage format.
//
// The title is the first line; the content is everything up to the optional
// category line or the creation line, so it may span several lines.
func ParseDisplayString(s, fallbackCategory string) (*Note, error) {
	s = strings.TrimRight(s, "\r\n")
	if !strings.HasPrefix(s, labelTitle+" ") {
		return nil, fmt.Errorf("%w: display block must start with %q", ErrParse, labelTitle)
	}
	rest := strings.TrimPrefix(s, labelTitle+" ")

	title, rest, ok := strings.Cut(rest, "\n"+labelContent+" ")
	if !ok {
		return nil, fmt.Errorf("%w: display block has no %q line", ErrParse, labelContent)
	}

	body, modifiedText, ok := cutLast(rest, "\n"+labelModified+" ")
	if !ok {
		return nil, fmt.Errorf("%w: display block has no %q line", ErrParse, labelModified)
	}
	body, createdText, ok := cutLast(body, "\n"+labelCreated+" ")
	if !ok {
		return nil, fmt.Errorf("%w: display block has no %q line", ErrParse, labelCreated)
	}
	content, category, hasCategory := cutLast(body, "\n"+labelCategory+" ")
	if !hasCategory {
		content, category = body, fallbackCategory
	}

	created, err := parseDisplayTime(createdText)
	if err != nil {
		return nil, err
	}
	modified, err := parseDisplayTime(modifiedText)
	if err != nil {
		return nil, err
	}
	if modified.Before(created) {
		modified = created
	}

	n, err := NewNote(strings.TrimSpace(title), content, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	n.createdAt = created
	n.modifiedAt = modified
	return n, nil
}

func parseDisplayTime(s string) (time.Time, error) {
	return ParseTimestamp(strings.TrimSpace(s))
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
