// Package core holds the note domain: notes, categories, the storage port and
// the service the front ends talk to. It does not know how notes are stored.
package core

import "fmt"

// DefaultCategory is assigned to notes created without a category.
const DefaultCategory = "Разное"

// PredefinedCategories are always present in a Service, in this order.
var PredefinedCategories = []string{
	"Работа",
	"Дом",
	"Здоровье и Спорт",
	"Люди",
	"Документы",
	"Финансы",
	DefaultCategory,
}

// EventType represents the type of change seen on the data file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the data file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
