package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesOf(notes []*Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title())
	}
	return out
}

func TestQuery_Apply(t *testing.T) {
	fakeClock(t)

	var notes []*Note
	for _, tc := range [][3]string{
		{"Budget", "monthly spending", "Финансы"},
		{"apples", "buy groceries", "Дом"},
		{"Taxes", "file the BUDGET forms", "Финансы"},
		{"Run", "5k on sunday", "Здоровье и Спорт"},
		{"Cleanup", "garage", "Дом/Гараж"},
	} {
		n, err := NewNote(tc[0], tc[1], tc[2])
		require.NoError(t, err)
		notes = append(notes, n)
	}
	// Touch "apples" last so it is the most recently modified.
	notes[1].SetContent("buy groceries and milk")

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "Everything In Order", query: Query{}, want: []string{"Budget", "apples", "Taxes", "Run", "Cleanup"}},
		{name: "Text Is Case Insensitive", query: Query{Text: "budget"}, want: []string{"Budget", "Taxes"}},
		{name: "Exact Category", query: Query{Category: "Финансы"}, want: []string{"Budget", "Taxes"}},
		{name: "Category Glob", query: Query{Category: "Дом*"}, want: []string{"apples", "Cleanup"}},
		{name: "Category Glob With Slash", query: Query{Category: "Дом/*"}, want: []string{"Cleanup"}},
		{name: "Star Spans Slash", query: Query{Category: "*"}, want: []string{"Budget", "apples", "Taxes", "Run", "Cleanup"}},
		{name: "Question Mark Matches Slash", query: Query{Category: "Дом?Гараж"}, want: []string{"Cleanup"}},
		{name: "Sort By Title", query: Query{SortBy: SortTitle}, want: []string{"apples", "Budget", "Cleanup", "Run", "Taxes"}},
		{name: "Sort By Title Desc", query: Query{SortBy: SortTitle, Desc: true}, want: []string{"Taxes", "Run", "Cleanup", "Budget", "apples"}},
		{name: "Sort By Modified Desc", query: Query{SortBy: SortModified, Desc: true}, want: []string{"apples", "Cleanup", "Run", "Taxes", "Budget"}},
		{name: "Sort By Created", query: Query{SortBy: SortCreated}, want: []string{"Budget", "apples", "Taxes", "Run", "Cleanup"}},
		{name: "Sort By Category Is Stable", query: Query{SortBy: SortCategory, Category: "Финансы"}, want: []string{"Budget", "Taxes"}},
		{name: "No Match", query: Query{Text: "nothing like this"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Apply(notes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titlesOf(got))
		})
	}

	t.Run("Input Untouched", func(t *testing.T) {
		_, err := Query{SortBy: SortTitle}.Apply(notes)
		require.NoError(t, err)
		assert.Equal(t, "Budget", notes[0].Title())
	})

	t.Run("Invalid Pattern", func(t *testing.T) {
		_, err := Query{Category: "[unclosed"}.Apply(notes)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestParseSortField(t *testing.T) {
	for in, want := range map[string]SortField{
		"":          SortNone,
		"title":     SortTitle,
		" Modified": SortModified,
		"CREATED":   SortCreated,
		"category":  SortCategory,
	} {
		got, err := ParseSortField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseSortField("size")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuery_SortCreatedUsesInstants(t *testing.T) {
	early, err := NewNote("early", "", "")
	require.NoError(t, err)
	late, err := NewNote("late", "", "")
	require.NoError(t, err)
	early.createdAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	early.modifiedAt = early.createdAt
	late.createdAt = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	late.modifiedAt = late.createdAt

	got, err := Query{SortBy: SortCreated}.Apply([]*Note{late, early})
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late"}, titlesOf(got))
}
