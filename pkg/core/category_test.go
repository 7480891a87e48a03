package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noteapp/pkg/core"
)

func mustNote(t *testing.T, title, content, category string) *core.Note {
	t.Helper()
	n, err := core.NewNote(title, content, category)
	require.NoError(t, err)
	return n
}

func TestNewCategory(t *testing.T) {
	c, err := core.NewCategory("Personal")
	require.NoError(t, err)
	assert.Equal(t, "Personal", c.Name())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Notes())

	for _, name := range []string{"", "   "} {
		_, err := core.NewCategory(name)
		assert.ErrorIs(t, err, core.ErrValidation, "name %q", name)
	}
}

func TestCategory_AddNote(t *testing.T) {
	c, err := core.NewCategory("Personal")
	require.NoError(t, err)

	first := mustNote(t, "first", "a", "Personal")
	second := mustNote(t, "second", "b", "Personal")
	require.NoError(t, c.AddNote(first))
	require.NoError(t, c.AddNote(second))

	notes := c.Notes()
	require.Len(t, notes, 2)
	assert.Same(t, first, notes[0])
	assert.Same(t, second, notes[1])

	assert.ErrorIs(t, c.AddNote(nil), core.ErrValidation)
	assert.Equal(t, 2, c.Len())
}

func TestCategory_NotesIsACopy(t *testing.T) {
	c, err := core.NewCategory("Work")
	require.NoError(t, err)
	require.NoError(t, c.AddNote(mustNote(t, "a", "", "Work")))

	notes := c.Notes()
	notes[0] = nil
	_ = append(notes, mustNote(t, "b", "", "Work"))

	require.Equal(t, 1, c.Len())
	assert.NotNil(t, c.Notes()[0])

	// Notes are shared, so edits show through.
	c.Notes()[0].SetContent("edited")
	assert.Equal(t, "edited", c.Notes()[0].Content())
}

func TestCategory_RemoveNoteByTitle(t *testing.T) {
	c, err := core.NewCategory("Work")
	require.NoError(t, err)
	for _, title := range []string{"X", "Y", "X", "Z"} {
		require.NoError(t, c.AddNote(mustNote(t, title, "", "Work")))
	}

	assert.Equal(t, 2, c.RemoveNoteByTitle("X"))
	var titles []string
	for _, n := range c.Notes() {
		titles = append(titles, n.Title())
	}
	assert.Equal(t, []string{"Y", "Z"}, titles)

	assert.Equal(t, 0, c.RemoveNoteByTitle("missing"))
	assert.Equal(t, 0, c.RemoveNoteByTitle("y"), "match is exact")
	assert.Equal(t, 2, c.Len())
}

func TestCategory_RemoveNote(t *testing.T) {
	c, err := core.NewCategory("Work")
	require.NoError(t, err)
	a := mustNote(t, "same", "1", "Work")
	b := mustNote(t, "same", "2", "Work")
	require.NoError(t, c.AddNote(a))
	require.NoError(t, c.AddNote(b))

	assert.True(t, c.RemoveNote(b))
	assert.False(t, c.RemoveNote(b))
	require.Equal(t, 1, c.Len())
	assert.Same(t, a, c.Notes()[0])
}

func TestCategory_String(t *testing.T) {
	c, err := core.NewCategory("Работа")
	require.NoError(t, err)
	require.NoError(t, c.AddNote(mustNote(t, "a", "", "Работа")))
	assert.Equal(t, "Категория: Работа\nЗаметки: 1", c.String())
}
