package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noteapp/pkg/core"
)

func TestParseDisplayString(t *testing.T) {
	t.Run("Current Format", func(t *testing.T) {
		n, err := core.NewNote("Report", "Q1 numbers\nand Q2", "Работа")
		require.NoError(t, err)

		back, err := core.ParseDisplayString(n.String(), "ignored")
		require.NoError(t, err)
		assert.Equal(t, "Report", back.Title())
		assert.Equal(t, "Q1 numbers\nand Q2", back.Content())
		assert.Equal(t, "Работа", back.Category())
		assert.Equal(t, n.CreatedAt().Truncate(time.Second).Unix(), back.CreatedAt().Unix())
	})

	t.Run("Legacy Format Without Category", func(t *testing.T) {
		block := "Заголовок: Заметка 1\nТекст: Текст заметки 1\nСоздано: 2024-05-01 12:00:00.123456\nИзменено: 2024-05-01 12:30:00.654321"
		n, err := core.ParseDisplayString(block, "")
		require.NoError(t, err)
		assert.Equal(t, "Заметка 1", n.Title())
		assert.Equal(t, "Текст заметки 1", n.Content())
		assert.Equal(t, core.DefaultCategory, n.Category())
		want := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.Local)
		assert.True(t, want.Equal(n.CreatedAt()), "got %v", n.CreatedAt())
		assert.Equal(t, 30*time.Minute+530865*time.Microsecond, n.ModifiedAt().Sub(n.CreatedAt()))

		withFallback, err := core.ParseDisplayString(block, "work")
		require.NoError(t, err)
		assert.Equal(t, "work", withFallback.Category())
	})

	bad := map[string]string{
		"Not A Note":       "hello",
		"Missing Text":     "Заголовок: x\nСоздано: 2024-05-01 12:00:00\nИзменено: 2024-05-01 12:00:00",
		"Missing Modified": "Заголовок: x\nТекст: y\nСоздано: 2024-05-01 12:00:00",
		"Bad Created":      "Заголовок: x\nТекст: y\nСоздано: someday\nИзменено: 2024-05-01 12:00:00",
		"Empty Title":      "Заголовок: \nТекст: y\nСоздано: 2024-05-01 12:00:00\nИзменено: 2024-05-01 12:00:00",
	}
	for name, block := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := core.ParseDisplayString(block, "")
			assert.Error(t, err)
		})
	}
}
