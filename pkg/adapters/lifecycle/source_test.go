package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noteapp/pkg/adapters/lifecycle"
	"github.com/aretw0/noteapp/pkg/core"
)

func TestSource_Forwards(t *testing.T) {
	in := make(chan core.Event, 1)
	src := lifecycle.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventModify, Path: "notes.json"}

	select {
	case ev := <-src.Events():
		assert.Equal(t, "MODIFY notes.json", ev.String())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output closes with the input")
	case <-time.After(time.Second):
		t.Fatal("output not closed")
	}
}

func TestSource_CoalescesBurst(t *testing.T) {
	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventCreate, Path: "notes.json"}
	in <- core.Event{Type: core.EventModify, Path: "notes.json"}
	in <- core.Event{Type: core.EventDelete, Path: "notes.json"}
	close(in)

	src := lifecycle.NewSource(in)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	var got []string
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-src.Events():
			if !ok {
				assert.Equal(t, []string{"DELETE notes.json"}, got)
				return
			}
			got = append(got, ev.String())
		case <-timeout:
			t.Fatalf("output not closed, got %v", got)
		}
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	src := lifecycle.NewSource(make(chan core.Event))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output not closed after cancel")
	}
}
