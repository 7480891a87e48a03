package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

func TestStore_Watch(t *testing.T) {
	store, path := setupStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.State().(fs.StoreState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, store.Save(context.Background(), []*core.Note{mustNote(t, "a", "", "")}))

	select {
	case ev := <-events:
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, ev.Type)
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	cancel()
	require.Eventually(t, func() bool {
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, 2*time.Second, 10*time.Millisecond, "channel must close after cancel")
	assert.False(t, store.State().(fs.StoreState).WatcherActive)
}

func TestStore_Watch_IgnoresOtherFiles(t *testing.T) {
	store, path := setupStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)

	other := fs.NewStore(fs.Config{Path: path + ".bak"})
	require.NoError(t, other.Save(context.Background(), nil))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %s", ev)
	case <-time.After(200 * time.Millisecond):
	}
}
