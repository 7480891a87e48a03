// Package lifecycle exposes data file events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/noteapp/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits data file events.
//
// Events already queued when one is forwarded are folded into it, so a save
// that fsnotify reports several times reaches consumers once, as its last
// event.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input closes, then closes
// the output.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for e := range lifecycle.Receive(ctx, s.events) {
			latest, open := coalesce(e, s.events)
			select {
			case s.out <- latest:
			case <-ctx.Done():
				return nil
			}
			if !open {
				return nil
			}
		}
		return nil
	})
	return nil
}

// coalesce drains the events pending on in and returns the newest one. open
// is false once in has been closed.
func coalesce(e core.Event, in <-chan core.Event) (latest core.Event, open bool) {
	latest = e
	for {
		select {
		case next, ok := <-in:
			if !ok {
				return latest, false
			}
			latest = next
		default:
			return latest, true
		}
	}
}
