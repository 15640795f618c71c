package tetris

import (
	"context"
	"time"
)

// InputSource returns the actions observed since the previous poll. It must not
// block; an empty set means no key was observed.
type InputSource interface {
	Poll() ActionSet
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() ActionSet

func (f InputSourceFunc) Poll() ActionSet { return f() }

// Sink receives snapshots for rendering.
type Sink interface {
	Render(snapshot Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(snapshot Snapshot)

func (f SinkFunc) Render(snapshot Snapshot) { f(snapshot) }

// Run ticks the session at the given interval until the context is cancelled or
// the game ends. The sink receives the initial state and every changed snapshot.
func (s *Session) Run(ctx context.Context, interval time.Duration, source InputSource, sink Sink) {
	sink.Render(s.Snapshot())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, changed := s.Tick(source.Poll())
			if changed {
				sink.Render(snapshot)
			}
			if s.state == StateGameOver {
				return
			}
		}
	}
}
