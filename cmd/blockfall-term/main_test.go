package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPollScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return screen
}

func TestPollEventsForwardsKeys(t *testing.T) {
	screen := newPollScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 1)
	go pollEvents(ctx, screen, events)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			// Skip the resize the screen may post on Init.
			if key, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, tcell.KeyLeft, key.Key())
				return
			}
		case <-timeout:
			t.Fatal("no key event forwarded")
		}
	}
}

func TestPollEventsStopsWhenNobodyReads(t *testing.T) {
	screen := newPollScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		pollEvents(ctx, screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller still blocked on a full channel")
	}
}
