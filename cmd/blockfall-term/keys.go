package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// Terminals report key presses and auto-repeats but never releases. A single
// press is held for tapTicks ticks, short of DAS, so a tap moves exactly once.
// When the terminal's auto-repeat delivers another event for the key within
// repeatWindow, the key is held until repeatWindow passes without one.
const (
	tapTicks     = tetris.DAS / 2
	repeatWindow = 120 * time.Millisecond
)

type heldKey struct {
	last    time.Time
	repeats int
}

var runeActions = map[rune]tetris.Action{
	'h': tetris.ActionMoveLeft,
	'a': tetris.ActionMoveLeft,
	'l': tetris.ActionMoveRight,
	'd': tetris.ActionMoveRight,
	'j': tetris.ActionSoftDrop,
	's': tetris.ActionSoftDrop,
	'k': tetris.ActionRotate,
	'w': tetris.ActionRotate,
	'z': tetris.ActionRotate,
	'x': tetris.ActionRotate,
	' ': tetris.ActionHardDrop,
	'q': tetris.ActionQuit,
}

// keyAction maps a key event to the action it triggers.
func keyAction(ev *tcell.EventKey) (tetris.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.ActionMoveLeft, true
	case tcell.KeyRight:
		return tetris.ActionMoveRight, true
	case tcell.KeyDown:
		return tetris.ActionSoftDrop, true
	case tcell.KeyUp:
		return tetris.ActionRotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.ActionQuit, true
	case tcell.KeyRune:
		a, ok := runeActions[ev.Rune()]
		return a, ok
	}
	return 0, false
}

// oneShot actions are reported once per press rather than for the hold window.
func oneShot(a tetris.Action) bool {
	return a == tetris.ActionHardDrop || a == tetris.ActionQuit
}

// keyboard turns the tcell event stream into per-tick action sets.
type keyboard struct {
	events <-chan tcell.Event
	now    func() time.Time
	tap    time.Duration

	held    map[tetris.Action]*heldKey
	pending tetris.ActionSet
	resized bool
}

// newKeyboard creates a keyboard polled once per tick of the given length.
func newKeyboard(events <-chan tcell.Event, tick time.Duration) *keyboard {
	return &keyboard{
		events: events,
		now:    time.Now,
		tap:    tick * tapTicks,
		held:   make(map[tetris.Action]*heldKey),
	}
}

// Poll drains every queued event without blocking and returns the actions
// observed for this tick.
func (k *keyboard) Poll() tetris.ActionSet {
	now := k.now()

drain:
	for {
		select {
		case ev := <-k.events:
			k.handle(ev, now)
		default:
			break drain
		}
	}

	input := k.pending
	k.pending = 0
	for a, key := range k.held {
		window := k.tap
		if key.repeats > 0 {
			window = repeatWindow
		}
		age := now.Sub(key.last)
		if age > repeatWindow {
			delete(k.held, a)
		}
		if age <= window {
			input = input.With(a)
		}
	}
	return input
}

// TakeResize reports whether the terminal was resized since the last call.
func (k *keyboard) TakeResize() bool {
	resized := k.resized
	k.resized = false
	return resized
}

func (k *keyboard) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := keyAction(ev)
		if !ok {
			return
		}
		if oneShot(a) {
			k.pending = k.pending.With(a)
			return
		}
		if key, ok := k.held[a]; ok && now.Sub(key.last) <= repeatWindow {
			key.last = now
			key.repeats++
			return
		}
		k.held[a] = &heldKey{last: now}
	case *tcell.EventResize:
		k.resized = true
	}
}
