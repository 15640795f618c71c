package tetris

import (
	"fmt"
	"strings"
)

// Action is a logical input observed during a tick.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionQuit
)

var actionNames = [...]string{"MoveLeft", "MoveRight", "SoftDrop", "HardDrop", "Rotate", "Quit"}

func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is the set of actions observed in one tick. The zero value means no
// key was observed at all.
type ActionSet uint8

// NewActionSet builds a set from the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Empty reports whether no action was observed.
func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) String() string {
	var names []string
	for i := range actionNames {
		if s.Has(Action(i)) {
			names = append(names, actionNames[i])
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Direction is one of the four repeat-timed inputs.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
	DirRotate
	directionCount
)

var directionActions = [directionCount]Action{
	DirLeft:   ActionMoveLeft,
	DirRight:  ActionMoveRight,
	DirDown:   ActionSoftDrop,
	DirRotate: ActionRotate,
}

func (d Direction) String() string {
	return directionActions[d].String()
}

const (
	// DAS is the number of ticks a direction is held before auto-repeat starts.
	DAS = 8
	// ARR is the number of ticks between auto-repeated moves.
	ARR = 2
)

// ReleaseMode selects how held directions return to Idle.
type ReleaseMode uint8

const (
	// ReleaseOnIdle resets every direction on any tick with no observed key.
	ReleaseOnIdle ReleaseMode = iota
	// ReleasePerKey resets only the directions whose key was not observed.
	ReleasePerKey
)

func (m ReleaseMode) String() string {
	if m == ReleasePerKey {
		return "key"
	}
	return "idle"
}

// ParseReleaseMode parses "idle" or "key".
func ParseReleaseMode(s string) (ReleaseMode, error) {
	switch s {
	case "idle", "":
		return ReleaseOnIdle, nil
	case "key":
		return ReleasePerKey, nil
	}
	return ReleaseOnIdle, fmt.Errorf("unknown release mode %q", s)
}

// KeyState is the held/repeat state of a single direction.
type KeyState struct {
	Held      bool
	Countdown int
}

// InputTimer turns per-tick key observations into fired movement actions.
type InputTimer struct {
	keys [directionCount]KeyState
	mode ReleaseMode
}

// NewInputTimer creates a timer with every direction Idle.
func NewInputTimer(mode ReleaseMode) *InputTimer {
	return &InputTimer{mode: mode}
}

// State returns the current state of a direction.
func (t *InputTimer) State(d Direction) KeyState {
	return t.keys[d]
}

// Reset returns every direction to Idle.
func (t *InputTimer) Reset() {
	t.keys = [directionCount]KeyState{}
}

// Update advances the timer by one tick and returns the directions that fire,
// in Direction order.
func (t *InputTimer) Update(input ActionSet) []Direction {
	if input.Empty() {
		t.Reset()
		return nil
	}

	// Opposite directions cancel each other before timing is applied.
	if input.Has(ActionMoveLeft) {
		t.keys[DirRight] = KeyState{}
	}
	if input.Has(ActionMoveRight) {
		t.keys[DirLeft] = KeyState{}
	}

	var fired []Direction
	for d := range directionCount {
		key := &t.keys[d]

		if !input.Has(directionActions[d]) {
			if t.mode == ReleasePerKey {
				*key = KeyState{}
			}
			continue
		}

		if !key.Held {
			key.Held = true
			key.Countdown = DAS
			fired = append(fired, d)
			continue
		}

		if d == DirRotate {
			continue
		}

		key.Countdown--
		if key.Countdown <= 0 {
			key.Countdown = ARR
			fired = append(fired, d)
		}
	}

	return fired
}
