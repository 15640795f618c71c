package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

func Example() {
	session := tetris.NewSession(tetris.NewRNG(2024))

	// The first tick spawns a piece; a hard drop on the next one locks it.
	session.Tick(tetris.ActionSet(0))
	snapshot, changed := session.Tick(tetris.NewActionSet(tetris.ActionHardDrop))

	fmt.Println(changed, snapshot.State, snapshot.Score)
	for _, e := range snapshot.Events {
		fmt.Println(e.Kind)
	}
	// Output:
	// true Spawning 0
	// HardDropped
	// Locked
}
