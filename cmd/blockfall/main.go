package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 720
	CellSize     = 30
	windowTitle  = "blockfall"
)

func main() {
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	tps := flag.Int("tps", 240, "Engine ticks per second.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	withSound := flag.Bool("sound", true, "Play sound cues.")
	release := flag.String("release", "idle", "Held-key release rule: idle or key.")
	flag.Parse()

	mode, err := tetris.ParseReleaseMode(*release)
	if err != nil {
		log.Fatalf("Invalid -release: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting blockfall with seed %d at %d ticks/s\n", *seed, *tps)

	game := NewGame(*seed, mode)

	if *withSound {
		player, err := sound.NewPlayer(-1)
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			game.Player = player
			defer player.Close()
		}
	}

	if *debug {
		game.EnableDebug()
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}

	log.Printf("Final score %d after %d ticks\n", game.Session.Score(), game.Session.Ticks())
}
