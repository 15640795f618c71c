package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	tick := flag.Duration("tick", 4*time.Millisecond, "Engine tick interval.")
	withSound := flag.Bool("sound", true, "Play sound cues.")
	release := flag.String("release", "idle", "Held-key release rule: idle or key.")
	debug := flag.Bool("debug", false, "Write a log file under "+logDir+".")
	flag.Parse()

	mode, err := tetris.ParseReleaseMode(*release)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -release: %v\n", err)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Starting blockfall-term with seed %d, tick %v, release %s\n", *seed, *tick, mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, events)

	session := tetris.NewSession(tetris.NewRNG(*seed), tetris.WithReleaseMode(mode))
	kb := newKeyboard(events, *tick)
	v := newView(screen, session)

	if *withSound {
		player, err := sound.NewPlayer(-1)
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			v.player = player
			defer player.Close()
		}
	}

	source := tetris.InputSourceFunc(func() tetris.ActionSet {
		input := kb.Poll()
		if kb.TakeResize() {
			screen.Sync()
		}
		return input
	})
	session.Run(ctx, *tick, source, v)

	log.Printf("Final score %d, %d lines after %d ticks\n", session.Score(), session.Stats().Lines, session.Ticks())

	if session.Quit() || ctx.Err() != nil {
		return
	}
	waitForKey(ctx, events)
}

// pollEvents forwards screen events until the screen is finalized or the
// context is cancelled.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// waitForKey blocks until a key is pressed or the context is cancelled.
func waitForKey(ctx context.Context, events <-chan tcell.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}
