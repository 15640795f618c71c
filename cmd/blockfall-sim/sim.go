package main

import (
	"github.com/plus3/blockfall/tetris"
)

// GameResult summarizes one simulated game.
type GameResult struct {
	Seed     uint64
	Score    int
	Lines    int
	Pieces   int
	Ticks    uint64
	GameOver bool
}

// playGame runs a bot-driven session until it ends or maxTicks elapse.
func playGame(seed uint64, mode tetris.ReleaseMode, noise float64, maxTicks uint64) (GameResult, *tetris.Session) {
	session := tetris.NewSession(tetris.NewRNG(seed), tetris.WithReleaseMode(mode))
	bot := NewBot(seed, noise)

	for session.Ticks() < maxTicks && session.State() != tetris.StateGameOver {
		session.Tick(bot.Act(session))
	}

	stats := session.Stats()
	return GameResult{
		Seed:     seed,
		Score:    session.Score(),
		Lines:    stats.Lines,
		Pieces:   stats.TotalPieces(),
		Ticks:    session.Ticks(),
		GameOver: session.State() == tetris.StateGameOver,
	}, session
}
