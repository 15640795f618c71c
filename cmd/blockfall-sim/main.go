package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	games := flag.Int("games", 10, "Number of games to simulate.")
	maxTicks := flag.Uint64("ticks", 200000, "Tick limit per game.")
	release := flag.String("release", "idle", "Held-key release rule: idle or key.")
	noise := flag.Float64("noise", 0.05, "Probability the bot picks a random placement.")
	flag.Parse()

	mode, err := tetris.ParseReleaseMode(*release)
	if err != nil {
		log.Fatalf("Invalid -release: %v", err)
	}

	log.Printf("Simulating %d games from seed %d...\n", *games, *seed)

	report := &Report{
		Seed:     *seed,
		Games:    *games,
		MaxTicks: *maxTicks,
		Release:  mode,
		Noise:    *noise,
	}

	start := time.Now()
	for i := range *games {
		result, session := playGame(*seed+uint64(i), mode, *noise, *maxTicks)
		report.Add(result, session)
		log.Printf("Game %d: score %d, %d lines in %d ticks\n", i+1, result.Score, result.Lines, result.Ticks)
	}
	report.Elapsed = time.Since(start)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
