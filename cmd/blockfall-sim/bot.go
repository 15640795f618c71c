package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// Placement weights for the greedy evaluator.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

var (
	pressLeft   = tetris.NewActionSet(tetris.ActionMoveLeft)
	pressRight  = tetris.NewActionSet(tetris.ActionMoveRight)
	pressRotate = tetris.NewActionSet(tetris.ActionRotate)
	pressDrop   = tetris.NewActionSet(tetris.ActionHardDrop)
	release     = tetris.ActionSet(0)
)

// placement is a reachable resting pose for the active piece.
type placement struct {
	Rotations int
	Shift     int
	Cleared   int
	Score     float64
}

// Bot plays a session by picking a placement for every new piece and tapping
// the keys that reach it. Taps are separated by idle ticks so every press is a
// fresh transition for the input timer.
type Bot struct {
	rng   *rand.Rand
	noise float64

	pieces int
	plan   []tetris.ActionSet
}

// NewBot creates a bot. With probability noise a random reachable placement is
// chosen instead of the best one.
func NewBot(seed uint64, noise float64) *Bot {
	return &Bot{
		rng:   rand.New(rand.NewPCG(seed, ^seed)),
		noise: noise,
	}
}

// Act returns the input for the next tick of s.
func (b *Bot) Act(s *tetris.Session) tetris.ActionSet {
	if s.State() != tetris.StateFalling {
		return release
	}

	if spawned := s.Stats().TotalPieces(); spawned != b.pieces {
		b.pieces = spawned
		field := s.Field()
		b.plan = planInputs(b.choose(placements(&field, s.Active())))
	}

	if len(b.plan) == 0 {
		return pressDrop
	}
	input := b.plan[0]
	b.plan = b.plan[1:]
	return input
}

func (b *Bot) choose(candidates []placement) placement {
	if len(candidates) == 0 {
		return placement{}
	}
	if b.noise > 0 && b.rng.Float64() < b.noise {
		return candidates[b.rng.IntN(len(candidates))]
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}

func planInputs(p placement) []tetris.ActionSet {
	var plan []tetris.ActionSet
	for range p.Rotations {
		plan = append(plan, pressRotate, release)
	}

	press := pressRight
	steps := p.Shift
	if steps < 0 {
		press = pressLeft
		steps = -steps
	}
	for range steps {
		plan = append(plan, press, release)
	}

	return append(plan, pressDrop)
}

// placements enumerates every pose reachable by rotating in place and then
// shifting sideways, in rotation then shift order.
func placements(field *tetris.Field, active *tetris.Tetromino) []placement {
	var out []placement

	for rotations := range 4 {
		rotated := *active
		reachable := true
		for range rotations {
			if !tetris.Rotate(field, &rotated) {
				reachable = false
				break
			}
		}
		if !reachable {
			continue
		}

		for shift := -tetris.FieldWidth; shift <= tetris.FieldWidth; shift++ {
			p := rotated
			if !shiftBy(field, &p, shift) {
				continue
			}
			tetris.Drop(field, &p)

			after := *field
			after.Lock(&p)
			cleared := after.ClearRows(after.FullRows())

			out = append(out, placement{
				Rotations: rotations,
				Shift:     shift,
				Cleared:   cleared,
				Score:     evaluate(&after, cleared),
			})
		}
	}
	return out
}

func shiftBy(field *tetris.Field, p *tetris.Tetromino, shift int) bool {
	step := 1
	if shift < 0 {
		step = -1
	}
	for i := 0; i != shift; i += step {
		if !tetris.Shift(field, p, step, 0) {
			return false
		}
	}
	return true
}

func evaluate(field *tetris.Field, cleared int) float64 {
	grid := field.Cells()

	var heights [tetris.FieldWidth]int
	holes := 0
	for x := range tetris.FieldWidth {
		for y := range tetris.FieldHeight {
			if grid[y][x] {
				if heights[x] == 0 {
					heights[x] = tetris.FieldHeight - y
				}
			} else if heights[x] > 0 {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(cleared) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
