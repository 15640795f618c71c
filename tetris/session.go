// Package tetris implements a deterministic falling-block puzzle engine.
//
// A Session owns the field, the active piece, the lookahead piece and the score,
// and advances one tick at a time from an ActionSet observed by the caller. The
// engine never polls devices or clocks itself; frontends feed it input and render
// the Snapshots it returns.
package tetris

import "math/rand/v2"

// State is the top-level game state.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

var stateNames = [...]string{"Spawning", "Falling", "Locking", "GameOver"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

const (
	// SpawnColumn is the x position of every freshly spawned piece.
	SpawnColumn = FieldWidth/2 - 2

	baseGravityTicks   = 1000
	gravityScoreStep   = 5000
	lineClearBaseScore = 100
)

// GravityInterval returns the number of ticks between gravity steps at the given
// score. It never drops below one tick.
func GravityInterval(score int) int {
	return max(1, baseGravityTicks-score/gravityScoreStep)
}

// LineClearScore returns the points awarded for clearing rows rows in one lock.
func LineClearScore(rows int) int {
	return rows * rows * lineClearBaseScore
}

// RNG is the uniform source used to draw piece types.
type RNG interface {
	IntN(n int) int
}

// NewRNG returns a seeded generator. The same seed always yields the same pieces.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Option configures a Session.
type Option func(*Session)

// WithReleaseMode selects how held directions are released. The default is
// ReleaseOnIdle.
func WithReleaseMode(mode ReleaseMode) Option {
	return func(s *Session) {
		s.input = NewInputTimer(mode)
	}
}

// Session is a single game. It is owned by one caller and is not safe for
// concurrent use.
type Session struct {
	field  Field
	active *Tetromino
	next   PieceType
	rng    RNG
	input  *InputTimer

	state          State
	score          int
	gravityCounter int
	tick           uint64
	clearRows      []int
	quit           bool

	stats     *Stats
	scheduler *Scheduler
	events    Events
}

// NewSession creates a session that will spawn its first piece on the first tick.
func NewSession(rng RNG, opts ...Option) *Session {
	s := &Session{
		rng:       rng,
		input:     NewInputTimer(ReleaseOnIdle),
		state:     StateSpawning,
		stats:     newStats(),
		scheduler: NewScheduler(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.next = s.drawType()

	s.scheduler.Register(&QuitSystem{})
	s.scheduler.Register(&SpawnSystem{})
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&LockSystem{})

	return s
}

func (s *Session) drawType() PieceType {
	return PieceType(s.rng.IntN(PieceTypeCount))
}

// Tick advances the session by one tick. The returned snapshot reflects the state
// after the tick; changed is false when nothing observable happened, in which
// case the snapshot need not be rendered. Once the game is over Tick does nothing.
func (s *Session) Tick(input ActionSet) (snapshot Snapshot, changed bool) {
	if s.state == StateGameOver {
		return s.Snapshot(), false
	}

	s.tick++
	s.clearRows = nil

	s.scheduler.Once(&Frame{
		Tick:    s.tick,
		Input:   input,
		Session: s,
		Events:  &s.events,
	})

	events := s.events.Flush()
	snapshot = s.Snapshot()
	snapshot.Events = events
	return snapshot, len(events) > 0
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Next returns the lookahead piece type.
func (s *Session) Next() PieceType {
	return s.next
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Quit reports whether the session ended because of a Quit action.
func (s *Session) Quit() bool {
	return s.quit
}

// Active returns a copy of the falling piece, or nil if there is none.
func (s *Session) Active() *Tetromino {
	if s.active == nil {
		return nil
	}
	p := *s.active
	return &p
}

// Field returns a copy of the field.
func (s *Session) Field() Field {
	return s.field
}

// GhostY returns the row the active piece would land on if hard-dropped.
func (s *Session) GhostY() (int, bool) {
	if s.active == nil {
		return 0, false
	}
	return DropRow(&s.field, s.active), true
}

// KeyState returns the input timer state of a direction.
func (s *Session) KeyState(d Direction) KeyState {
	return s.input.State(d)
}

// Stats returns the session counters. The returned value is live; callers must not
// retain it across ticks if they need a stable view.
func (s *Session) Stats() *Stats {
	return s.stats
}

// SchedulerStats returns timing statistics for the per-tick systems.
func (s *Session) SchedulerStats() *SchedulerStats {
	return s.scheduler.GetStats()
}

// Snapshot returns the render view of the current state, without events.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		State: s.state,
		Board: s.field.Cells(),
		Next:  s.next,
		Score: s.score,
		Lines: s.stats.Lines,
	}

	if s.active != nil {
		snap.Active = &ActivePiece{
			Type:  s.active.Type,
			Cells: s.active.Cells(),
		}
	}

	if len(s.clearRows) > 0 {
		snap.ClearRows = append([]int(nil), s.clearRows...)
	}

	return snap
}
