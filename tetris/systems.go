package tetris

// QuitSystem ends the session when a Quit action is observed.
type QuitSystem struct{}

func (sys *QuitSystem) Execute(frame *Frame) {
	s := frame.Session
	if !frame.Input.Has(ActionQuit) || s.state == StateGameOver {
		return
	}

	// Before the first spawn there is no active piece; report the queued one.
	piece := s.next
	if s.active != nil {
		piece = s.active.Type
	}

	s.quit = true
	s.state = StateGameOver
	s.active = nil
	frame.Events.Emit(EventQuit, piece, 0)
}

// SpawnSystem brings the queued piece into play and draws the next one.
type SpawnSystem struct{}

func (sys *SpawnSystem) Execute(frame *Frame) {
	s := frame.Session
	if s.state != StateSpawning {
		return
	}

	piece := NewTetromino(s.next, SpawnColumn, 0)
	s.next = s.drawType()
	s.stats.recordSpawn(piece.Type)

	if !s.field.CanPlace(piece, 0, 0) {
		s.state = StateGameOver
		frame.Events.Emit(EventGameOver, piece.Type, s.score)
		return
	}

	s.active = piece
	s.state = StateFalling
	frame.Events.Emit(EventSpawned, piece.Type, 0)
}

// InputSystem applies the actions fired by the input timer, then any hard drop.
type InputSystem struct{}

func (sys *InputSystem) Execute(frame *Frame) {
	s := frame.Session
	if s.state != StateFalling {
		return
	}

	for _, d := range s.input.Update(frame.Input) {
		if s.state != StateFalling {
			break
		}

		p := s.active
		switch d {
		case DirLeft:
			if Shift(&s.field, p, -1, 0) {
				frame.Events.Emit(EventMoved, p.Type, -1)
			}
		case DirRight:
			if Shift(&s.field, p, 1, 0) {
				frame.Events.Emit(EventMoved, p.Type, 1)
			}
		case DirDown:
			if Shift(&s.field, p, 0, 1) {
				frame.Events.Emit(EventSoftDropped, p.Type, 1)
			} else {
				s.state = StateLocking
			}
		case DirRotate:
			if Rotate(&s.field, p) {
				frame.Events.Emit(EventRotated, p.Type, 0)
			}
		}
	}

	if s.state == StateFalling && frame.Input.Has(ActionHardDrop) {
		distance := Drop(&s.field, s.active)
		s.stats.HardDropDistance += distance
		frame.Events.Emit(EventHardDropped, s.active.Type, distance)
		s.state = StateLocking
	}
}

// GravitySystem pulls the active piece down once every GravityInterval ticks.
type GravitySystem struct{}

func (sys *GravitySystem) Execute(frame *Frame) {
	s := frame.Session
	if s.state != StateFalling {
		return
	}

	s.gravityCounter++
	if s.gravityCounter < GravityInterval(s.score) {
		return
	}
	s.gravityCounter = 0

	if Shift(&s.field, s.active, 0, 1) {
		frame.Events.Emit(EventGravityStep, s.active.Type, 0)
		return
	}
	s.state = StateLocking
}

// LockSystem merges the active piece, clears full rows and scores them.
type LockSystem struct{}

func (sys *LockSystem) Execute(frame *Frame) {
	s := frame.Session
	if s.state != StateLocking {
		return
	}

	piece := s.active
	s.field.Lock(piece)
	s.active = nil
	frame.Events.Emit(EventLocked, piece.Type, 0)

	rows := s.field.FullRows()
	cleared := s.field.ClearRows(rows)
	if cleared > 0 {
		s.clearRows = rows
		s.score += LineClearScore(cleared)
		frame.Events.Emit(EventLinesCleared, piece.Type, cleared)
	}
	s.stats.recordLock(cleared)

	s.state = StateSpawning
}
