package tetris

import (
	"fmt"
	"time"
)

// State is the board's position in its state machine.
type State int

const (
	// StateEmpty means no piece is falling; the next gravity tick spawns one.
	StateEmpty State = iota
	// StateFalling means a piece is under player control.
	StateFalling
	// StateGameOver is terminal: a spawned piece could not be placed.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Board owns the settled field and the falling piece.
//
// Board is not safe for concurrent use. Callers driving it from several
// goroutines must serialize every call behind one lock.
type Board struct {
	src   ShapeSource
	clock Clock

	piece   Piece
	falling bool

	fixed  Matrix // Settled geometry
	merged Matrix // fixed plus the falling piece, rebuilt after every command

	lastFall time.Time
	finished bool
}

// Option configures a Board.
type Option func(*Board)

// WithClock replaces the wall clock used to throttle gravity.
func WithClock(c Clock) Option {
	return func(b *Board) {
		b.clock = c
	}
}

// New returns a board with an empty walled field and no falling piece.
// src supplies the shape of every spawned piece.
func New(src ShapeSource, opts ...Option) *Board {
	b := &Board{
		src:   src,
		clock: SystemClock{},
		fixed: newWalledMatrix(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.merged = b.fixed
	b.lastFall = b.clock.Now()
	return b
}

// Rotate turns the falling piece counter-clockwise (ccw) or clockwise.
// An illegal rotation is ignored.
func (b *Board) Rotate(ccw bool) {
	if b.falling {
		b.try(b.piece.Rotate(ccw))
	}
	b.merge()
}

// Move advances the falling piece forward or backward relative to its
// facing (see Piece.Advance). An illegal move is ignored.
func (b *Board) Move(forward bool) {
	if b.falling {
		b.try(b.piece.Advance(forward))
	}
	b.merge()
}

// GravityTick lets gravity act once, provided at least threshold has passed
// since the previous tick. A zero threshold always ticks.
//
// With a falling piece the piece drops one row, or locks into the field if
// it cannot. Locking clears full rows and leaves the board empty; the next
// piece spawns on the following tick. With no falling piece a new one is
// spawned, and if it does not fit the game is over.
func (b *Board) GravityTick(threshold time.Duration) {
	if b.finished {
		return
	}
	now := b.clock.Now()
	if now.Sub(b.lastFall) < threshold {
		return
	}
	b.lastFall = now

	if b.falling {
		if !b.try(b.piece.Fall()) {
			b.lock()
		}
		b.merge()
		return
	}

	next := Spawn(b.src.NextShape())
	if b.canLocate(next) {
		b.piece = next
		b.falling = true
	} else {
		b.finished = true
	}
	b.merge()
}

// try commits p as the falling piece if it fits and reports whether it did.
func (b *Board) try(p Piece) bool {
	if !b.canLocate(p) {
		return false
	}
	b.piece = p
	return true
}

// lock merges the falling piece into the settled field and clears full rows.
func (b *Board) lock() {
	stamp(&b.fixed, b.piece)
	b.falling = false
	b.fixed.compact()
}

// canLocate reports whether p may occupy its cells. Cells above the top of
// the field never collide; the reference row itself must be on the field.
func (b *Board) canLocate(p Piece) bool {
	if p.Y < 0 {
		return false
	}
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width {
			return false
		}
		if c.Y < 0 || c.Y >= Height {
			continue
		}
		if b.fixed[c.Y][c.X] != Empty {
			return false
		}
	}
	return true
}

// merge rebuilds the composite grid from the settled field and the piece.
func (b *Board) merge() {
	b.merged = b.fixed
	if b.falling {
		stamp(&b.merged, b.piece)
	}
}

// stamp writes p's visible cells into m. Overlapping an occupied cell means
// canLocate let through an illegal position, which is a bug.
func stamp(m *Matrix, p Piece) {
	block := BlockOf(p.Shape)
	for _, c := range p.Cells() {
		if c.Y < 0 || c.Y >= Height {
			continue
		}
		if m[c.Y][c.X] != Empty {
			panic(fmt.Sprintf("tetris: piece %v at (%d,%d) overlaps %v", p.Shape, c.X, c.Y, m[c.Y][c.X]))
		}
		m[c.Y][c.X] = block
	}
}

// Width returns the field width including walls.
func (b *Board) Width() int { return Width }

// Height returns the field height including the bottom wall.
func (b *Board) Height() int { return Height }

// Rotation returns the rotation index of the falling piece, or 0.
func (b *Board) Rotation() int {
	if !b.falling {
		return 0
	}
	return b.piece.Rotation
}

// X returns the horizontal render reference: the piece position plus its
// rotation anchor, or the field centre when no piece is falling.
func (b *Board) X() int {
	if !b.falling {
		return Width / 2
	}
	return b.piece.X + b.piece.Base().X
}

// Y returns the vertical render reference, or 0 when no piece is falling.
func (b *Board) Y() int {
	if !b.falling {
		return 0
	}
	return b.piece.Y + b.piece.Base().Y
}

// Cell returns the composite cell at (x, y). It panics outside the field.
func (b *Board) Cell(x, y int) Cell {
	return b.merged[y][x]
}

// IsGameOver reports whether the board has reached its terminal state.
func (b *Board) IsGameOver() bool {
	return b.finished
}

// State returns the current state machine state.
func (b *Board) State() State {
	switch {
	case b.finished:
		return StateGameOver
	case b.falling:
		return StateFalling
	default:
		return StateEmpty
	}
}

// Piece returns the falling piece, if any.
func (b *Board) Piece() (Piece, bool) {
	return b.piece, b.falling
}

// Fixed returns a copy of the settled field.
func (b *Board) Fixed() Matrix {
	return b.fixed
}
