package fpt

import "github.com/vovakirdan/fpt/internal/tetris"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    string // Board state: "empty", "falling" or "game_over"
	Rotation int
	X, Y     int // Render reference of the falling piece
	Locked   int // Pieces locked into the field
	Settled  int // Block cells in the settled field
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{State: tetris.StateEmpty.String()}
	}

	settled := 0
	fixed := g.board.Fixed()
	for y := range fixed {
		for x := range fixed[y] {
			if fixed[y][x].IsBlock() {
				settled++
			}
		}
	}

	return Snapshot{
		Tick:     g.tick,
		State:    g.board.State().String(),
		Rotation: g.board.Rotation(),
		X:        g.board.X(),
		Y:        g.board.Y(),
		Locked:   g.locked,
		Settled:  settled,
		Paused:   g.paused,
	}
}
