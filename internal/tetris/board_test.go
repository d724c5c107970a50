package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestBoard(shapes ...Shape) (*Board, *ManualClock) {
	clock := NewManualClock(epoch)
	return New(NewSequenceSource(shapes...), WithClock(clock)), clock
}

// dropUntilLocked ticks gravity until the falling piece locks.
func dropUntilLocked(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, StateFalling, b.State())
	for range Height + 2 {
		b.GravityTick(0)
		if b.State() != StateFalling {
			return
		}
	}
	t.Fatal("piece never locked")
}

func TestNewBoard(t *testing.T) {
	b, _ := newTestBoard(ShapeT)

	assert.Equal(t, 12, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Equal(t, StateEmpty, b.State())
	assert.False(t, b.IsGameOver())
	assert.Equal(t, 0, b.Rotation())
	assert.Equal(t, Width/2, b.X())
	assert.Equal(t, 0, b.Y())

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := Empty
			if x == 0 || x == Width-1 || y == Height-1 {
				want = Wall
			}
			assert.Equal(t, want, b.Cell(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestRotationRelativeMovement(t *testing.T) {
	b, _ := newTestBoard(ShapeT)

	b.GravityTick(0)
	p, ok := b.Piece()
	require.True(t, ok)
	assert.Equal(t, Piece{Shape: ShapeT, Rotation: 0, X: 6, Y: 0}, p)
	assert.Equal(t, 6, b.X())
	assert.Equal(t, 0, b.Y())

	b.Move(true)
	p, _ = b.Piece()
	assert.Equal(t, 6, p.X)
	assert.Equal(t, 1, p.Y)

	b.Rotate(true)
	assert.Equal(t, 1, b.Rotation())

	b.Move(true)
	p, _ = b.Piece()
	assert.Equal(t, 7, p.X)
	assert.Equal(t, 1, p.Y)
}

func TestGravityThrottle(t *testing.T) {
	b, clock := newTestBoard(ShapeO)
	threshold := 500 * time.Millisecond

	b.GravityTick(threshold)
	assert.Equal(t, StateEmpty, b.State(), "tick before threshold must be a no-op")

	clock.Advance(499 * time.Millisecond)
	b.GravityTick(threshold)
	assert.Equal(t, StateEmpty, b.State())

	clock.Advance(time.Millisecond)
	b.GravityTick(threshold)
	require.Equal(t, StateFalling, b.State())

	b.GravityTick(threshold)
	p, _ := b.Piece()
	assert.Equal(t, 0, p.Y, "timestamp must reset on every effective tick")

	clock.Advance(threshold)
	b.GravityTick(threshold)
	p, _ = b.Piece()
	assert.Equal(t, 1, p.Y)

	b.GravityTick(0)
	p, _ = b.Piece()
	assert.Equal(t, 2, p.Y, "zero threshold forces a tick")
}

func TestCanLocate(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		setup func(b *Board)
		want  bool
	}{
		{
			name:  "spawn position",
			piece: Spawn(ShapeT),
			want:  true,
		},
		{
			name:  "reference above the top",
			piece: Piece{Shape: ShapeO, X: 5, Y: -1},
			want:  false,
		},
		{
			name:  "cells above the top are allowed",
			piece: Piece{Shape: ShapeI, Rotation: 1, X: 5, Y: 0},
			want:  true,
		},
		{
			name:  "left wall",
			piece: Piece{Shape: ShapeO, X: 0, Y: 3},
			want:  false,
		},
		{
			name:  "right wall",
			piece: Piece{Shape: ShapeO, X: Width - 2, Y: 3},
			want:  false,
		},
		{
			name:  "off the left edge",
			piece: Piece{Shape: ShapeI, X: 0, Y: 3},
			want:  false,
		},
		{
			name:  "off the right edge",
			piece: Piece{Shape: ShapeO, X: Width - 1, Y: 3},
			want:  false,
		},
		{
			name:  "bottom wall",
			piece: Piece{Shape: ShapeO, X: 5, Y: Height - 2},
			want:  false,
		},
		{
			name:  "below the field is not a rejection",
			piece: Piece{Shape: ShapeO, X: 5, Y: Height},
			want:  true,
		},
		{
			name:  "settled block",
			piece: Piece{Shape: ShapeO, X: 5, Y: 10},
			setup: func(b *Board) { b.fixed[11][6] = BlockOf(ShapeZ) },
			want:  false,
		},
		{
			name:  "next to settled block",
			piece: Piece{Shape: ShapeO, X: 5, Y: 10},
			setup: func(b *Board) { b.fixed[11][7] = BlockOf(ShapeZ) },
			want:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBoard(ShapeI)
			if tc.setup != nil {
				tc.setup(b)
			}
			assert.Equal(t, tc.want, b.canLocate(tc.piece))
		})
	}
}

func TestIllegalRotationIsIgnored(t *testing.T) {
	b, _ := newTestBoard(ShapeI)
	b.fixed[2][7] = BlockOf(ShapeO)

	b.GravityTick(0)
	b.Rotate(true)

	assert.Equal(t, 0, b.Rotation())
	for _, c := range Spawn(ShapeI).Cells() {
		assert.Equal(t, BlockOf(ShapeI), b.Cell(c.X, c.Y))
	}
}

func TestIllegalMoveIsIgnored(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	b.GravityTick(0)

	// Backward at rotation 0 is -y, which would leave the field.
	b.Move(false)

	p, _ := b.Piece()
	assert.Equal(t, Spawn(ShapeO), p)
}

func TestCommandsWithoutPiece(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	before := b.Fixed()

	b.Rotate(true)
	b.Rotate(false)
	b.Move(true)
	b.Move(false)

	assert.Equal(t, StateEmpty, b.State())
	assert.Equal(t, before, b.Fixed())
}

func TestCompactWithoutFullRows(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	for x := 1; x < Width-2; x++ {
		b.fixed[Height-2][x] = BlockOf(ShapeS)
	}
	b.fixed[5][3] = BlockOf(ShapeT)
	b.fixed[0][1] = BlockOf(ShapeL)
	before := b.fixed

	cleared := b.fixed.compact()

	assert.Equal(t, 0, cleared)
	assert.Equal(t, before, b.fixed)
}

func TestCompactSingleRow(t *testing.T) {
	const row = 10
	b, _ := newTestBoard(ShapeO)
	for x := 1; x < Width-1; x++ {
		b.fixed[row][x] = BlockOf(ShapeI)
	}
	b.fixed[row-1][3] = BlockOf(ShapeT)
	b.fixed[row+1][4] = BlockOf(ShapeJ)
	b.fixed[0][5] = BlockOf(ShapeL)
	before := b.fixed

	cleared := b.fixed.compact()

	require.Equal(t, 1, cleared)
	for y := 1; y <= row; y++ {
		assert.Equal(t, before[y-1], b.fixed[y], "row %d should hold old row %d", y, y-1)
	}
	for y := row + 1; y < Height; y++ {
		assert.Equal(t, before[y], b.fixed[y], "row %d should be unchanged", y)
	}
	for x := 1; x < Width-1; x++ {
		assert.Equal(t, Empty, b.fixed[0][x])
	}
	assert.Equal(t, Wall, b.fixed[0][0])
	assert.Equal(t, Wall, b.fixed[0][Width-1])
}

func TestCompactMultipleRows(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	for _, y := range []int{Height - 2, Height - 4} {
		for x := 1; x < Width-1; x++ {
			b.fixed[y][x] = BlockOf(ShapeZ)
		}
	}
	b.fixed[Height-3][2] = BlockOf(ShapeT)
	b.fixed[Height-5][9] = BlockOf(ShapeS)

	cleared := b.fixed.compact()

	require.Equal(t, 2, cleared)
	assert.Equal(t, BlockOf(ShapeT), b.fixed[Height-2][2])
	assert.Equal(t, BlockOf(ShapeS), b.fixed[Height-3][9])
	assert.Equal(t, 2, countBlocks(b.fixed))
	assert.Equal(t, newWalledMatrix()[Height-1], b.fixed[Height-1])
}

func TestLockWithoutClear(t *testing.T) {
	b, _ := newTestBoard(ShapeO, ShapeT)

	b.GravityTick(0)
	dropUntilLocked(t, b)

	assert.Equal(t, StateEmpty, b.State())
	for _, c := range []Point{{6, Height - 3}, {7, Height - 3}, {6, Height - 2}, {7, Height - 2}} {
		assert.Equal(t, BlockOf(ShapeO), b.Cell(c.X, c.Y))
	}
	assert.Equal(t, 4, countBlocks(b.Fixed()))

	// The lock tick does not spawn; the next one does.
	b.GravityTick(0)
	p, ok := b.Piece()
	require.True(t, ok)
	assert.Equal(t, ShapeT, p.Shape)
}

func TestLockClearsCompletedRow(t *testing.T) {
	b, _ := newTestBoard(ShapeT)
	bottom := Height - 2
	for x := 1; x < Width-1; x++ {
		if x != 6 {
			b.fixed[bottom][x] = BlockOf(ShapeI)
		}
	}

	b.GravityTick(0)
	dropUntilLocked(t, b)

	// The T stem filled the hole, the row vanished, and the T bar dropped into it.
	for x := 1; x < Width-1; x++ {
		want := Empty
		if x >= 5 && x <= 7 {
			want = BlockOf(ShapeT)
		}
		assert.Equal(t, want, b.Cell(x, bottom), "bottom row x=%d", x)
		assert.Equal(t, Empty, b.Cell(x, bottom-1), "row above x=%d", x)
	}
	assert.Equal(t, 3, countBlocks(b.Fixed()))
}

func TestGameOver(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	b.fixed[0][6] = BlockOf(ShapeJ)
	b.merge()
	before := b.Fixed()

	b.GravityTick(0)

	assert.True(t, b.IsGameOver())
	assert.Equal(t, StateGameOver, b.State())
	assert.Equal(t, before, b.Fixed())
	_, ok := b.Piece()
	assert.False(t, ok)

	b.GravityTick(0)
	b.Rotate(true)
	b.Move(true)
	assert.True(t, b.IsGameOver())
	assert.Equal(t, before, b.Fixed())
	assert.Equal(t, BlockOf(ShapeJ), b.Cell(6, 0))
	assert.Equal(t, 0, b.Rotation())
	assert.Equal(t, Width/2, b.X())
}

func TestMergeOverOccupiedCellPanics(t *testing.T) {
	b, _ := newTestBoard(ShapeO)
	b.GravityTick(0)
	require.Equal(t, StateFalling, b.State())

	// Corrupt the field under the falling piece behind canLocate's back.
	b.fixed[0][6] = BlockOf(ShapeJ)

	assert.Panics(t, func() { b.merge() })
	assert.Panics(t, func() { b.lock() })
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	clock := NewManualClock(epoch)
	b := New(NewRandomSource(rand.New(rand.NewSource(11))), WithClock(clock))
	games := 1

	for step := 0; step < 20000; step++ {
		switch rng.Intn(6) {
		case 0:
			b.Rotate(true)
		case 1:
			b.Rotate(false)
		case 2:
			b.Move(true)
		case 3:
			b.Move(false)
		default:
			b.GravityTick(0)
		}

		checkInvariants(t, b)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d (game %d)\n%s", step, games, b.merged.String())
		}

		if b.IsGameOver() {
			b = New(NewRandomSource(rand.New(rand.NewSource(int64(step)))), WithClock(clock))
			games++
		}
	}
}

func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	walls := newWalledMatrix()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if walls[y][x] == Wall {
				assert.Equal(t, Wall, b.fixed[y][x], "wall missing at (%d,%d)", x, y)
			} else {
				assert.NotEqual(t, Wall, b.fixed[y][x], "stray wall at (%d,%d)", x, y)
			}
		}
	}

	want := b.fixed
	if p, ok := b.Piece(); ok {
		assert.GreaterOrEqual(t, p.Rotation, 0)
		assert.Less(t, p.Rotation, RotationCount)
		for _, c := range p.Cells() {
			assert.True(t, c.X >= 0 && c.X < Width, "cell %v outside field", c)
			if c.Y >= 0 && c.Y < Height {
				assert.Equal(t, Empty, b.fixed[c.Y][c.X], "piece overlaps settled cell %v", c)
				want[c.Y][c.X] = BlockOf(p.Shape)
			}
		}
	}
	assert.Equal(t, want, b.merged, "composite grid diverged from field + piece")
}

func countBlocks(m Matrix) int {
	n := 0
	for y := range m {
		for x := range m[y] {
			if m[y][x].IsBlock() {
				n++
			}
		}
	}
	return n
}
