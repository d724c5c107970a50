package tetris

import (
	"math/rand"
	"sync"
	"time"
)

// ShapeSource produces the shape of each newly spawned piece.
type ShapeSource interface {
	NextShape() Shape
}

// RandomSource draws shapes uniformly from the catalog.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source backed by rng.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// NextShape returns a uniformly random shape.
func (s *RandomSource) NextShape() Shape {
	return Shape(s.rng.Intn(ShapeCount))
}

// SequenceSource replays a fixed list of shapes, wrapping around at the end.
type SequenceSource struct {
	shapes []Shape
	next   int
}

// NewSequenceSource returns a source that yields shapes in order.
// It panics if shapes is empty.
func NewSequenceSource(shapes ...Shape) *SequenceSource {
	if len(shapes) == 0 {
		panic("tetris: empty shape sequence")
	}
	return &SequenceSource{shapes: shapes}
}

// NextShape returns the next shape in the sequence.
func (s *SequenceSource) NextShape() Shape {
	sh := s.shapes[s.next]
	s.next = (s.next + 1) % len(s.shapes)
	return sh
}

// Clock is the time source used to throttle gravity.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two readings are not affected by clock changes.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to.
// Safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current clock reading.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
