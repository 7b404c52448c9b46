package game

import "github.com/vkarpenko/snaketerm/internal/core"

// body stores the snake segments, head at index 0, alongside an occupancy
// index so collision checks stay O(1) as the snake grows. The slice and the
// index are updated in lockstep; every position appears at most once.
type body struct {
	segments []core.Position
	occupied map[core.Position]struct{}
}

// init replaces the body with the given segments (head first).
func (b *body) init(segments []core.Position) {
	b.segments = append(b.segments[:0], segments...)
	b.occupied = make(map[core.Position]struct{}, len(segments))
	for _, p := range segments {
		b.occupied[p] = struct{}{}
	}
}

func (b *body) head() core.Position {
	return b.segments[0]
}

func (b *body) len() int {
	return len(b.segments)
}

func (b *body) contains(p core.Position) bool {
	_, ok := b.occupied[p]
	return ok
}

// pushFront prepends a new head.
func (b *body) pushFront(p core.Position) {
	b.segments = append(b.segments, core.Position{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = p
	b.occupied[p] = struct{}{}
}

// popBack removes the tail segment.
func (b *body) popBack() {
	tail := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	delete(b.occupied, tail)
}

// positions returns a copy of the segments, head first.
func (b *body) positions() []core.Position {
	out := make([]core.Position, len(b.segments))
	copy(out, b.segments)
	return out
}
