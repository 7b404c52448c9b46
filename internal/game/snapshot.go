package game

import (
	"time"

	"github.com/vkarpenko/snaketerm/internal/core"
)

// Snapshot is an immutable copy of the game state, handed to the renderer
// and to tests. Mutating a snapshot never affects the game.
type Snapshot struct {
	Rows, Cols int
	Snake      []core.Position // Head at index 0
	Food       core.Position
	Score      int
	Status     Status
	Won        bool
	Interval   time.Duration
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Rows:     g.cfg.Rows,
		Cols:     g.cfg.Cols,
		Snake:    g.snake.positions(),
		Food:     g.food,
		Score:    g.score,
		Status:   g.status,
		Won:      g.won,
		Interval: g.interval,
	}
}
