// Package game implements the snake simulation: the snake itself, food,
// score and status, advanced one grid cell per tick. The package is pure
// state-machine logic; timing, input acquisition and rendering live in the
// platform layer.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vkarpenko/snaketerm/internal/core"
)

// Status is the run state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

const initialLength = 3

// Config carries everything the engine needs: the playable grid, pacing
// constants and the RNG seed. Zero pacing fields fall back to the reference
// behavior (100ms base, 50ms floor, one millisecond per 50 points, 10
// points per food).
type Config struct {
	Rows, Cols    int
	BaseInterval  time.Duration
	FloorInterval time.Duration
	ScoreDivisor  int
	FoodPoints    int
	Seed          int64
}

func (c Config) withDefaults() Config {
	if c.BaseInterval <= 0 {
		c.BaseInterval = 100 * time.Millisecond
	}
	if c.FloorInterval <= 0 {
		c.FloorInterval = 50 * time.Millisecond
	}
	if c.ScoreDivisor <= 0 {
		c.ScoreDivisor = 50
	}
	if c.FoodPoints <= 0 {
		c.FoodPoints = 10
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Game is the sole mutable aggregate: snake, food, score, status, current
// and pending direction. The grid dimensions are fixed for its lifetime.
type Game struct {
	cfg Config
	rng *rand.Rand

	snake    body
	dir      core.Direction
	pending  core.Direction
	food     core.Position
	score    int
	status   Status
	won      bool
	interval time.Duration
}

// New validates the grid and returns a freshly reset game. The grid must
// host the initial three-segment snake plus at least one free cell for
// food; anything smaller is a startup error, not a runtime condition.
func New(cfg Config) (*Game, error) {
	if cfg.Rows < 1 || cfg.Cols < initialLength {
		return nil, fmt.Errorf("game: grid %dx%d cannot host a %d-segment snake",
			cfg.Rows, cfg.Cols, initialLength)
	}
	if cfg.Rows*cfg.Cols <= initialLength {
		return nil, fmt.Errorf("game: grid %dx%d has no room for food", cfg.Rows, cfg.Cols)
	}

	g := &Game{cfg: cfg.withDefaults()}
	g.rng = rand.New(rand.NewSource(g.cfg.Seed))
	g.Reset()
	return g, nil
}

// Reset restarts the run: a three-segment snake at the grid center heading
// right, score zero, base tick interval, fresh food.
func (g *Game) Reset() {
	startRow := g.cfg.Rows / 2
	startCol := g.cfg.Cols / 2
	if startCol < initialLength-1 {
		startCol = initialLength - 1
	}

	// Head first, tail extending left
	g.snake.init([]core.Position{
		{Row: startRow, Col: startCol},
		{Row: startRow, Col: startCol - 1},
		{Row: startRow, Col: startCol - 2},
	})
	g.dir = core.DirRight
	g.pending = core.DirRight
	g.score = 0
	g.status = StatusRunning
	g.won = false
	g.interval = g.cfg.BaseInterval
	g.spawnFood()
}

// ApplyIntent buffers a direction change for the next Step. Reversing into
// the snake's own neck is suppressed; that is the only rejected move. Quit
// and restart intents are interpreted by the caller, not here.
func (g *Game) ApplyIntent(it core.Intent) {
	if it.Kind != core.IntentMove {
		return
	}
	if it.Dir != g.dir.Opposite() {
		g.pending = it.Dir
	}
}

// Step advances the simulation by one tick. It is a no-op once the game has
// ended; callers stop ticking on game over, but the guard makes out-of-order
// calls harmless.
func (g *Game) Step() {
	if g.status != StatusRunning {
		return
	}

	// Direction changes take effect exactly once per tick, here.
	g.dir = g.pending

	next := g.snake.head().Move(g.dir)

	if next.Row < 0 || next.Row >= g.cfg.Rows || next.Col < 0 || next.Col >= g.cfg.Cols {
		g.status = StatusEnded
		return
	}
	if g.snake.contains(next) {
		g.status = StatusEnded
		return
	}

	g.snake.pushFront(next)

	if next == g.food {
		g.score += g.cfg.FoodPoints
		g.spawnFood()
		g.interval = g.computeInterval()
	} else {
		g.snake.popBack()
	}
}

// spawnFood places food on a uniformly chosen free cell. When the snake
// occupies the whole grid there is nothing left to eat: the run ends as a
// win instead of searching forever.
func (g *Game) spawnFood() {
	cells := g.cfg.Rows * g.cfg.Cols
	if g.snake.len() == cells {
		g.won = true
		g.status = StatusEnded
		return
	}

	// Rejection sampling terminates quickly on a sparse board.
	for attempts := 0; attempts < 4*cells; attempts++ {
		p := core.Position{Row: g.rng.Intn(g.cfg.Rows), Col: g.rng.Intn(g.cfg.Cols)}
		if !g.snake.contains(p) {
			g.food = p
			return
		}
	}

	// Dense board: enumerate the free cells and pick one directly.
	free := make([]core.Position, 0, cells-g.snake.len())
	for row := 0; row < g.cfg.Rows; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			p := core.Position{Row: row, Col: col}
			if !g.snake.contains(p) {
				free = append(free, p)
			}
		}
	}
	g.food = free[g.rng.Intn(len(free))]
}

// computeInterval applies the speed scaling rule:
// max(floor, base - score/divisor milliseconds).
func (g *Game) computeInterval() time.Duration {
	d := g.cfg.BaseInterval - time.Duration(g.score/g.cfg.ScoreDivisor)*time.Millisecond
	if d < g.cfg.FloorInterval {
		d = g.cfg.FloorInterval
	}
	return d
}

// TickInterval returns the current pacing interval. It only changes when
// food is consumed or the game is reset.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Status returns whether the run is still going.
func (g *Game) Status() Status {
	return g.status
}

// Won reports whether the run ended by filling the entire grid.
func (g *Game) Won() bool {
	return g.won
}
