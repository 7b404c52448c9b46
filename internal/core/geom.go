// Package core provides the pure value types shared by the snake engine and
// the platform layer. It has no external dependencies (especially no Bubble
// Tea) to keep game logic testable in isolation.
package core

// Position is a cell on the playable grid, addressed as (row, col) with
// (0, 0) at the top-left corner. It is a comparable value type, so it can
// key maps directly.
type Position struct {
	Row, Col int
}

// Move returns the neighboring position one cell away in the given direction.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the (row, col) unit vector for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse direction (Up<->Down, Left<->Right).
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
