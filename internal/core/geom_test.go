package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dr, dc int
	}{
		{DirUp, -1, 0},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dr, dc := tc.dir.Delta()
			if dr != tc.dr || dc != tc.dc {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dr, dc, tc.dr, tc.dc)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", dir, got, want)
		}
		// Opposite is an involution
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%v.Opposite().Opposite() = %v, expected %v", dir, got, dir)
		}
	}
}

func TestPositionMove(t *testing.T) {
	start := Position{Row: 5, Col: 10}

	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{Row: 4, Col: 10}},
		{DirDown, Position{Row: 6, Col: 10}},
		{DirLeft, Position{Row: 5, Col: 9}},
		{DirRight, Position{Row: 5, Col: 11}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Move(tc.dir); got != tc.want {
				t.Errorf("Move(%v) = %v, expected %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestPositionMoveRoundTrip(t *testing.T) {
	start := Position{Row: 3, Col: 7}
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if got := start.Move(dir).Move(dir.Opposite()); got != start {
			t.Errorf("moving %v then back gave %v, expected %v", dir, got, start)
		}
	}
}
