// Package config provides YAML-based gameplay configuration and difficulty
// presets for snaketerm.
package config

import "fmt"

// Config is the root gameplay configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig controls how the playable grid is derived from the terminal.
type BoardConfig struct {
	MinCols    int `yaml:"min_cols"`    // Smallest usable terminal width
	MinRows    int `yaml:"min_rows"`    // Smallest usable terminal height
	ChromeCols int `yaml:"chrome_cols"` // Columns reserved for the border
	ChromeRows int `yaml:"chrome_rows"` // Rows reserved for border, title and score
}

// SpeedConfig controls tick pacing. The tick interval is
// max(floor_ms, base_ms - score/score_divisor) milliseconds.
type SpeedConfig struct {
	BaseMs       int `yaml:"base_ms"`
	FloorMs      int `yaml:"floor_ms"`
	ScoreDivisor int `yaml:"score_divisor"`
}

// ScoringConfig controls score accounting.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// Fits reports whether a terminal of the given size meets the minimum.
func (b BoardConfig) Fits(termCols, termRows int) bool {
	return termCols >= b.MinCols && termRows >= b.MinRows
}

// Grid returns the playable grid dimensions for a terminal of the given
// size, after subtracting the border and score chrome.
func (b BoardConfig) Grid(termCols, termRows int) (rows, cols int) {
	return termRows - b.ChromeRows, termCols - b.ChromeCols
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Speed.BaseMs <= 0 {
		return fmt.Errorf("config: base_ms must be positive, got %d", c.Speed.BaseMs)
	}
	if c.Speed.FloorMs <= 0 || c.Speed.FloorMs > c.Speed.BaseMs {
		return fmt.Errorf("config: floor_ms must be in (0, base_ms], got %d", c.Speed.FloorMs)
	}
	if c.Speed.ScoreDivisor <= 0 {
		return fmt.Errorf("config: score_divisor must be positive, got %d", c.Speed.ScoreDivisor)
	}
	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("config: food_points must be positive, got %d", c.Scoring.FoodPoints)
	}
	if c.Board.ChromeCols < 0 || c.Board.ChromeRows < 0 {
		return fmt.Errorf("config: chrome margins cannot be negative")
	}
	if c.Board.MinCols <= c.Board.ChromeCols+2 || c.Board.MinRows <= c.Board.ChromeRows {
		return fmt.Errorf("config: minimum terminal %dx%d leaves no playable grid",
			c.Board.MinCols, c.Board.MinRows)
	}
	return nil
}

// DifficultyPreset is a named speed profile selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset overrides the speed profile for a difficulty preset. Unknown
// or empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMs = 140
		cfg.Speed.FloorMs = 70
	case DifficultyNormal:
		cfg.Speed.BaseMs = 100
		cfg.Speed.FloorMs = 50
	case DifficultyHard:
		cfg.Speed.BaseMs = 70
		cfg.Speed.FloorMs = 40
	}
}

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
