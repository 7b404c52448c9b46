package config

import (
	_ "embed"
)

//go:embed defaults/snaketerm.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as a last
// resort when even the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			MinCols:    40,
			MinRows:    10,
			ChromeCols: 2,
			ChromeRows: 4,
		},
		Speed: SpeedConfig{
			BaseMs:       100,
			FloorMs:      50,
			ScoreDivisor: 50,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
	}
}
