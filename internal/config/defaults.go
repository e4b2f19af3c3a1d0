package config

import (
	_ "embed"
)

//go:embed defaults/starwalk.yaml
var defaultYAML []byte

// Default returns the hardcoded stock configuration, used as the last
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Movement: MovementConfig{
			Speed:       280,
			EdgePadding: 80,
		},
		Trail: TrailConfig{
			Capacity:       180,
			FollowDelay:    34,
			Smoothing:      6,
			FacingDeadzone: 1,
		},
		Collectibles: CollectiblesConfig{
			BatchSize:    6,
			PickupRadius: 30,
			SpawnInset:   30,
			SpinRate:     1.6,
		},
		Metrics: MetricsConfig{
			PublishIntervalMS: 120,
		},
		Display: DisplayConfig{
			TickRate:     60,
			CellWidth:    10,
			CellHeight:   20,
			KeySustainMS: 150,
		},
	}
}
