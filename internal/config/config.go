// Package config provides YAML-based tuning configuration for the
// walkway simulation and the terminal front end.
package config

import (
	"time"

	"github.com/andrevlas/starwalk/internal/sim"
)

// Config is the full game configuration file.
type Config struct {
	Movement     MovementConfig     `yaml:"movement"`
	Trail        TrailConfig        `yaml:"trail"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Display      DisplayConfig      `yaml:"display"`
}

// MovementConfig defines leader kinematics and the walkway margin.
type MovementConfig struct {
	Speed       float64 `yaml:"speed"`        // world units per second
	EdgePadding float64 `yaml:"edge_padding"` // walkway margin in world units
}

// TrailConfig defines the leader's position history and how the
// companion consumes it.
type TrailConfig struct {
	Capacity       int     `yaml:"capacity"`
	FollowDelay    int     `yaml:"follow_delay"` // samples behind the leader
	Smoothing      float64 `yaml:"smoothing"`    // easing rate per second
	FacingDeadzone float64 `yaml:"facing_deadzone"`
}

// CollectiblesConfig defines star batches and pickup behavior.
type CollectiblesConfig struct {
	BatchSize    int     `yaml:"batch_size"`
	PickupRadius float64 `yaml:"pickup_radius"`
	SpawnInset   float64 `yaml:"spawn_inset"` // added to edge_padding
	SpinRate     float64 `yaml:"spin_rate"`   // radians per second
}

// MetricsConfig defines how session metrics reach observers.
type MetricsConfig struct {
	PublishIntervalMS int `yaml:"publish_interval_ms"`
}

// DisplayConfig defines terminal presentation parameters. These never
// influence the simulation beyond the derived play-area bounds.
type DisplayConfig struct {
	TickRate     int     `yaml:"tick_rate"`      // simulation frames per second
	CellWidth    float64 `yaml:"cell_width"`     // world units per terminal column
	CellHeight   float64 `yaml:"cell_height"`    // world units per terminal row
	KeySustainMS int     `yaml:"key_sustain_ms"` // synthesized key-up delay
}

// Tuning converts the configuration into simulation constants.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		Speed:          c.Movement.Speed,
		EdgePadding:    c.Movement.EdgePadding,
		TrailCap:       c.Trail.Capacity,
		FollowDelay:    c.Trail.FollowDelay,
		Smoothing:      c.Trail.Smoothing,
		FacingDeadzone: c.Trail.FacingDeadzone,
		BatchSize:      c.Collectibles.BatchSize,
		PickupRadius:   c.Collectibles.PickupRadius,
		SpawnInset:     c.Collectibles.SpawnInset,
		SpinRate:       c.Collectibles.SpinRate,
		PublishEvery:   time.Duration(c.Metrics.PublishIntervalMS) * time.Millisecond,
	}
}
