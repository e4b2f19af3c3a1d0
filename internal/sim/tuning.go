// Package sim implements the per-frame walkway simulation: input
// sampling, leader movement, trail-based companion following, star
// pickup, and session metrics. It is pure logic with no terminal or
// Bubble Tea dependencies.
package sim

import "time"

// Tuning holds every gameplay constant. All values are injectable so
// that tests and config files can override them; DefaultTuning returns
// the values the game ships with.
type Tuning struct {
	// Speed is the leader's movement speed in world units per second.
	Speed float64
	// EdgePadding is the margin between the play-area bounds and the
	// walkway interior both actors are clamped to.
	EdgePadding float64
	// TrailCap is the maximum number of leader positions remembered.
	TrailCap int
	// FollowDelay is how many trail samples behind the leader the
	// companion's target point sits.
	FollowDelay int
	// Smoothing is the companion's easing rate per second toward its
	// target point.
	Smoothing float64
	// FacingDeadzone is the minimum follow-vector length below which
	// the companion's facing is left unchanged, avoiding jitter.
	FacingDeadzone float64
	// BatchSize is how many stars each batch contains.
	BatchSize int
	// PickupRadius is the leader-to-star distance below which a star
	// is collected.
	PickupRadius float64
	// SpawnInset is added to EdgePadding to keep fresh stars away from
	// the walkway edge.
	SpawnInset float64
	// SpinRate is the stars' visual rotation in radians per second.
	SpinRate float64
	// PublishEvery throttles metric publications to observers.
	PublishEvery time.Duration
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:          280,
		EdgePadding:    80,
		TrailCap:       180,
		FollowDelay:    34,
		Smoothing:      6,
		FacingDeadzone: 1,
		BatchSize:      6,
		PickupRadius:   30,
		SpawnInset:     30,
		SpinRate:       1.6,
		PublishEvery:   120 * time.Millisecond,
	}
}

// withDefaults fills zero or negative fields with stock values so a
// partially specified tuning cannot wedge the simulation.
func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.Speed <= 0 {
		t.Speed = def.Speed
	}
	if t.EdgePadding < 0 {
		t.EdgePadding = def.EdgePadding
	}
	if t.TrailCap < 1 {
		t.TrailCap = def.TrailCap
	}
	if t.FollowDelay < 0 {
		t.FollowDelay = def.FollowDelay
	}
	if t.Smoothing <= 0 {
		t.Smoothing = def.Smoothing
	}
	if t.FacingDeadzone < 0 {
		t.FacingDeadzone = def.FacingDeadzone
	}
	if t.BatchSize < 1 {
		t.BatchSize = def.BatchSize
	}
	if t.PickupRadius <= 0 {
		t.PickupRadius = def.PickupRadius
	}
	if t.SpawnInset < 0 {
		t.SpawnInset = def.SpawnInset
	}
	if t.SpinRate < 0 {
		t.SpinRate = def.SpinRate
	}
	if t.PublishEvery <= 0 {
		t.PublishEvery = def.PublishEvery
	}
	return t
}
