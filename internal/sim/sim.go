package sim

import (
	"math/rand"
	"time"

	"github.com/andrevlas/starwalk/internal/core"
)

// Simulation owns the entire walkway state: the input sampler, both
// actors, the leader's trail, the current star batch, and the session
// counters. It is single-threaded by design; key events, resizes, and
// frame ticks must all arrive on the same goroutine (the Bubble Tea
// update loop in practice). Each Advance call runs one full step:
// input → leader → trail → companion → stars → metrics.
type Simulation struct {
	tuning  Tuning
	bounds  core.Bounds
	walk    core.Rect // clamp rectangle for both actors
	sampler *core.Sampler
	rng     *rand.Rand

	leader   Actor
	follower Actor
	trail    *core.Trail
	stars    *batch

	frame     uint64
	elapsed   float64
	collected int
	distance  float64

	lastTick time.Time
	hasTick  bool

	observer    Observer
	lastPublish time.Time
	hasPublish  bool
}

// New creates a simulation for the given play-area bounds. The seed
// drives star placement; equal seeds and inputs replay identically.
func New(bounds core.Bounds, tuning Tuning, seed int64) *Simulation {
	s := &Simulation{
		tuning:  tuning.withDefaults(),
		sampler: core.NewSampler(),
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.trail = core.NewTrail(s.tuning.TrailCap)
	s.stars = newBatch(s.tuning.BatchSize, s.rng)
	s.place(bounds)
	return s
}

// SetObserver registers the metrics observer. A nil observer disables
// publication.
func (s *Simulation) SetObserver(o Observer) {
	s.observer = o
}

// Bounds returns the current play-area dimensions.
func (s *Simulation) Bounds() core.Bounds {
	return s.bounds
}

// Tuning returns the constants the simulation runs with.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}

// KeyDown forwards a key press to the input sampler. Returns true if
// the key is a recognized direction key and its default handling
// should be suppressed.
func (s *Simulation) KeyDown(key string) bool {
	return s.sampler.KeyDown(key)
}

// KeyUp forwards a key release to the input sampler.
func (s *Simulation) KeyUp(key string) bool {
	return s.sampler.KeyUp(key)
}

// Advance runs one frame at the given wall-clock timestamp. Δt is the
// delta to the previous timestamp; the very first frame after a reset
// uses Δt = 0 so a stale clock cannot cause a spurious jump. After the
// step, metrics are published if the throttle window has elapsed.
func (s *Simulation) Advance(now time.Time) {
	var dt float64
	if s.hasTick {
		dt = now.Sub(s.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	s.lastTick = now
	s.hasTick = true

	s.step(dt)

	if s.observer != nil {
		if !s.hasPublish || now.Sub(s.lastPublish) >= s.tuning.PublishEvery {
			s.observer.ObserveMetrics(s.Metrics())
			s.lastPublish = now
			s.hasPublish = true
		}
	}
}

// step executes one simulation frame. Exported pieces of state are
// only read through Snapshot and Metrics, never mutated from outside.
func (s *Simulation) step(dt float64) {
	move := s.sampler.Vector()

	s.stepLeader(move, dt)
	// The trail grows even with zero input so the companion keeps
	// closing in on an idle leader.
	s.trail.Push(s.leader.Pos)
	s.stepFollower(dt)

	s.collected += s.stars.step(dt, s.leader.Pos, s.tuning.PickupRadius, s.tuning.SpinRate)
	if s.stars.exhausted() {
		// Replaced within the same frame: a batch-clearing step never
		// leaves the walkway empty.
		s.stars.regenerate(s.spawnRect())
	}

	s.elapsed += dt
	s.distance = s.leader.Pos.Distance(s.follower.Pos)
	s.frame++
}

// Reset rebuilds the whole session for new play-area bounds. Both
// actors are repositioned proportionally to the dimension change, the
// trail collapses to a single point, a fresh star batch is placed
// inside the new bounds, and the elapsed/collected counters and the
// frame clock are cleared. The replacement is complete before Reset
// returns, so a following Advance can never observe half-reset state.
func (s *Simulation) Reset(bounds core.Bounds) {
	oldBounds := s.bounds

	leader := s.leader
	follower := s.follower
	if oldBounds.W > 0 && oldBounds.H > 0 {
		leader.Pos.X *= bounds.W / oldBounds.W
		leader.Pos.Y *= bounds.H / oldBounds.H
		follower.Pos.X *= bounds.W / oldBounds.W
		follower.Pos.Y *= bounds.H / oldBounds.H
	}

	s.place(bounds)
	s.leader.Pos = leader.Pos.Clamp(s.walk)
	s.leader.Facing = leader.Facing
	s.follower.Pos = follower.Pos.Clamp(s.walk)
	s.follower.Facing = follower.Facing
	s.trail.ResetTo(s.leader.Pos)
	s.distance = s.leader.Pos.Distance(s.follower.Pos)
}

// place installs fresh state for the given bounds: actors at their
// starting spots, a one-point trail, a new star batch, zeroed counters.
func (s *Simulation) place(bounds core.Bounds) {
	s.bounds = bounds
	s.walk = bounds.Inset(s.tuning.EdgePadding)

	start := bounds.Center().Clamp(s.walk)
	s.leader = Actor{Pos: start, Facing: core.Vec2{X: 1}}
	s.follower = Actor{
		Pos:    core.Vec2{X: start.X - s.tuning.EdgePadding, Y: start.Y}.Clamp(s.walk),
		Facing: core.Vec2{X: 1},
	}

	s.trail.ResetTo(s.leader.Pos)
	s.stars.regenerate(s.spawnRect())

	s.frame = 0
	s.elapsed = 0
	s.collected = 0
	s.distance = s.leader.Pos.Distance(s.follower.Pos)
	s.hasTick = false
	s.hasPublish = false
	s.sampler.Clear()
}

// spawnRect is the walkway interior further inset so stars never spawn
// flush against the edge.
func (s *Simulation) spawnRect() core.Rect {
	return s.bounds.Inset(s.tuning.EdgePadding + s.tuning.SpawnInset)
}

// Metrics returns the current session counters as a value copy.
func (s *Simulation) Metrics() Metrics {
	return Metrics{
		Elapsed:   s.elapsed,
		Collected: s.collected,
		Distance:  s.distance,
	}
}
