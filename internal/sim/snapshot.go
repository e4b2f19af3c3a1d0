package sim

import "github.com/andrevlas/starwalk/internal/core"

// Snapshot is a read-only copy of everything the render layer needs
// for one frame. Mutating a snapshot has no effect on the simulation.
type Snapshot struct {
	Frame    uint64
	Bounds   core.Bounds
	Walkway  core.Rect // interior both actors are clamped to
	Leader   Actor
	Follower Actor
	Trail    []core.Vec2
	Stars    []Collectible
	Metrics  Metrics
}

// Snapshot captures the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Frame:    s.frame,
		Bounds:   s.bounds,
		Walkway:  s.walk,
		Leader:   s.leader,
		Follower: s.follower,
		Trail:    s.trail.Points(),
		Stars:    s.stars.snapshot(),
		Metrics:  s.Metrics(),
	}
}
