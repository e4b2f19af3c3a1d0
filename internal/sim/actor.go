package sim

import (
	"math"

	"github.com/andrevlas/starwalk/internal/core"
)

// Actor is a character on the walkway: the player-controlled leader or
// the autonomous companion. Facing is the last meaningful movement
// direction, kept while the actor stands still.
type Actor struct {
	Pos    core.Vec2
	Facing core.Vec2
}

// stepLeader integrates the leader's position from the sampled input
// vector, clamps it to the walkway interior, and updates facing only
// while there is input.
func (s *Simulation) stepLeader(move core.Vec2, dt float64) {
	if move != (core.Vec2{}) {
		s.leader.Pos = s.leader.Pos.Add(move.Scale(s.tuning.Speed * dt))
		s.leader.Facing = move
	}
	s.leader.Pos = s.leader.Pos.Clamp(s.walk)
}

// stepFollower eases the companion toward a point FollowDelay samples
// behind the leader on the trail. With a short trail the target is the
// leader's current position, letting the companion catch up while the
// leader idles.
func (s *Simulation) stepFollower(dt float64) {
	idx := s.trail.Len() - 1 - s.tuning.FollowDelay
	if idx < 0 {
		idx = 0
	}
	target := s.trail.At(idx)

	followVec := target.Sub(s.follower.Pos)
	t := math.Min(1, dt*s.tuning.Smoothing)
	s.follower.Pos = s.follower.Pos.Lerp(target, t).Clamp(s.walk)

	if followVec.Length() > s.tuning.FacingDeadzone {
		s.follower.Facing = followVec.Normalize()
	}
}

// followTargetIndex exposes the trail index the companion chases;
// used by tests to pin the lag math down.
func (s *Simulation) followTargetIndex() int {
	idx := s.trail.Len() - 1 - s.tuning.FollowDelay
	if idx < 0 {
		return 0
	}
	return idx
}
