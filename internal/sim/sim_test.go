package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/andrevlas/starwalk/internal/core"
)

var testBounds = core.Bounds{W: 800, H: 480}

func newTestSim() *Simulation {
	return New(testBounds, DefaultTuning(), 12345)
}

func TestLeaderStaysInBounds(t *testing.T) {
	s := newTestSim()
	rng := rand.New(rand.NewSource(99))
	keys := []string{"w", "a", "s", "d", "up", "down", "left", "right"}

	walk := testBounds.Inset(s.tuning.EdgePadding)
	for i := 0; i < 2000; i++ {
		// Churn the held-key set and step with erratic frame times.
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(3) == 0 {
			s.KeyUp(k)
		} else {
			s.KeyDown(k)
		}
		s.step(rng.Float64() * 0.5)

		if !walk.Contains(s.leader.Pos) {
			t.Fatalf("frame %d: leader at %+v escaped walkway %+v", i, s.leader.Pos, walk)
		}
	}
}

func TestLeaderSpeed(t *testing.T) {
	s := newTestSim()
	start := s.leader.Pos

	s.KeyDown("d")
	s.step(0.1)

	moved := s.leader.Pos.Sub(start).Length()
	want := s.tuning.Speed * 0.1
	if !almostEqual(moved, want) {
		t.Errorf("leader moved %f units, expected %f", moved, want)
	}
}

func TestLeaderIdleKeepsFacing(t *testing.T) {
	s := newTestSim()

	s.KeyDown("w")
	s.step(0.016)
	s.KeyUp("w")

	facing := s.leader.Facing
	pos := s.leader.Pos
	s.step(0.016)

	if s.leader.Facing != facing {
		t.Errorf("facing changed without input: %+v -> %+v", facing, s.leader.Facing)
	}
	if s.leader.Pos != pos {
		t.Errorf("leader moved without input: %+v -> %+v", pos, s.leader.Pos)
	}
}

func TestTrailGrowsWhileIdle(t *testing.T) {
	s := newTestSim()

	for i := 0; i < 10; i++ {
		s.step(0.016)
	}

	// Idle frames still append the current position, so the companion
	// can keep closing in.
	if s.trail.Len() != 11 { // 1 from reset + 10 steps
		t.Errorf("trail len = %d, expected 11", s.trail.Len())
	}
}

func TestFollowerTargetIndex(t *testing.T) {
	s := newTestSim()

	// Fresh session: single-sample trail targets the leader itself.
	if idx := s.followTargetIndex(); idx != 0 {
		t.Errorf("target index = %d, expected 0 with one-sample trail", idx)
	}
	if target := s.trail.At(s.followTargetIndex()); target != s.leader.Pos {
		t.Errorf("short-trail target = %+v, expected leader position %+v", target, s.leader.Pos)
	}

	tests := []struct {
		frames   int // steps after reset; trail length is frames+1
		expected int
	}{
		{10, 0},
		{33, 0},
		{34, 0},
		{35, 1},
		{100, 66},
		{300, 145}, // capped at 180 samples: 180-1-34
	}

	for _, tc := range tests {
		s := newTestSim()
		s.KeyDown("d")
		for i := 0; i < tc.frames; i++ {
			s.step(0.016)
		}
		if idx := s.followTargetIndex(); idx != tc.expected {
			t.Errorf("after %d frames: target index = %d, expected %d", tc.frames, idx, tc.expected)
		}
	}
}

func TestFollowerStaysInBounds(t *testing.T) {
	s := newTestSim()
	walk := testBounds.Inset(s.tuning.EdgePadding)

	s.KeyDown("a")
	s.KeyDown("w")
	for i := 0; i < 500; i++ {
		s.step(0.05)
		if !walk.Contains(s.follower.Pos) {
			t.Fatalf("frame %d: follower at %+v escaped walkway", i, s.follower.Pos)
		}
	}
}

func TestFollowerApproachesIdleLeader(t *testing.T) {
	s := newTestSim()

	before := s.leader.Pos.Distance(s.follower.Pos)
	for i := 0; i < 120; i++ {
		s.step(0.016)
	}
	after := s.leader.Pos.Distance(s.follower.Pos)

	if after >= before {
		t.Errorf("follower should close the gap while idle: %f -> %f", before, after)
	}
	if after > 1 {
		t.Errorf("after two idle seconds the gap should be nearly closed, got %f", after)
	}
}

func TestFollowerFacingDeadzone(t *testing.T) {
	s := newTestSim()

	// Park the follower within the deadzone of its target.
	s.follower.Pos = s.leader.Pos.Add(core.Vec2{X: 0.5})
	s.follower.Facing = core.Vec2{X: 1}
	s.trail.ResetTo(s.leader.Pos)

	s.step(0.016)

	if s.follower.Facing != (core.Vec2{X: 1}) {
		t.Errorf("facing should not jitter inside the deadzone, got %+v", s.follower.Facing)
	}

	// A distant target does update facing.
	s.follower.Pos = s.leader.Pos.Add(core.Vec2{X: 100})
	s.step(0.016)
	if s.follower.Facing.X >= 0 {
		t.Errorf("facing should point toward the target, got %+v", s.follower.Facing)
	}
}

func TestPickupWithinRadius(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected bool
	}{
		{"well inside", 10, true},
		{"just inside", 29.9, true},
		{"exactly at radius", 30, false},
		{"outside", 45, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim()
			s.stars.items[0].Pos = s.leader.Pos.Add(core.Vec2{X: tc.offset})
			// Park the rest far away so only item 0 is in play.
			for i := 1; i < len(s.stars.items); i++ {
				s.stars.items[i].Pos = core.Vec2{X: 9999, Y: 9999}
			}

			s.step(0.016)

			if s.stars.items[0].Taken != tc.expected {
				t.Errorf("taken = %v, expected %v at offset %f", s.stars.items[0].Taken, tc.expected, tc.offset)
			}
			wantCount := 0
			if tc.expected {
				wantCount = 1
			}
			if s.collected != wantCount {
				t.Errorf("collected = %d, expected %d", s.collected, wantCount)
			}
		})
	}
}

func TestSpinAdvancesOnlyWhileUp(t *testing.T) {
	s := newTestSim()
	for i := range s.stars.items {
		s.stars.items[i].Pos = core.Vec2{X: 9999, Y: 9999}
	}

	s.step(0.5)

	want := 0.5 * s.tuning.SpinRate
	for i, item := range s.stars.items {
		if !almostEqual(item.Spin, want) {
			t.Errorf("star %d spin = %f, expected %f", i, item.Spin, want)
		}
	}

	// A taken star stops spinning.
	s.stars.items[0].Taken = true
	frozen := s.stars.items[0].Spin
	s.step(0.5)
	if s.stars.items[0].Spin != frozen {
		t.Errorf("taken star spin advanced: %f -> %f", frozen, s.stars.items[0].Spin)
	}
}

func TestBatchRegeneratesSameFrame(t *testing.T) {
	s := newTestSim()

	// Put the whole batch on top of the leader so one frame clears it.
	collectedBefore := 3
	s.collected = collectedBefore
	for i := range s.stars.items {
		s.stars.items[i].Pos = s.leader.Pos
	}

	s.step(0.016)

	if got := len(s.stars.items); got != s.tuning.BatchSize {
		t.Fatalf("batch size after regeneration = %d, expected %d", got, s.tuning.BatchSize)
	}
	spawn := s.spawnRect()
	for i, item := range s.stars.items {
		if item.Taken {
			t.Errorf("star %d should be fresh after regeneration", i)
		}
		if item.Spin != 0 {
			t.Errorf("star %d spin should reset, got %f", i, item.Spin)
		}
		if !spawn.Contains(item.Pos) {
			t.Errorf("star %d at %+v spawned outside inset rect %+v", i, item.Pos, spawn)
		}
	}

	// The running total keeps accumulating across batches.
	want := collectedBefore + s.tuning.BatchSize
	if s.collected != want {
		t.Errorf("collected = %d, expected %d (total survives regeneration)", s.collected, want)
	}
}

func TestStarIDsAdvanceAcrossBatches(t *testing.T) {
	s := newTestSim()
	firstIDs := make(map[int]bool)
	for _, item := range s.stars.items {
		firstIDs[item.ID] = true
	}

	for i := range s.stars.items {
		s.stars.items[i].Pos = s.leader.Pos
	}
	s.step(0.016)

	for _, item := range s.stars.items {
		if firstIDs[item.ID] {
			t.Errorf("star ID %d reused across batches", item.ID)
		}
	}
}

func TestResetClearsSession(t *testing.T) {
	s := newTestSim()

	s.KeyDown("d")
	for i := 0; i < 60; i++ {
		s.step(0.016)
	}
	s.collected = 4 // pretend some stars were picked up
	s.Advance(time.Unix(100, 0))

	newBounds := core.Bounds{W: 1200, H: 600}
	s.Reset(newBounds)

	if s.elapsed != 0 {
		t.Errorf("elapsed = %f, expected 0 after reset", s.elapsed)
	}
	if s.collected != 0 {
		t.Errorf("collected = %d, expected 0 after reset", s.collected)
	}
	if s.trail.Len() != 1 {
		t.Errorf("trail len = %d, expected 1 after reset", s.trail.Len())
	}
	if s.bounds != newBounds {
		t.Errorf("bounds = %+v, expected %+v", s.bounds, newBounds)
	}

	spawn := newBounds.Inset(s.tuning.EdgePadding + s.tuning.SpawnInset)
	if len(s.stars.items) != s.tuning.BatchSize {
		t.Fatalf("star count = %d, expected %d", len(s.stars.items), s.tuning.BatchSize)
	}
	for i, item := range s.stars.items {
		if item.Taken {
			t.Errorf("star %d should be fresh after reset", i)
		}
		if !spawn.Contains(item.Pos) {
			t.Errorf("star %d at %+v outside new inset rect %+v", i, item.Pos, spawn)
		}
	}

	// The frame clock is cleared too: the next Advance is a first
	// frame again and must not accumulate a large stale delta.
	s.Advance(time.Unix(999, 0))
	if s.elapsed != 0 {
		t.Errorf("first frame after reset accumulated dt: elapsed = %f", s.elapsed)
	}
}

func TestResetRepositionsProportionally(t *testing.T) {
	s := newTestSim()

	s.leader.Pos = core.Vec2{X: 400, Y: 240} // center of 800x480

	s.Reset(core.Bounds{W: 1600, H: 960})

	if s.leader.Pos != (core.Vec2{X: 800, Y: 480}) {
		t.Errorf("leader = %+v, expected proportional reposition to {800 480}", s.leader.Pos)
	}
}

func TestFirstFrameZeroDelta(t *testing.T) {
	s := newTestSim()
	s.KeyDown("d")
	start := s.leader.Pos

	s.Advance(time.Unix(1000, 0))

	if s.elapsed != 0 {
		t.Errorf("elapsed = %f, expected 0 on first frame", s.elapsed)
	}
	if s.leader.Pos != start {
		t.Errorf("leader moved on first frame: %+v -> %+v", start, s.leader.Pos)
	}

	// The second frame picks up real time.
	s.Advance(time.Unix(1000, 0).Add(16 * time.Millisecond))
	if s.elapsed <= 0 {
		t.Errorf("elapsed = %f, expected progress on second frame", s.elapsed)
	}
	if s.leader.Pos == start {
		t.Error("leader should move on the second frame")
	}
}

func TestMetricsPublicationThrottle(t *testing.T) {
	s := newTestSim()

	published := 0
	s.SetObserver(ObserverFunc(func(Metrics) { published++ }))

	// 1000 frames compressed into 500ms of wall-clock time.
	start := time.Unix(0, 0)
	frameGap := 500 * time.Millisecond / 1000
	for i := 0; i < 1000; i++ {
		s.Advance(start.Add(time.Duration(i) * frameGap))
	}

	if published > 5 {
		t.Errorf("published %d times in 500ms, expected at most 5 with a 120ms throttle", published)
	}
	if published < 4 {
		t.Errorf("published %d times in 500ms, throttle is over-suppressing", published)
	}
}

func TestDeterminismWithSeed(t *testing.T) {
	script := func(s *Simulation) {
		s.KeyDown("d")
		for i := 0; i < 100; i++ {
			if i == 40 {
				s.KeyUp("d")
				s.KeyDown("s")
			}
			s.step(0.016)
		}
	}

	s1 := New(testBounds, DefaultTuning(), 777)
	s2 := New(testBounds, DefaultTuning(), 777)
	script(s1)
	script(s2)

	if s1.leader.Pos != s2.leader.Pos {
		t.Errorf("leader positions diverged: %+v vs %+v", s1.leader.Pos, s2.leader.Pos)
	}
	if s1.follower.Pos != s2.follower.Pos {
		t.Errorf("follower positions diverged: %+v vs %+v", s1.follower.Pos, s2.follower.Pos)
	}
	for i := range s1.stars.items {
		if s1.stars.items[i].Pos != s2.stars.items[i].Pos {
			t.Errorf("star %d positions diverged", i)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestSim()
	s.step(0.016)

	snap := s.Snapshot()
	if len(snap.Trail) != s.trail.Len() {
		t.Fatalf("snapshot trail len = %d, expected %d", len(snap.Trail), s.trail.Len())
	}

	// Mutating the snapshot must not touch simulation state.
	snap.Trail[0] = core.Vec2{X: -1, Y: -1}
	snap.Stars[0].Taken = true

	if s.trail.At(0) == (core.Vec2{X: -1, Y: -1}) {
		t.Error("snapshot trail aliases simulation trail")
	}
	if s.stars.items[0].Taken {
		t.Error("snapshot stars alias simulation batch")
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
