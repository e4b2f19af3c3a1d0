package core

// Trail is a bounded history of leader positions, most recent last.
// When full, pushing a new sample evicts the oldest one. The follower
// uses it to locate a point a fixed number of frames behind the leader.
type Trail struct {
	points []Vec2
	cap    int
}

// NewTrail creates an empty trail with the given capacity.
// Capacities below 1 are treated as 1.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		points: make([]Vec2, 0, capacity),
		cap:    capacity,
	}
}

// Push appends a sample, evicting the oldest if the trail is full.
func (t *Trail) Push(p Vec2) {
	if len(t.points) == t.cap {
		copy(t.points, t.points[1:])
		t.points[len(t.points)-1] = p
		return
	}
	t.points = append(t.points, p)
}

// Len returns the number of samples currently held.
func (t *Trail) Len() int {
	return len(t.points)
}

// Cap returns the maximum number of samples the trail holds.
func (t *Trail) Cap() int {
	return t.cap
}

// At returns the sample at index i, oldest first.
// Indices outside [0, Len) are clamped to the nearest valid sample;
// an empty trail yields the zero point.
func (t *Trail) At(i int) Vec2 {
	if len(t.points) == 0 {
		return Vec2{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.points) {
		i = len(t.points) - 1
	}
	return t.points[i]
}

// Latest returns the most recent sample, or the zero point if empty.
func (t *Trail) Latest() Vec2 {
	return t.At(len(t.points) - 1)
}

// Points returns a copy of all samples, oldest first.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, len(t.points))
	copy(out, t.points)
	return out
}

// ResetTo discards all history and seeds the trail with a single point.
func (t *Trail) ResetTo(p Vec2) {
	t.points = t.points[:0]
	t.points = append(t.points, p)
}
