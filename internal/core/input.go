package core

import "strings"

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector for the direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Unit() Vec2 {
	switch d {
	case DirUp:
		return Vec2{Y: -1}
	case DirDown:
		return Vec2{Y: 1}
	case DirLeft:
		return Vec2{X: -1}
	case DirRight:
		return Vec2{X: 1}
	default:
		return Vec2{}
	}
}

// keyDirections maps recognized key identifiers to directions.
// Arrow keys and WASD are aliases for the same four directions;
// browser-style "arrowup" names are accepted alongside plain "up".
var keyDirections = map[string]Direction{
	"up":         DirUp,
	"arrowup":    DirUp,
	"w":          DirUp,
	"down":       DirDown,
	"arrowdown":  DirDown,
	"s":          DirDown,
	"left":       DirLeft,
	"arrowleft":  DirLeft,
	"a":          DirLeft,
	"right":      DirRight,
	"arrowright": DirRight,
	"d":          DirRight,
}

// RecognizeKey maps a raw key identifier to a movement direction.
// Matching is case-insensitive. Unrecognized keys return false and
// must be left to their default handling.
func RecognizeKey(key string) (Direction, bool) {
	d, ok := keyDirections[strings.ToLower(key)]
	return d, ok
}

// Sampler tracks the set of currently held direction keys and turns it
// into a movement vector once per frame. Keys are tracked individually,
// so holding "w" and "up" together and releasing one keeps the
// direction active until the other is released too.
type Sampler struct {
	held map[string]Direction
}

// NewSampler creates an empty input sampler.
func NewSampler() *Sampler {
	return &Sampler{held: make(map[string]Direction)}
}

// KeyDown records a key press. Returns true if the key is recognized,
// in which case the caller should suppress the key's default handling.
func (s *Sampler) KeyDown(key string) bool {
	d, ok := RecognizeKey(key)
	if !ok {
		return false
	}
	s.held[strings.ToLower(key)] = d
	return true
}

// KeyUp records a key release. Returns true if the key is recognized.
func (s *Sampler) KeyUp(key string) bool {
	if _, ok := RecognizeKey(key); !ok {
		return false
	}
	delete(s.held, strings.ToLower(key))
	return true
}

// Clear releases all held keys.
func (s *Sampler) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Active reports whether any recognized key is currently held.
func (s *Sampler) Active() bool {
	return len(s.held) > 0
}

// Vector sums the unit vectors of all distinct active directions and
// normalizes the result. Opposite directions cancel to exactly {0,0},
// and combining directions never exceeds unit speed.
func (s *Sampler) Vector() Vec2 {
	var active [4]bool
	for _, d := range s.held {
		active[d] = true
	}

	var sum Vec2
	for d := DirUp; d <= DirRight; d++ {
		if active[d] {
			sum = sum.Add(d.Unit())
		}
	}
	return sum.Normalize()
}
