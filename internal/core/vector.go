// Package core provides fundamental value types for the walkway simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation logic pure and testable.
package core

import "math"

// Vec2 represents a 2D point or direction in world units.
// All operations return new values; Vec2 is never mutated in place.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude (cheaper for comparisons).
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Lerp interpolates from v toward target by t, where t is in [0, 1].
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Clamp restricts the point to lie within the rectangle.
func (v Vec2) Clamp(r Rect) Vec2 {
	return Vec2{
		X: ClampF(v.X, r.MinX, r.MaxX),
		Y: ClampF(v.Y, r.MinY, r.MaxY),
	}
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether the point lies inside the rectangle (inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Bounds describes the dimensions of the play area.
type Bounds struct {
	W, H float64
}

// Inset returns the interior rectangle obtained by shrinking the bounds
// by pad on every side. If pad exceeds half a dimension the rectangle
// collapses to its center line rather than inverting.
func (b Bounds) Inset(pad float64) Rect {
	r := Rect{MinX: pad, MinY: pad, MaxX: b.W - pad, MaxY: b.H - pad}
	if r.MaxX < r.MinX {
		mid := b.W / 2
		r.MinX, r.MaxX = mid, mid
	}
	if r.MaxY < r.MinY {
		mid := b.H / 2
		r.MinY, r.MaxY = mid, mid
	}
	return r
}

// Center returns the midpoint of the play area.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
