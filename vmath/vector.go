package vmath

import "math"

// Vec2 is a continuous 2D coordinate, X is the column axis and Y the row axis
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies vector by scalar factor
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Magnitude returns true Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Magnitude()
}

// Lerp moves a toward b by fraction t
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Floor returns the integer cell (col, row) occupied by the point
func (v Vec2) Floor() (x, y int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Round returns the nearest integer cell (col, row)
func (v Vec2) Round() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// MoveToward advances from toward target by at most step
// Returns the new point and true if target was reached (snapped)
func MoveToward(from, target Vec2, step float64) (Vec2, bool) {
	delta := target.Sub(from)
	dist := delta.Magnitude()
	if dist <= step {
		return target, true
	}
	return from.Add(delta.Scale(step / dist)), false
}
