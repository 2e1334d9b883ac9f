// SPDX-License-Identifier: EPL-2.0

// Package geom provides the small amount of 3D vector math needed to place a
// sound source relative to a listener's head.
package geom

import (
	"math"
	"strconv"
)

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 is shorthand for Vector3{x, y, z}.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. Division by zero follows IEEE 754.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - o.Y*v.Z,
		Y: v.Z*o.X - o.Z*v.X,
		Z: v.X*o.Y - o.X*v.Y,
	}
}

// Norm is the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether v has zero length.
func (v Vector3) IsZero() bool {
	return v.Norm() == 0
}

// Normalized returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v Vector3) Normalized() Vector3 {
	n := v.Norm()
	if n > 0 {
		return v.Div(n)
	}

	return Vector3{}
}

// Angle returns the angle between v and o in radians, in [0, π].
// If either vector has zero length the angle is 0.
func (v Vector3) Angle(o Vector3) float64 {
	n := v.Norm() * o.Norm()
	if n == 0 {
		return 0
	}

	// rounding can push the ratio just outside [-1, 1]
	c := v.Dot(o) / n
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c)
}

// AngleDegrees is Angle converted to degrees.
func (v Vector3) AngleDegrees(o Vector3) float64 {
	return v.Angle(o) * 180 / math.Pi
}

func (v Vector3) String() string {
	return "(" + strconv.FormatFloat(v.X, 'f', 6, 64) + ", " +
		strconv.FormatFloat(v.Y, 'f', 6, 64) + ", " +
		strconv.FormatFloat(v.Z, 'f', 6, 64) + ")"
}
