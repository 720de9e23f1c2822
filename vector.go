package msdf

import "math"

// Vector2 is a 2-D point or direction in shape space.
type Vector2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vector2) Mul(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3-D cross product of v and w.
func (v Vector2) Cross(w Vector2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean norm of v.
func (v Vector2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSquared returns the squared Euclidean norm of v, avoiding a sqrt.
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns v/|v|, or the zero vector if v is the zero vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Lerp returns the linear interpolation v + t*(w-v).
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{v.X + t*(w.X-v.X), v.Y + t*(w.Y-v.Y)}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }
