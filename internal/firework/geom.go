package firework

import "math"

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is the canvas size handed to a renderer for one frame.
type Size struct {
	Width, Height float64
}

// Center returns the middle of the canvas.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// MinDimension returns the shorter side.
func (s Size) MinDimension() float64 {
	return math.Min(s.Width, s.Height)
}

// direction returns the unit vector for an angle given in degrees.
func direction(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

// polar places a point at distance r from center along angle deg.
func polar(center Point, deg, r float64) Point {
	return center.Add(direction(deg).Scale(r))
}
