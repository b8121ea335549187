package firework

import "image/color"

var (
	LightGreen = color.RGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}
	Yellow     = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	Lavender   = color.RGBA{R: 0xE6, G: 0xE6, B: 0xFA, A: 0xFF}
)

// RadialBurst draws two counter-rotating rings of dots and a set of rays
// around the canvas center.
//
// Dots move with the scale value, rays stay at full length whatever the scale
// is.
type RadialBurst struct {
	Dots       int
	DotRadius  float64
	InnerRatio float64
	RayCount   int
	RayExtent  float64
	RayWidth   float64

	OuterColor color.RGBA
	InnerColor color.RGBA
	RayColor   color.RGBA
}

// NewRadialBurst returns the burst with the stock shape parameters.
func NewRadialBurst() RadialBurst {
	return RadialBurst{
		Dots:       burstDotCount,
		DotRadius:  burstDotRadius,
		InnerRatio: burstInnerRatio,
		RayCount:   burstRayCount,
		RayExtent:  burstRayExtent,
		RayWidth:   burstRayWidth,
		OuterColor: LightGreen,
		InnerColor: Yellow,
		RayColor:   Lavender,
	}
}

// Draw submits one frame: outer dots, inner dots, then rays.
// scale is expected in [0,1], rotationDeg in degrees.
func (b RadialBurst) Draw(dst Surface, size Size, scale, rotationDeg float64) {
	center := size.Center()
	radius := size.MinDimension() / 4

	for _, p := range b.ring(center, radius*scale, rotationDeg) {
		dst.DrawCircle(Circle{Center: p, Radius: b.DotRadius, Color: b.OuterColor})
	}
	for _, p := range b.ring(center, radius*b.InnerRatio*scale, -rotationDeg) {
		dst.DrawCircle(Circle{Center: p, Radius: b.DotRadius, Color: b.InnerColor})
	}
	for _, s := range b.rays(center, radius, rotationDeg) {
		dst.DrawLine(Line{
			Start: s.Start,
			End:   s.End,
			Width: b.RayWidth,
			Cap:   CapRound,
			Color: b.RayColor,
		})
	}
}

// OuterRing returns the outer dot centers for a frame.
func (b RadialBurst) OuterRing(size Size, scale, rotationDeg float64) []Point {
	return b.ring(size.Center(), size.MinDimension()/4*scale, rotationDeg)
}

// InnerRing returns the inner dot centers for a frame. The inner ring turns
// the other way.
func (b RadialBurst) InnerRing(size Size, scale, rotationDeg float64) []Point {
	return b.ring(size.Center(), size.MinDimension()/4*b.InnerRatio*scale, -rotationDeg)
}

// RaySegments returns the ray segments for a frame. They do not depend on scale.
func (b RadialBurst) RaySegments(size Size, rotationDeg float64) []Segment {
	return b.rays(size.Center(), size.MinDimension()/4, rotationDeg)
}

func (b RadialBurst) ring(center Point, r, rotationDeg float64) []Point {
	if b.Dots <= 0 {
		return nil
	}
	step := 360 / float64(b.Dots)
	out := make([]Point, b.Dots)
	for i := range out {
		out[i] = polar(center, float64(i)*step+rotationDeg, r)
	}
	return out
}

func (b RadialBurst) rays(center Point, radius, rotationDeg float64) []Segment {
	if b.RayCount <= 0 {
		return nil
	}
	step := 360 / float64(b.RayCount)
	out := make([]Segment, b.RayCount)
	for i := range out {
		dir := direction(float64(i)*step + rotationDeg)
		out[i] = Segment{
			Start: center.Add(dir.Scale(radius)),
			End:   center.Add(dir.Scale(radius * b.RayExtent)),
		}
	}
	return out
}
