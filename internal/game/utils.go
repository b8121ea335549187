package game

import "github.com/iburimskiy/firecracker/internal/firework"

type alignment int

const (
	alignCenter alignment = iota
	alignTopStart
)

// region is a rectangle of the screen a renderer draws into.
type region struct {
	Origin firework.Point
	Size   firework.Size
}

// fractionRegion sizes a region to fraction of the screen on both axes and
// places it according to align.
func fractionRegion(screen firework.Size, fraction float64, align alignment) region {
	fraction = clamp01(fraction)
	size := firework.Size{Width: screen.Width * fraction, Height: screen.Height * fraction}

	var origin firework.Point
	if align == alignCenter {
		origin = firework.Point{
			X: (screen.Width - size.Width) / 2,
			Y: (screen.Height - size.Height) / 2,
		}
	}
	return region{Origin: origin, Size: size}
}

// contains reports whether p lies inside r, edges included.
func (r region) contains(p firework.Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
