package firework

import "image/color"

// Phase is the stage of an oval burst cycle. It is derived from the progress
// value on every frame and never stored.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExpanding
	PhaseContracting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExpanding:
		return "expanding"
	case PhaseContracting:
		return "contracting"
	default:
		return "unknown"
	}
}

// PhaseOf maps a progress value to its phase: exactly 0 is idle, up to and
// including 1 is expanding, anything above is contracting.
func PhaseOf(progress float64) Phase {
	switch {
	case progress == 0:
		return PhaseIdle
	case progress <= 1:
		return PhaseExpanding
	default:
		return PhaseContracting
	}
}

// Segment is a line from Start to End.
type Segment struct {
	Start, End Point
}

// Length returns the distance between the two ends.
func (s Segment) Length() float64 {
	return s.Start.Dist(s.End)
}

// Empty reports whether both ends are the same point.
func (s Segment) Empty() bool {
	return s.Start == s.End
}

// OvalBurst draws static radial strokes that grow out of an inner circle and
// then retract towards an outer one.
type OvalBurst struct {
	Count       int
	LengthRatio float64
	// WidthDp is the stroke width in density-independent units.
	WidthDp float64
	Color   color.RGBA
}

// NewOvalBurst returns the oval burst with the stock shape parameters.
func NewOvalBurst() OvalBurst {
	return OvalBurst{
		Count:       ovalCount,
		LengthRatio: ovalLengthRatio,
		WidthDp:     ovalWidthDp,
		Color:       Yellow,
	}
}

// Segments computes the stroke of every oval for a progress value in [0,2].
func (o OvalBurst) Segments(size Size, progress float64) []Segment {
	if o.Count <= 0 {
		return nil
	}
	center := size.Center()
	baseRadius := size.MinDimension() / 4
	maxLength := baseRadius * o.LengthRatio
	step := 360 / float64(o.Count)

	out := make([]Segment, o.Count)
	for i := range out {
		dir := direction(float64(i) * step)
		inner := center.Add(dir.Scale(baseRadius))
		outer := center.Add(dir.Scale(baseRadius + maxLength))

		switch PhaseOf(progress) {
		case PhaseIdle:
			out[i] = Segment{Start: inner, End: inner}
		case PhaseExpanding:
			out[i] = Segment{Start: inner, End: inner.Add(dir.Scale(maxLength * progress))}
		case PhaseContracting:
			out[i] = Segment{Start: inner.Add(dir.Scale(maxLength * (progress - 1))), End: outer}
		}
	}
	return out
}

// Draw submits the non-empty segments as round-capped lines. density converts
// WidthDp to pixels.
func (o OvalBurst) Draw(dst Surface, size Size, progress, density float64) {
	width := o.WidthDp * density
	for _, s := range o.Segments(size, progress) {
		if s.Empty() {
			continue
		}
		dst.DrawLine(Line{
			Start: s.Start,
			End:   s.End,
			Width: width,
			Cap:   CapRound,
			Color: o.Color,
		})
	}
}
