package firework

import "image/color"

// Cap is the style used for line ends.
type Cap int

const (
	// CapButt ends the stroke flat at its end points. It is the zero value.
	CapButt Cap = iota
	CapRound
)

// Surface receives the draw commands produced by a renderer. Later commands
// paint over earlier ones.
type Surface interface {
	DrawCircle(c Circle)
	DrawLine(l Line)
}

// Command is a single recorded draw instruction, a Circle or a Line.
type Command interface {
	command()
}

// Circle is a filled circle.
type Circle struct {
	Center Point
	Radius float64
	Color  color.RGBA
}

func (Circle) command() {}

// Line is a stroked segment.
type Line struct {
	Start, End Point
	Width      float64
	Cap        Cap
	Color      color.RGBA
}

func (Line) command() {}

// Recorder is a Surface that keeps every command in submission order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawCircle(c Circle) { r.Commands = append(r.Commands, c) }
func (r *Recorder) DrawLine(l Line)     { r.Commands = append(r.Commands, l) }

// Circles returns the recorded circles, in order.
func (r *Recorder) Circles() []Circle {
	var out []Circle
	for _, cmd := range r.Commands {
		if c, ok := cmd.(Circle); ok {
			out = append(out, c)
		}
	}
	return out
}

// Lines returns the recorded lines, in order.
func (r *Recorder) Lines() []Line {
	var out []Line
	for _, cmd := range r.Commands {
		if l, ok := cmd.(Line); ok {
			out = append(out, l)
		}
	}
	return out
}

type translated struct {
	dst    Surface
	origin Point
}

// Translate returns a Surface that shifts every command by origin before
// forwarding it to dst. Renderers draw in local coordinates and the caller
// places them in a layout region this way.
func Translate(dst Surface, origin Point) Surface {
	return translated{dst: dst, origin: origin}
}

func (t translated) DrawCircle(c Circle) {
	c.Center = c.Center.Add(t.origin)
	t.dst.DrawCircle(c)
}

func (t translated) DrawLine(l Line) {
	l.Start = l.Start.Add(t.origin)
	l.End = l.End.Add(t.origin)
	t.dst.DrawLine(l)
}
