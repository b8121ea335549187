package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/firecracker/internal/firework"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel is the source texture for triangle strokes; vertex colors tint it.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// screenSurface rasterizes draw commands onto an ebiten image.
type screenSurface struct {
	dst *ebiten.Image
}

func newScreenSurface(dst *ebiten.Image) screenSurface {
	return screenSurface{dst: dst}
}

func (s screenSurface) DrawCircle(c firework.Circle) {
	vector.DrawFilledCircle(s.dst, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), c.Color, true)
}

func (s screenSurface) DrawLine(l firework.Line) {
	vs, is := strokeVertices(l)
	if len(is) == 0 {
		return
	}
	s.dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func lineCap(c firework.Cap) vector.LineCap {
	if c == firework.CapRound {
		return vector.LineCapRound
	}
	return vector.LineCapButt
}

// strokeVertices tessellates l into a single triangle list, caps included,
// colored with the line's straight-alpha color.
func strokeVertices(l firework.Line) ([]ebiten.Vertex, []uint16) {
	var path vector.Path
	path.MoveTo(float32(l.Start.X), float32(l.Start.Y))
	path.LineTo(float32(l.End.X), float32(l.End.Y))

	op := &vector.StrokeOptions{
		Width:   float32(l.Width),
		LineCap: lineCap(l.Cap),
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)

	c := l.Color
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	return vs, is
}
