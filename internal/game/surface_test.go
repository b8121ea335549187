package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/firecracker/internal/firework"
)

func xExtent(l firework.Line) (minX, maxX float64) {
	vs, _ := strokeVertices(l)
	minX, maxX = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		minX = math.Min(minX, float64(v.DstX))
		maxX = math.Max(maxX, float64(v.DstX))
	}
	return minX, maxX
}

func TestStrokeVerticesCaps(t *testing.T) {
	// 20px horizontal line from x=10 to x=30, 8px wide.
	tests := []struct {
		name         string
		cap          firework.Cap
		minLo, minHi float64
		maxLo, maxHi float64
	}{
		{"round cap reaches past the ends", firework.CapRound, 5.99, 8, 32, 34.01},
		{"butt cap stops at the ends", firework.CapButt, 9.99, 10.01, 29.99, 30.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := firework.Line{
				Start: firework.Point{X: 10, Y: 10},
				End:   firework.Point{X: 30, Y: 10},
				Width: 8,
				Cap:   tt.cap,
				Color: firework.Lavender,
			}
			minX, maxX := xExtent(l)
			if minX < tt.minLo || minX > tt.minHi {
				t.Errorf("min x = %v, want within [%v, %v]", minX, tt.minLo, tt.minHi)
			}
			if maxX < tt.maxLo || maxX > tt.maxHi {
				t.Errorf("max x = %v, want within [%v, %v]", maxX, tt.maxLo, tt.maxHi)
			}
		})
	}
}

func TestStrokeVerticesSingleDraw(t *testing.T) {
	l := firework.Line{
		Start: firework.Point{X: 0, Y: 0},
		End:   firework.Point{X: 0, Y: 50},
		Width: 10,
		Cap:   firework.CapRound,
		Color: firework.Yellow,
	}
	vs, is := strokeVertices(l)
	if len(vs) == 0 || len(is)%3 != 0 {
		t.Fatalf("got %d vertices and %d indices", len(vs), len(is))
	}
	for i, v := range vs {
		if v.ColorR != 1 || v.ColorG != 1 || v.ColorB != 0 || v.ColorA != 1 {
			t.Fatalf("vertex %d color = (%v %v %v %v), want opaque yellow", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Fatalf("vertex %d samples (%v,%v), want the white pixel", i, v.SrcX, v.SrcY)
		}
	}
	for _, idx := range is {
		if int(idx) >= len(vs) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}
