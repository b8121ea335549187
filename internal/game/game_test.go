package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/iburimskiy/firecracker/internal/config"
	"github.com/iburimskiy/firecracker/internal/firework"
)

func TestUpdateAdvancesElapsed(t *testing.T) {
	g := New(config.Default())
	for i := 0; i < 60; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	if got, want := g.Elapsed(), 60*(time.Second/60); got != want {
		t.Errorf("Elapsed() = %v, want %v", got, want)
	}
}

func TestComposeRegions(t *testing.T) {
	screen := firework.Size{Width: 480, Height: 800}
	burstRegion := fractionRegion(screen, config.BurstFraction, alignCenter)
	ovalRegion := fractionRegion(screen, config.OvalFraction, alignTopStart)

	g := New(config.Default())
	// mid expansion for the ovals, part way through the burst
	g.elapsed = 675 * time.Millisecond

	var rec firework.Recorder
	g.compose(&rec, screen, 1)

	circles := rec.Circles()
	lines := rec.Lines()
	if len(circles) != 32 {
		t.Fatalf("got %d dots, want 32", len(circles))
	}
	if len(lines) != 8+8 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}

	for i, c := range circles {
		if !burstRegion.contains(c.Center) {
			t.Errorf("dot %d at %+v outside burst region %+v", i, c.Center, burstRegion)
		}
	}
	for i, l := range lines[:8] {
		if l.Color != firework.Lavender {
			t.Errorf("line %d color %v, want lavender ray", i, l.Color)
		}
		if !burstRegion.contains(l.Start) || !burstRegion.contains(l.End) {
			t.Errorf("ray %d %+v outside burst region", i, l)
		}
	}
	for i, l := range lines[8:] {
		if l.Color != firework.Yellow {
			t.Errorf("oval %d color %v, want yellow", i, l.Color)
		}
		if !ovalRegion.contains(l.Start) || !ovalRegion.contains(l.End) {
			t.Errorf("oval %d %+v outside oval region %+v", i, l, ovalRegion)
		}
	}
}

func TestComposeOvalDelay(t *testing.T) {
	g := New(config.Default())
	g.elapsed = 100 * time.Millisecond

	var rec firework.Recorder
	g.compose(&rec, firework.Size{Width: 300, Height: 300}, 1)
	if n := len(rec.Lines()); n != 8 {
		t.Errorf("got %d lines during oval delay, want only the 8 rays", n)
	}
}

func TestComposeDeterministic(t *testing.T) {
	g := New(config.Default())
	g.elapsed = 1234 * time.Millisecond
	screen := firework.Size{Width: 720, Height: 1280}

	var first, second firework.Recorder
	g.compose(&first, screen, 2)
	g.compose(&second, screen, 2)
	if !reflect.DeepEqual(first.Commands, second.Commands) {
		t.Error("same elapsed time produced different frames")
	}
}

func TestComposeZeroScreen(t *testing.T) {
	g := New(config.Default())
	g.elapsed = 900 * time.Millisecond

	var rec firework.Recorder
	g.compose(&rec, firework.Size{}, 1)
	for _, c := range rec.Circles() {
		if c.Center != (firework.Point{}) {
			t.Errorf("dot at %+v on empty screen", c.Center)
		}
	}
}

func TestFractionRegion(t *testing.T) {
	screen := firework.Size{Width: 200, Height: 100}

	tests := []struct {
		name     string
		fraction float64
		align    alignment
		want     region
	}{
		{"centered 80%", 0.8, alignCenter, region{Origin: firework.Point{X: 20, Y: 10}, Size: firework.Size{Width: 160, Height: 80}}},
		{"top start 50%", 0.5, alignTopStart, region{Size: firework.Size{Width: 100, Height: 50}}},
		{"clamped", 1.5, alignCenter, region{Size: screen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fractionRegion(screen, tt.fraction, tt.align); got != tt.want {
				t.Errorf("fractionRegion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
