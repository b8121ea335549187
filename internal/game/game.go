package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/firecracker/internal/config"
	"github.com/iburimskiy/firecracker/internal/firework"
	"github.com/iburimskiy/firecracker/internal/progress"
)

// Navy is the screen background.
var Navy = color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xFF}

// Game hosts both bursts in an ebiten window.
type Game struct {
	cfg  config.Config
	tick time.Duration

	elapsed time.Duration

	scale    progress.Func
	rotation progress.Func
	ovalStep progress.Func

	burst firework.RadialBurst
	ovals firework.OvalBurst

	// last reported layout, for logging size changes
	width, height int
}

// New builds a Game from cfg. It does not touch the window.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:      cfg,
		tick:     cfg.TickDuration(),
		scale:    progress.BurstScale().Func(),
		rotation: progress.BurstRotation().Func(),
		ovalStep: progress.OvalBurst().Func(),
		burst:    firework.NewRadialBurst(),
		ovals:    firework.NewOvalBurst(),
	}
}

// Elapsed is the animation time accumulated so far.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

func (g *Game) Update() error {
	g.elapsed += g.tick
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Navy)

	b := screen.Bounds()
	size := firework.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	g.compose(newScreenSurface(screen), size, g.density())

	if g.cfg.Playback.ShowFPS {
		msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, msg, 12, 12)
	}
}

// Layout renders in physical pixels so dp widths convert with the device
// scale factor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	if w != g.width || h != g.height {
		log.WithFields(log.Fields{
			"width":  w,
			"height": h,
			"scale":  s,
		}).Debug("screen layout changed")
		g.width, g.height = w, h
	}
	return w, h
}

// density is pixels per dp.
func (g *Game) density() float64 {
	if d := g.cfg.Playback.Density; d > 0 {
		return d
	}
	return ebiten.Monitor().DeviceScaleFactor()
}

// compose draws one frame: the radial burst centered at 80% of the screen,
// the oval burst in the top-left corner at 50%.
func (g *Game) compose(dst firework.Surface, screen firework.Size, density float64) {
	burst := fractionRegion(screen, config.BurstFraction, alignCenter)
	g.burst.Draw(firework.Translate(dst, burst.Origin), burst.Size, g.scale(g.elapsed), g.rotation(g.elapsed))

	oval := fractionRegion(screen, config.OvalFraction, alignTopStart)
	g.ovals.Draw(firework.Translate(dst, oval.Origin), oval.Size, g.ovalStep(g.elapsed), density)
}
