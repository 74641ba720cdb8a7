package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/ui"
)

type glyphKey struct {
	action ui.Action
	active bool
}

// Game adapts State to ebiten's frame loop.
type Game struct {
	state *State

	// window size, fixed once the grid is laid out
	width, height int

	button edgeDetector
	glyphs map[glyphKey]*ebiten.Image
	click  *clickPlayer
}

// NewGame returns a Game that lays out its grid on the first tick. When
// sound is set, button changes are confirmed with a click; failing to open
// the speaker only disables it.
func NewGame(sound bool) *Game {
	g := &Game{
		glyphs: map[glyphKey]*ebiten.Image{},
	}
	if sound {
		click, err := newClickPlayer()
		if err != nil {
			log.Printf("click feedback disabled: %v", err)
		} else {
			g.click = click
		}
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.state == nil {
		if g.width == 0 || g.height == 0 {
			return nil
		}
		s, err := NewState(float64(g.width), float64(g.height), config.DefaultStrength)
		if err != nil {
			return err
		}
		log.Printf("grid laid out for %dx%d window, %d points", g.width, g.height, len(s.Base))
		g.state = s
	}

	p := samplePointer(&g.button, g.state.Width, g.state.Height)
	a, ok, err := g.state.Tick(p)
	if err != nil {
		return err
	}
	if ok {
		log.Printf("%v", a)
		g.click.play(a)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if g.state == nil {
		return
	}

	f := g.state.Frame()
	w, h := g.state.Width, g.state.Height

	dot := f.Color.RGBA()
	for _, p := range f.Points {
		if !finite(p) {
			continue
		}
		x, y := toScreen(p, w, h)
		vector.DrawFilledCircle(screen, float32(x), float32(y), config.DotRadius, dot, true)
	}

	for i, spot := range f.Hotspots {
		img := g.glyph(spot.Action, f.Active[i])
		x, y := toScreen(spot.Center(), w, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Round(x)-config.GlyphSize/2, math.Round(y)-config.GlyphSize/2)
		screen.DrawImage(img, op)
	}
}

func (g *Game) glyph(a ui.Action, active bool) *ebiten.Image {
	k := glyphKey{action: a, active: active}
	if img, ok := g.glyphs[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ui.RenderGlyph(a, active))
	g.glyphs[k] = img
	return img
}

// Layout keeps the size seen when the grid was first laid out; the toy
// does not follow window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.state == nil {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
