package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/smasonuk/gosieview"
)

var (
	background = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	hudColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

var mouseButtons = map[ebiten.MouseButton]gosieview.Button{
	ebiten.MouseButtonLeft:   gosieview.ButtonLeft,
	ebiten.MouseButtonRight:  gosieview.ButtonRight,
	ebiten.MouseButtonMiddle: gosieview.ButtonMiddle,
}

var keyBindings = map[ebiten.Key]gosieview.Key{
	ebiten.KeyArrowLeft:  gosieview.KeyOrbitLeft,
	ebiten.KeyArrowRight: gosieview.KeyOrbitRight,
	ebiten.KeyArrowUp:    gosieview.KeyOrbitUp,
	ebiten.KeyArrowDown:  gosieview.KeyOrbitDown,
	ebiten.KeyEqual:      gosieview.KeyZoomIn,
	ebiten.KeyMinus:      gosieview.KeyZoomOut,
}

// Game runs a Scene inside an ebiten window. Update and Draw both run on
// ebiten's game goroutine, which makes it the only caller of the
// controller.
type Game struct {
	scene      *gosieview.Scene
	controller *gosieview.Controller
	surface    *Surface
	hudFace    text.Face

	configs <-chan *gosieview.Config
	errs    <-chan error

	width, height int
}

func NewGame(scene *gosieview.Scene, controller *gosieview.Controller) *Game {
	return &Game{
		scene:      scene,
		controller: controller,
		surface:    NewSurface(nil),
		hudFace:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// WatchConfig makes the game apply configs from w between frames.
func (g *Game) WatchConfig(w *gosieview.ConfigWatcher) {
	g.configs = w.Configs
	g.errs = w.Errors
}

func (g *Game) Update() error {
	g.applyReloads()

	x, y := ebiten.CursorPosition()
	for eb, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.controller.PointerDown(button, float64(x), float64(y))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.controller.PointerUp(button)
		}
	}
	g.controller.PointerMove(float64(x), float64(y))

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.controller.Wheel(dy)
	}

	for eb, key := range keyBindings {
		if ebiten.IsKeyPressed(eb) {
			g.controller.Key(key)
		}
	}
	return nil
}

func (g *Game) applyReloads() {
	for {
		select {
		case cfg, ok := <-g.configs:
			if !ok {
				g.configs = nil
				continue
			}
			if err := cfg.Apply(g.scene, g.controller); err != nil {
				gosieview.LogError("%v", err)
			}
		case err, ok := <-g.errs:
			if !ok {
				g.errs = nil
				continue
			}
			gosieview.LogError("config reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.surface.Reset(screen)
	if err := g.scene.Render(g.surface); err != nil {
		gosieview.LogError("%v", err)
	}

	cam := g.scene.Camera()
	pos := cam.Position()
	hud := fmt.Sprintf("camera (%.1f, %.1f, %.1f)  fov %.3f rad  entities %d",
		pos.X, pos.Y, pos.Z, cam.FieldOfView(), g.scene.Len())

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, hud, g.hudFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.controller.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
