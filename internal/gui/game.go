// Package gui runs the game in a desktop window with Ebitengine. Each
// ebiten tick is one refresh signal for the driver.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
)

// Game implements ebiten.Game.
type Game struct {
	driver *loop.Driver
	width  int
	height int
	logger *log.Logger
}

// NewGame creates an idle game for the given rules.
func NewGame(rules config.Rules, rng object.Rand, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	driver, err := loop.NewDriver(rules, rng, loop.DriverOptions{
		Logger: logger,
		OnGameOver: func(score int) {
			ebiten.SetWindowTitle(fmt.Sprintf("SKYRAID - last score %d", score))
		},
	})
	if err != nil {
		return nil, err
	}
	return &Game{
		driver: driver,
		width:  int(rules.Field.Width),
		height: int(rules.Field.Height),
		logger: logger,
	}, nil
}

// Size returns the logical window size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func readKeys() input.Input {
	return input.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Update handles input and advances the simulation by one frame.
func (g *Game) Update() error {
	in := readKeys()
	if in.Quit {
		return ebiten.Termination
	}

	switch g.driver.Phase() {
	case loop.PhaseIdle:
		if in.Start {
			return g.driver.Start()
		}
	case loop.PhaseOver:
		if in.Start {
			return g.driver.Restart()
		}
	case loop.PhaseRunning:
		g.driver.Steer(in.Direction())
		g.driver.Frame(time.Now())
	}
	return nil
}

// screen adapts an ebiten image to draw.Surface.
type screen struct {
	img *ebiten.Image
}

func (s screen) FillRect(x, y, width, height float64, c draw.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(width), float32(height), c, false)
}

// Draw paints the field and the HUD.
func (g *Game) Draw(img *ebiten.Image) {
	img.Fill(color.Black)

	phase := g.driver.Phase()
	if phase == loop.PhaseIdle {
		ebitenutil.DebugPrintAt(img, "S K Y R A I D", g.width/2-40, g.height/2-40)
		ebitenutil.DebugPrintAt(img, "Arrows or A/D steer, firing is automatic", g.width/2-120, g.height/2-10)
		ebitenutil.DebugPrintAt(img, "SPACE to start, Q to quit", g.width/2-75, g.height/2+10)
		return
	}

	g.driver.Draw(screen{img: img})

	state := g.driver.State()
	ebitenutil.DebugPrintAt(img, fmt.Sprintf("Health: %.2f", max(state.Craft.Health, 0)), 8, 4)
	score := fmt.Sprintf("Score: %d", state.DisplayScore())
	ebitenutil.DebugPrintAt(img, score, g.width-8-6*len(score), 4)

	if phase == loop.PhaseOver {
		ebitenutil.DebugPrintAt(img, "GAME OVER", g.width/2-27, g.height/2-20)
		ebitenutil.DebugPrintAt(img, fmt.Sprintf("Final score: %d", g.driver.FinalScore()), g.width/2-50, g.height/2)
		ebitenutil.DebugPrintAt(img, "SPACE to restart, Q to quit", g.width/2-80, g.height/2+20)
	}
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

var (
	_ ebiten.Game  = (*Game)(nil)
	_ draw.Surface = screen{}
)
