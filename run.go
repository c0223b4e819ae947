package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Painter turns the retained scene into pixels. Rowan itself never paints;
// the run shell invokes the painter only on frames where some element marked
// itself dirty (or Stage.Refresh was called directly).
type Painter interface {
	Paint(screen *ebiten.Image, root *Group)
}

// PainterFunc adapts a plain function to the Painter interface.
type PainterFunc func(screen *ebiten.Image, root *Group)

// Paint calls f.
func (f PainterFunc) Paint(screen *ebiten.Image, root *Group) { f(screen, root) }

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string // window title; default "rowan"
	Width  int    // logical width; default 640
	Height int    // logical height; default 480
}

// game adapts a Stage and Painter to the ebiten.Game interface.
type game struct {
	stage   *Stage
	painter Painter
	width   int
	height  int
}

func (g *game) Update() error {
	g.stage.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.painter == nil {
		return
	}
	if g.stage.Flush() {
		g.painter.Paint(screen, g.stage.Root())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run creates a window and game loop for the stage, ticking animators at the
// engine tick rate and calling the painter on frames with a pending redraw
// request. It blocks until the window closes. For full control implement
// ebiten.Game yourself and call Stage.Update / Stage.Flush directly.
func Run(stage *Stage, cfg RunConfig, p Painter) error {
	if cfg.Title == "" {
		cfg.Title = "rowan"
	}
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	// Retained-mode contract: the previous frame stays on screen unless a
	// dirty element requested a repaint.
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(&game{
		stage:   stage,
		painter: p,
		width:   cfg.Width,
		height:  cfg.Height,
	})
}
