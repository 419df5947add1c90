//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"mazegen/internal/core"
	"mazegen/internal/maze"
	"mazegen/internal/render"
	"mazegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type algorithmSwitcher interface {
	SetAlgorithm(name string) error
}

// Game adapts a maze simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	done     bool
	started  time.Time
	lastSize core.Size
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		log:      logger,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     cfg.Seed,
		started:  time.Now(),
		lastSize: size,
	}
}

// Reset rebuilds the maze with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.done = false
	g.started = time.Now()
	g.log.Info("maze reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles per-frame logic and advances the generator.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.cycleAlgorithm()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustSpeed(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustSpeed(0.5)
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)
	g.fitWindow()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.checkDone()
	return nil
}

func (g *Game) checkDone() {
	c, ok := g.sim.(core.Completer)
	if !ok || g.done || !c.Done() {
		return
	}
	g.done = true
	attrs := []any{"sim", g.sim.Name(), "seed", g.seed, "elapsed", time.Since(g.started).Round(time.Millisecond)}
	if m, ok := g.sim.(*maze.Maze); ok {
		attrs = append(attrs, "steps", m.Generator().Steps(), "carved", m.Generator().Carved())
	}
	g.log.Info("maze complete", attrs...)
}

// cycleAlgorithm switches to the next registered generator and restarts.
func (g *Game) cycleAlgorithm() {
	sw, ok := g.sim.(algorithmSwitcher)
	if !ok {
		return
	}
	names := maze.Algorithms()
	next := names[0]
	for i, name := range names {
		if name == g.sim.Name() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := sw.SetAlgorithm(next); err != nil {
		g.log.Warn("switch algorithm", "algorithm", next, "err", err)
		return
	}
	g.done = false
	g.started = time.Now()
	g.log.Info("algorithm switched", "sim", next)
}

// adjustSpeed scales steps per tick by factor, keeping it at least one.
func (g *Game) adjustSpeed(factor float64) {
	params, ok := g.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	p, ok := params.Parameters().Lookup("steps_per_tick")
	if !ok {
		return
	}
	cur, err := strconv.Atoi(p.Value)
	if err != nil {
		return
	}
	next := max(int(float64(cur)*factor), 1)
	if next != cur && setter.SetIntParameter("steps_per_tick", next) {
		g.log.Debug("steps per tick", "value", next)
	}
}

// fitWindow resizes the window after a parameter change altered the raster.
func (g *Game) fitWindow() {
	size := g.sim.Size()
	if size == g.lastSize {
		return
	}
	g.lastSize = size
	ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
	g.done = false
	g.started = time.Now()
}

// Draw renders the maze, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
