// Package game is the ebiten frame loop: it turns keyboard and gamepad state
// into camera motion and draws the selected view every frame.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"raycaster/internal/camera"
	"raycaster/internal/config"
	"raycaster/internal/game/keytracker"
	"raycaster/internal/graphics"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/threading"
	"raycaster/internal/world"
)

// Renderer draws one frame of a view.
type Renderer interface {
	Render(cam *camera.Camera, grid raycast.Grid, s render.Surface) error
	DumpNextFrame()
}

// Game implements ebiten.Game.
type Game struct {
	config     *config.Config
	log        *zap.Logger
	grid       *world.Grid
	camera     *camera.Camera
	intent     camera.Intent
	kinematics camera.Kinematics
	mode       Mode

	keys     *keytracker.Tracker
	gamepads []ebiten.GamepadID
	padSeen  bool

	perspective *render.Perspective
	plan        *render.Plan
	surface     *graphics.Surface
	threading   *threading.ThreadingComponents

	lastTick    time.Time
	lastMetrics time.Time

	// err is the first render failure; Update returns it to stop the loop.
	err error
}

// New creates a game showing grid from start.
func New(cfg *config.Config, log *zap.Logger, grid *world.Grid, start world.Point) (*Game, error) {
	mode, err := ParseMode(cfg.Render.Mode)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	tc := threading.NewThreadingComponents(cfg.Render.Parallel, cfg.Render.Workers)
	opts := []render.Option{
		render.WithLogger(log.Named("render")),
		render.WithMonitor(tc.PerformanceMonitor),
	}
	if tc.ParallelRenderer != nil {
		opts = append(opts, render.WithRunner(tc.ParallelRenderer))
	}
	palette := render.PaletteFromConfig(cfg)

	g := &Game{
		config: cfg,
		log:    log,
		grid:   grid,
		camera: camera.New(start, cfg.Camera.Facing, cfg.GetCameraFOV()),
		kinematics: camera.Kinematics{
			RotationSpeed: cfg.GetRotSpeed(),
			MoveSpeed:     cfg.GetMoveSpeed(),
			TurnDeadzone:  cfg.Movement.TurnDeadzone,
			MoveDeadzone:  cfg.Movement.MoveDeadzone,
			MaxStep:       cfg.GetMaxStep(),
		},
		mode:        mode,
		keys:        keytracker.New(trackedKeys...),
		perspective: render.NewPerspective(palette, cfg.GetViewDistance(), opts...),
		plan:        render.NewPlan(palette, cfg.GetPlanDistance(), opts...),
		threading:   tc,
	}

	log.Info("game created",
		zap.Int("map_width", grid.Width()),
		zap.Int("map_height", grid.Height()),
		zap.Float64("x", start.X),
		zap.Float64("y", start.Y),
		zap.Stringer("mode", mode),
		zap.Bool("parallel", tc.ParallelRenderer != nil))
	return g, nil
}

// Update reads input and advances the camera by the time since the last
// tick.
func (g *Game) Update() error {
	return g.tick(g.keys.Poll(), g.readGamepad(), time.Now())
}

func (g *Game) tick(edges []keytracker.Edge, pad camera.Axes, now time.Time) error {
	if g.err != nil {
		return g.err
	}

	var elapsed time.Duration
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick)
	}
	g.lastTick = now

	for _, e := range edges {
		if err := g.handleKey(e); err != nil {
			return err
		}
	}

	g.kinematics.Advance(g.camera, g.intent, pad, elapsed, g.grid)
	g.logMetrics(now)
	return nil
}

// Draw renders the current view and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	if g.surface == nil {
		b := screen.Bounds()
		g.surface = graphics.NewSurface(b.Dx(), b.Dy())
	}

	g.surface.Bind(screen)
	if err := g.renderFrame(g.surface); err != nil {
		g.err = err
		g.log.Error("render failed", zap.Error(err))
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  x %.2f  y %.2f  facing %.1f  fov %.0f  fps %.1f",
		g.mode, g.camera.Position.X, g.camera.Position.Y, g.camera.Facing, g.camera.FOV, ebiten.ActualFPS()), 4, 4)
}

// Layout returns the screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// Close releases the worker pool.
func (g *Game) Close() {
	g.threading.Shutdown()
}

func (g *Game) renderer() Renderer {
	if g.mode == ModePlan {
		return g.plan
	}
	return g.perspective
}

func (g *Game) renderFrame(s render.Surface) error {
	frameTimer := g.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	if err := g.renderer().Render(g.camera, g.grid, s); err != nil {
		return fmt.Errorf("render %s view: %w", g.mode, err)
	}
	return nil
}

// logMetrics logs frame statistics once per metrics interval.
func (g *Game) logMetrics(now time.Time) {
	interval := g.config.GetMetricsInterval()
	if interval <= 0 {
		return
	}
	if g.lastMetrics.IsZero() {
		g.lastMetrics = now
		return
	}
	if now.Sub(g.lastMetrics) < interval {
		return
	}
	g.lastMetrics = now

	g.log.Info("performance", g.threading.GetPerformanceMetrics().Fields()...)
	for _, alert := range g.threading.CheckPerformanceAlerts() {
		g.log.Warn(alert.Message, zap.String("type", alert.Type), zap.Float64("value", alert.Value))
	}
}
