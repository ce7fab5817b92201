// Command map_viewer renders a map without opening a window. For each of N
// evenly spaced facings it writes the perspective and plan views to PNG files
// and logs a digest of every image, so two builds can be compared frame for
// frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"raycaster/internal/camera"
	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/render"
	"raycaster/internal/render/raster"
	"raycaster/internal/world"
)

type options struct {
	views  int
	outDir string
	width  int
	height int
}

// shot is one rendered image.
type shot struct {
	Mode   string
	Facing float64
	Path   string
	Digest uint64
}

func main() {
	ensureRuntimeCWD()

	configPath := flag.String("config", "config.yaml", "configuration file")
	mapFile := flag.String("map", "", "map file (default: world.map_file from the config)")
	opts := options{}
	flag.IntVar(&opts.views, "views", 8, "number of evenly spaced facings")
	flag.StringVar(&opts.outDir, "out", "snapshots", "output directory")
	flag.IntVar(&opts.width, "width", 0, "image width (default: display.screen_width)")
	flag.IntVar(&opts.height, "height", 0, "image height (default: display.screen_height)")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	if *mapFile != "" {
		cfg.World.MapFile = *mapFile
	}
	logger := logging.Must(cfg.Logging)
	defer logger.Sync()

	start := world.Point{X: cfg.Camera.StartX, Y: cfg.Camera.StartY}
	grid, start, err := world.NewMapLoader(logger).Open(cfg.World.MapFile, start)
	if err != nil {
		logger.Fatal("failed to load map", zap.Error(err))
	}

	shots, err := snapshot(context.Background(), cfg, grid, start, opts)
	if err != nil {
		logger.Fatal("snapshot failed", zap.Error(err))
	}
	for _, s := range shots {
		logger.Info("snapshot",
			zap.String("mode", s.Mode),
			zap.Float64("facing", s.Facing),
			zap.String("path", s.Path),
			zap.String("digest", fmt.Sprintf("%016x", s.Digest)))
	}
}

// snapshot renders every view concurrently and returns the shots ordered by
// mode then facing.
func snapshot(ctx context.Context, cfg *config.Config, grid *world.Grid, start world.Point, opts options) ([]shot, error) {
	if opts.views <= 0 {
		return nil, fmt.Errorf("views must be positive, got %d", opts.views)
	}
	if opts.width <= 0 {
		opts.width = cfg.GetScreenWidth()
	}
	if opts.height <= 0 {
		opts.height = cfg.GetScreenHeight()
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	palette := render.PaletteFromConfig(cfg)
	modes := []string{config.ModePerspective, config.ModePlan}
	shots := make([]shot, len(modes)*opts.views)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for m, mode := range modes {
		for v := 0; v < opts.views; v++ {
			idx := m*opts.views + v
			facing := 360 * float64(v) / float64(opts.views)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := renderView(cfg, palette, grid, camera.New(start, facing, cfg.GetCameraFOV()), mode, v, opts)
				if err != nil {
					return err
				}
				shots[idx] = s
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(shots, func(i, j int) bool {
		if shots[i].Mode != shots[j].Mode {
			return shots[i].Mode < shots[j].Mode
		}
		return shots[i].Facing < shots[j].Facing
	})
	return shots, nil
}

func renderView(cfg *config.Config, palette render.Palette, grid *world.Grid, cam *camera.Camera, mode string, view int, opts options) (shot, error) {
	surface := raster.New(opts.width, opts.height)

	var err error
	if mode == config.ModePlan {
		err = render.NewPlan(palette, cfg.GetPlanDistance()).Render(cam, grid, surface)
	} else {
		err = render.NewPerspective(palette, cfg.GetViewDistance()).Render(cam, grid, surface)
	}
	if err != nil {
		return shot{}, fmt.Errorf("render %s at %.1f: %w", mode, cam.Facing, err)
	}

	path := filepath.Join(opts.outDir, fmt.Sprintf("%s_%03d.png", mode, view))
	f, err := os.Create(path)
	if err != nil {
		return shot{}, fmt.Errorf("create %s: %w", path, err)
	}
	if err := surface.WritePNG(f); err != nil {
		f.Close()
		return shot{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return shot{}, fmt.Errorf("close %s: %w", path, err)
	}

	return shot{Mode: mode, Facing: cam.Facing, Path: path, Digest: surface.Digest()}, nil
}

// ensureRuntimeCWD moves to the executable's directory when config.yaml is
// not in the working directory.
func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
