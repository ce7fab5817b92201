package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Render modes.
const (
	ModePerspective = "perspective"
	ModePlan        = "plan"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Render   RenderConfig   `yaml:"render"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	// MapFile is a text map; empty selects the built-in map.
	MapFile string `yaml:"map_file"`
}

type CameraConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Facing      float64 `yaml:"facing"`
	FieldOfView float64 `yaml:"field_of_view"`
	FOVStep     float64 `yaml:"fov_step"`
	FOVMin      float64 `yaml:"fov_min"`
	FOVMax      float64 `yaml:"fov_max"`
}

type MovementConfig struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second at full input
	MoveSpeed     float64 `yaml:"move_speed"`     // tiles per second at full input
	TurnDeadzone  float64 `yaml:"turn_deadzone"`
	MoveDeadzone  float64 `yaml:"move_deadzone"`
	MaxStepMs     int     `yaml:"max_step_ms"`
}

type RenderConfig struct {
	Mode         string  `yaml:"mode"`
	ViewDistance float64 `yaml:"view_distance"`
	PlanDistance float64 `yaml:"plan_distance"`
	Parallel     bool    `yaml:"parallel"`
	Workers      int     `yaml:"workers"` // 0 means one per CPU
}

type GraphicsConfig struct {
	Palette        [][3]int `yaml:"palette"`
	Sky            [3]int   `yaml:"sky"`
	Floor          [3]int   `yaml:"floor"`
	PlanBackground [3]int   `yaml:"plan_background"`
	// NoHit colours plan-mode rays that reach their range; unset uses the
	// fourth palette entry.
	NoHit *[3]int `yaml:"no_hit"`
}

type LoggingConfig struct {
	Level                  string `yaml:"level"`
	Encoding               string `yaml:"encoding"`
	MetricsIntervalSeconds int    `yaml:"metrics_interval_seconds"`
}

// Default returns the reference configuration: a 900x640 window, 75 degree
// field of view, a 17 tile view distance and the red/yellow/blue/green
// palette.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  900,
			ScreenHeight: 640,
			WindowTitle:  "Raycaster",
		},
		Camera: CameraConfig{
			StartX:      8.5,
			StartY:      8.5,
			FieldOfView: 75,
			FOVStep:     5,
			FOVMin:      10,
			FOVMax:      170,
		},
		Movement: MovementConfig{
			RotationSpeed: 196.602,
			MoveSpeed:     2.62136,
			TurnDeadzone:  0.061,
			MoveDeadzone:  0.0916,
			MaxStepMs:     250,
		},
		Render: RenderConfig{
			Mode:         ModePerspective,
			ViewDistance: 17,
			PlanDistance: 20,
		},
		Graphics: GraphicsConfig{
			Palette: [][3]int{
				{255, 0, 0},
				{255, 255, 0},
				{0, 0, 255},
				{0, 255, 0},
			},
			Sky:            [3]int{50, 50, 50},
			Floor:          [3]int{20, 20, 20},
			PlanBackground: [3]int{50, 50, 50},
		},
		Logging: LoggingConfig{
			Level:                  "info",
			Encoding:               "console",
			MetricsIntervalSeconds: 5,
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Keys missing from the
// file keep their Default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate reports every out-of-range value at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Display.ScreenWidth > 0, "display.screen_width must be positive, got %d", c.Display.ScreenWidth)
	check(c.Display.ScreenHeight > 0, "display.screen_height must be positive, got %d", c.Display.ScreenHeight)

	check(c.Camera.FOVMin > 0 && c.Camera.FOVMin <= c.Camera.FOVMax && c.Camera.FOVMax < 180,
		"camera fov bounds must satisfy 0 < fov_min <= fov_max < 180, got [%v, %v]", c.Camera.FOVMin, c.Camera.FOVMax)
	check(c.Camera.FieldOfView >= c.Camera.FOVMin && c.Camera.FieldOfView <= c.Camera.FOVMax,
		"camera.field_of_view %v outside [%v, %v]", c.Camera.FieldOfView, c.Camera.FOVMin, c.Camera.FOVMax)

	check(c.Movement.RotationSpeed >= 0, "movement.rotation_speed must not be negative")
	check(c.Movement.MoveSpeed >= 0, "movement.move_speed must not be negative")
	check(c.Movement.MaxStepMs > 0, "movement.max_step_ms must be positive, got %d", c.Movement.MaxStepMs)
	// Pad and keys together may apply twice the rate; one wrap per tick must
	// be enough to bring facing back into range.
	check(2*c.Movement.RotationSpeed*float64(c.Movement.MaxStepMs)/1000 < 360,
		"movement.rotation_speed %v can turn a full circle within max_step_ms %d", c.Movement.RotationSpeed, c.Movement.MaxStepMs)

	check(c.Render.Mode == ModePerspective || c.Render.Mode == ModePlan,
		"render.mode must be %q or %q, got %q", ModePerspective, ModePlan, c.Render.Mode)
	check(c.Render.ViewDistance > 0, "render.view_distance must be positive")
	check(c.Render.PlanDistance > 0, "render.plan_distance must be positive")
	check(c.Render.Workers >= 0, "render.workers must not be negative")

	check(len(c.Graphics.Palette) > 0, "graphics.palette must not be empty")
	for i, rgb := range c.Graphics.Palette {
		check(validRGB(rgb), "graphics.palette[%d] %v is not an RGB triple", i, rgb)
	}
	check(validRGB(c.Graphics.Sky), "graphics.sky %v is not an RGB triple", c.Graphics.Sky)
	check(validRGB(c.Graphics.Floor), "graphics.floor %v is not an RGB triple", c.Graphics.Floor)
	check(validRGB(c.Graphics.PlanBackground), "graphics.plan_background %v is not an RGB triple", c.Graphics.PlanBackground)
	if c.Graphics.NoHit != nil {
		check(validRGB(*c.Graphics.NoHit), "graphics.no_hit %v is not an RGB triple", *c.Graphics.NoHit)
	}

	check(c.Logging.Encoding == "console" || c.Logging.Encoding == "json",
		"logging.encoding must be console or json, got %q", c.Logging.Encoding)

	return errors.Join(errs...)
}

func validRGB(rgb [3]int) bool {
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetViewDistance() float64 {
	return c.Render.ViewDistance
}

func (c *Config) GetPlanDistance() float64 {
	return c.Render.PlanDistance
}

// GetRotSpeed returns the rotation speed in degrees per millisecond.
func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed / 1000
}

// GetMoveSpeed returns the movement speed in tiles per millisecond.
func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed / 1000
}

func (c *Config) GetMaxStep() time.Duration {
	return time.Duration(c.Movement.MaxStepMs) * time.Millisecond
}

func (c *Config) GetMetricsInterval() time.Duration {
	return time.Duration(c.Logging.MetricsIntervalSeconds) * time.Second
}

// GetNoHitColor returns the plan-mode colour for unobstructed rays.
func (c *Config) GetNoHitColor() [3]int {
	if c.Graphics.NoHit != nil {
		return *c.Graphics.NoHit
	}
	if len(c.Graphics.Palette) >= 4 {
		return c.Graphics.Palette[3]
	}
	return c.Graphics.Palette[len(c.Graphics.Palette)-1]
}
