package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/markers.yaml"

// WindowConfig controls the raylib window.
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	TargetFPS  int    `mapstructure:"target_fps"`
}

// GestureConfig holds the click-versus-drag thresholds.
type GestureConfig struct {
	Delay     time.Duration `mapstructure:"delay"`
	Tolerance float32       `mapstructure:"tolerance"`
}

// CameraConfig holds the initial pose and the motion limits.
type CameraConfig struct {
	Position      []float32 `mapstructure:"position"`
	Target        []float32 `mapstructure:"target"`
	Fovy          float32   `mapstructure:"fovy"`
	Near          float32   `mapstructure:"near"`
	Far           float32   `mapstructure:"far"`
	MoveStep      float32   `mapstructure:"move_step"`
	MinDistance   float32   `mapstructure:"min_distance"`
	MaxDistance   float32   `mapstructure:"max_distance"`
	DampingFactor float32   `mapstructure:"damping_factor"`
}

// ScatterConfig controls random marker placement when no catalog is given.
type ScatterConfig struct {
	Count   int     `mapstructure:"count"`
	Radius  float32 `mapstructure:"radius"`
	BoxSize float32 `mapstructure:"box_size"`
	Seed    int64   `mapstructure:"seed"`
}

// PanelConfig sizes the detail panel. SlideDuration is in seconds; 0 disables the animation.
type PanelConfig struct {
	Width         float32 `mapstructure:"width"`
	SlideDuration float32 `mapstructure:"slide_duration"`
}

// LogConfig controls the log file and level.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the full application configuration.
type Config struct {
	Window      WindowConfig  `mapstructure:"window"`
	Gesture     GestureConfig `mapstructure:"gesture"`
	Camera      CameraConfig  `mapstructure:"camera"`
	Scatter     ScatterConfig `mapstructure:"scatter"`
	Panel       PanelConfig   `mapstructure:"panel"`
	Catalog     string        `mapstructure:"catalog"`
	Stylesheet  string        `mapstructure:"stylesheet"`
	Log         LogConfig     `mapstructure:"log"`
	ShowFPS     bool          `mapstructure:"show_fps"`
	GridVisible bool          `mapstructure:"grid_visible"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "markers")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.target_fps", 60)

	v.SetDefault("gesture.delay", 200*time.Millisecond)
	v.SetDefault("gesture.tolerance", 5)

	v.SetDefault("camera.position", []float32{0, 0, 50})
	v.SetDefault("camera.target", []float32{0, 0, 0})
	v.SetDefault("camera.fovy", 75)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 1000)
	v.SetDefault("camera.move_step", 2.0)
	v.SetDefault("camera.min_distance", 1)
	v.SetDefault("camera.max_distance", 500)
	v.SetDefault("camera.damping_factor", 0.05)

	v.SetDefault("scatter.count", 45)
	v.SetDefault("scatter.radius", 0.8)
	v.SetDefault("scatter.box_size", 100)
	v.SetDefault("scatter.seed", 0)

	v.SetDefault("panel.width", 320)
	v.SetDefault("panel.slide_duration", 0.25)

	v.SetDefault("catalog", "")
	v.SetDefault("stylesheet", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/markers.log")
	v.SetDefault("show_fps", false)
	v.SetDefault("grid_visible", false)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MARKERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the built-in configuration (no file, no environment overrides applied beyond AutomaticEnv).
func Default() Config {
	var c Config
	_ = newViper().Unmarshal(&c)
	return c
}

// Load reads the YAML config at path on top of the defaults. A missing file is not an error:
// defaults are returned. Environment variables prefixed MARKERS_ override both
// (e.g. MARKERS_GESTURE_DELAY=20ms).
func Load(path string) (Config, error) {
	v := newViper()
	if path == "" {
		path = ConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Default(), fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("config: stat %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Default(), fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Validate rejects values the controllers cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Gesture.Delay < 0:
		return fmt.Errorf("config: gesture.delay must not be negative, got %s", c.Gesture.Delay)
	case c.Gesture.Tolerance <= 0:
		return fmt.Errorf("config: gesture.tolerance must be positive, got %v", c.Gesture.Tolerance)
	case len(c.Camera.Position) != 3 || len(c.Camera.Target) != 3:
		return fmt.Errorf("config: camera.position and camera.target need 3 components")
	case c.Camera.MinDistance < 0 || c.Camera.MaxDistance <= c.Camera.MinDistance:
		return fmt.Errorf("config: camera distance range [%v, %v] is invalid", c.Camera.MinDistance, c.Camera.MaxDistance)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("config: camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far)
	case c.Scatter.Count < 0:
		return fmt.Errorf("config: scatter.count must not be negative")
	case c.Panel.Width <= 0 || c.Panel.SlideDuration < 0:
		return fmt.Errorf("config: panel width %v / slide duration %v is invalid", c.Panel.Width, c.Panel.SlideDuration)
	}
	return nil
}

// Vec3 converts a 3-element config slice into an array; missing components are zero.
func Vec3(s []float32) [3]float32 {
	var out [3]float32
	copy(out[:], s)
	return out
}
