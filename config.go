package gosieview

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	LogLevel string         `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	FieldOfView float64   `yaml:"fov_degrees"`
	Near        float64   `yaml:"near"`
	Far         float64   `yaml:"far"`
	Position    []float64 `yaml:"position"`
	Target      []float64 `yaml:"target"`
}

type ControlsConfig struct {
	OrbitSpeed   float64 `yaml:"orbit_speed"`
	PanSpeed     float64 `yaml:"pan_speed"`
	ZoomStep     float64 `yaml:"zoom_step"`
	MaxOrbitStep float64 `yaml:"max_orbit_step"`
	KeyOrbitStep float64 `yaml:"key_orbit_step"`
}

type SceneConfig struct {
	CubeSize  float64 `yaml:"cube_size"`
	CubeScale float64 `yaml:"cube_scale"`
}

func DefaultConfig() *Config {
	controls := DefaultControlSettings()
	return &Config{
		Window: WindowConfig{
			Width:  int(DefaultWidth),
			Height: int(DefaultHeight),
			Title:  "gosieview",
		},
		Camera: CameraConfig{
			FieldOfView: radiansToDegrees(DefaultFieldOfView),
			Near:        DefaultNear,
			Far:         DefaultFar,
			Position:    []float64{DefaultCameraPosition.X, DefaultCameraPosition.Y, DefaultCameraPosition.Z},
			Target:      []float64{DefaultCameraTarget.X, DefaultCameraTarget.Y, DefaultCameraTarget.Z},
		},
		Controls: ControlsConfig{
			OrbitSpeed:   controls.OrbitSpeed,
			PanSpeed:     controls.PanSpeed,
			ZoomStep:     controls.ZoomStep,
			MaxOrbitStep: controls.MaxOrbitStep,
			KeyOrbitStep: controls.KeyOrbitStep,
		},
		Scene: SceneConfig{
			CubeSize:  0.2,
			CubeScale: 250,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so the file only
// needs the keys it changes.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("gosieview: load config %s: %w", filename, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("gosieview: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("gosieview: window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidViewport)
	}
	if err := validateProjection(degreesToRadians(c.Camera.FieldOfView), c.Camera.Near, c.Camera.Far); err != nil {
		return fmt.Errorf("gosieview: camera: %w", err)
	}
	if len(c.Camera.Position) != 3 {
		return fmt.Errorf("gosieview: camera position needs 3 values, got %d", len(c.Camera.Position))
	}
	if len(c.Camera.Target) != 3 {
		return fmt.Errorf("gosieview: camera target needs 3 values, got %d", len(c.Camera.Target))
	}
	if _, _, _, err := basisFor(c.CameraPosition(), c.CameraTarget()); err != nil {
		return fmt.Errorf("gosieview: camera: %w", err)
	}
	ctl := c.Controls
	for _, v := range []float64{ctl.OrbitSpeed, ctl.PanSpeed, ctl.ZoomStep, ctl.MaxOrbitStep, ctl.KeyOrbitStep} {
		if !isFinite(v) {
			return fmt.Errorf("gosieview: controls %+v: %w", ctl, ErrNonFinite)
		}
		if v < 0 {
			return fmt.Errorf("gosieview: controls must not be negative: %+v", ctl)
		}
	}
	if !isFinite(c.Scene.CubeSize) || c.Scene.CubeSize <= 0 {
		return fmt.Errorf("gosieview: cube size %f must be positive", c.Scene.CubeSize)
	}
	if !isFinite(c.Scene.CubeScale) {
		return fmt.Errorf("gosieview: cube scale: %w", ErrNonFinite)
	}
	if c.Scene.CubeScale == 0 {
		return fmt.Errorf("gosieview: cube scale: %w", ErrZeroScale)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("gosieview: log level: %w", err)
	}
	return nil
}

func (c *Config) CameraPosition() Vector4 {
	return NewPoint(c.Camera.Position[0], c.Camera.Position[1], c.Camera.Position[2])
}

func (c *Config) CameraTarget() Vector4 {
	return NewPoint(c.Camera.Target[0], c.Camera.Target[1], c.Camera.Target[2])
}

func (c *Config) ControlSettings() ControlSettings {
	return ControlSettings{
		OrbitSpeed:   c.Controls.OrbitSpeed,
		PanSpeed:     c.Controls.PanSpeed,
		ZoomStep:     c.Controls.ZoomStep,
		MaxOrbitStep: c.Controls.MaxOrbitStep,
		KeyOrbitStep: c.Controls.KeyOrbitStep,
	}
}

// NewCube builds the configured cube, scaled about its centre.
func (c *Config) NewCube() (*Cube, error) {
	cube, err := NewCube(c.Scene.CubeSize)
	if err != nil {
		return nil, err
	}
	scale, err := CreateUniformScale(c.Scene.CubeScale)
	if err != nil {
		return nil, fmt.Errorf("gosieview: cube scale: %w", err)
	}
	cube.Transform(scale)
	return cube, nil
}

// Apply pushes the camera, control and logging settings to a running
// viewer. The window size is left alone; the window owns it. An invalid
// config is rejected before anything is changed.
func (c *Config) Apply(scene *Scene, controller *Controller) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("gosieview: apply config: %w", err)
	}
	if err := scene.SetClipPlanes(c.Camera.Near, c.Camera.Far); err != nil {
		return fmt.Errorf("gosieview: apply config: %w", err)
	}
	if err := scene.SetFieldOfView(degreesToRadians(c.Camera.FieldOfView)); err != nil {
		return fmt.Errorf("gosieview: apply config: %w", err)
	}
	if err := scene.LookAt(c.CameraPosition(), c.CameraTarget()); err != nil {
		return fmt.Errorf("gosieview: apply config: %w", err)
	}
	if controller != nil {
		controller.SetSettings(c.ControlSettings())
	}
	if err := SetLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("gosieview: apply config: %w", err)
	}
	return nil
}
