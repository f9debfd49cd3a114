// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Light   LightConfig   `yaml:"light"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"` // 0 disables the frame cap
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	FOVDegrees float32    `yaml:"fov_degrees"`
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	Up         [3]float32 `yaml:"up"`
}

// MeshConfig holds the pyramid dimensions and the vertex storage budget.
type MeshConfig struct {
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	Depth       float32 `yaml:"depth"`
	MaxVertices int     `yaml:"max_vertices"` // 0 means unlimited
}

// LightConfig places the directional light, in degrees.
type LightConfig struct {
	Longitude float32 `yaml:"longitude"`
	Latitude  float32 `yaml:"latitude"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds diagnostic switches.
type DebugConfig struct {
	CheckGeometry bool `yaml:"check_geometry"` // report degenerate camera/model matrices
	LogFPS        bool `yaml:"log_fps"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Roonium",
			TargetFPS: 60,
			VSync:     false,
		},
		Camera: CameraConfig{
			FOVDegrees: 45,
			Position:   [3]float32{0, 1, 3},
			Target:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
		},
		Mesh: MeshConfig{
			Width:       1.25,
			Height:      1.0,
			Depth:       1.25,
			MaxVertices: 1024,
		},
		Light: LightConfig{
			Longitude: 27,
			Latitude:  50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the renderer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_degrees %v must be in (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Mesh.Width <= 0 || c.Mesh.Height <= 0 || c.Mesh.Depth <= 0 {
		errs = append(errs, fmt.Errorf("mesh size %vx%vx%v must be positive", c.Mesh.Width, c.Mesh.Height, c.Mesh.Depth))
	}
	if c.Mesh.MaxVertices < 0 {
		errs = append(errs, fmt.Errorf("max_vertices %d must not be negative", c.Mesh.MaxVertices))
	}
	if c.Light.Latitude < -90 || c.Light.Latitude > 90 {
		errs = append(errs, fmt.Errorf("light latitude %v must be in [-90, 90]", c.Light.Latitude))
	}
	return errors.Join(errs...)
}
