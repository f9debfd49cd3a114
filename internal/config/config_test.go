package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Roonium" {
		t.Errorf("expected title Roonium, got %s", cfg.Window.Title)
	}
	if cfg.Window.TargetFPS != 60 {
		t.Errorf("expected target fps 60, got %d", cfg.Window.TargetFPS)
	}
	if cfg.Camera.FOVDegrees != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Position != [3]float32{0, 1, 3} {
		t.Errorf("expected camera at (0, 1, 3), got %v", cfg.Camera.Position)
	}
	if cfg.Mesh.Width != 1.25 || cfg.Mesh.Height != 1 || cfg.Mesh.Depth != 1.25 {
		t.Errorf("unexpected mesh size %+v", cfg.Mesh)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Debug.CheckGeometry {
		t.Error("expected geometry checks off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"negative fps", func(c *Config) { c.Window.TargetFPS = -5 }, "target_fps"},
		{"flat fov", func(c *Config) { c.Camera.FOVDegrees = 0 }, "fov_degrees"},
		{"wide fov", func(c *Config) { c.Camera.FOVDegrees = 180 }, "fov_degrees"},
		{"flat mesh", func(c *Config) { c.Mesh.Height = 0 }, "mesh size"},
		{"negative budget", func(c *Config) { c.Mesh.MaxVertices = -1 }, "max_vertices"},
		{"light below nadir", func(c *Config) { c.Light.Latitude = -91 }, "latitude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.Window.TargetFPS = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("uncapped fps should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roonium.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  title: "Spin"
  target_fps: 144
  vsync: true

camera:
  fov_degrees: 60
  position: [0, 2, 5]

mesh:
  width: 2
  height: 3
  depth: 2

logging:
  level: "debug"
  log_file: "roonium.log"

debug:
  check_geometry: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Spin" {
		t.Errorf("expected title Spin, got %s", cfg.Window.Title)
	}
	if cfg.Window.TargetFPS != 144 {
		t.Errorf("expected fps 144, got %d", cfg.Window.TargetFPS)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true")
	}
	if cfg.Camera.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Position != [3]float32{0, 2, 5} {
		t.Errorf("expected camera (0, 2, 5), got %v", cfg.Camera.Position)
	}
	// Unset keys keep their defaults.
	if cfg.Camera.Up != [3]float32{0, 1, 0} {
		t.Errorf("expected default up, got %v", cfg.Camera.Up)
	}
	if cfg.Mesh.MaxVertices != 1024 {
		t.Errorf("expected default budget 1024, got %d", cfg.Mesh.MaxVertices)
	}
	if cfg.Mesh.Height != 3 {
		t.Errorf("expected mesh height 3, got %v", cfg.Mesh.Height)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "roonium.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
	if !cfg.Debug.CheckGeometry {
		t.Error("expected check_geometry to be true")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/roonium.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "roonium.yaml"), []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find roonium.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.CheckGeometry || !cfg.Debug.LogFPS {
					t.Error("expected debug checks enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "size flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "fps flag uncapped",
			setup: func() { *flagFPS = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.TargetFPS != 0 {
					t.Errorf("expected uncapped fps, got %d", cfg.Window.TargetFPS)
				}
			},
			teardown: func() { *flagFPS = -1 },
		},
		{
			name:  "fps flag unset",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.TargetFPS != 60 {
					t.Errorf("expected default fps 60, got %d", cfg.Window.TargetFPS)
				}
			},
			teardown: func() {},
		},
		{
			name: "title vsync and log file",
			setup: func() {
				*flagTitle = "Pyramid"
				*flagVSync = true
				*flagLogFile = "out.log"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "Pyramid" {
					t.Errorf("expected title Pyramid, got %s", cfg.Window.Title)
				}
				if !cfg.Window.VSync {
					t.Error("expected vsync enabled")
				}
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagTitle = ""
				*flagVSync = false
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roonium.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roonium.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  depth: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "roonium.yaml")

	cfg := Default()
	cfg.Window.Title = "Saved"
	cfg.Mesh.Depth = 4
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
