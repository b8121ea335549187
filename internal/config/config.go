package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 480
	WindowHeight = 800
	WindowTitle  = "Firecracker"
	TPS          = 60

	// Screen composition, as a fraction of the screen size
	BurstFraction = 0.8
	OvalFraction  = 0.5
)

// Config is the runtime configuration read from YAML.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Playback PlaybackConfig `yaml:"playback"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable *bool  `yaml:"resizable"`
}

type PlaybackConfig struct {
	TPS     int  `yaml:"tps"`
	ShowFPS bool `yaml:"show_fps"`
	// Density is pixels per dp. Zero means the monitor's device scale factor.
	Density float64 `yaml:"density"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads the YAML file at path and fills unset fields with defaults.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		log.Debug("no config file given, using defaults")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.WithField("path", path).Info("config loaded")
	return c, nil
}

// Parse decodes YAML data, applies defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = WindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = WindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = WindowTitle
	}
	if c.Window.Resizable == nil {
		resizable := true
		c.Window.Resizable = &resizable
	}
	if c.Playback.TPS == 0 {
		c.Playback.TPS = TPS
	}
	if c.Log.Level == "" {
		c.Log.Level = log.InfoLevel.String()
	}
}

// Validate rejects values the game loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height))
	}
	if c.Playback.TPS < 0 {
		errs = append(errs, fmt.Errorf("playback.tps %d is negative", c.Playback.TPS))
	}
	if c.Playback.Density < 0 {
		errs = append(errs, fmt.Errorf("playback.density %v is negative", c.Playback.Density))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// TickDuration is the simulated time that passes on every Update.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Playback.TPS)
}
