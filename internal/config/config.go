// Package config loads the tracking configuration from a YAML file, then
// applies HEADPOSE_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/akmonengine/headpose/client"
	"github.com/akmonengine/headpose/debug"
	"github.com/akmonengine/headpose/pose"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "HEADPOSE_"

var (
	ErrInvalidLimit      = errors.New("limit lower bound is above upper bound")
	ErrInvalidMultiplier = errors.New("multiplier must be a finite number")
	ErrUnknownClient     = errors.New("unknown client kind")
	ErrMissingRecording  = errors.New("replay client needs a recording path")
)

// Client kinds
const (
	ClientMock   = "mock"
	ClientReplay = "replay"
	ClientStatic = "static"
)

type Config struct {
	Name     string   `yaml:"name" env:"NAME"`
	LogLevel string   `yaml:"log_level" env:"LOG_LEVEL"`
	Client   Client   `yaml:"client" envPrefix:"CLIENT_"`
	Tracking Tracking `yaml:"tracking" envPrefix:"TRACKING_"`
	Debug    Debug    `yaml:"debug" envPrefix:"DEBUG_"`
}

type Client struct {
	Kind      string `yaml:"kind" env:"KIND"`
	Recording string `yaml:"recording" env:"RECORDING"`
}

type Tracking struct {
	PositionMultiplier float64     `yaml:"position_multiplier" env:"POSITION_MULTIPLIER"`
	RotationMultiplier float64     `yaml:"rotation_multiplier" env:"ROTATION_MULTIPLIER"`
	UseLimits          bool        `yaml:"use_limits" env:"USE_LIMITS"`
	Limits             pose.Limits `yaml:"limits"`
}

type Debug struct {
	Visible    bool       `yaml:"visible" env:"VISIBLE"`
	StatusRect debug.Rect `yaml:"status_rect"`
	DataRect   debug.Rect `yaml:"data_rect"`
}

// Default returns the calibrated defaults with a mock client and a visible panel
func Default() Config {
	panel := debug.NewPanel()
	return Config{
		Name:     "headpose",
		LogLevel: "info",
		Client:   Client{Kind: ClientMock},
		Tracking: Tracking{
			PositionMultiplier: pose.DefaultPositionMultiplier,
			RotationMultiplier: pose.DefaultRotationMultiplier,
		},
		Debug: Debug{
			Visible:    panel.Visible,
			StatusRect: panel.StatusRect,
			DataRect:   panel.DataRect,
		},
	}
}

// Load reads the file at path over the defaults, then the environment.
// An empty path skips the file.
func Load(path string) (Config, error) {
	if path == "" {
		return fromEnv(Default())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return fromEnv(cfg)
}

// Parse decodes YAML over the defaults and validates the result.
// Environment overrides are not applied.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(cfg Config) (Config, error) {
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for name, m := range map[string]float64{
		"position_multiplier": c.Tracking.PositionMultiplier,
		"rotation_multiplier": c.Tracking.RotationMultiplier,
	} {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("%s: %w", name, ErrInvalidMultiplier)
		}
	}

	if c.Tracking.UseLimits {
		for _, nl := range c.Tracking.Limits.Named() {
			if !nl.Limit.Valid() {
				return fmt.Errorf("%s [%g, %g]: %w", nl.Axis, nl.Limit.Lower, nl.Limit.Upper, ErrInvalidLimit)
			}
		}
	}

	switch c.Client.Kind {
	case ClientMock, ClientStatic:
	case ClientReplay:
		if c.Client.Recording == "" {
			return ErrMissingRecording
		}
	default:
		return fmt.Errorf("%q: %w", c.Client.Kind, ErrUnknownClient)
	}

	return nil
}

func (c Config) Settings() pose.Settings {
	return pose.Settings{
		PositionMultiplier: c.Tracking.PositionMultiplier,
		RotationMultiplier: c.Tracking.RotationMultiplier,
		UseLimits:          c.Tracking.UseLimits,
		Limits:             c.Tracking.Limits,
	}
}

func (c Config) Panel() debug.Panel {
	return debug.Panel{
		Visible:    c.Debug.Visible,
		StatusRect: c.Debug.StatusRect,
		DataRect:   c.Debug.DataRect,
	}
}

// NewClient builds the tracking client selected by Client.Kind
func (c Config) NewClient() (client.Client, error) {
	switch c.Client.Kind {
	case ClientMock:
		return client.NewMock(), nil
	case ClientStatic:
		return client.NewStatic(pose.Sample{}), nil
	case ClientReplay:
		return client.LoadReplay(c.Client.Recording)
	default:
		return nil, fmt.Errorf("%q: %w", c.Client.Kind, ErrUnknownClient)
	}
}
