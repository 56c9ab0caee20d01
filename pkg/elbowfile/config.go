package elbowfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional per-directory configuration.
const ConfigFile = "elbow.yaml"

// Config represents the optional elbow.yaml configuration.
type Config struct {
	Route  RouteConfig  `yaml:"route"`
	Render RenderConfig `yaml:"render"`
}

// RouteConfig contains routing defaults.
type RouteConfig struct {
	Overshoot *float64 `yaml:"overshoot,omitempty"`
}

// RenderConfig contains SVG/PNG output defaults.
type RenderConfig struct {
	Width       int     `yaml:"width,omitempty"`
	Height      int     `yaml:"height,omitempty"`
	Padding     int     `yaml:"padding,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Overshoot   float64
	Width       int
	Height      int
	Padding     int
	StrokeWidth float64
}

// DefaultResolved returns the settings used when no elbow.yaml exists.
func DefaultResolved() Resolved {
	return Resolved{
		Overshoot:   20,
		Width:       800,
		Height:      600,
		Padding:     40,
		StrokeWidth: 2,
	}
}

// LoadOptional reads elbow.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	return &cfg, nil
}

// Resolve loads elbow.yaml (if present) and applies defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := DefaultResolved()
	if cfg.Route.Overshoot != nil {
		if *cfg.Route.Overshoot < 0 {
			return nil, fmt.Errorf("%s: route.overshoot must be non-negative, got %v", ConfigFile, *cfg.Route.Overshoot)
		}
		r.Overshoot = *cfg.Route.Overshoot
	}
	if cfg.Render.Width > 0 {
		r.Width = cfg.Render.Width
	}
	if cfg.Render.Height > 0 {
		r.Height = cfg.Render.Height
	}
	if cfg.Render.Padding > 0 {
		r.Padding = cfg.Render.Padding
	}
	if cfg.Render.StrokeWidth > 0 {
		r.StrokeWidth = cfg.Render.StrokeWidth
	}

	return &r, nil
}

// SVGOptions returns SVG options seeded from the resolved settings.
func (r *Resolved) SVGOptions() SVGOptions {
	opts := DefaultSVGOptions()
	opts.Width = r.Width
	opts.Height = r.Height
	opts.Padding = r.Padding
	opts.StrokeWidth = r.StrokeWidth
	return opts
}

// PNGOptions returns PNG options seeded from the resolved settings.
func (r *Resolved) PNGOptions() PNGOptions {
	opts := DefaultPNGOptions()
	opts.Width = r.Width
	opts.Height = r.Height
	opts.Padding = r.Padding
	opts.StrokeWidth = r.StrokeWidth
	return opts
}
