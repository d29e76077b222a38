// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the configuration of the pentagon program,
// read from an optional TOML file and command-line flags.
package config

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of the program.
type Config struct {

	// Title of the window.
	Title string `toml:"title" default:"WebGPU example"`

	// Width is the initial width of the window in screen coordinates.
	Width int `toml:"width" default:"800"`

	// Height is the initial height of the window in screen coordinates.
	Height int `toml:"height" default:"600"`

	// FPS is the maximum number of frames drawn per second.
	// 0 means as many as presentation allows.
	FPS int `toml:"fps" default:"60"`

	// PresentMode is the surface presentation mode:
	// fifo, fifo-relaxed, immediate or mailbox.
	// Unsupported modes fall back to fifo.
	PresentMode string `toml:"present_mode" default:"fifo"`

	// PowerPreference selects the adapter: default, low or high.
	PowerPreference string `toml:"power_preference" default:"default"`

	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool `toml:"force_fallback_adapter"`

	// Textured draws the mesh with the texture; otherwise
	// it is colored by its texture coordinates.
	Textured bool `toml:"textured" default:"true"`

	// ClearColor is the initial clear color, as a hex string,
	// until the cursor moves.
	ClearColor string `toml:"clear_color" default:"#00ff00"`

	// Debug turns on debug logging of the GPU setup.
	Debug bool `toml:"debug"`
}

var presentModes = map[string]wgpu.PresentMode{
	"fifo":         wgpu.PresentModeFifo,
	"fifo-relaxed": wgpu.PresentModeFifoRelaxed,
	"immediate":    wgpu.PresentModeImmediate,
	"mailbox":      wgpu.PresentModeMailbox,
}

var powerPreferences = map[string]wgpu.PowerPreference{
	"default": wgpu.PowerPreferenceUndefined,
	"low":     wgpu.PowerPreferenceLowPower,
	"high":    wgpu.PowerPreferenceHighPerformance,
}

// Defaults sets the default values from the `default:` tags.
func (c *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// New returns a new Config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open reads the TOML config file, overwriting the values it sets.
// Unknown keys are an error.
func (c *Config) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given TOML file.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o666)
}

// Validate checks the enumerated and numeric values, and clamps
// the window size to at least 1x1.
func (c *Config) Validate() error {
	var errs []error
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	if c.FPS < 0 {
		errs = append(errs, fmt.Errorf("config: fps must not be negative, got %d", c.FPS))
	}
	if _, err := c.WGPUPresentMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.WGPUPowerPreference(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Color(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns the window size.
func (c *Config) Size() image.Point {
	return image.Point{c.Width, c.Height}
}

// WGPUPresentMode returns the WebGPU present mode.
func (c *Config) WGPUPresentMode() (wgpu.PresentMode, error) {
	pm, ok := presentModes[strings.ToLower(c.PresentMode)]
	if !ok {
		return wgpu.PresentModeFifo, fmt.Errorf("config: unknown present mode %q", c.PresentMode)
	}
	return pm, nil
}

// WGPUPowerPreference returns the WebGPU adapter power preference.
func (c *Config) WGPUPowerPreference() (wgpu.PowerPreference, error) {
	pp, ok := powerPreferences[strings.ToLower(c.PowerPreference)]
	if !ok {
		return wgpu.PowerPreferenceUndefined, fmt.Errorf("config: unknown power preference %q", c.PowerPreference)
	}
	return pp, nil
}

// Color returns the initial clear color.
func (c *Config) Color() (color.RGBA, error) {
	clr, err := colors.FromHex(c.ClearColor)
	if err != nil {
		return clr, fmt.Errorf("config: clear color %q: %w", c.ClearColor, err)
	}
	return clr, nil
}
