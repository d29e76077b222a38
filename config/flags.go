// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/pflag"
)

// AddFlags adds flags for all of the fields to the given
// flag set, with the current values as defaults.
// The returned string is set to the --config flag value.
func (c *Config) AddFlags(fs *pflag.FlagSet) *string {
	file := fs.StringP("config", "c", "", "TOML config file, read before the other flags are applied")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.FPS, "fps", c.FPS, "maximum frames per second (0 = bound by presentation)")
	fs.StringVar(&c.PresentMode, "present-mode", c.PresentMode, "present mode: fifo, fifo-relaxed, immediate, mailbox")
	fs.StringVar(&c.PowerPreference, "power", c.PowerPreference, "adapter power preference: default, low, high")
	fs.BoolVar(&c.ForceFallbackAdapter, "fallback", c.ForceFallbackAdapter, "force a software (fallback) adapter")
	fs.BoolVar(&c.Textured, "textured", c.Textured, "draw the textured pentagon")
	fs.StringVar(&c.ClearColor, "clear-color", c.ClearColor, "initial clear color, as hex")
	fs.BoolVarP(&c.Debug, "debug", "d", c.Debug, "debug logging of the GPU setup")
	return file
}

// Load returns the config from the defaults, the --config TOML file
// if given, and then the other flags in args, in that order of
// increasing precedence. The result is validated.
func Load(name string, args []string) (*Config, error) {
	c := New()

	// first pass only finds the config file
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	file := pre.StringP("config", "c", "", "")
	pre.Parse(args)
	if *file != "" {
		if err := c.Open(*file); err != nil {
			return nil, err
		}
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	c.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
