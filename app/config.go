// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"flag"
	"fmt"
	"io"

	"cogentcore.org/bog/base/errors"
	"cogentcore.org/bog/base/fsx"
	"cogentcore.org/bog/base/iox/tomlx"
	"cogentcore.org/bog/colors"
	"cogentcore.org/bog/gpu"
)

// ConfigFile is the name of the config file looked for
// on [ConfigPaths] when no -config flag is given.
const ConfigFile = "bog.toml"

// MaxFPS is the largest target frame rate accepted.
const MaxFPS = 1000

// ConfigPaths are the directories searched for [ConfigFile], in order.
var ConfigPaths = []string{".", "configs", "~/.config/bog"}

// Config has the settings of the app, read from a TOML config file
// and command line flags.
type Config struct {
	// Config is the config file to read, instead of searching for
	// [ConfigFile] on [ConfigPaths].
	Config string `toml:"-"`

	// Title is the window title.
	Title string `toml:"title"`

	// Width is the initial window width in screen coordinates.
	Width int `toml:"width"`

	// Height is the initial window height in screen coordinates.
	Height int `toml:"height"`

	// Scene is the scene file to draw, in TOML or YAML.
	// Empty draws the built-in scene.
	Scene string `toml:"scene"`

	// Watch reloads the scene file when it changes.
	Watch bool `toml:"watch"`

	// VSync waits for the vertical blank when presenting.
	VSync bool `toml:"vsync"`

	// FPS is the target number of frames per second.
	FPS int `toml:"fps"`

	// PowerPreference selects the adapter:
	// "high-performance" or "low-power".
	PowerPreference string `toml:"power_preference"`

	// Clear is the clear color used when the scene does not set one.
	// Empty is [DefaultClear].
	Clear string `toml:"clear"`

	// V shows informational log messages.
	V bool `toml:"-"`

	// VV shows debug log messages.
	VV bool `toml:"-"`

	// Q only shows error log messages.
	Q bool `toml:"-"`
}

// Defaults sets the default values.
func (cfg *Config) Defaults() {
	cfg.Title = "Bog WGPU"
	cfg.Width = 1200
	cfg.Height = 800
	cfg.Watch = true
	cfg.FPS = 60
	cfg.PowerPreference = gpu.HighPerformance.String()
}

// flagSet returns a new flag set bound to the fields of cfg.
func (cfg *Config) flagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("bog", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Config, "config", cfg.Config, "config file to read instead of searching for "+ConfigFile)
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene file to draw (.toml, .yaml or .yml); empty for the built-in scene")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the scene file when it changes")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for the vertical blank when presenting")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")
	fs.StringVar(&cfg.PowerPreference, "power", cfg.PowerPreference, "adapter power preference: high-performance or low-power")
	fs.StringVar(&cfg.Clear, "clear", cfg.Clear, "clear color when the scene does not set one")
	fs.BoolVar(&cfg.V, "v", cfg.V, "show informational log messages")
	fs.BoolVar(&cfg.VV, "vv", cfg.VV, "show debug log messages")
	fs.BoolVar(&cfg.Q, "q", cfg.Q, "only show error log messages")
	return fs
}

// Load returns the config from the defaults, then the config file,
// then the flags explicitly set in args, which take precedence.
// The config is validated. It returns [flag.ErrHelp] when help
// was requested.
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	cfg.Defaults()
	fs := cfg.flagSet(output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	file := cfg.Config
	if file == "" {
		if found := fsx.FindFilesOnPaths(ConfigPaths, ConfigFile); len(found) > 0 {
			file = found[0]
		}
	}
	if file != "" {
		if err := tomlx.Open(cfg, file); err != nil {
			return nil, fmt.Errorf("app: reading config file %q: %w", file, err)
		}
		// parsing again sets only the flags given in args,
		// over the values from the file
		errors.Log(fs.Parse(args))
		cfg.Config = file
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error for non-positive sizes, an FPS outside
// 1 to [MaxFPS],
// an unknown power preference, or a clear color that cannot be parsed.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive: %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.FPS <= 0 || cfg.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps must be in 1..%d: %d", MaxFPS, cfg.FPS))
	}
	if _, err := gpu.ParsePowerPreference(cfg.PowerPreference); err != nil {
		errs = append(errs, err)
	}
	if cfg.Clear != "" {
		if _, err := colors.FromString(cfg.Clear); err != nil {
			errs = append(errs, fmt.Errorf("clear color: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("app: invalid config: %w", err)
	}
	return nil
}
