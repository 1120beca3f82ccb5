// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the list of quads and the clear color drawn
// by bog, read from TOML or YAML files and reloaded when they change.
package scene

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"cogentcore.org/bog/base/errors"
	"cogentcore.org/bog/base/iox/tomlx"
	"cogentcore.org/bog/base/iox/yamlx"
	"cogentcore.org/bog/colors"
	"cogentcore.org/bog/draw"
	"cogentcore.org/bog/math32"
)

// Units for quad positions and sizes.
const (
	// UnitsNDC is normalized device coordinates: x right and y up,
	// with the visible area in [-1, 1]. It is the default.
	UnitsNDC = "ndc"

	// UnitsPixels is window pixels, with the origin at the top left
	// and y down.
	UnitsPixels = "pixels"
)

// ErrUnknownFormat is returned when opening a scene file
// whose extension is not a known encoding.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// Scene is a list of quads and a clear color.
type Scene struct {
	// Clear is the clear color, as a hex value or color name.
	// Empty means the application default.
	Clear string `toml:"clear" yaml:"clear"`

	// Units are the units of quad positions and sizes:
	// "ndc" (the default, also when empty) or "pixels".
	Units string `toml:"units" yaml:"units"`

	// Quads are drawn in order.
	Quads []QuadSpec `toml:"quads" yaml:"quads"`
}

// QuadSpec is one quad of a [Scene].
type QuadSpec struct {
	// Pos is the corner of the quad that Size extends from.
	Pos [2]float32 `toml:"pos" yaml:"pos"`

	// Size is the width and height, which may be negative.
	Size [2]float32 `toml:"size" yaml:"size"`

	// Color is a hex value (#rgb, #rrggbb, #rrggbbaa) or a
	// color name. Alpha is ignored.
	Color string `toml:"color" yaml:"color"`

	// RGB is a linear color with components in [0, 1].
	// It takes precedence over Color when set.
	RGB *[3]float32 `toml:"rgb" yaml:"rgb"`
}

// Default returns the built-in scene: a single purple quad.
func Default() *Scene {
	return &Scene{
		Quads: []QuadSpec{
			{Pos: [2]float32{0.1, 0.2}, Size: [2]float32{0.5, 0.3}, RGB: &[3]float32{0.5, 0.3, 0.7}},
		},
	}
}

// Open reads the scene from the given file, with the encoding
// determined by the extension: .toml, .yaml or .yml.
// The scene is validated.
func Open(path string) (*Scene, error) {
	sc := &Scene{}
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = tomlx.Open(sc, path)
	case ".yaml", ".yml":
		err = yamlx.Open(sc, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: opening %q: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %q: %w", path, err)
	}
	return sc, nil
}

// IsPixels returns true if the scene is in pixel units,
// so that it needs to be built again when the window is resized.
func (sc *Scene) IsPixels() bool {
	return strings.EqualFold(sc.Units, UnitsPixels)
}

// Validate returns an error for unknown units, non-finite numbers,
// or colors that cannot be parsed.
func (sc *Scene) Validate() error {
	switch strings.ToLower(sc.Units) {
	case "", UnitsNDC, UnitsPixels:
	default:
		return fmt.Errorf("unknown units %q", sc.Units)
	}
	if sc.Clear != "" {
		if _, err := colors.FromString(sc.Clear); err != nil {
			return fmt.Errorf("clear color: %w", err)
		}
	}
	var errs []error
	for i := range sc.Quads {
		if err := sc.Quads[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("quad %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate returns an error for non-finite numbers
// or a color that cannot be parsed.
func (qs *QuadSpec) Validate() error {
	if !qs.Quad().IsFinite() {
		return fmt.Errorf("position and size must be finite: %v %v", qs.Pos, qs.Size)
	}
	if qs.RGB != nil {
		for _, v := range qs.RGB {
			if !math32.IsFinite(v) {
				return fmt.Errorf("rgb must be finite: %v", *qs.RGB)
			}
		}
		return nil
	}
	_, err := qs.DrawColor()
	return err
}

// Quad returns the quad in the units of the scene.
func (qs *QuadSpec) Quad() draw.Quad {
	return draw.NewQuad(qs.Pos[0], qs.Pos[1], qs.Size[0], qs.Size[1])
}

// DrawColor returns the color of the quad: RGB if set, otherwise the
// parsed Color with any alpha dropped, or white if neither is set.
func (qs *QuadSpec) DrawColor() (draw.Color, error) {
	if qs.RGB != nil {
		return draw.Color(*qs.RGB), nil
	}
	if qs.Color == "" {
		return draw.ColorOf(colors.White), nil
	}
	c, err := colors.FromStringN(qs.Color)
	if err != nil {
		return draw.Color{}, err
	}
	c.A = 255
	return draw.ColorOf(c), nil
}

// Build adds the quads of the scene to the given batch, converting
// pixel units with the given viewport size. It returns an error naming
// the first quad with a color that cannot be parsed, having added the
// quads before it.
func (sc *Scene) Build(batch *draw.Batch, viewport image.Point) error {
	pixels := sc.IsPixels()
	for i := range sc.Quads {
		qs := &sc.Quads[i]
		c, err := qs.DrawColor()
		if err != nil {
			return fmt.Errorf("scene: quad %d: %w", i, err)
		}
		q := qs.Quad()
		if pixels {
			q = q.FromPixels(viewport)
		}
		batch.AddQuad(q, c)
	}
	return nil
}

// ClearColor returns the parsed clear color, and false if it is not set
// or cannot be parsed.
func (sc *Scene) ClearColor() (colors.RGBAf32, bool) {
	if sc.Clear == "" {
		return colors.RGBAf32{}, false
	}
	c, err := colors.FromString(sc.Clear)
	if err != nil {
		return colors.RGBAf32{}, false
	}
	return colors.ToRGBAf32(c), true
}
