// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromString returns a color value from the given string:
// a hex value starting with #, "transparent", or a CSS / SVG
// color name (case insensitive).
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color")
	}
	if str[0] == '#' {
		return FromHex(str)
	}
	return FromName(str)
}

// FromStringN is like [FromString], but returns the color
// without alpha premultiplication, so that the red, green and
// blue components are those written in the string.
func FromStringN(str string) (color.NRGBA, error) {
	str = strings.TrimSpace(str)
	if str != "" && str[0] == '#' {
		return FromHexN(str)
	}
	c, err := FromString(str)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA), nil
}

// FromName returns the color value specified
// by the given CSS / SVG standard color name.
func FromName(name string) (color.RGBA, error) {
	low := strings.ToLower(name)
	if low == "transparent" {
		return Transparent, nil
	}
	c, ok := colornames.Map[low]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromHex parses the given non-alpha-premultiplied hex color
// string and returns the alpha-premultiplied color value.
// It supports #rgb, #rgba, #rrggbb and #rrggbbaa forms,
// with an optional leading #.
func FromHex(hex string) (color.RGBA, error) {
	c, err := FromHexN(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return premultiply(c), nil
}

// FromHexN is like [FromHex], but returns the color
// without alpha premultiplication.
func FromHexN(hex string) (color.NRGBA, error) {
	x := strings.TrimPrefix(hex, "#")
	var vals [4]uint8
	vals[3] = 255
	switch len(x) {
	case 3, 4:
		for i := range len(x) {
			v, err := strconv.ParseUint(x[i:i+1], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
			}
			vals[i] = uint8(v | v<<4)
		}
	case 6, 8:
		for i := 0; i < len(x)/2; i++ {
			v, err := strconv.ParseUint(x[2*i:2*i+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
			}
			vals[i] = uint8(v)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return color.NRGBA{vals[0], vals[1], vals[2], vals[3]}, nil
}

func premultiply(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
