// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/bog/colors"
	"cogentcore.org/bog/draw"
	"cogentcore.org/bog/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
clear = "#000000"
units = "ndc"

[[quads]]
pos = [-0.5, -0.5]
size = [1.0, 0.5]
color = "#ff0000"

[[quads]]
pos = [0.0, 0.0]
size = [-0.25, 0.25]
rgb = [0.0, 1.0, 0.0]
`

const testYAML = `
clear: navy
units: pixels
quads:
  - pos: [0, 0]
    size: [400, 300]
    color: white
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestDefault(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.Validate())
	b := draw.NewBatch()
	require.NoError(t, sc.Build(b, image.Pt(800, 600)))
	assert.Equal(t, 1, b.Len())
	v := b.Vertices()[0]
	assert.Equal(t, [2]float32{0.1, 0.2}, v.Pos)
	assert.Equal(t, draw.Color{0.5, 0.3, 0.7}, v.Color)
	_, ok := sc.ClearColor()
	assert.False(t, ok)
}

func TestOpenTOML(t *testing.T) {
	sc, err := Open(writeFile(t, "scene.toml", testTOML))
	require.NoError(t, err)
	require.Len(t, sc.Quads, 2)
	assert.Equal(t, [2]float32{-0.5, -0.5}, sc.Quads[0].Pos)
	assert.Equal(t, "#ff0000", sc.Quads[0].Color)
	require.NotNil(t, sc.Quads[1].RGB)
	assert.Equal(t, [3]float32{0, 1, 0}, *sc.Quads[1].RGB)
	assert.False(t, sc.IsPixels())

	cc, ok := sc.ClearColor()
	assert.True(t, ok)
	assert.Equal(t, colors.NewRGBAf32(0, 0, 0, 1), cc)

	b := draw.NewBatch()
	require.NoError(t, sc.Build(b, image.Pt(100, 100)))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, draw.Color{1, 0, 0}, b.Vertices()[0].Color)
	// negative width is canonicalized
	assert.Equal(t, [2]float32{-0.25, 0}, b.Vertices()[4].Pos)
	assert.Equal(t, draw.Color{0, 1, 0}, b.Vertices()[4].Color)
}

func TestOpenYAMLPixels(t *testing.T) {
	sc, err := Open(writeFile(t, "scene.yaml", testYAML))
	require.NoError(t, err)
	assert.True(t, sc.IsPixels())
	require.Len(t, sc.Quads, 1)

	b := draw.NewBatch()
	require.NoError(t, sc.Build(b, image.Pt(800, 600)))
	vs := b.Vertices()
	assert.Equal(t, [2]float32{-1, 0}, vs[0].Pos)
	assert.Equal(t, [2]float32{0, 1}, vs[3].Pos)
	assert.Equal(t, draw.Color{1, 1, 1}, vs[0].Color)

	b.Reset()
	require.NoError(t, sc.Build(b, image.Point{}))
	assert.Equal(t, [2]float32{0, 0}, b.Vertices()[3].Pos)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "scene.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "bad.toml", "quads = ["))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "units.toml", `units = "inches"`))
	assert.ErrorContains(t, err, "inches")
}

func TestOpenEmpty(t *testing.T) {
	for _, fn := range []string{"empty.toml", "empty.yaml", "empty.yml"} {
		sc, err := Open(writeFile(t, fn, ""))
		require.NoError(t, err, fn)
		assert.Empty(t, sc.Quads, fn)
		assert.False(t, sc.IsPixels(), fn)
	}
}

func TestValidate(t *testing.T) {
	sc := &Scene{Clear: "notacolor"}
	assert.ErrorContains(t, sc.Validate(), "clear color")

	sc = &Scene{Quads: []QuadSpec{
		{Size: [2]float32{1, 1}, Color: "#12"},
		{Pos: [2]float32{math32.Infinity, 0}},
		{RGB: &[3]float32{0, math32.Infinity, 0}},
	}}
	err := sc.Validate()
	assert.ErrorContains(t, err, "quad 0")
	assert.ErrorContains(t, err, "quad 1")
	assert.ErrorContains(t, err, "quad 2")

	sc = &Scene{Units: "PIXELS", Quads: []QuadSpec{{Size: [2]float32{1, 1}}}}
	assert.NoError(t, sc.Validate())
	assert.True(t, sc.IsPixels())
}

func TestQuadColorAlphaIgnored(t *testing.T) {
	tests := []struct {
		color string
		want  draw.Color
	}{
		{"#ff000080", draw.Color{1, 0, 0}},
		{"#0f00", draw.Color{0, 1, 0}},
		{"#ffffff", draw.Color{1, 1, 1}},
		{"transparent", draw.Color{0, 0, 0}},
	}
	for _, tt := range tests {
		qs := QuadSpec{Size: [2]float32{1, 1}, Color: tt.color}
		c, err := qs.DrawColor()
		require.NoError(t, err, tt.color)
		assert.Equal(t, tt.want, c, tt.color)
	}

	sc := &Scene{Quads: []QuadSpec{{Size: [2]float32{1, 1}, Color: "#ff000080"}}}
	b := draw.NewBatch()
	require.NoError(t, sc.Build(b, image.Pt(10, 10)))
	assert.Equal(t, draw.Color{1, 0, 0}, b.Vertices()[0].Color)
}

func TestBuildBadColor(t *testing.T) {
	sc := &Scene{Quads: []QuadSpec{
		{Size: [2]float32{1, 1}},
		{Size: [2]float32{1, 1}, Color: "nope"},
	}}
	b := draw.NewBatch()
	err := sc.Build(b, image.Pt(10, 10))
	assert.ErrorContains(t, err, "quad 1")
	assert.Equal(t, 1, b.Len())
}

func TestExampleScenes(t *testing.T) {
	for _, fn := range []string{"example.toml", "pixels.yaml"} {
		sc, err := Open(filepath.Join("..", "scenes", fn))
		require.NoError(t, err, fn)
		b := draw.NewBatch()
		require.NoError(t, sc.Build(b, image.Pt(1200, 800)), fn)
		assert.Equal(t, len(sc.Quads), b.Len(), fn)
	}
}
