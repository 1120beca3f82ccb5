// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := Load([]string{"-config", writeConfig(t, "")}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Bog WGPU", cfg.Title)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 800, cfg.Height)
	assert.Equal(t, 60, cfg.FPS)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.VSync)
	assert.Equal(t, "high-performance", cfg.PowerPreference)
	assert.Empty(t, cfg.Scene)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestConfigFileAndFlags(t *testing.T) {
	path := writeConfig(t, `
title = "From File"
width = 640
height = 480
fps = 30
watch = false
power_preference = "low-power"
clear = "#102030"
`)
	cfg, err := Load([]string{"-config", path, "-width", "800", "-vv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Config)
	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, 800, cfg.Width) // flag wins
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 30, cfg.FPS)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "low-power", cfg.PowerPreference)
	assert.Equal(t, "#102030", cfg.Clear)
	assert.True(t, cfg.VV)
}

func TestConfigErrors(t *testing.T) {
	_, err := Load([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = Load([]string{"-nope"}, io.Discard)
	assert.Error(t, err)

	_, err = Load([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	assert.ErrorContains(t, err, "missing.toml")

	_, err = Load([]string{"-config", writeConfig(t, "width = ")}, io.Discard)
	assert.Error(t, err)

	_, err = Load([]string{"-config", writeConfig(t, ""), "-fps", "0"}, io.Discard)
	assert.ErrorContains(t, err, "fps")

	_, err = Load([]string{"-config", writeConfig(t, ""), "-fps", "2000000000"}, io.Discard)
	assert.ErrorContains(t, err, "fps")
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	assert.NoError(t, cfg.Validate())

	cfg.FPS = MaxFPS
	assert.NoError(t, cfg.Validate())
	cfg.FPS = MaxFPS + 1
	assert.ErrorContains(t, cfg.Validate(), "fps")
	cfg.FPS = 60

	cfg.Width = 0
	cfg.PowerPreference = "turbo"
	cfg.Clear = "#1"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "turbo")
	assert.ErrorContains(t, err, "clear color")
}
