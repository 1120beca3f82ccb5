//go:build mage

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

type Run mg.Namespace

type Test mg.Namespace

// Bog builds the bog binary into bin/.
func (Build) Bog() error {
	fmt.Println("Building bog...")
	return sh.RunV("go", "build", "-o", "bin/bog", "./cmd/bog")
}

// Bog runs bog with the example scene, with debug logging.
func (Run) Bog() error {
	mg.Deps(Build.Bog)
	return sh.RunV("bin/bog", "-scene", "scenes/example.toml", "-vv")
}

// All runs all the tests.
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages.
func (Test) Vet() error {
	return sh.RunV("go", "vet", "./...")
}
