// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads YAML encoded objects using gopkg.in/yaml.v3.
package yamlx

import (
	"errors"
	"io"

	"cogentcore.org/bog/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]. An empty document
// decodes as nothing, leaving the object unchanged, as it does for TOML.
func NewDecoder(r io.Reader) iox.Decoder { return decoder{yaml.NewDecoder(r)} }

// decoder treats the [io.EOF] of an empty document as success.
type decoder struct {
	*yaml.Decoder
}

func (d decoder) Decode(v any) error {
	err := d.Decoder.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}
