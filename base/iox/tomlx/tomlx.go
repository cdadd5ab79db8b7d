// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML open and read helpers for config structs.
package tomlx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
// Fields that are not present in the file keep their current values,
// so defaults should be set on the object before calling Open.
func Open(v any, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := ReadBytes(v, data); err != nil {
		return fmt.Errorf("tomlx.Open %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using TOML encoding.
// Unknown keys are an error, so that typos in config files are reported.
func Read(v any, reader io.Reader) error {
	dec := toml.NewDecoder(reader)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
// As with [Read], unknown keys are an error.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// WriteBytes writes the given object into TOML encoding.
func WriteBytes(v any) ([]byte, error) {
	return toml.Marshal(v)
}
