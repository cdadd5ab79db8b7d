// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides YAML open and read helpers for config structs.
package yamlx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
// Fields that are not present in the file keep their current values.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp)); err != nil {
		return fmt.Errorf("yamlx.Open %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using YAML encoding.
// Unknown keys are an error. An empty document leaves v unchanged.
func Read(v any, reader io.Reader) error {
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	err := dec.Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// WriteBytes writes the given object into YAML encoding.
func WriteBytes(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
