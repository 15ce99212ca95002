package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Load reads a topology from a YAML or JSON file. Unknown fields are
// rejected. The result is defaulted but not validated.
func Load(path string) (*Topology, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Unmarshal parses a YAML or JSON topology document.
func Unmarshal(b []byte) (*Topology, error) {
	t := &Topology{}
	if err := yaml.UnmarshalStrict(b, t); err != nil {
		return nil, err
	}

	t.SetDefaults()
	return t, nil
}

// Marshal renders t as YAML, suitable as a starting point for Load.
func Marshal(t *Topology) ([]byte, error) {
	return yaml.Marshal(t)
}
