package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadTuning reads a tuning file on top of DefaultTuning. An empty path
// yields the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return &t, nil
	}
	if err := loadYAML(path, &t); err != nil {
		return nil, fmt.Errorf("load tuning %q: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tuning %q: %w", path, err)
	}
	return &t, nil
}

func LoadSnapshot(path string) (*Snapshot, error) {
	var s Snapshot
	if err := loadYAML(path, &s); err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", path, err)
	}
	return &s, nil
}

// ParseSnapshot decodes an in-memory snapshot document.
func ParseSnapshot(b []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
