// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLevel reads a level definition from a JSON file. An empty wave falls back to
// DefaultWave so hand-written layouts only need walls and a base.
func LoadLevel(path string) (Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(file)
}

// ParseLevel decodes a level definition from JSON.
func ParseLevel(data []byte) (Level, error) {
	var level Level
	if err := json.Unmarshal(data, &level); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if len(level.Wave.Spawns) == 0 {
		level.Wave = DefaultWave()
	}
	return level, nil
}

// SaveLevel writes a level definition as indented JSON.
func SaveLevel(path string, level Level) error {
	data, err := json.MarshalIndent(level, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}
