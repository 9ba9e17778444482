// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// LoadLevels reads a JSON object keyed by level number and returns the validated table.
//
//	{"1": {"blocks": [{"x": 600, "y": 500, "material": "wood"}], "roster": ["standard"]}}
func LoadLevels(path string) (LevelTable, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevels(file)
}

// ParseLevels decodes and validates a JSON level table.
func ParseLevels(data []byte) (LevelTable, error) {
	var raw map[string]LevelLayout
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level file: %w", err)
	}

	table := make(LevelTable, len(raw))
	for key, layout := range raw {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: level key %q is not a number", ErrInvalidConfiguration, key)
		}
		table[n] = layout
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
