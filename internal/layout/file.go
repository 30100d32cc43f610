package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads a layout definition from a JSON file
func LoadFromFile(filepath string) (*Layout, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout file: %w", err)
	}

	return &l, nil
}

// SaveToFile writes the layout to a JSON file, pretty-printed.
func SaveToFile(l Layout, filepath string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, append(data, '\n'), 0644)
}
