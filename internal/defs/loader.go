// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadTowerDefinitions reads the tower configuration file and populates the
// TowerDefs library.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerDefs = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerDefs[def.ID] = def
	}

	slog.Info("loaded tower definitions", "count", len(TowerDefs), "path", path)
	return nil
}

// HybridForElements returns the hybrid tower definition produced by the
// unordered element pair (a, b), if the pair is combinable and the library
// contains the resulting definition.
func HybridForElements(a, b ElementType) (TowerDefinition, bool) {
	combination, ok := FindCombination(a, b)
	if !ok {
		return TowerDefinition{}, false
	}
	def, ok := TowerDefs[combination.ResultID]
	return def, ok
}
