// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// built-in EnemyLibrary. Definitions with a non-positive health or zero
// speed factor are configuration defects and are rejected as a whole so the
// built-ins stay intact.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.Health <= 0 {
			return fmt.Errorf("enemy definition %q has non-positive health", def.ID)
		}
		if def.SpeedFactor <= 0 {
			return fmt.Errorf("enemy definition %q has non-positive speed factor", def.ID)
		}
		lib[def.ID] = def
	}

	EnemyLibrary = lib
	return nil
}
