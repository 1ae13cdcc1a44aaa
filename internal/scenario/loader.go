package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decode strictly unmarshals an embedded JSON file. Unknown fields are an error
// so that a typo in a scenario key does not silently drop obstacles.
func decode[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadScenarios loads and validates scenario definitions from scenarios.json.
func LoadScenarios() ([]Def, error) {
	file, err := decode[ScenariosFile]("scenarios.json")
	if err != nil {
		return nil, err
	}
	return validateAll(file.Scenarios)
}

// validateAll checks every definition and rejects duplicate IDs.
func validateAll(defs []Def) ([]Def, error) {
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, fmt.Errorf("scenarios.json entry %d: %w", i, err)
		}
		if seen[defs[i].ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidScenario, defs[i].ID)
		}
		seen[defs[i].ID] = true
	}
	return defs, nil
}
