package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromPath reads a JSON descriptor file and builds a registry from it.
// The file is a JSON array of example objects; the result replaces the
// built-in set for the rest of the process, it never merges with it.
func LoadFromPath(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}

	var examples []Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parsing registry JSON: %w", err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("registry file %s contains no examples", path)
	}

	r, err := New(examples)
	if err != nil {
		return nil, fmt.Errorf("validating registry file %s: %w", path, err)
	}
	return r, nil
}
