package param

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON parameter file. The "name" key selects a built-in set and
// any other keys override its fields, e.g.
//
//	{"name": "ML-DSA-65", "omega": 60}
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var head struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("param: %s: %w", path, err)
	}
	if head.Name == "" {
		return nil, fmt.Errorf("param: %s: missing name", path)
	}
	s, err := Lookup(head.Name)
	if err != nil {
		return nil, fmt.Errorf("param: %s: %w", path, err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("param: %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
