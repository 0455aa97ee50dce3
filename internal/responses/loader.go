// Package responses loads pre-filled Likert responses from file.
package responses

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a responses file mapping model name to an ordered list of
// integer Likert responses. YAML and JSON files are both accepted.
// Non-mapping payloads and non-integer entries are rejected; the
// values themselves are range-checked later by the scoring engine.
func Load(path string) (map[string][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses file: %w", err)
	}

	var raw map[string][]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("responses file must contain a mapping of model name to integer arrays: %w", err)
	}

	parsed := make(map[string][]int, len(raw))
	for model, nodes := range raw {
		values := make([]int, 0, len(nodes))
		for i, node := range nodes {
			var v int
			if err := node.Decode(&v); err != nil {
				return nil, fmt.Errorf(
					"entry %d for model %q is not an integer Likert score", i+1, model,
				)
			}
			values = append(values, v)
		}
		parsed[model] = values
	}
	return parsed, nil
}
