package adapter

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	m "devr.dev/pkg/devr/internal/model"
)

// PyprojectFileName is the project manifest read for configuration and
// release metadata.
const PyprojectFileName = "pyproject.toml"

// PyprojectAdapter reads pyproject.toml documents.
type PyprojectAdapter interface {
	// Read decodes the TOML document at path into generic tables. Integers
	// decode as int64, floats as float64, tables as map[string]any.
	Read(path m.Path) (map[string]any, error)
}

// LocalPyprojectAdapter decodes pyproject.toml from disk with go-toml.
type LocalPyprojectAdapter struct{}

// NewLocalPyprojectAdapter constructs a LocalPyprojectAdapter.
func NewLocalPyprojectAdapter() *LocalPyprojectAdapter {
	return &LocalPyprojectAdapter{}
}

// Read loads and decodes the document at path.
func (a *LocalPyprojectAdapter) Read(path m.Path) (map[string]any, error) {
	// #nosec G304 - path is the project manifest under the project root
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return doc, nil
}

// Table walks nested tables by key and returns the table at the end of the
// path. The boolean is false when any step is missing or is not a table.
func Table(doc map[string]any, keys ...string) (map[string]any, bool) {
	current := doc

	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}
