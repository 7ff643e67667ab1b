// Package catalog loads the activity seed dataset.
//
// The canonical nine-activity catalog ships embedded in the binary; an
// operator can point CATALOG_PATH at a YAML file of the same shape to serve
// a different catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type catalogFile struct {
	Activities []domain.Activity `yaml:"activities"`
}

// Load reads the activity catalog from path, or the embedded default when
// path is empty.
func Load(path string) ([]domain.Activity, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) ([]domain.Activity, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("catalog contains no activities")
	}
	if err := domain.ValidateSeed(f.Activities); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return f.Activities, nil
}
