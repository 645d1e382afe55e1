package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/console-catalog/catalog-api/internal/domain"
)

// LoadCustomLogos reads the custom logo definitions from a YAML (or JSON) file:
//
//	- type: masthead
//	  logos:
//	    - theme: dark-theme
//	      path: /etc/console/logos/masthead-dark.svg
//
// An empty path means no custom logos.
func LoadCustomLogos(path string) ([]domain.CustomLogoFiles, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read custom logos file: %w", err)
	}
	var files []domain.CustomLogoFiles
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("parse custom logos file %s: %w", path, err)
	}
	for i, group := range files {
		if group.Type == "" {
			return nil, fmt.Errorf("custom logos entry %d: missing type", i)
		}
		for j, logo := range group.Logos {
			if logo.Theme == "" || logo.Path == "" {
				return nil, fmt.Errorf("custom logos entry %d logo %d: theme and path are required", i, j)
			}
		}
	}
	return files, nil
}
