// Package guide holds the AICON feature catalog and the search/selection
// state of the guide screen.
package guide

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrEmptyCatalog = errors.New("catalog has no categories")

// Function is one AICON feature with its tutorial label.
type Function struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Tutorial    string `yaml:"tutorial"`
}

type Category struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Icon      string     `yaml:"icon"`
	Color     string     `yaml:"color"`
	Functions []Function `yaml:"functions"`
}

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// ParseCatalog decodes a YAML catalog and checks that ids are present and
// unique.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		id := strings.TrimSpace(cat.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("parse catalog: category %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return Catalog{}, fmt.Errorf("parse catalog: duplicate category id %q", id)
		}
		seen[id] = struct{}{}
	}
	return c, nil
}

// DefaultCatalog returns the embedded catalog. It panics if the embedded
// file is malformed.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) ByID(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
