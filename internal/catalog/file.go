package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Neighborhoods []Neighborhood `yaml:"neighborhoods"`
}

// LoadFile reads a YAML catalog of the form
//
//	neighborhoods:
//	  - name: Northwood
//	    objective: {safety: 86, parking: null, ...}
//
// A null objective value marks the dimension as unknown.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Neighborhoods) == 0 {
		return nil, ErrEmpty
	}
	return New(doc.Neighborhoods)
}

// Marshal encodes c in the format accepted by Parse.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(fileCatalog{Neighborhoods: c.All()})
}
