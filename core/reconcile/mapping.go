package reconcile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// FieldMapping maps text layer names (e.g. "#product_name") to record field keys
// (e.g. "productName"). It is immutable once built.
type FieldMapping struct {
	fields map[string]string
}

// NewFieldMapping copies m into a new mapping.
func NewFieldMapping(m map[string]string) FieldMapping {
	fields := make(map[string]string, len(m))
	for layer, field := range m {
		fields[layer] = field
	}
	return FieldMapping{fields: fields}
}

// DefaultFieldMapping returns the layer names used by the catalog templates.
func DefaultFieldMapping() FieldMapping {
	return NewFieldMapping(map[string]string{
		"#product_name": "productName",
		"#sku":          "sku",
		"#price":        "price",
		"#description":  "description",
		"#category":     "category",
		"#dimensions":   "dimensions",
	})
}

// Field returns the field key mapped to layer.
func (m FieldMapping) Field(layer string) (string, bool) {
	f, ok := m.fields[layer]
	return f, ok
}

// Len returns the number of mapped layers.
func (m FieldMapping) Len() int {
	return len(m.fields)
}

// Layers returns the mapped layer names, sorted.
func (m FieldMapping) Layers() []string {
	layers := make([]string, 0, len(m.fields))
	for layer := range m.fields {
		layers = append(layers, layer)
	}
	sort.Strings(layers)
	return layers
}

// ParseFieldMapping decodes a YAML document of the form:
//
//	"#product_name": productName
//	"#price": price
func ParseFieldMapping(data []byte) (FieldMapping, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return FieldMapping{}, fmt.Errorf("failed to parse field mapping: %w", err)
	}
	if len(raw) == 0 {
		return FieldMapping{}, fmt.Errorf("field mapping is empty")
	}
	for layer, field := range raw {
		if strings.TrimSpace(layer) == "" || strings.TrimSpace(field) == "" {
			return FieldMapping{}, fmt.Errorf("field mapping has an empty entry (%q: %q)", layer, field)
		}
	}
	return NewFieldMapping(raw), nil
}

// LoadFieldMapping reads a YAML field mapping file. An empty path yields the default mapping.
func LoadFieldMapping(path string) (FieldMapping, error) {
	if path == "" {
		return DefaultFieldMapping(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FieldMapping{}, fmt.Errorf("failed to read field mapping %s: %w", path, err)
	}
	return ParseFieldMapping(data)
}
