// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package templates

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// templateFile is the on-disk representation of user-defined templates.
// Users can extend or override the built-in registry without rebuilding.
type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// LoadFile reads user templates from a YAML file and registers them,
// replacing built-ins that share a name. Entries without a name or body
// are rejected; an entry without a format inherits the Custom format.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("parsing template file %s: %w", path, err)
	}

	for i, t := range tf.Templates {
		if t.Name == "" {
			return fmt.Errorf("template %d in %s: name is required", i+1, path)
		}
		if t.Body == "" {
			return fmt.Errorf("template %q in %s: body is required", t.Name, path)
		}
		if t.Format == "" {
			t.Format = r.Lookup(CustomName).Format
		}
		r.Register(t)
	}
	return nil
}
