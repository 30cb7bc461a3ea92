// Package catalog holds the named material-checklist templates. A built-in
// catalog is embedded in the binary; additional catalogs can be dropped as
// YAML files into a user directory.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtin []byte

// Template is a named, ordered material checklist.
type Template struct {
	Key   string         `yaml:"key" json:"key"`
	Name  string         `yaml:"name" json:"name"`
	Items []TemplateItem `yaml:"items" json:"items"`
}

// TemplateItem is one (item, default quantity) pair.
type TemplateItem struct {
	Item string `yaml:"item" json:"item"`
	Qty  int    `yaml:"qty" json:"qty"`
}

// Catalog is a lookup of templates by key.
type Catalog struct {
	templates map[string]Template
	order     []string
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Parse decodes and validates a single catalog payload.
func Parse(data []byte) ([]Template, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("catalog: payload is empty")
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i := range file.Templates {
		t := &file.Templates[i]
		t.Key = strings.TrimSpace(t.Key)
		t.Name = strings.TrimSpace(t.Name)
		if t.Key == "" {
			return nil, fmt.Errorf("catalog: template %d has no key", i)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("catalog: template %q has no name", t.Key)
		}
		if len(t.Items) == 0 {
			return nil, fmt.Errorf("catalog: template %q has no items", t.Key)
		}
		for j := range t.Items {
			t.Items[j].Item = strings.TrimSpace(t.Items[j].Item)
			if t.Items[j].Item == "" {
				return nil, fmt.Errorf("catalog: template %q item %d is blank", t.Key, j)
			}
			if t.Items[j].Qty < 1 {
				t.Items[j].Qty = 1
			}
		}
	}
	return file.Templates, nil
}

// Load builds the catalog from the embedded templates plus any *.yaml files
// found in dir. A missing or empty dir means "built-ins only". User templates
// override built-ins with the same key.
func Load(dir string) (*Catalog, error) {
	templates, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in templates: %w", err)
	}

	c := &Catalog{templates: make(map[string]Template)}
	for _, t := range templates {
		c.add(t)
	}

	dir = strings.TrimSpace(dir)
	if dir == "" {
		return c, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("catalog: read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		templates, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		for _, t := range templates {
			c.add(t)
		}
	}

	return c, nil
}

func (c *Catalog) add(t Template) {
	if _, exists := c.templates[t.Key]; !exists {
		c.order = append(c.order, t.Key)
	}
	c.templates[t.Key] = t
}

// Get returns the template for key, if present.
func (c *Catalog) Get(key string) (Template, bool) {
	t, ok := c.templates[key]
	return t, ok
}

// List returns all templates in load order.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.templates[key])
	}
	return out
}
