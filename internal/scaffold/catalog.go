package scaffold

import (
	"fmt"
	"io/fs"
	"sync"

	"go.yaml.in/yaml/v3"
)

// EnvStub is the block of placeholder variables a template adds to .env.
type EnvStub struct {
	Label string   `yaml:"label"`
	Vars  []string `yaml:"vars"`
}

// ActionTemplate describes one entry of the action catalog.
type ActionTemplate struct {
	Name            string            `yaml:"name"`
	Label           string            `yaml:"label"`
	Service         string            `yaml:"service,omitempty"`
	Set             string            `yaml:"set"`
	Hidden          bool              `yaml:"hidden,omitempty"`
	Dependencies    map[string]string `yaml:"dependencies,omitempty"`
	DevDependencies map[string]string `yaml:"devDependencies,omitempty"`
	Inputs          map[string]any    `yaml:"inputs,omitempty"`
	Env             *EnvStub          `yaml:"env,omitempty"`
}

// Catalog is the list of action templates in catalog order.
type Catalog struct {
	Actions []ActionTemplate `yaml:"actions"`
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses the embedded catalog once and returns it.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		data, err := fs.ReadFile(scaffoldFS, "scaffolds/catalog.yaml")
		if err != nil {
			catalogErr = fmt.Errorf("reading catalog: %w", err)
			return
		}
		catalog, catalogErr = ParseCatalog(data)
	})
	return catalog, catalogErr
}

// ParseCatalog decodes and checks a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	seen := make(map[string]bool, len(c.Actions))
	for i, a := range c.Actions {
		if a.Name == "" || a.Set == "" {
			return nil, fmt.Errorf("catalog entry %d: name and set are required", i)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("catalog entry %q is duplicated", a.Name)
		}
		seen[a.Name] = true
	}
	return &c, nil
}

// Find returns the template with the given name.
func (c *Catalog) Find(name string) (ActionTemplate, bool) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return ActionTemplate{}, false
}

// ByService returns the visible template for a service code.
func (c *Catalog) ByService(code string) (ActionTemplate, bool) {
	for _, a := range c.Actions {
		if !a.Hidden && a.Service != "" && a.Service == code {
			return a, true
		}
	}
	return ActionTemplate{}, false
}

// Visible returns the templates offered in choice lists, in catalog order.
func (c *Catalog) Visible() []ActionTemplate {
	var out []ActionTemplate
	for _, a := range c.Actions {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// Names maps service codes to template names, keeping order and dropping
// codes without a template.
func (c *Catalog) Names(serviceCodes []string) []string {
	var out []string
	for _, code := range serviceCodes {
		if a, ok := c.ByService(code); ok {
			out = append(out, a.Name)
		}
	}
	return out
}
