// Package brand describes the cosmetic themes the web form can wear. A brand
// changes the logo and colours only.
package brand

import (
	"fmt"
	"strings"

	"github.com/AlainEkh/heloc-calculator/pkg/constants"
)

// Brand is one selectable look.
type Brand struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Label   string `mapstructure:"label" yaml:"label"`
	LogoURL string `mapstructure:"logoUrl" yaml:"logoUrl"`
	LogoAlt string `mapstructure:"logoAlt" yaml:"logoAlt"`
	HomeURL string `mapstructure:"homeUrl" yaml:"homeUrl"`
	Theme   string `mapstructure:"theme" yaml:"theme"`
}

// Defaults returns the built-in brands.
func Defaults() []Brand {
	return []Brand{
		{
			Name:    constants.BrandNesto,
			Label:   "nesto",
			LogoURL: "https://www.nesto.ca/wp-content/themes/nesto/templates/objects/logo-nesto-en.svg",
			LogoAlt: "Nesto Logo",
			HomeURL: "https://www.nesto.ca/",
			Theme:   "theme-nesto",
		},
		{
			Name:    constants.BrandNeutral,
			Label:   "HELOC",
			LogoAlt: "HELOC",
			Theme:   "theme-neutral",
		},
	}
}

// Registry is an ordered set of brands with a default.
type Registry struct {
	brands   []Brand
	fallback string
}

// NewRegistry validates brands and returns a registry. An empty list uses
// Defaults; an empty default name picks the first brand.
func NewRegistry(brands []Brand, defaultName string) (*Registry, error) {
	if len(brands) == 0 {
		brands = Defaults()
	}

	seen := make(map[string]struct{}, len(brands))
	normalized := make([]Brand, 0, len(brands))
	for i, b := range brands {
		b.Name = strings.ToLower(strings.TrimSpace(b.Name))
		if b.Name == "" {
			return nil, fmt.Errorf("brand %d has no name", i)
		}
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("brand %q is defined more than once", b.Name)
		}
		seen[b.Name] = struct{}{}
		if b.Theme == "" {
			b.Theme = "theme-" + b.Name
		}
		if b.Label == "" {
			b.Label = b.Name
		}
		normalized = append(normalized, b)
	}

	defaultName = strings.ToLower(strings.TrimSpace(defaultName))
	if defaultName == "" {
		defaultName = normalized[0].Name
	}
	if _, ok := seen[defaultName]; !ok {
		return nil, fmt.Errorf("default brand %q is not defined", defaultName)
	}

	return &Registry{brands: normalized, fallback: defaultName}, nil
}

// Default returns the default brand.
func (r *Registry) Default() Brand {
	b, _ := r.Lookup(r.fallback)
	return b
}

// Lookup finds a brand by name.
func (r *Registry) Lookup(name string) (Brand, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range r.brands {
		if b.Name == name {
			return b, true
		}
	}
	return Brand{}, false
}

// Resolve returns the named brand or the default one.
func (r *Registry) Resolve(name string) Brand {
	if b, ok := r.Lookup(name); ok {
		return b
	}
	return r.Default()
}

// Next returns the brand after name, wrapping around.
func (r *Registry) Next(name string) Brand {
	current := r.Resolve(name)
	for i, b := range r.brands {
		if b.Name == current.Name {
			return r.brands[(i+1)%len(r.brands)]
		}
	}
	return r.Default()
}

// Names lists the brand names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.brands))
	for _, b := range r.brands {
		names = append(names, b.Name)
	}
	return names
}
