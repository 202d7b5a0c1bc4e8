// Package provider defines the media providers a player can be rendered for.
// A provider is an immutable record: URL schemes, embed base path, glue,
// dimension defaults and player parameters.
package provider

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"embedplayer/internal/media"
	"embedplayer/internal/resolver"
)

// ErrUnknownProvider is returned when a provider name is not registered.
var ErrUnknownProvider = errors.New("unknown provider")

// Dims holds the default player size preferences.
type Dims struct {
	Width      string
	Height     string
	Ratio      string
	Responsive string // "true" or "false"
}

// DefaultDims is the size used by providers that do not declare one.
var DefaultDims = Dims{
	Width:      "640",
	Height:     "",
	Ratio:      "16:9",
	Responsive: "false",
}

// DimNames lists the size preferences in declaration order.
var DimNames = []string{"width", "height", "ratio", "responsive"}

// Provider is the static configuration of one embeddable player.
// Values are shared between renders and must be treated as read-only.
type Provider struct {
	Name      string                // Lowercase identifier, e.g. "youtube"
	Title     string                // Display name
	SrcBase   string                // Player base URL
	Glue      media.Glue            // URL glue
	GlueFor   map[string]media.Glue // Glue overrides keyed by matched pattern name
	Script    string                // Script to embed once per page, if any
	MediaType media.MediaType
	Patterns  []media.PatternRule
	Dims      Dims
	Params    []media.ParamSpec
}

// SrcGlue returns the glue to use for media matched by pattern.
func (p *Provider) SrcGlue(pattern string) media.Glue {
	if g, ok := p.GlueFor[pattern]; ok {
		return g
	}
	return p.Glue
}

// NewResolver returns a fresh resolver over the provider's patterns.
func (p *Provider) NewResolver() *resolver.Resolver {
	return resolver.New(p.Patterns)
}

// Dim returns the default value of a size preference.
func (p *Provider) Dim(name string) string {
	switch name {
	case "width":
		return p.Dims.Width
	case "height":
		return p.Dims.Height
	case "ratio":
		return p.Dims.Ratio
	case "responsive":
		return p.Dims.Responsive
	}
	return ""
}

// Param returns the parameter spec with the given name.
func (p *Provider) Param(name string) (media.ParamSpec, bool) {
	for _, spec := range p.Params {
		if spec.Name == name {
			return spec, true
		}
	}
	return media.ParamSpec{}, false
}

// Defaults returns every preference the provider declares with its default value,
// size preferences first.
func (p *Provider) Defaults() map[string]string {
	defaults := make(map[string]string, len(DimNames)+len(p.Params))
	for _, name := range DimNames {
		defaults[name] = p.Dim(name)
	}
	for _, spec := range p.Params {
		defaults[spec.Name] = spec.Default
	}
	return defaults
}

// TagAtts lists the tag attribute names accepted for this provider.
// Hyphens in parameter names become underscores.
func (p *Provider) TagAtts() []string {
	atts := make([]string, 0, len(DimNames)+len(p.Params))
	atts = append(atts, DimNames...)
	for _, spec := range p.Params {
		atts = append(atts, NormalizeName(spec.Name))
	}
	return atts
}

// NormalizeName lowercases an attribute or parameter name and maps hyphens to underscores.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// Registry holds providers in registration order.
type Registry struct {
	order     []string
	providers map[string]*Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]*Provider)}
}

// Add registers p, replacing any provider with the same name.
func (r *Registry) Add(p *Provider) {
	name := strings.ToLower(p.Name)
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider registered under name (case-insensitive).
func (r *Registry) Get(name string) (*Provider, error) {
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownProvider, name, strings.Join(r.Sorted(), ", "))
	}
	return p, nil
}

// Names returns provider names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Sorted returns provider names alphabetically.
func (r *Registry) Sorted() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}

// Detect returns the first provider whose URL schemes match ref.
// Bare identifiers never match since they carry no provider information.
func (r *Registry) Detect(ref string) (*Provider, bool) {
	if !resolver.IsURL(ref) {
		return nil, false
	}
	for _, name := range r.order {
		p := r.providers[name]
		if _, ok := p.NewResolver().Resolve(ref, false); ok {
			return p, true
		}
	}
	return nil, false
}
