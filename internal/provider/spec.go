package provider

import (
	"fmt"
	"regexp"

	"embedplayer/internal/media"
	"embedplayer/internal/sanitize"
)

// Spec is the TOML form of a custom provider, as found under [[providers]].
type Spec struct {
	Name      string              `toml:"name"`
	Title     string              `toml:"title"`
	SrcBase   string              `toml:"src_base"`
	Glue      []string            `toml:"glue"`
	GlueFor   map[string][]string `toml:"glue_for"`
	Script    string              `toml:"script"`
	MediaType string              `toml:"media_type"`
	Patterns  []PatternSpec       `toml:"patterns"`
	Dims      DimsSpec            `toml:"dims"`
	Params    []ParamSpec         `toml:"params"`
}

// PatternSpec is the TOML form of a pattern rule.
type PatternSpec struct {
	Name   string `toml:"name"`
	Scheme string `toml:"scheme"`
	ID     int    `toml:"id"`
	Prefix string `toml:"prefix"`
	Glue   string `toml:"glue"`
}

// DimsSpec is the TOML form of the default size. Empty fields use DefaultDims.
type DimsSpec struct {
	Width      *string `toml:"width"`
	Height     *string `toml:"height"`
	Ratio      *string `toml:"ratio"`
	Responsive *bool   `toml:"responsive"`
}

// ParamSpec is the TOML form of a player parameter.
type ParamSpec struct {
	Name    string   `toml:"name"`
	Default string   `toml:"default"`
	Valid   []string `toml:"valid"`
	Input   string   `toml:"input"`
	Force   bool     `toml:"force"`
}

// Compile validates s and builds the provider it describes.
func (s Spec) Compile() (*Provider, error) {
	if err := sanitize.ValidateName(s.Name); err != nil {
		return nil, fmt.Errorf("provider name: %w", err)
	}
	if err := sanitize.ValidateURL(s.SrcBase); err != nil {
		return nil, fmt.Errorf("provider %s: src_base: %w", s.Name, err)
	}
	if s.Script != "" {
		if err := sanitize.ValidateURL(s.Script); err != nil {
			return nil, fmt.Errorf("provider %s: script: %w", s.Name, err)
		}
	}
	if len(s.Patterns) == 0 {
		return nil, fmt.Errorf("provider %s: at least one pattern is required", s.Name)
	}

	p := &Provider{
		Name:      s.Name,
		Title:     s.Title,
		SrcBase:   s.SrcBase,
		Glue:      media.DefaultGlue,
		Script:    s.Script,
		MediaType: media.ParseMediaType(s.MediaType),
		Dims:      s.Dims.resolve(),
	}
	if p.Title == "" {
		p.Title = s.Name
	}

	if s.Glue != nil {
		g, err := toGlue(s.Glue)
		if err != nil {
			return nil, fmt.Errorf("provider %s: glue: %w", s.Name, err)
		}
		p.Glue = g
	}

	if len(s.GlueFor) > 0 {
		p.GlueFor = make(map[string]media.Glue, len(s.GlueFor))
		for pattern, parts := range s.GlueFor {
			g, err := toGlue(parts)
			if err != nil {
				return nil, fmt.Errorf("provider %s: glue_for %s: %w", s.Name, pattern, err)
			}
			p.GlueFor[pattern] = g
		}
	}

	for _, ps := range s.Patterns {
		if ps.Name == "" {
			return nil, fmt.Errorf("provider %s: pattern without a name", s.Name)
		}
		re, err := regexp.Compile(ps.Scheme)
		if err != nil {
			return nil, fmt.Errorf("provider %s: pattern %s: %w", s.Name, ps.Name, err)
		}
		if ps.ID < 0 || ps.ID > re.NumSubexp() {
			return nil, fmt.Errorf("provider %s: pattern %s: id %d out of range (%d groups)", s.Name, ps.Name, ps.ID, re.NumSubexp())
		}
		p.Patterns = append(p.Patterns, media.PatternRule{
			Name:   ps.Name,
			Scheme: re,
			ID:     ps.ID,
			Prefix: ps.Prefix,
			Glue:   ps.Glue,
		})
	}

	for _, ps := range s.Params {
		if ps.Name == "" {
			return nil, fmt.Errorf("provider %s: parameter without a name", s.Name)
		}
		p.Params = append(p.Params, media.ParamSpec{
			Name:    ps.Name,
			Default: ps.Default,
			Valid:   ps.Valid,
			Input:   ps.Input,
			Force:   ps.Force,
		})
	}

	return p, nil
}

func (d DimsSpec) resolve() Dims {
	dims := DefaultDims
	if d.Width != nil {
		dims.Width = *d.Width
	}
	if d.Height != nil {
		dims.Height = *d.Height
	}
	if d.Ratio != nil {
		dims.Ratio = *d.Ratio
	}
	if d.Responsive != nil {
		dims.Responsive = "false"
		if *d.Responsive {
			dims.Responsive = "true"
		}
	}
	return dims
}

func toGlue(parts []string) (media.Glue, error) {
	if len(parts) != 3 {
		return media.Glue{}, fmt.Errorf("expected 3 parts, got %d", len(parts))
	}
	return media.Glue{parts[0], parts[1], parts[2]}, nil
}

// Load compiles specs and registers them on top of base.
func Load(base *Registry, specs []Spec) (*Registry, error) {
	r := NewRegistry()
	for _, name := range base.Names() {
		p, _ := base.Get(name)
		r.Add(p)
	}
	for _, s := range specs {
		p, err := s.Compile()
		if err != nil {
			return nil, err
		}
		r.Add(p)
	}
	return r, nil
}
