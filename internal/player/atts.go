package player

import (
	"strings"

	"embedplayer/internal/provider"
)

// Attr is one template tag attribute, in source order.
type Attr struct {
	Name  string
	Value string
}

// Atts holds the attributes of a player tag.
// Attributes that are not part of the tag itself are kept in Params,
// keyed by their normalized name, for the provider to pick up.
type Atts struct {
	Play       []string
	Provider   string
	Width      string
	Height     string
	Ratio      string
	Responsive string
	Label      string
	LabelTag   string
	WrapTag    string
	Class      string
	Params     map[string]string
}

// attSetters maps normalized attribute names to Atts fields.
var attSetters = map[string]func(*Atts, string){
	"play":       func(a *Atts, v string) { a.Play = splitPlay(v) },
	"provider":   func(a *Atts, v string) { a.Provider = v },
	"width":      func(a *Atts, v string) { a.Width = v },
	"height":     func(a *Atts, v string) { a.Height = v },
	"ratio":      func(a *Atts, v string) { a.Ratio = v },
	"responsive": func(a *Atts, v string) { a.Responsive = v },
	"label":      func(a *Atts, v string) { a.Label = v },
	"labeltag":   func(a *Atts, v string) { a.LabelTag = v },
	"wraptag":    func(a *Atts, v string) { a.WrapTag = v },
	"class":      func(a *Atts, v string) { a.Class = v },
}

// ParseAtts fills Atts from tag attributes. Names are lowercased and hyphens
// become underscores; a later duplicate overrides an earlier one.
func ParseAtts(attrs []Attr) Atts {
	a := Atts{Params: make(map[string]string)}
	for _, attr := range attrs {
		name := provider.NormalizeName(attr.Name)
		value := strings.TrimSpace(attr.Value)
		if set, ok := attSetters[name]; ok {
			set(&a, value)
			continue
		}
		a.Params[name] = value
	}
	return a
}

// IsTagAtt reports whether name is handled by the tag rather than the provider.
func IsTagAtt(name string) bool {
	_, ok := attSetters[provider.NormalizeName(name)]
	return ok
}

// splitPlay splits a comma separated play attribute.
func splitPlay(v string) []string {
	var refs []string
	for _, ref := range strings.Split(v, ",") {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
