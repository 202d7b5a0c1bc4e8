package prefs

import (
	"embedplayer/internal/provider"
)

// Pref is one preference row as installed by IniPrefs.
type Pref struct {
	Name     string
	Event    string
	Value    string
	HTML     string // Input type: "select", "yesno", "color", "number", "text_input"
	Position int
}

// IniPrefs lists the default preferences of every provider:
// size preferences first, then player parameters in declaration order.
func IniPrefs(plugin string, providers []*provider.Provider) []Pref {
	var out []Pref
	for _, p := range providers {
		event := Event(plugin, p.Name)
		pos := 0
		add := func(key, val, html string) {
			pos += 10
			out = append(out, Pref{
				Name:     Name(event, key),
				Event:    event,
				Value:    val,
				HTML:     html,
				Position: pos,
			})
		}

		for _, name := range provider.DimNames {
			html := "text_input"
			if name == "responsive" {
				html = "yesno"
			}
			add(name, p.Dim(name), html)
		}
		for _, spec := range p.Params {
			add(spec.Name, spec.Default, inputType(spec.Valid, spec.Input))
		}
	}
	return out
}

func inputType(valid []string, input string) string {
	switch {
	case len(valid) > 0:
		return "select"
	case input != "":
		return input
	default:
		return "text_input"
	}
}
