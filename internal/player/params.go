package player

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"embedplayer/internal/media"
	"embedplayer/internal/provider"
)

// Param is one player URL parameter.
type Param struct {
	Name  string
	Value string
}

// Getter reads a stored preference, returning the default when none is stored.
type Getter interface {
	Get(key string) string
}

var colorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// BuildParams picks the parameters to emit, in declaration order.
// A valid non-empty attribute wins over the preference. A value equal to the
// default is dropped unless the parameter is forced.
func BuildParams(specs []media.ParamSpec, atts map[string]string, prefs Getter, log *slog.Logger) []Param {
	if log == nil {
		log = discard
	}

	var params []Param
	for _, spec := range specs {
		value := ""
		if v := atts[provider.NormalizeName(spec.Name)]; v != "" {
			if validValue(spec, v) {
				value = v
			} else {
				log.Warn("invalid parameter value", "param", spec.Name, "value", v, "valid", spec.Valid)
			}
		}
		if value == "" && prefs != nil {
			value = prefs.Get(spec.Name)
		}

		if value == "" || (value == spec.Default && !spec.Force) {
			continue
		}
		params = append(params, Param{Name: spec.Name, Value: value})
	}
	return params
}

func validValue(spec media.ParamSpec, v string) bool {
	if len(spec.Valid) > 0 {
		return slices.Contains(spec.Valid, v)
	}
	switch spec.Input {
	case "color":
		return colorPattern.MatchString(v)
	case "number":
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	}
	return true
}
