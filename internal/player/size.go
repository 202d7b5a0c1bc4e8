package player

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DimensionSpec holds the raw size inputs of one player.
type DimensionSpec struct {
	Width      string
	Height     string
	Ratio      string // "W:H"
	Responsive bool
}

// Size is the computed player size.
// In responsive mode Width is "100%" and Percent holds the padding-bottom value;
// Height is only set there when no percentage could be derived.
type Size struct {
	Width      string
	Height     string
	Percent    string
	Responsive bool
}

var (
	lengthPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([a-zA-Z%]*)$`)
	ratioPattern  = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*:\s*([0-9]*\.?[0-9]+)$`)
)

// defaultAspect is used when the ratio is malformed.
var defaultAspect = aspect{w: 16, h: 9}

// length is a magnitude with its unit suffix kept apart.
type length struct {
	value float64
	unit  string
}

func (l length) known() bool { return l.value > 0 }

func (l length) pixels() bool { return l.unit == "" || l.unit == "px" }

type aspect struct {
	w, h float64
}

func parseLength(s string) length {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return length{}
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return length{}
	}
	return length{value: v, unit: strings.ToLower(m[2])}
}

func parseRatio(s string) (aspect, bool) {
	m := ratioPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return aspect{}, false
	}
	w, _ := strconv.ParseFloat(m[1], 64)
	h, _ := strconv.ParseFloat(m[2], 64)
	if w == 0 || h == 0 {
		return aspect{}, false
	}
	return aspect{w: w, h: h}, true
}

// ComputeSize resolves the width, height and responsive percentage of a player.
// Malformed input never fails: an invalid ratio falls back to 16:9 and an
// underivable dimension is left empty, each with a warning on log.
func ComputeSize(spec DimensionSpec, log *slog.Logger) Size {
	if log == nil {
		log = discard
	}

	width := parseLength(spec.Width)
	height := parseLength(spec.Height)

	var ratio aspect
	hasRatio := false
	if strings.TrimSpace(spec.Ratio) != "" {
		ratio, hasRatio = parseRatio(spec.Ratio)
		if !hasRatio {
			log.Warn("invalid ratio, using 16:9", "ratio", spec.Ratio)
			ratio, hasRatio = defaultAspect, true
		}
	}

	if spec.Responsive {
		return responsiveSize(width, height, ratio, hasRatio, log)
	}
	return fixedSize(width, height, ratio, hasRatio, log)
}

func responsiveSize(width, height length, ratio aspect, hasRatio bool, log *slog.Logger) Size {
	size := Size{Width: "100%", Responsive: true}

	switch {
	case hasRatio:
		size.Percent = formatNumber(ratio.h/ratio.w*100) + "%"
	case width.known() && height.known() && sameUnit(width, height):
		size.Percent = formatNumber(height.value/width.value*100) + "%"
	default:
		log.Warn("undefined size, set a ratio or a width and height in the same unit",
			"width", formatLength(width, true), "height", formatLength(height, true))
		if height.known() {
			unit := height.unit
			if unit == "" {
				unit = "px"
			}
			size.Height = formatNumber(height.value) + unit
		}
	}

	return size
}

func fixedSize(width, height length, ratio aspect, hasRatio bool, log *slog.Logger) Size {
	switch {
	case width.known() && height.known():
	case width.known() && hasRatio:
		height = length{value: width.value * ratio.h / ratio.w, unit: width.unit}
	case height.known() && hasRatio:
		width = length{value: height.value * ratio.w / ratio.h, unit: height.unit}
	default:
		log.Warn("undefined size, set a ratio or both a width and height",
			"width", formatLength(width, false), "height", formatLength(height, false))
	}

	return Size{
		Width:  formatLength(width, false),
		Height: formatLength(height, false),
	}
}

// sameUnit treats a bare number as pixels.
func sameUnit(a, b length) bool {
	if a.pixels() && b.pixels() {
		return true
	}
	return a.unit == b.unit
}

// formatLength renders l, leaving plain pixel values unitless unless keepPx is set.
func formatLength(l length, keepPx bool) string {
	if !l.known() {
		return ""
	}
	if l.pixels() {
		if keepPx {
			return formatNumber(l.value) + "px"
		}
		return formatNumber(l.value)
	}
	return formatNumber(l.value) + l.unit
}

// formatNumber prints n with at most four decimals.
func formatNumber(n float64) string {
	return strconv.FormatFloat(math.Round(n*10000)/10000, 'f', -1, 64)
}
