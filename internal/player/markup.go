package player

import (
	"strings"

	"embedplayer/internal/sanitize"
)

// Frame holds the optional markup around the iframe.
// Tags must already be validated with sanitize.ValidTag.
type Frame struct {
	WrapTag  string
	Class    string
	Label    string
	LabelTag string
}

const responsiveStyle = "; position: absolute; top: 0; left: 0; width: 100%; height: 100%"

// Markup renders the iframe for src at the given size, with its wrapper and label.
func Markup(src string, size Size, f Frame) string {
	var b strings.Builder
	style := "border: none"

	b.WriteString(`<iframe src="`)
	b.WriteString(sanitize.Attr(src))
	b.WriteString(`"`)

	if size.Responsive {
		style += responsiveStyle
	} else {
		style += dimension(&b, "width", size.Width)
		style += dimension(&b, "height", size.Height)
	}

	b.WriteString(` style="`)
	b.WriteString(sanitize.Attr(style))
	b.WriteString(`"`)

	wrapStyle := wrapperStyle(size)
	wrapTag := f.WrapTag
	if wrapTag == "" && wrapStyle != "" {
		wrapTag = "div"
	}

	if f.Class != "" && wrapTag == "" {
		b.WriteString(` class="`)
		b.WriteString(sanitize.Attr(f.Class))
		b.WriteString(`"`)
	}
	b.WriteString(` allowfullscreen></iframe>`)

	out := b.String()
	if wrapTag != "" {
		out = wrap(wrapTag, f.Class, wrapStyle, "\n"+out+"\n")
	}

	if f.Label != "" {
		label := sanitize.Label(f.Label)
		if f.LabelTag != "" {
			label = wrap(f.LabelTag, "", "", label)
		} else {
			label += "<br />"
		}
		out = label + "\n" + out
	}

	return out
}

// dimension writes a plain pixel value as an attribute and returns unit
// carrying values as a style declaration.
func dimension(b *strings.Builder, name, value string) string {
	if value == "" {
		return ""
	}
	if strings.Trim(value, "0123456789.") != "" {
		return "; " + name + ": " + value
	}
	b.WriteString(" " + name + `="` + value + `"`)
	return ""
}

func wrapperStyle(size Size) string {
	if !size.Responsive {
		return ""
	}
	padding := size.Percent
	if padding == "" {
		padding = size.Height
	}
	if padding == "" {
		return "position: relative"
	}
	return "position: relative; padding-bottom: " + padding + "; height: 0; overflow: hidden"
}

func wrap(tag, class, style, content string) string {
	var b strings.Builder
	b.WriteString("<" + tag)
	if class != "" {
		b.WriteString(` class="` + sanitize.Attr(class) + `"`)
	}
	if style != "" {
		b.WriteString(` style="` + sanitize.Attr(style) + `"`)
	}
	b.WriteString(">" + content + "</" + tag + ">")
	return b.String()
}
