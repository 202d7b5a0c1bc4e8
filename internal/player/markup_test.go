package player

import (
	"strings"
	"testing"
)

func TestMarkup(t *testing.T) {
	const src = "https://player.example.com/embed/abc"

	tests := []struct {
		name     string
		size     Size
		frame    Frame
		expected string
	}{
		{
			name:     "fixed",
			size:     Size{Width: "640", Height: "360"},
			expected: `<iframe src="https://player.example.com/embed/abc" width="640" height="360" style="border: none" allowfullscreen></iframe>`,
		},
		{
			name:     "fixed with unit goes to style",
			size:     Size{Width: "100%", Height: "166"},
			expected: `<iframe src="https://player.example.com/embed/abc" height="166" style="border: none; width: 100%" allowfullscreen></iframe>`,
		},
		{
			name: "responsive",
			size: Size{Width: "100%", Percent: "56.25%", Responsive: true},
			expected: `<div style="position: relative; padding-bottom: 56.25%; height: 0; overflow: hidden">` + "\n" +
				`<iframe src="https://player.example.com/embed/abc" style="border: none; position: absolute; top: 0; left: 0; width: 100%; height: 100%" allowfullscreen></iframe>` + "\n" +
				`</div>`,
		},
		{
			name:  "responsive with custom wrapper and height",
			size:  Size{Width: "100%", Height: "166px", Responsive: true},
			frame: Frame{WrapTag: "figure", Class: "player"},
			expected: `<figure class="player" style="position: relative; padding-bottom: 166px; height: 0; overflow: hidden">` + "\n" +
				`<iframe src="https://player.example.com/embed/abc" style="border: none; position: absolute; top: 0; left: 0; width: 100%; height: 100%" allowfullscreen></iframe>` + "\n" +
				`</figure>`,
		},
		{
			name: "responsive without ratio or height",
			size: Size{Width: "100%", Responsive: true},
			expected: `<div style="position: relative">` + "\n" +
				`<iframe src="https://player.example.com/embed/abc" style="border: none; position: absolute; top: 0; left: 0; width: 100%; height: 100%" allowfullscreen></iframe>` + "\n" +
				`</div>`,
		},
		{
			name:     "class on iframe without wrapper",
			size:     Size{Width: "640", Height: "360"},
			frame:    Frame{Class: "video"},
			expected: `<iframe src="https://player.example.com/embed/abc" width="640" height="360" style="border: none" class="video" allowfullscreen></iframe>`,
		},
		{
			name:  "label with tag",
			size:  Size{Width: "640", Height: "360"},
			frame: Frame{Label: "My clip", LabelTag: "h2", WrapTag: "figure"},
			expected: "<h2>My clip</h2>\n<figure>\n" +
				`<iframe src="https://player.example.com/embed/abc" width="640" height="360" style="border: none" allowfullscreen></iframe>` +
				"\n</figure>",
		},
		{
			name:  "label without tag",
			size:  Size{Width: "640", Height: "360"},
			frame: Frame{Label: "<b>My</b> clip"},
			expected: "My clip<br />\n" +
				`<iframe src="https://player.example.com/embed/abc" width="640" height="360" style="border: none" allowfullscreen></iframe>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Markup(src, tt.size, tt.frame); got != tt.expected {
				t.Errorf("Markup() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func TestMarkupEscapesSrc(t *testing.T) {
	got := Markup(`https://x.example.com/"><script>`, Size{Width: "1", Height: "1"}, Frame{})
	want := `<iframe src="https://x.example.com/&quot;&gt;&lt;script&gt;" width="1" height="1" style="border: none" allowfullscreen></iframe>`
	if got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}
}

func TestMarkupEscapesStyle(t *testing.T) {
	got := Markup("https://player.example.com/embed/abc", Size{Width: `10"onmouseover=x`, Height: "1"}, Frame{})
	want := `<iframe src="https://player.example.com/embed/abc" height="1" style="border: none; width: 10&quot;onmouseover=x" allowfullscreen></iframe>`
	if got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}

	got = Markup("https://player.example.com/embed/abc", Size{Width: "100%", Height: `1"><script>`, Responsive: true}, Frame{})
	if strings.Contains(got, `"><script>`) {
		t.Errorf("wrapper style not escaped: %q", got)
	}
}
