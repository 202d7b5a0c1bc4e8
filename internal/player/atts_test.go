package player

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAtts(t *testing.T) {
	got := ParseAtts([]Attr{
		{Name: "play", Value: " https://youtu.be/a, b ,,c"},
		{Name: "WrapTag", Value: "div"},
		{Name: "label-tag", Value: "h3"},
		{Name: "queue-autoplay", Value: "false"},
		{Name: "UI-Highlight", Value: "#ffffff"},
		{Name: "width", Value: "320"},
		{Name: "width", Value: "480"},
	})

	want := Atts{
		Play:     []string{"https://youtu.be/a", "b", "c"},
		Width:    "480",
		WrapTag:  "div",
		Params: map[string]string{
			"label_tag":      "h3",
			"queue_autoplay": "false",
			"ui_highlight":   "#ffffff",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseAtts() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsTagAtt(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"play", true},
		{"LabelTag", true},
		{"responsive", true},
		{"autoplay", false},
		{"queue-autoplay", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTagAtt(tt.name); got != tt.expected {
				t.Errorf("IsTagAtt(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
