package player

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"embedplayer/internal/media"
)

type prefMap map[string]string

func (m prefMap) Get(key string) string { return m[key] }

func TestBuildParams(t *testing.T) {
	specs := []media.ParamSpec{
		{Name: "autoplay", Default: "0", Valid: []string{"0", "1"}},
		{Name: "size", Default: "large", Valid: []string{"large", "small"}, Force: true},
		{Name: "queue-autoplay", Default: "true", Valid: []string{"true", "false"}},
		{Name: "color", Default: "#00adef", Input: "color"},
		{Name: "start", Input: "number"},
	}

	tests := []struct {
		name     string
		atts     map[string]string
		prefs    prefMap
		expected []Param
		warning  string
	}{
		{
			name:     "defaults only emit forced params",
			prefs:    prefMap{"autoplay": "0", "size": "large", "queue-autoplay": "true", "color": "#00adef"},
			expected: []Param{{"size", "large"}},
		},
		{
			name:     "attribute wins over preference",
			atts:     map[string]string{"autoplay": "1"},
			prefs:    prefMap{"autoplay": "0"},
			expected: []Param{{"autoplay", "1"}},
		},
		{
			name:  "attribute equal to default is skipped",
			atts:  map[string]string{"autoplay": "0"},
			prefs: prefMap{},
		},
		{
			name:     "preference differing from default",
			prefs:    prefMap{"color": "#336699"},
			expected: []Param{{"color", "#336699"}},
		},
		{
			name:     "hyphenated name from underscored attribute",
			atts:     map[string]string{"queue_autoplay": "false"},
			expected: []Param{{"queue-autoplay", "false"}},
		},
		{
			name:     "invalid value falls back to preference",
			atts:     map[string]string{"autoplay": "yes"},
			prefs:    prefMap{"autoplay": "1"},
			expected: []Param{{"autoplay", "1"}},
			warning:  "invalid parameter value",
		},
		{
			name:    "invalid colour",
			atts:    map[string]string{"color": "blue"},
			warning: "invalid parameter value",
		},
		{
			name:    "invalid number",
			atts:    map[string]string{"start": "soon"},
			warning: "invalid parameter value",
		},
		{
			name:     "free input",
			atts:     map[string]string{"start": "30"},
			expected: []Param{{"start", "30"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := testLogger()
			got := BuildParams(specs, tt.atts, tt.prefs, log)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("BuildParams() mismatch (-want +got):\n%s", diff)
			}
			if tt.warning != "" && !strings.Contains(buf.String(), tt.warning) {
				t.Errorf("expected warning %q, got %q", tt.warning, buf.String())
			}
		})
	}
}
