package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"embedplayer/internal/player"
	"embedplayer/internal/provider"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--color", "never"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	got := run(t, "render", "https://vimeo.com/76979871", "--param", "color=#336699")
	want := `<iframe src="https://player.vimeo.com/video/76979871?color=336699" width="640" height="360" style="border: none" allowfullscreen></iframe>` + "\n"
	if got != want {
		t.Errorf("render output = %q, want %q", got, want)
	}
}

func TestResolveCommandJSON(t *testing.T) {
	got := run(t, "resolve", "--json", "https://youtu.be/ABC123")

	var results []resolution
	if err := json.Unmarshal([]byte(got), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if r := results[0]; r.Provider != "youtube" || r.Identifier != "ABC123" || r.Src != "https://www.youtube-nocookie.com/embed/ABC123" {
		t.Errorf("result = %+v", r)
	}
}

func TestPrefsCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	exec := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args, "--color", "never"))
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := exec("prefs", "init"); !strings.HasPrefix(got, "Installed ") {
		t.Errorf("prefs init = %q", got)
	}
	exec("prefs", "set", "vimeo", "width", "800")
	if got := exec("prefs", "get", "vimeo", "width"); got != "800\n" {
		t.Errorf("prefs get = %q, want 800", got)
	}
	if got := exec("prefs", "list", "vimeo"); !strings.Contains(got, "embed_player_vimeo") {
		t.Errorf("prefs list = %q", got)
	}
}

func TestRenderAttrs(t *testing.T) {
	flagParams = []string{"autoplay=1", "queue-autoplay=false"}
	flagWidth = "480"
	defer func() { flagParams, flagWidth = nil, "" }()

	attrs, err := renderAttrs([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	atts := player.ParseAtts(attrs)
	if strings.Join(atts.Play, ",") != "a,b" || atts.Width != "480" || atts.Params["queue_autoplay"] != "false" {
		t.Errorf("atts = %+v", atts)
	}

	flagParams = []string{"novalue"}
	if _, err := renderAttrs([]string{"a"}); err == nil {
		t.Error("expected error for a parameter without value")
	}
	flagParams = []string{"width=1"}
	if _, err := renderAttrs([]string{"a"}); err == nil {
		t.Error("expected error for a tag attribute passed as parameter")
	}
}

func TestCheckPref(t *testing.T) {
	tests := []struct {
		key     string
		val     string
		wantErr bool
	}{
		{"width", "800", false},
		{"autoplay", "1", false},
		{"autoplay", "yes", true},
		{"color", "#336699", false},
		{"colour", "#336699", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			err := checkPref(provider.Vimeo, tt.key, tt.val)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkPref() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
