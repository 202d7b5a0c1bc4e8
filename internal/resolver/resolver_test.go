package resolver

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"embedplayer/internal/media"
)

// youtubeRules mirrors the documented YouTube pattern set.
func youtubeRules() []media.PatternRule {
	return []media.PatternRule{
		{
			Name:   "video",
			Scheme: regexp.MustCompile(`(?i)^(http|https)://(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)(([^&?/]+)?)`),
			ID:     5,
			Glue:   "&amp;",
		},
		{
			Name:   "list",
			Scheme: regexp.MustCompile(`(?i)^(http|https)://(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)[\S]+list=([^&?/]+)?`),
			ID:     5,
			Prefix: "list=",
			Glue:   "&amp;",
		},
	}
}

func TestResolveBareID(t *testing.T) {
	r := New(youtubeRules())

	for _, id := range []string{"ABC123", "dQw4w9WgXcQ", "x7tgad0", "42"} {
		t.Run(id, func(t *testing.T) {
			got, ok := r.Resolve(id, true)
			if !ok {
				t.Fatalf("Resolve(%q, true) not resolved", id)
			}
			if got.Identifier != id || got.Pattern != media.OpaquePattern {
				t.Errorf("Resolve(%q) = %+v, want identifier %q pattern %q", id, got, id, media.OpaquePattern)
			}
		})
	}
}

func TestResolveBareIDWithoutFallback(t *testing.T) {
	r := New(youtubeRules())
	if got, ok := r.Resolve("ABC123", false); ok {
		t.Errorf("Resolve without fallback = %+v, want unresolved", got)
	}
}

func TestResolveVideoURL(t *testing.T) {
	r := New(youtubeRules())

	got, ok := r.Resolve("https://youtube.com/watch?v=ABC123", false)
	if !ok {
		t.Fatal("expected video URL to resolve")
	}

	want := media.Resolved{
		Reference:  "https://youtube.com/watch?v=ABC123",
		ID:         "ABC123",
		Identifier: "ABC123",
		Pattern:    "video",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveGlueChained(t *testing.T) {
	r := New(youtubeRules())

	got, ok := r.Resolve("https://www.youtube.com/watch?v=ABC123&list=XYZ", false)
	if !ok {
		t.Fatal("expected composite URL to resolve")
	}
	if got.Identifier != "ABC123&amp;list=XYZ" {
		t.Errorf("Identifier = %q, want %q", got.Identifier, "ABC123&amp;list=XYZ")
	}
	if got.ID != "ABC123" {
		t.Errorf("ID = %q, want ABC123", got.ID)
	}
	// The last matching rule names the result.
	if got.Pattern != "list" {
		t.Errorf("Pattern = %q, want list", got.Pattern)
	}
}

func TestResolveOpeningGlueUsedWhenLaterRuleHasNone(t *testing.T) {
	rules := youtubeRules()
	rules[1].Glue = ""
	r := New(rules)

	got, _ := r.Resolve("https://youtu.be/ABC123?list=XYZ", false)
	if got.Identifier != "ABC123&amp;list=XYZ" {
		t.Errorf("Identifier = %q, want %q", got.Identifier, "ABC123&amp;list=XYZ")
	}
}

func TestResolveStopsWithoutGlue(t *testing.T) {
	rules := youtubeRules()
	rules[0].Glue = ""
	r := New(rules)

	got, ok := r.Resolve("https://www.youtube.com/watch?v=ABC123&list=XYZ", false)
	if !ok {
		t.Fatal("expected URL to resolve")
	}
	if got.Identifier != "ABC123" || got.Pattern != "video" {
		t.Errorf("Resolve() = %+v, want identifier ABC123 pattern video", got)
	}
}

func TestResolveUnmatchedURL(t *testing.T) {
	r := New(youtubeRules())

	for _, fallback := range []bool{false, true} {
		if got, ok := r.Resolve("https://vimeo.com/12345", fallback); ok {
			t.Errorf("Resolve(fallback=%v) = %+v, want unresolved", fallback, got)
		}
	}
}

func TestResolveEmptyReference(t *testing.T) {
	r := New(youtubeRules())
	if _, ok := r.Resolve("", true); ok {
		t.Error("empty reference should not resolve")
	}
}

func TestResolveEmptyCaptureIsNoMatch(t *testing.T) {
	r := New(youtubeRules())
	if got, ok := r.Resolve("https://youtube.com/watch?v=", false); ok {
		t.Errorf("Resolve() = %+v, want unresolved", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := New(youtubeRules())
	ref := "https://youtube.com/watch?v=ABC123"

	first, _ := r.Resolve(ref, false)
	second, _ := r.Resolve(ref, false)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Resolve differs (-first +second):\n%s", diff)
	}
	if len(r.cache) != 1 {
		t.Errorf("cache size = %d, want 1", len(r.cache))
	}
}

func TestResolveAll(t *testing.T) {
	r := New(youtubeRules())

	refs := []string{
		"https://youtube.com/watch?v=A1",
		"https://vimeo.com/1",
		"https://youtube.com/watch?v=A1",
		"",
		"B2",
	}

	resolved, unresolved := r.ResolveAll(refs, true)

	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved, got %d: %+v", len(resolved), resolved)
	}
	if resolved[0].Identifier != "A1" || resolved[1].Identifier != "B2" {
		t.Errorf("resolved order = %q, %q; want A1, B2", resolved[0].Identifier, resolved[1].Identifier)
	}
	if diff := cmp.Diff([]string{"https://vimeo.com/1"}, unresolved); diff != "" {
		t.Errorf("unresolved mismatch (-want +got):\n%s", diff)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://youtube.com/watch?v=x", true},
		{"song.mp3", true},
		{"ABC123", false},
		{"ABC.DEF", false},
		{"1.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsURL(tt.input); got != tt.expected {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScanOutcome(t *testing.T) {
	rules := youtubeRules()
	terminal := rules[0]
	terminal.Glue = ""

	tests := []struct {
		name string
		rule media.PatternRule
		ref  string
		want outcome
	}{
		{"no match", rules[0], "https://vimeo.com/1", noMatch},
		{"matched", terminal, "https://youtu.be/ABC", matched},
		{"glue continue", rules[0], "https://youtu.be/ABC", glueContinue},
		{"out of range group", media.PatternRule{Name: "x", Scheme: regexp.MustCompile(`abc`), ID: 3}, "abc.com", noMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scan(&tt.rule, tt.ref)
			if got.kind != tt.want {
				t.Errorf("scan() kind = %v, want %v", got.kind, tt.want)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"a", "b", "a", "", "c", "b"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("Unique() mismatch (-want +got):\n%s", diff)
	}
}
