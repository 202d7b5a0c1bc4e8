// Package media defines shared types for the embedplayer application.
package media

import "regexp"

// MediaType represents whether a provider plays video or audio.
type MediaType int

const (
	Video MediaType = iota
	Audio
)

func (m MediaType) String() string {
	switch m {
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return "unknown"
	}
}

// ParseMediaType maps "audio" to Audio and everything else to Video.
func ParseMediaType(s string) MediaType {
	if s == "audio" {
		return Audio
	}
	return Video
}

// PatternRule extracts a media identifier from a play reference.
type PatternRule struct {
	Name   string         // e.g. "video", "list"
	Scheme *regexp.Regexp // Matched against the raw reference
	ID     int            // Index of the capture group holding the identifier
	Prefix string         // Prepended to the capture, e.g. "list="
	Glue   string         // When set, later matching rules are appended with it
}

// Resolved is a play reference resolved against a provider's patterns.
type Resolved struct {
	Reference  string // Raw play reference
	ID         string // First raw capture
	Identifier string // Prefixed capture plus any glue-chained parts
	Pattern    string // Name of the last matching rule, "id" for bare IDs
}

// OpaquePattern is the pattern name reported for bare identifiers.
const OpaquePattern = "id"

// Glue holds the strings sticking the player URL together:
// base/identifier, identifier/query and parameter/parameter.
type Glue [3]string

// DefaultGlue is used by providers that do not declare their own.
var DefaultGlue = Glue{"/", "?", "&amp;"}

// ParamSpec describes a player parameter and its preference.
type ParamSpec struct {
	Name    string   // Player parameter name, may contain hyphens
	Default string   // Provider default value
	Valid   []string // Accepted values; empty means any
	Input   string   // Preference input type when Valid is empty, e.g. "color"
	Force   bool     // Emit even when the value equals the default
}
