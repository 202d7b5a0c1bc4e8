// Package sanitize validates provider configuration input and escapes values
// placed into player markup.
package sanitize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// namePattern matches provider and plugin names (used in preference keys).
	namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	// tagPattern matches HTML element names usable as wraptag or labeltag.
	tagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

	labelPolicy = bluemonday.StrictPolicy()

	attrReplacer = strings.NewReplacer(
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// ValidateURL checks that a URL is well-formed and uses HTTP(S).
// Protocol-relative URLs ("//host/path") are accepted.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" && !strings.HasPrefix(rawURL, "//") {
		return fmt.Errorf("only HTTP(S) URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateName checks that a provider or plugin name is lowercase and safe for preference keys.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("name too long: %d characters", len(name))
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name contains invalid characters: %q", name)
	}
	return nil
}

// ValidTag reports whether tag is usable as an HTML element name.
func ValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// Label strips all markup from a player label and escapes the rest.
func Label(label string) string {
	return labelPolicy.Sanitize(label)
}

// Attr escapes a value for a double-quoted HTML attribute.
// Ampersands are left alone: embed URLs are assembled with "&amp;" already.
func Attr(value string) string {
	return attrReplacer.Replace(value)
}
