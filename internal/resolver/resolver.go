// Package resolver extracts canonical media identifiers from play references
// by scanning a provider's ordered pattern rules.
package resolver

import (
	"regexp"

	"embedplayer/internal/media"
)

// urlPattern classifies a reference as a URL or filename rather than a bare ID.
var urlPattern = regexp.MustCompile(`[.][a-z]+`)

// outcome is the result of checking one rule against a reference.
type outcome int

const (
	noMatch      outcome = iota
	matched              // rule matched and ends the scan when it opens the identifier
	glueContinue         // rule matched and lets later rules append to the identifier
)

// step is a tagged per-rule scan result.
type step struct {
	kind    outcome
	rule    *media.PatternRule
	capture string
}

type cacheKey struct {
	ref      string
	fallback bool
}

type entry struct {
	res media.Resolved
	ok  bool
}

// Resolver resolves references against an ordered rule list.
// Results are memoized for the lifetime of the Resolver.
type Resolver struct {
	patterns []media.PatternRule
	cache    map[cacheKey]entry
}

// New creates a Resolver for the given rules. The slice must not be modified afterwards.
func New(patterns []media.PatternRule) *Resolver {
	return &Resolver{
		patterns: patterns,
		cache:    make(map[cacheKey]entry),
	}
}

// IsURL reports whether ref looks like a URL or filename.
func IsURL(ref string) bool {
	return urlPattern.MatchString(ref)
}

// Resolve returns the resolved media for ref. The boolean is false when the
// reference cannot be resolved: an empty reference, a URL no rule matches, or a
// bare ID while fallback is disabled.
func (r *Resolver) Resolve(ref string, fallback bool) (media.Resolved, bool) {
	key := cacheKey{ref: ref, fallback: fallback}
	if e, ok := r.cache[key]; ok {
		return e.res, e.ok
	}

	res, ok := r.resolve(ref, fallback)
	r.cache[key] = entry{res: res, ok: ok}
	return res, ok
}

// ResolveAll resolves each distinct reference in input order.
// References that cannot be resolved are returned separately.
func (r *Resolver) ResolveAll(refs []string, fallback bool) ([]media.Resolved, []string) {
	var resolved []media.Resolved
	var unresolved []string

	for _, ref := range Unique(refs) {
		if res, ok := r.Resolve(ref, fallback); ok {
			resolved = append(resolved, res)
		} else {
			unresolved = append(unresolved, ref)
		}
	}

	return resolved, unresolved
}

func (r *Resolver) resolve(ref string, fallback bool) (media.Resolved, bool) {
	if ref == "" {
		return media.Resolved{}, false
	}

	if !IsURL(ref) {
		if !fallback {
			return media.Resolved{}, false
		}
		return media.Resolved{
			Reference:  ref,
			ID:         ref,
			Identifier: ref,
			Pattern:    media.OpaquePattern,
		}, true
	}

	var res *media.Resolved
	var glue string

	for i := range r.patterns {
		st := scan(&r.patterns[i], ref)
		if st.kind == noMatch {
			continue
		}

		if res == nil {
			res = &media.Resolved{
				Reference:  ref,
				ID:         st.capture,
				Identifier: st.rule.Prefix + st.capture,
				Pattern:    st.rule.Name,
			}
			if st.kind == matched {
				break
			}
			glue = st.rule.Glue
			continue
		}

		join := glue
		if st.rule.Glue != "" {
			join = st.rule.Glue
		}
		res.Identifier += join + st.rule.Prefix + st.capture
		res.Pattern = st.rule.Name
	}

	if res == nil {
		return media.Resolved{}, false
	}
	return *res, true
}

// scan checks a single rule against ref.
func scan(rule *media.PatternRule, ref string) step {
	if rule.Scheme == nil {
		return step{kind: noMatch}
	}

	m := rule.Scheme.FindStringSubmatch(ref)
	if m == nil || rule.ID < 0 || rule.ID >= len(m) || m[rule.ID] == "" {
		return step{kind: noMatch}
	}

	kind := matched
	if rule.Glue != "" {
		kind = glueContinue
	}
	return step{kind: kind, rule: rule, capture: m[rule.ID]}
}

// Unique returns refs without duplicates or empty strings, keeping the first occurrence.
func Unique(refs []string) []string {
	seen := make(map[string]bool, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		out = append(out, ref)
	}
	return out
}
