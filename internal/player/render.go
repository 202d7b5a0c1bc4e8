// Package player renders embedded media players: it sizes the player,
// assembles the provider URL and emits the iframe markup.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"embedplayer/internal/media"
	"embedplayer/internal/prefs"
	"embedplayer/internal/provider"
	"embedplayer/internal/resolver"
	"embedplayer/internal/sanitize"
)

// ErrNothingToPlay is returned when no play reference resolves.
var ErrNothingToPlay = errors.New("nothing to play")

var discard = slog.New(slog.DiscardHandler)

// Options configures a Renderer.
type Options struct {
	Plugin          string       // Preference namespace, e.g. "embed_player"
	DefaultProvider string       // Used when no provider is named nor detected
	Logger          *slog.Logger // Receives rendering warnings
}

// Renderer turns player tag attributes into markup.
type Renderer struct {
	reg   *provider.Registry
	prefs *prefs.Cache
	opts  Options
	log   *slog.Logger
}

// New creates a Renderer over the providers of reg and their cached preferences.
func New(reg *provider.Registry, cache *prefs.Cache, opts Options) *Renderer {
	log := opts.Logger
	if log == nil {
		log = discard
	}
	if cache == nil {
		cache = prefs.NewCache(nil, opts.Plugin, reg)
	}
	return &Renderer{reg: reg, prefs: cache, opts: opts, log: log}
}

// Provider picks the provider of a tag: the provider attribute, else the
// provider detected from the first play reference, else the default one.
func (r *Renderer) Provider(atts Atts) (*provider.Provider, error) {
	if atts.Provider != "" {
		return r.reg.Get(atts.Provider)
	}
	if refs := resolver.Unique(atts.Play); len(refs) > 0 {
		if p, ok := r.reg.Detect(refs[0]); ok {
			return p, nil
		}
	}
	if r.opts.DefaultProvider == "" {
		return nil, fmt.Errorf("%w: no provider named or detected", provider.ErrUnknownProvider)
	}
	return r.reg.Get(r.opts.DefaultProvider)
}

// Playable reports whether every play reference of atts is a media URL
// of the tag's provider. Bare identifiers are not playable here.
func (r *Renderer) Playable(page *Page, atts Atts) bool {
	refs := resolver.Unique(atts.Play)
	if len(refs) == 0 {
		return false
	}
	p, err := r.Provider(atts)
	if err != nil {
		return false
	}
	_, unresolved := page.Resolver(p).ResolveAll(refs, false)
	return len(unresolved) == 0
}

// Resolve resolves the play references of atts against their provider.
func (r *Renderer) Resolve(page *Page, atts Atts) (*provider.Provider, []media.Resolved, error) {
	refs := resolver.Unique(atts.Play)
	if len(refs) == 0 {
		return nil, nil, fmt.Errorf("%w: no play reference", ErrNothingToPlay)
	}

	p, err := r.Provider(atts)
	if err != nil {
		return nil, nil, err
	}

	resolved, unresolved := page.Resolver(p).ResolveAll(refs, true)
	for _, ref := range unresolved {
		r.log.Warn("nothing to play", "provider", p.Name, "play", ref)
	}
	if len(resolved) == 0 {
		return p, nil, fmt.Errorf("%w: %s", ErrNothingToPlay, strings.Join(unresolved, ", "))
	}
	return p, resolved, nil
}

// Render returns the markup of the players of one tag, one per resolved play
// reference, and schedules the provider script on page.
func (r *Renderer) Render(page *Page, atts Atts) (string, error) {
	p, resolved, err := r.Resolve(page, atts)
	if err != nil {
		return "", err
	}

	pr, err := r.prefs.For(p)
	if err != nil {
		return "", err
	}

	log := r.log.With("provider", p.Name)
	r.warnUnknown(p, atts, log)

	params := BuildParams(p.Params, atts.Params, pr, log)
	size := ComputeSize(DimensionSpec{
		Width:      firstNonEmpty(atts.Width, pr.Get("width")),
		Height:     firstNonEmpty(atts.Height, pr.Get("height")),
		Ratio:      firstNonEmpty(atts.Ratio, pr.Get("ratio")),
		Responsive: responsive(atts.Responsive, pr.Get("responsive"), log),
	}, log)

	frame := Frame{
		WrapTag:  validTag(atts.WrapTag, "wraptag", log),
		Class:    atts.Class,
		Label:    atts.Label,
		LabelTag: validTag(atts.LabelTag, "labeltag", log),
	}

	players := make([]string, 0, len(resolved))
	for _, res := range resolved {
		src := BuildSrc(p.SrcBase, res.Identifier, params, p.SrcGlue(res.Pattern))
		players = append(players, Markup(src, size, frame))
	}

	page.scheduleScript(p)
	return strings.Join(players, "\n"), nil
}

func (r *Renderer) warnUnknown(p *provider.Provider, atts Atts, log *slog.Logger) {
	for name := range atts.Params {
		if _, ok := paramByAtt(p, name); !ok {
			log.Warn("unknown attribute", "attribute", name)
		}
	}
}

func paramByAtt(p *provider.Provider, att string) (media.ParamSpec, bool) {
	for _, spec := range p.Params {
		if provider.NormalizeName(spec.Name) == att {
			return spec, true
		}
	}
	return media.ParamSpec{}, false
}

// responsive reads the responsive attribute, falling back to the preference.
func responsive(att, pref string, log *slog.Logger) bool {
	switch strings.ToLower(att) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	case "":
	default:
		log.Warn("invalid responsive value", "value", att)
	}
	return pref == "true" || pref == "1"
}

func validTag(tag, att string, log *slog.Logger) string {
	if tag == "" {
		return ""
	}
	if !sanitize.ValidTag(tag) {
		log.Warn("invalid tag name ignored", "attribute", att, "value", tag)
		return ""
	}
	return tag
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
