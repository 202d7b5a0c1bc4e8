// Package tag expands player tags found in page templates:
//
//	<txp:embed_player play="https://vimeo.com/76979871" />
//	<txp:embed_player_youtube play="ABC123" responsive="true" />
//	<txp:embed_player_if play="https://youtu.be/ABC123">...<txp:else />...</txp:embed_player_if>
//
// A tag that fails to render is replaced by nothing and logged.
package tag

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"embedplayer/internal/player"
)

// attsSource matches a run of HTML-style attributes.
const attsSource = `((?:\s+[A-Za-z_][\w-]*(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'>/]+))?)*)`

var elseTag = regexp.MustCompile(`<txp:else\s*/>`)

// Processor expands the tags of one plugin name.
type Processor struct {
	renderer *player.Renderer
	plugin   string
	log      *slog.Logger

	single *regexp.Regexp
	cond   *regexp.Regexp
}

// New creates a Processor for tags named after plugin.
func New(r *player.Renderer, plugin string, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	name := regexp.QuoteMeta(plugin)
	return &Processor{
		renderer: r,
		plugin:   plugin,
		log:      log,
		single:   regexp.MustCompile(`<txp:(` + name + `(?:_\w+)?)` + attsSource + `\s*/>`),
		cond:     regexp.MustCompile(`(?s)<txp:` + name + `_if` + attsSource + `\s*>(.*?)</txp:` + name + `_if>`),
	}
}

// Process expands every tag of tmpl as one page and injects the provider
// scripts the players need.
func (p *Processor) Process(tmpl string) string {
	page := player.NewPage()
	out := p.Expand(page, tmpl)
	return page.Inject(out)
}

// Expand expands the tags of tmpl on page without injecting scripts.
func (p *Processor) Expand(page *player.Page, tmpl string) string {
	out := p.cond.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := p.cond.FindStringSubmatch(m)
		atts, err := parseAtts(sub[1])
		if err != nil {
			p.log.Warn("unreadable tag attributes", "tag", p.plugin+"_if", "err", err)
			return ""
		}
		then, otherwise := splitElse(sub[2])
		if p.renderer.Playable(page, atts) {
			return then
		}
		return otherwise
	})

	return p.single.ReplaceAllStringFunc(out, func(m string) string {
		sub := p.single.FindStringSubmatch(m)
		return p.render(page, sub[1], sub[2])
	})
}

func (p *Processor) render(page *player.Page, name, raw string) string {
	log := p.log.With("tag", name)

	atts, err := parseAtts(raw)
	if err != nil {
		log.Warn("unreadable tag attributes", "err", err)
		return ""
	}

	if name != p.plugin {
		suffix := strings.TrimPrefix(name, p.plugin+"_")
		if suffix == "if" {
			log.Warn("conditional tag must enclose content")
			return ""
		}
		atts.Provider = suffix
	}

	out, err := p.renderer.Render(page, atts)
	if err != nil {
		log.Warn("player not rendered", "err", err)
		return ""
	}
	return out
}

// parseAtts reads tag attributes in source order through the HTML parser,
// so quoting and entities follow HTML rules.
func parseAtts(raw string) (player.Atts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<txp-atts" + raw + "></txp-atts>"))
	if err != nil {
		return player.Atts{}, fmt.Errorf("parsing attributes: %w", err)
	}

	sel := doc.Find("txp-atts")
	if sel.Length() == 0 {
		return player.Atts{}, fmt.Errorf("parsing attributes: no element")
	}

	var attrs []player.Attr
	for _, a := range sel.Get(0).Attr {
		attrs = append(attrs, player.Attr{Name: a.Key, Value: a.Val})
	}
	return player.ParseAtts(attrs), nil
}

func splitElse(content string) (then, otherwise string) {
	loc := elseTag.FindStringIndex(content)
	if loc == nil {
		return content, ""
	}
	return content[:loc[0]], content[loc[1]:]
}
