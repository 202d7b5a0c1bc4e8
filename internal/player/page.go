package player

import (
	"strings"

	"embedplayer/internal/provider"
	"embedplayer/internal/resolver"
	"embedplayer/internal/sanitize"
)

// Page is the state of one page render: the resolver of each provider used
// so far and the provider scripts still waiting to be injected.
// A Page is not safe for concurrent use.
type Page struct {
	resolvers map[string]*resolver.Resolver
	embedded  map[string]bool
	scripts   []string
}

// NewPage starts a page render.
func NewPage() *Page {
	return &Page{
		resolvers: make(map[string]*resolver.Resolver),
		embedded:  make(map[string]bool),
	}
}

// Resolver returns the resolver of p for this page, creating it on first use.
func (pg *Page) Resolver(p *provider.Provider) *resolver.Resolver {
	r, ok := pg.resolvers[p.Name]
	if !ok {
		r = p.NewResolver()
		pg.resolvers[p.Name] = r
	}
	return r
}

// scheduleScript queues the script of p once per page.
func (pg *Page) scheduleScript(p *provider.Provider) {
	if p.Script == "" || pg.embedded[p.Name] {
		return
	}
	pg.embedded[p.Name] = true
	pg.scripts = append(pg.scripts, p.Script)
}

// Scripts returns the scripts waiting for injection.
func (pg *Page) Scripts() []string {
	return append([]string(nil), pg.scripts...)
}

// Inject inserts the pending script tags before the last </body> of out,
// or appends them when out has no body. Pending scripts are consumed.
func (pg *Page) Inject(out string) string {
	if len(pg.scripts) == 0 {
		return out
	}

	var b strings.Builder
	for _, src := range pg.scripts {
		b.WriteString(`<script src="` + sanitize.Attr(src) + `"></script>` + "\n")
	}
	pg.scripts = nil

	i := strings.LastIndex(strings.ToLower(out), "</body>")
	if i < 0 {
		return out + b.String()
	}
	return out[:i] + b.String() + out[i:]
}
