package player

import (
	"net/url"
	"strings"

	"embedplayer/internal/media"
)

// BuildSrc assembles the player URL from its base, the media identifier and
// the parameters. Hashes are stripped from values so colours pass as bare hex.
func BuildSrc(base, identifier string, params []Param, glue media.Glue) string {
	src := base + glue[0] + identifier
	if len(params) == 0 {
		return src
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		value := strings.ReplaceAll(p.Value, "#", "")
		pairs = append(pairs, url.QueryEscape(p.Name)+"="+url.QueryEscape(value))
	}

	joint := glue[1]
	if strings.Contains(src, glue[1]) {
		joint = glue[2]
	}
	return src + joint + strings.Join(pairs, glue[2])
}
