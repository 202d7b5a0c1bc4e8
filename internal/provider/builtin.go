package provider

import (
	"regexp"

	"embedplayer/internal/media"
)

func rule(name, scheme string, id int, prefix, glue string) media.PatternRule {
	return media.PatternRule{
		Name:   name,
		Scheme: regexp.MustCompile(scheme),
		ID:     id,
		Prefix: prefix,
		Glue:   glue,
	}
}

func param(name, def string, valid ...string) media.ParamSpec {
	return media.ParamSpec{Name: name, Default: def, Valid: valid}
}

func input(name, def, kind string) media.ParamSpec {
	return media.ParamSpec{Name: name, Default: def, Input: kind}
}

var bools01 = []string{"0", "1"}
var boolsText = []string{"true", "false"}

// YouTube plays videos and playlists.
// A watch URL carrying both a video and a list resolves to "ID?list=LIST":
// the video rule chains with "?" so the identifier opens the embed query
// string that the parameters are then appended to with "&amp;".
var YouTube = &Provider{
	Name:    "youtube",
	Title:   "YouTube",
	SrcBase: "https://www.youtube-nocookie.com/embed",
	Glue:    media.DefaultGlue,
	GlueFor: map[string]media.Glue{
		"playlist": {"/videoseries?", "?", "&amp;"},
	},
	Patterns: []media.PatternRule{
		rule("video", `(?i)^(http|https)://(www\.)?(youtube\.com/(watch\?v=|embed/|v/|shorts/)|youtu\.be/)(([^&?/]+)?)`, 5, "", "?"),
		rule("list", `(?i)^(http|https)://(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)[\S]+list=([^&?/]+)?`, 5, "list=", ""),
		rule("playlist", `(?i)^(http|https)://(www\.)?youtube\.com/playlist\?list=([^&?/]+)`, 3, "list=", ""),
	},
	Dims: DefaultDims,
	Params: []media.ParamSpec{
		param("autoplay", "0", bools01...),
		param("cc_load_policy", "0", bools01...),
		param("color", "red", "red", "white"),
		param("controls", "1", bools01...),
		param("disablekb", "0", bools01...),
		input("end", "", "number"),
		param("fs", "1", bools01...),
		input("hl", "", "text"),
		param("iv_load_policy", "1", "1", "3"),
		param("loop", "0", bools01...),
		param("playsinline", "0", bools01...),
		param("rel", "1", bools01...),
		input("start", "", "number"),
	},
}

// Vimeo plays videos.
var Vimeo = &Provider{
	Name:    "vimeo",
	Title:   "Vimeo",
	SrcBase: "https://player.vimeo.com/video",
	Glue:    media.DefaultGlue,
	Patterns: []media.PatternRule{
		rule("video", `(?i)^(http|https)://((player\.vimeo\.com/video)|(vimeo\.com))/(\d+)`, 5, "", ""),
	},
	Dims: DefaultDims,
	Params: []media.ParamSpec{
		param("autopause", "1", bools01...),
		param("autoplay", "0", bools01...),
		param("background", "0", bools01...),
		param("byline", "1", bools01...),
		input("color", "#00adef", "color"),
		param("dnt", "0", bools01...),
		param("loop", "0", bools01...),
		param("muted", "0", bools01...),
		param("portrait", "1", bools01...),
		param("title", "1", bools01...),
	},
}

// Dailymotion plays videos; several parameters carry hyphens.
var Dailymotion = &Provider{
	Name:    "dailymotion",
	Title:   "Dailymotion",
	SrcBase: "https://www.dailymotion.com/embed/video",
	Glue:    media.DefaultGlue,
	Patterns: []media.PatternRule{
		rule("video", `(?i)^(http|https)://(www\.)?(dailymotion\.com/(embed/)?video|dai\.ly)/([A-Za-z0-9]+)`, 5, "", ""),
	},
	Dims: DefaultDims,
	Params: []media.ParamSpec{
		param("autoplay", "false", boolsText...),
		param("controls", "true", boolsText...),
		param("mute", "false", boolsText...),
		param("queue-autoplay", "true", boolsText...),
		param("queue-enable", "true", boolsText...),
		param("sharing-enable", "true", boolsText...),
		input("start", "0", "number"),
		input("ui-highlight", "#ffcc33", "color"),
		param("ui-logo", "true", boolsText...),
		param("ui-start-screen-info", "true", boolsText...),
	},
}

// Bandcamp plays albums and tracks; a URL naming both plays the track within the album.
var Bandcamp = &Provider{
	Name:      "bandcamp",
	Title:     "Bandcamp",
	SrcBase:   "https://bandcamp.com/EmbeddedPlayer",
	Glue:      media.Glue{"/", "/", "/"},
	MediaType: media.Audio,
	Patterns: []media.PatternRule{
		rule("album", `(?i)^(http|https)://bandcamp\.com/(EmbeddedPlayer/)?album=(\d+)`, 3, "album=", "/"),
		rule("track", `(?i)^(http|https)://bandcamp\.com/(EmbeddedPlayer/)?(\S+/)?track=(\d+)`, 4, "track=", ""),
	},
	Dims: Dims{
		Width:      "350",
		Height:     "470",
		Ratio:      "",
		Responsive: "false",
	},
	Params: []media.ParamSpec{
		{Name: "size", Default: "large", Valid: []string{"large", "small"}, Force: true},
		param("artwork", "", "", "none", "big", "small"),
		input("bgcol", "#ffffff", "color"),
		input("linkcol", "#0687f5", "color"),
		param("minimal", "false", boolsText...),
		param("tracklist", "true", boolsText...),
		param("transparent", "false", boolsText...),
	},
}

// SoundCloud plays tracks and sets; the reference URL is passed to the widget.
var SoundCloud = &Provider{
	Name:      "soundcloud",
	Title:     "SoundCloud",
	SrcBase:   "https://w.soundcloud.com/player/",
	Glue:      media.Glue{"?url=", "?", "&amp;"},
	MediaType: media.Audio,
	Patterns: []media.PatternRule{
		rule("audio", `(?i)((http|https)://(api\.)?soundcloud\.com/\S+)`, 1, "", ""),
	},
	Dims: Dims{
		Width:      "100%",
		Height:     "166",
		Ratio:      "",
		Responsive: "false",
	},
	Params: []media.ParamSpec{
		param("auto_play", "false", boolsText...),
		input("color", "#ff5500", "color"),
		param("hide_related", "false", boolsText...),
		param("show_artwork", "true", boolsText...),
		param("show_comments", "true", boolsText...),
		param("show_playcount", "true", boolsText...),
		param("show_user", "true", boolsText...),
		param("visual", "false", boolsText...),
	},
}

// Mixcloud plays shows through its feed widget.
var Mixcloud = &Provider{
	Name:      "mixcloud",
	Title:     "Mixcloud",
	SrcBase:   "https://www.mixcloud.com/widget/iframe/",
	Glue:      media.Glue{"?feed=", "?", "&amp;"},
	MediaType: media.Audio,
	Patterns: []media.PatternRule{
		rule("audio", `(?i)((http|https)://(www\.)?mixcloud\.com/\S+)`, 1, "", ""),
	},
	Dims: Dims{
		Width:      "100%",
		Height:     "120",
		Ratio:      "",
		Responsive: "false",
	},
	Params: []media.ParamSpec{
		param("autoplay", "0", bools01...),
		param("hide_artwork", "0", bools01...),
		param("hide_cover", "0", bools01...),
		param("light", "0", bools01...),
		param("mini", "0", bools01...),
	},
}

// Twitch plays past broadcasts and live channels.
var Twitch = &Provider{
	Name:    "twitch",
	Title:   "Twitch",
	SrcBase: "https://player.twitch.tv/",
	Glue:    media.Glue{"", "?", "&amp;"},
	Patterns: []media.PatternRule{
		rule("video", `(?i)^(http|https)://(www\.)?twitch\.tv/videos/(\d+)`, 3, "?video=v", ""),
		rule("channel", `(?i)^(http|https)://(www\.)?twitch\.tv/(\w+)/?$`, 3, "?channel=", ""),
	},
	Dims: DefaultDims,
	Params: []media.ParamSpec{
		param("autoplay", "true", boolsText...),
		param("muted", "false", boolsText...),
		input("parent", "", "text"),
		input("time", "", "text"),
	},
}

// Archive plays Internet Archive items.
var Archive = &Provider{
	Name:    "archive",
	Title:   "Internet Archive",
	SrcBase: "https://archive.org/embed",
	Glue:    media.DefaultGlue,
	Patterns: []media.PatternRule{
		rule("item", `(?i)^(http|https)://(www\.)?archive\.org/(details|embed)/([^/?#&]+)`, 4, "", ""),
	},
	Dims: DefaultDims,
	Params: []media.ParamSpec{
		param("autoplay", "0", bools01...),
		param("playlist", "0", bools01...),
	},
}

// Builtin returns a registry holding the built-in providers.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range []*Provider{YouTube, Vimeo, Dailymotion, Bandcamp, SoundCloud, Mixcloud, Twitch, Archive} {
		r.Add(p)
	}
	return r
}
