package render

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	playerPrefix = "https://w.soundcloud.com/player/?url="
	playerColor  = "color=C9952A"
	playerParams = "&auto_play=false&hide_related=true&show_comments=false&show_user=false&show_reposts=false&show_teaser=false"

	firstRecordingLabel = "Laura Hodgkiss Metcalf Recording"
	laterRecordingLabel = "Contemporary Recording"
)

var (
	redirectTargetRe = regexp.MustCompile(`url=([^&]+)`)
	colorParamRe     = regexp.MustCompile(`color=[^&]+`)
)

// Audio is one embedded recording.
type Audio struct {
	URL string
	// Label is empty when the entry has a single recording.
	Label string
}

// AudioEmbeds turns an entry's audio sources into player embeds. With two or
// more sources the first is the historical recording and the rest are
// contemporary ones.
func AudioEmbeds(sources []string) []Audio {
	if len(sources) == 0 {
		return nil
	}
	out := make([]Audio, len(sources))
	for i, src := range sources {
		out[i].URL = EmbedURL(src)
		if len(sources) >= 2 {
			if i == 0 {
				out[i].Label = firstRecordingLabel
			} else {
				out[i].Label = laterRecordingLabel
			}
		}
	}
	return out
}

// EmbedURL rewrites a stored audio link into a SoundCloud player URL:
// Google redirect wrappers are unwrapped, existing player URLs get the
// site color, and bare API track URLs are wrapped into a player URL.
// Anything else is returned unchanged.
func EmbedURL(raw string) string {
	u := raw
	if strings.Contains(u, "google.com/url") {
		if m := redirectTargetRe.FindStringSubmatch(u); m != nil {
			if target, err := url.PathUnescape(m[1]); err == nil {
				u = target
			}
		}
	}

	switch {
	case strings.Contains(u, "w.soundcloud.com/player"):
		if loc := colorParamRe.FindStringIndex(u); loc != nil {
			return u[:loc[0]] + playerColor + u[loc[1]:]
		}
		return u
	case strings.Contains(u, "api.soundcloud.com"):
		return playerPrefix + url.QueryEscape(u) + "&" + playerColor + playerParams
	default:
		return u
	}
}
