package feed

import (
	"fmt"
	"time"

	"github.com/BharathDevanaboina/Linkup/models"
)

const (
	// AnonymousName replaces the author name on anonymous signals.
	AnonymousName = "Anonymous"
	// HiddenLocation replaces the location on location-private signals.
	HiddenLocation = "Secret Location"
)

// IsLocked reports whether a post is gated for a viewer. A nil viewerRating
// (unauthenticated viewer) is treated as the lowest possible rating, so any
// gated post is locked. Locked posts stay in the feed; interaction is the
// part that gets suppressed.
func IsLocked(p models.Post, viewerRating *float64) bool {
	if p.MinRating == nil {
		return false
	}
	if viewerRating == nil {
		return true
	}
	return *viewerRating < *p.MinRating
}

// TimeRemaining returns the time left until a post expires, clamped at zero.
// ok is false when the post carries no expiry. now is an explicit parameter
// so the function stays deterministic; the caller owns the ticking.
func TimeRemaining(p models.Post, now time.Time) (time.Duration, bool) {
	if p.ExpiresAt == nil {
		return 0, false
	}
	d := time.Duration(*p.ExpiresAt-now.UnixMilli()) * time.Millisecond
	if d < 0 {
		d = 0
	}
	return d, true
}

// FormatCountdown renders a duration as M:SS, the feed's countdown label.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// DisplayLocation returns the location a consumer may show: the redaction
// placeholder for location-private posts, the raw value otherwise.
func DisplayLocation(p models.Post) string {
	if p.IsLocationPrivate {
		return HiddenLocation
	}
	return p.Location
}

// Author is the displayable author identity of a post.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// DisplayAuthor projects the post's author snapshot for display. Anonymous
// posts were redacted at creation; this is a convenience projection over
// that snapshot, not a second redaction pass.
func DisplayAuthor(p models.Post) Author {
	if p.IsAnonymous {
		return Author{Name: AnonymousName}
	}
	return Author{Name: p.User.Name, Avatar: p.User.Avatar}
}
