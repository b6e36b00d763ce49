// Package radar projects signals onto the radar view. Positions are derived
// from the post id, so a signal keeps the same spot across refreshes instead
// of jittering with every data update.
package radar

import (
	"hash/fnv"

	"github.com/BharathDevanaboina/Linkup/feed"
	"github.com/BharathDevanaboina/Linkup/models"
)

// Kind selects the blip's icon and color on the client.
type Kind string

const (
	KindUser   Kind = "user"   // plain signal
	KindGhost  Kind = "ghost"  // anonymous
	KindBounty Kind = "bounty" // bounty category
	KindFlash  Kind = "flash"  // carries an expiry
)

// Blip is one signal on the radar. Top and Left are percentages of the
// radar surface, kept within 10-90 so blips never clip the border.
type Blip struct {
	PostID   string  `json:"postId"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Kind     Kind    `json:"kind"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Expiring bool    `json:"expiring"`
}

// Blips maps posts to radar blips. Radar shows every signal; filtering is
// suppressed in radar mode.
func Blips(posts []models.Post) []Blip {
	blips := make([]Blip, len(posts))
	for i, p := range posts {
		top, left := position(p.ID)
		blips[i] = Blip{
			PostID:   p.ID,
			Title:    p.Title,
			Location: feed.DisplayLocation(p),
			Kind:     kindOf(p),
			Top:      top,
			Left:     left,
			Expiring: p.ExpiresAt != nil,
		}
	}
	return blips
}

func kindOf(p models.Post) Kind {
	switch {
	case p.IsAnonymous:
		return KindGhost
	case p.Category == models.CategoryBounty:
		return KindBounty
	case p.ExpiresAt != nil:
		return KindFlash
	default:
		return KindUser
	}
}

// position hashes the post id into stable (top, left) percentages in
// [10, 90).
func position(id string) (top, left float64) {
	h := fnv.New64a()
	h.Write([]byte(id))
	sum := h.Sum64()

	lo := sum & 0xffffffff
	hi := sum >> 32
	top = 10 + float64(lo%8000)/100
	left = 10 + float64(hi%8000)/100
	return top, left
}
