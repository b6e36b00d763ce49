package feed

import (
	"strings"

	"github.com/BharathDevanaboina/Linkup/models"
)

// SubCategoryAll is the sentinel meaning "no sub-category filter".
const SubCategoryAll = "All"

// ViewState is the caller's current view selection. It is pure input: the
// engine never mutates it and holds no state between calls.
type ViewState struct {
	Pillar        Pillar
	SubCategory   string // SubCategoryAll or a category identifier
	LocationQuery string
	RadarMode     bool
}

// Filter computes the visible subset of posts for the given view state.
// The result is always an order-preserving subsequence of the input; the
// engine never re-sorts. Posts are expected newest-first by convention.
func Filter(posts []models.Post, vs ViewState) []models.Post {
	// Radar mode shows everything; the spatial view handles distribution.
	if vs.RadarMode {
		return posts
	}

	query := strings.ToLower(strings.TrimSpace(vs.LocationQuery))

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if !inPillar(p, vs.Pillar) {
			continue
		}
		if vs.SubCategory != "" && vs.SubCategory != SubCategoryAll &&
			string(p.Category) != vs.SubCategory {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Location), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// inPillar reports whether a post belongs to a pillar's feed. The Secret
// pillar additionally claims any anonymous post regardless of its nominal
// category; this is a union with the category membership, not a replacement.
func inPillar(p models.Post, pillar Pillar) bool {
	if pillar == PillarSecret && p.IsAnonymous {
		return true
	}
	owner, ok := PillarOf(p.Category)
	if !ok {
		// Unknown category: invisible in every pillar, never a crash.
		return false
	}
	return owner == pillar
}

// UnknownCategories returns the posts whose category falls outside the
// enumerated set, for data-integrity logging by the caller.
func UnknownCategories(posts []models.Post) []models.Post {
	var bad []models.Post
	for _, p := range posts {
		if _, ok := PillarOf(p.Category); !ok {
			bad = append(bad, p)
		}
	}
	return bad
}
