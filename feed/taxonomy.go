// Package feed implements the signal taxonomy, the feed filter engine and
// the per-post lifecycle rules. Everything in this package is pure and
// side-effect free; callers re-invoke it whenever posts or view state change.
package feed

import "github.com/BharathDevanaboina/Linkup/models"

// Pillar is one of the four top-level content groupings. Every category
// belongs to exactly one pillar.
type Pillar string

const (
	PillarEvents Pillar = "events"
	PillarTasks  Pillar = "tasks"
	PillarBounty Pillar = "bounty"
	PillarSecret Pillar = "secret"
)

// Pillars lists the pillars in display order.
var Pillars = []Pillar{PillarEvents, PillarTasks, PillarBounty, PillarSecret}

// pillarCategories is the fixed, total pillar -> categories mapping.
// Order is canonical display order for sub-category selectors.
var pillarCategories = map[Pillar][]models.Category{
	PillarEvents: {
		models.CategorySocial,
		models.CategoryRide,
		models.CategoryWellness,
		models.CategoryEvent,
		models.CategoryOthers,
	},
	PillarTasks: {
		models.CategoryService,
		models.CategoryEducation,
		models.CategoryRental,
		models.CategoryCompanion,
		models.CategoryTaskOther,
	},
	PillarBounty: {
		models.CategoryBounty,
	},
	PillarSecret: {
		models.CategoryAnonymous,
		models.CategoryChat,
	},
}

// categoryPillar is derived from pillarCategories at init so the two can
// never disagree.
var categoryPillar = func() map[models.Category]Pillar {
	m := make(map[models.Category]Pillar)
	for _, pillar := range Pillars {
		for _, cat := range pillarCategories[pillar] {
			m[cat] = pillar
		}
	}
	return m
}()

// PillarOf returns the pillar a category belongs to. ok is false for values
// outside the enumerated set; such posts are excluded from every pillar
// rather than crashing the feed.
func PillarOf(c models.Category) (Pillar, bool) {
	p, ok := categoryPillar[c]
	return p, ok
}

// CategoriesOf returns the member categories of a pillar in canonical
// display order. The returned slice is a copy.
func CategoriesOf(p Pillar) []models.Category {
	members := pillarCategories[p]
	out := make([]models.Category, len(members))
	copy(out, members)
	return out
}

// ParsePillar maps a request value to a Pillar.
func ParsePillar(s string) (Pillar, bool) {
	switch Pillar(s) {
	case PillarEvents, PillarTasks, PillarBounty, PillarSecret:
		return Pillar(s), true
	}
	return "", false
}

// ParseCategory maps a request value to a Category.
func ParseCategory(s string) (models.Category, bool) {
	c := models.Category(s)
	_, ok := categoryPillar[c]
	return c, ok
}

// Config is the per-category display configuration: an icon identifier and
// a color gradient token, both consumed by clients as-is.
type Config struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var defaultConfig = Config{Icon: "sparkles", Color: "from-gray-400 to-gray-500"}

var categoryConfig = map[models.Category]Config{
	models.CategorySocial:    {Icon: "zap", Color: "from-yellow-400 to-orange-500"},
	models.CategoryRide:      {Icon: "rocket", Color: "from-blue-400 to-cyan-500"},
	models.CategoryWellness:  {Icon: "flame", Color: "from-emerald-400 to-teal-500"},
	models.CategoryEvent:     {Icon: "clapperboard", Color: "from-purple-400 to-pink-500"},
	models.CategoryOthers:    {Icon: "dna", Color: "from-gray-400 to-gray-200"},
	models.CategoryService:   {Icon: "clipboard-list", Color: "from-orange-400 to-red-500"},
	models.CategoryEducation: {Icon: "brain-circuit", Color: "from-indigo-400 to-violet-500"},
	models.CategoryRental:    {Icon: "tent", Color: "from-lime-400 to-green-500"},
	models.CategoryCompanion: {Icon: "bot", Color: "from-pink-400 to-rose-500"},
	models.CategoryTaskOther: {Icon: "wrench", Color: "from-amber-400 to-orange-500"},
	models.CategoryBounty:    {Icon: "trophy", Color: "from-yellow-500 to-amber-600"},
	models.CategoryAnonymous: {Icon: "ghost", Color: "from-pink-500 to-rose-600"},
	models.CategoryChat:      {Icon: "message-square", Color: "from-indigo-500 to-purple-600"},
}

// DisplayConfig returns the display configuration for a category. Unknown
// categories get a neutral default so rendering never fails on new values.
func DisplayConfig(c models.Category) Config {
	if cfg, ok := categoryConfig[c]; ok {
		return cfg
	}
	return defaultConfig
}

// categoryLabels is the display-label table. Labels are copy and have been
// renamed before (Challenge -> Gauntlet -> Bounty); the stored Category
// identifiers never change with them.
var categoryLabels = map[models.Category]string{
	models.CategorySocial:    "Social",
	models.CategoryRide:      "Ride",
	models.CategoryWellness:  "Wellness",
	models.CategoryEvent:     "Event",
	models.CategoryOthers:    "Others",
	models.CategoryService:   "Service",
	models.CategoryEducation: "Education",
	models.CategoryRental:    "Rental",
	models.CategoryCompanion: "Companion",
	models.CategoryTaskOther: "Other Task",
	models.CategoryBounty:    "Bounty",
	models.CategoryAnonymous: "Anonymous",
	models.CategoryChat:      "Chat",
}

// Label returns the display label for a category, falling back to the raw
// identifier for unknown values.
func Label(c models.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

var pillarLabels = map[Pillar]string{
	PillarEvents: "Events",
	PillarTasks:  "Tasks",
	PillarBounty: "Bounties",
	PillarSecret: "Secret",
}

// PillarLabel returns the display label for a pillar.
func PillarLabel(p Pillar) string {
	if l, ok := pillarLabels[p]; ok {
		return l
	}
	return string(p)
}
