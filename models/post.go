package models

// Category identifies a signal's content kind. Values are stable opaque
// identifiers persisted as-is; display labels live in the feed package and
// may be renamed without touching stored data.
type Category string

const (
	// Events pillar
	CategorySocial   Category = "social"
	CategoryRide     Category = "ride"
	CategoryWellness Category = "wellness"
	CategoryEvent    Category = "event"
	CategoryOthers   Category = "others"

	// Tasks pillar
	CategoryService   Category = "service"
	CategoryEducation Category = "education"
	CategoryRental    Category = "rental"
	CategoryCompanion Category = "companion"
	CategoryTaskOther Category = "task_other"

	// Bounty pillar
	CategoryBounty Category = "bounty"

	// Secret pillar
	CategoryAnonymous Category = "anonymous"
	CategoryChat      Category = "chat"
)

// Post is a user-authored signal. The embedded User is a snapshot taken at
// creation time; for anonymous posts it is already redacted and the redaction
// is irreversible for that post instance.
type Post struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	UserID      string   `bson:"userId" json:"userId"`
	User        User     `bson:"user" json:"user"`
	Category    Category `bson:"category" json:"category"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Tags        []string `bson:"tags" json:"tags"`

	Location          string `bson:"location" json:"location"`
	IsLocationPrivate bool   `bson:"isLocationPrivate,omitempty" json:"isLocationPrivate,omitempty"`

	Price     string `bson:"price,omitempty" json:"price,omitempty"`
	Reward    string `bson:"reward,omitempty" json:"reward,omitempty"`
	IsBoosted bool   `bson:"isBoosted,omitempty" json:"isBoosted,omitempty"`

	IsAnonymous bool     `bson:"isAnonymous,omitempty" json:"isAnonymous,omitempty"`
	MinRating   *float64 `bson:"minRating,omitempty" json:"minRating,omitempty"`

	// ExpiresAt is unix milliseconds. Expired posts stay in the collection;
	// removal is a purge job's responsibility, not the feed's.
	ExpiresAt    *int64 `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Difficulty   *int   `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	IsHighStakes bool   `bson:"isHighStakes,omitempty" json:"isHighStakes,omitempty"`

	MediaURL  string `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Attendees int    `bson:"attendees" json:"attendees"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}
