package models

type User struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	Email        string  `bson:"email,omitempty" json:"-"`
	PasswordHash string  `bson:"passwordHash,omitempty" json:"-"`
	Name         string  `bson:"name" json:"name"`
	Handle       string  `bson:"handle" json:"handle"`
	Avatar       string  `bson:"avatar" json:"avatar"`
	IsVerified   bool    `bson:"isVerified" json:"isVerified"`
	Rating       float64 `bson:"rating" json:"rating"`
	Bio          string  `bson:"bio,omitempty" json:"bio,omitempty"`
	IsPremium    bool    `bson:"isPremium,omitempty" json:"isPremium,omitempty"`
	CreatedAt    int64   `bson:"createdAt" json:"createdAt"`
	LastSeen     int64   `bson:"lastSeen" json:"lastSeen"`
}
