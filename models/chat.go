package models

type Chat struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	Participants  []string `bson:"participants" json:"participants"`
	LastMessage   string   `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt int64    `bson:"lastMessageAt" json:"lastMessageAt"`
	IsEncrypted   bool     `bson:"isEncrypted" json:"isEncrypted"`
	CreatedAt     int64    `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type Message struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	ChatID    string `bson:"chatId" json:"chatId"`
	SenderID  string `bson:"senderId" json:"senderId"`
	Text      string `bson:"text" json:"text"`
	Type      string `bson:"type" json:"type"` // text, location_share, rating_request
	IsSystem  bool   `bson:"isSystem,omitempty" json:"isSystem,omitempty"`
	IsRead    bool   `bson:"isRead" json:"isRead"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

type Report struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	PostID     string `bson:"postId" json:"postId"`
	ReporterID string `bson:"reporterId" json:"reporterId"`
	Reason     string `bson:"reason" json:"reason"`
	CreatedAt  int64  `bson:"createdAt" json:"createdAt"`
}
