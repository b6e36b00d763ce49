package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BharathDevanaboina/Linkup/models"
)

// Mongo is the real backend, one collection per record type.
type Mongo struct {
	posts    *mongo.Collection
	users    *mongo.Collection
	chats    *mongo.Collection
	messages *mongo.Collection
	reports  *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		posts:    db.Collection("posts"),
		users:    db.Collection("users"),
		chats:    db.Collection("chats"),
		messages: db.Collection("messages"),
		reports:  db.Collection("reports"),
	}
}

func (s *Mongo) CreatePost(ctx context.Context, p *models.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.posts.InsertOne(ctx, p)
	return err
}

func (s *Mongo) Feed(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Mongo) PostByID(ctx context.Context, id string) (models.Post, error) {
	var p models.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	return p, err
}

func (s *Mongo) PostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Mongo) JoinPost(ctx context.Context, id string) (int, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Post
	err := s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"attendees": 1}},
		opts,
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return p.Attendees, nil
}

func (s *Mongo) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := s.users.InsertOne(ctx, u)
	return err
}

func (s *Mongo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *Mongo) UserByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *Mongo) CreateChat(ctx context.Context, c *models.Chat) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.chats.InsertOne(ctx, c)
	return err
}

func (s *Mongo) ChatByID(ctx context.Context, id string) (models.Chat, error) {
	var c models.Chat
	err := s.chats.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Chat{}, ErrNotFound
	}
	return c, err
}

func (s *Mongo) ChatsForUser(ctx context.Context, userID string) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	cursor, err := s.chats.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chats []models.Chat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (s *Mongo) AppendMessage(ctx context.Context, m *models.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if _, err := s.messages.InsertOne(ctx, m); err != nil {
		return err
	}

	_, err := s.chats.UpdateOne(ctx,
		bson.M{"_id": m.ChatID},
		bson.M{"$set": bson.M{"lastMessage": m.Text, "lastMessageAt": m.CreatedAt}},
	)
	return err
}

func (s *Mongo) MessagesForChat(ctx context.Context, chatID string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.messages.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Mongo) CreateReport(ctx context.Context, r *models.Report) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.reports.InsertOne(ctx, r)
	return err
}
