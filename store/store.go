// Package store owns the create/read lifecycle of LinkUp records. The
// backend is picked once at startup: Mongo when configured, the seeded
// in-memory store otherwise. Handlers only see the Store interface.
package store

import (
	"context"
	"errors"

	"github.com/BharathDevanaboina/Linkup/models"
)

var ErrNotFound = errors.New("store: not found")

type Store interface {
	// Posts. Feed returns newest-first; a newly created post is prepended.
	CreatePost(ctx context.Context, p *models.Post) error
	Feed(ctx context.Context) ([]models.Post, error)
	PostByID(ctx context.Context, id string) (models.Post, error)
	PostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	// JoinPost increments the attendee counter and returns the new count.
	JoinPost(ctx context.Context, id string) (int, error)

	// Users.
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)

	// Chats.
	CreateChat(ctx context.Context, c *models.Chat) error
	ChatByID(ctx context.Context, id string) (models.Chat, error)
	ChatsForUser(ctx context.Context, userID string) ([]models.Chat, error)
	AppendMessage(ctx context.Context, m *models.Message) error
	MessagesForChat(ctx context.Context, chatID string) ([]models.Message, error)

	// Moderation.
	CreateReport(ctx context.Context, r *models.Report) error
}
