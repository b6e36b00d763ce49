package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/BharathDevanaboina/Linkup/models"
)

// Memory is the mock backend: everything lives in process memory for the
// session. It is seeded with the sample signals so the app is usable without
// a database, and it is what the tests run against.
type Memory struct {
	mu       sync.RWMutex
	posts    []models.Post // newest first
	users    map[string]models.User
	chats    map[string]models.Chat
	messages map[string][]models.Message // by chat id
	reports  []models.Report
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		chats:    make(map[string]models.Chat),
		messages: make(map[string][]models.Message),
	}
}

// NewSeededMemory returns a Memory pre-populated with the sample signals
// and their authors.
func NewSeededMemory() *Memory {
	m := NewMemory()
	for _, p := range SamplePosts() {
		m.posts = append(m.posts, p)
		if !p.IsAnonymous && p.User.ID != "" {
			m.users[p.User.ID] = p.User
		}
	}
	return m
}

func (m *Memory) CreatePost(_ context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.posts = append([]models.Post{*p}, m.posts...)
	return nil
}

func (m *Memory) Feed(_ context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *Memory) PostByID(_ context.Context, id string) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

func (m *Memory) PostsByUser(_ context.Context, userID string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Post
	for _, p := range m.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) JoinPost(_ context.Context, id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts[i].Attendees++
			return m.posts[i].Attendees, nil
		}
	}
	return 0, ErrNotFound
}

func (m *Memory) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) UserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) CreateChat(_ context.Context, c *models.Chat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.chats[c.ID] = *c
	return nil
}

func (m *Memory) ChatByID(_ context.Context, id string) (models.Chat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.chats[id]
	if !ok {
		return models.Chat{}, ErrNotFound
	}
	return c, nil
}

func (m *Memory) ChatsForUser(_ context.Context, userID string) ([]models.Chat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Chat
	for _, c := range m.chats {
		for _, p := range c.Participants {
			if p == userID {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (m *Memory) AppendMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.chats[msg.ChatID]; !ok {
		return ErrNotFound
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	m.messages[msg.ChatID] = append(m.messages[msg.ChatID], *msg)

	chat := m.chats[msg.ChatID]
	chat.LastMessage = msg.Text
	chat.LastMessageAt = msg.CreatedAt
	m.chats[msg.ChatID] = chat
	return nil
}

func (m *Memory) MessagesForChat(_ context.Context, chatID string) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.messages[chatID]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (m *Memory) CreateReport(_ context.Context, r *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.reports = append(m.reports, *r)
	return nil
}
