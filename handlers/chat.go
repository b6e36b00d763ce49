package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/models"
	"github.com/BharathDevanaboina/Linkup/store"
)

func GetChatList(c *gin.Context) {
	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chats, err := db.ChatsForUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chats"})
		return
	}

	// Project the other participant with fallback values, so the client
	// never has to deal with a missing partner.
	response := make([]map[string]interface{}, len(chats))
	for i, chat := range chats {
		partner := map[string]interface{}{
			"id":     "",
			"name":   "Unknown",
			"avatar": fallbackAvatar,
		}
		for _, pid := range chat.Participants {
			if pid == userID {
				continue
			}
			if u, err := db.UserByID(ctx, pid); err == nil {
				partner["id"] = u.ID
				partner["name"] = u.Name
				if u.Avatar != "" {
					partner["avatar"] = u.Avatar
				}
			} else {
				partner["id"] = pid
			}
			break
		}

		response[i] = map[string]interface{}{
			"id":            chat.ID,
			"lastMessage":   chat.LastMessage,
			"lastMessageAt": chat.LastMessageAt,
			"isEncrypted":   chat.IsEncrypted,
			"partner":       partner,
		}
	}

	c.JSON(http.StatusOK, response)
}

func CreateChat(c *gin.Context) {
	var req struct {
		Participants []string `json:"participants" binding:"required,min=1"`
		IsEncrypted  bool     `json:"isEncrypted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.GetString("userId")
	participants := append([]string{userID}, req.Participants...)

	chat := models.Chat{
		Participants: participants,
		IsEncrypted:  req.IsEncrypted,
		CreatedAt:    time.Now().Unix(),
	}
	if err := db.CreateChat(ctx, &chat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chatId": chat.ID})
}

func GetMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := c.Param("id")
	if _, err := db.ChatByID(ctx, chatID); errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	messages, err := db.MessagesForChat(ctx, chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func SendMessage(c *gin.Context) {
	var req struct {
		ChatID string `json:"chatId" binding:"required"`
		Text   string `json:"text" binding:"required"`
		Type   string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Type == "" {
		req.Type = "text"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := models.Message{
		ChatID:    req.ChatID,
		SenderID:  c.GetString("userId"),
		Text:      req.Text,
		Type:      req.Type,
		CreatedAt: time.Now().Unix(),
	}
	if err := db.AppendMessage(ctx, &message); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if wsManager != nil {
		wsManager.BroadcastNewMessage(message)
	}

	c.JSON(http.StatusCreated, message)
}

func SendTypingIndicator(c *gin.Context) {
	var req struct {
		ChatID string `json:"chatId" binding:"required"`
		Typing bool   `json:"typing"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if wsManager != nil {
		eventType := "typing_end"
		if req.Typing {
			eventType = "typing_start"
		}
		wsManager.BroadcastTyping(eventType, req.ChatID, c.GetString("userId"))
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
