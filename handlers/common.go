package handlers

import (
	"fmt"
	"time"

	"github.com/BharathDevanaboina/Linkup/ai"
	"github.com/BharathDevanaboina/Linkup/store"
	"github.com/BharathDevanaboina/Linkup/websocket"
)

// Common constants and collaborators shared across all handler files.
const fallbackAvatar = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"

var (
	db        store.Store
	wsManager *websocket.Manager
	enhancer  ai.Enhancer
)

// SetStore wires the backend selected at startup (Mongo or in-memory).
func SetStore(s store.Store) {
	db = s
}

// SetWebSocketManager sets the global WebSocket manager.
func SetWebSocketManager(manager *websocket.Manager) {
	wsManager = manager
}

// SetEnhancer sets the AI enhancement collaborator. When nil, enhancement
// falls back to the deterministic local rewrite.
func SetEnhancer(e ai.Enhancer) {
	enhancer = e
}

// relativeAge renders a creation instant as the feed's timestamp label.
func relativeAge(createdAt int64, now time.Time) string {
	d := now.Sub(time.Unix(createdAt, 0))
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
