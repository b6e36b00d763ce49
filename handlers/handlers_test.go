package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharathDevanaboina/Linkup/ai"
	"github.com/BharathDevanaboina/Linkup/handlers"
	"github.com/BharathDevanaboina/Linkup/middleware"
	"github.com/BharathDevanaboina/Linkup/routes"
	"github.com/BharathDevanaboina/Linkup/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// newServer wires a fresh seeded in-memory backend and returns the router.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	handlers.SetStore(store.NewSeededMemory())
	handlers.SetEnhancer(nil)
	return routes.SetupRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// tokenFor issues a session token for a seeded user id.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.NewToken(userID)
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndLogin(t *testing.T) {
	router := newServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup", "", gin.H{
		"email":    "dana@example.com",
		"password": "hunter22",
		"name":     "Dana",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	decode(t, w, &created)
	assert.NotEmpty(t, created["token"])
	assert.NotEmpty(t, created["userId"])

	// Duplicate email is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/signup", "", gin.H{
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "dana@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "dana@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func feedIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var views []map[string]interface{}
	decode(t, w, &views)
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v["id"].(string)
	}
	return ids
}

func TestFeedDefaultsToEventsPillar(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodGet, "/api/feed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"seed-11", "seed-8", "seed-1", "seed-2"}, feedIDs(t, w))
}

func TestFeedSecretPillar(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodGet, "/api/feed?pillar=secret", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"seed-9", "seed-6"}, feedIDs(t, w))
}

func TestFeedSubCategoryFilter(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodGet, "/api/feed?pillar=events&category=event", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"seed-1"}, feedIDs(t, w))
}

func TestFeedLocationFilter(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodGet, "/api/feed?pillar=tasks&location=mall", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"seed-3"}, feedIDs(t, w))
}

func TestFeedRejectsUnknownPillarAndCategory(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodGet, "/api/feed?pillar=nonsense", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/feed?pillar=events&category=nonsense", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedLockStateDependsOnViewer(t *testing.T) {
	router := newServer(t)

	lockedFor := func(token string) bool {
		w := doJSON(t, router, http.MethodGet, "/api/feed?pillar=events&category=social", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var views []map[string]interface{}
		decode(t, w, &views)
		require.Len(t, views, 1)
		require.Equal(t, "seed-8", views[0]["id"])
		return views[0]["locked"].(bool)
	}

	// Jake (4.2) is below the 4.9 gate, Sarah (4.9) meets it.
	assert.True(t, lockedFor(tokenFor(t, "u5")))
	assert.False(t, lockedFor(tokenFor(t, "u1")))
}

func TestJoinSignal(t *testing.T) {
	router := newServer(t)

	// Below the gate: visible but non-interactive.
	w := doJSON(t, router, http.MethodPost, "/api/signals/seed-8/join", tokenFor(t, "u5"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	var denied map[string]interface{}
	decode(t, w, &denied)
	assert.Equal(t, 4.9, denied["minRating"])

	// At the gate.
	w = doJSON(t, router, http.MethodPost, "/api/signals/seed-8/join", tokenFor(t, "u1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var joined map[string]interface{}
	decode(t, w, &joined)
	assert.Equal(t, float64(5), joined["attendees"])

	w = doJSON(t, router, http.MethodPost, "/api/signals/missing/join", tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSignalCountdown(t *testing.T) {
	router := newServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/signals/seed-5", tokenFor(t, "u1"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	decode(t, w, &view)
	assert.NotNil(t, view["timeRemainingSeconds"])
	assert.NotEmpty(t, view["countdown"])

	w = doJSON(t, router, http.MethodGet, "/api/signals/missing", tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAnonymousSignalRedactsAuthor(t *testing.T) {
	router := newServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup", "", gin.H{
		"email":    "ghost@example.com",
		"password": "hunter22",
		"name":     "Casey",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var session map[string]interface{}
	decode(t, w, &session)
	token := session["token"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/signals", token, gin.H{
		"category":    "anonymous",
		"title":       "Midnight rooftop meetup",
		"description": "No names. Bring snacks.",
		"location":    "Old Mill Rooftop",
		"isAnonymous": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	decode(t, w, &created)
	signalID := created["signalId"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/signals/"+signalID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view map[string]interface{}
	decode(t, w, &view)

	author := view["author"].(map[string]interface{})
	assert.Equal(t, "Anonymous", author["name"])

	snapshot := view["user"].(map[string]interface{})
	assert.Equal(t, "Anonymous", snapshot["name"])
	assert.NotContains(t, snapshot, "email")
	assert.NotEqual(t, "Casey", snapshot["name"])
}

func TestCreateSignalUnknownCategory(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodPost, "/api/signals", tokenFor(t, "u1"), gin.H{
		"category":    "astral",
		"title":       "x",
		"description": "y",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMySignals(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/my/signals", tokenFor(t, "u1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"seed-1"}, feedIDs(t, w))
}

func TestTaxonomy(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/taxonomy", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pillars []struct {
			ID         string `json:"id"`
			Label      string `json:"label"`
			Categories []struct {
				ID    string `json:"id"`
				Label string `json:"label"`
			} `json:"categories"`
		} `json:"pillars"`
	}
	decode(t, w, &body)

	require.Len(t, body.Pillars, 4)
	assert.Equal(t, "events", body.Pillars[0].ID)
	assert.Equal(t, "Events", body.Pillars[0].Label)
	assert.Len(t, body.Pillars[0].Categories, 5)
}

func TestRadar(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/radar", tokenFor(t, "u1"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Signals int `json:"signals"`
		Blips   []struct {
			PostID string  `json:"postId"`
			Kind   string  `json:"kind"`
			Top    float64 `json:"top"`
			Left   float64 `json:"left"`
		} `json:"blips"`
	}
	decode(t, w, &body)

	assert.Equal(t, 10, body.Signals)
	require.Len(t, body.Blips, 10)
	for _, b := range body.Blips {
		assert.GreaterOrEqual(t, b.Top, 10.0)
		assert.Less(t, b.Top, 90.0)
		assert.GreaterOrEqual(t, b.Left, 10.0)
		assert.Less(t, b.Left, 90.0)
	}
}

func TestReportSignal(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, router, http.MethodPost, "/api/reports", token, gin.H{
		"postId": "seed-1",
		"reason": "spam",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/reports", token, gin.H{
		"postId": "missing",
		"reason": "spam",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatFlow(t *testing.T) {
	router := newServer(t)
	sarah := tokenFor(t, "u1")
	mike := tokenFor(t, "u2")

	w := doJSON(t, router, http.MethodPost, "/api/chats", sarah, gin.H{
		"participants": []string{"u2"},
		"isEncrypted":  true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	decode(t, w, &created)
	chatID := created["chatId"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/message", sarah, gin.H{
		"chatId": chatID,
		"text":   "See you at the villa",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/chats/"+chatID+"/messages", mike, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]interface{}
	decode(t, w, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, "See you at the villa", messages[0]["text"])
	assert.Equal(t, "text", messages[0]["type"])

	w = doJSON(t, router, http.MethodGet, "/api/chats", mike, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chats []map[string]interface{}
	decode(t, w, &chats)
	require.Len(t, chats, 1)
	assert.Equal(t, "See you at the villa", chats[0]["lastMessage"])
	partner := chats[0]["partner"].(map[string]interface{})
	assert.Equal(t, "Sarah Chen", partner["name"])

	w = doJSON(t, router, http.MethodGet, "/api/chats/missing/messages", mike, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type stubEnhancer struct {
	result ai.Enhancement
	err    error
}

func (s stubEnhancer) Enhance(_ context.Context, _, _ string) (ai.Enhancement, error) {
	return s.result, s.err
}

func TestEnhanceFallbackWithoutEnhancer(t *testing.T) {
	router := newServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/enhance", tokenFor(t, "u1"), gin.H{
		"text":     "need someone to walk my dog",
		"category": "service",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result ai.Enhancement
	decode(t, w, &result)
	assert.Equal(t, "Service Request", result.Title)
	assert.Equal(t, "need someone to walk my dog", result.Description)
	assert.Equal(t, []string{"Service", "New"}, result.Tags)
}

func TestEnhanceUsesConfiguredEnhancer(t *testing.T) {
	router := newServer(t)
	token := tokenFor(t, "u1")

	handlers.SetEnhancer(stubEnhancer{result: ai.Enhancement{
		Title:       "Dog Walker Wanted",
		Description: "Friendly golden retriever needs a daily walk.",
		Tags:        []string{"Pets", "Daily", "Easy"},
	}})
	t.Cleanup(func() { handlers.SetEnhancer(nil) })

	w := doJSON(t, router, http.MethodPost, "/api/enhance", token, gin.H{
		"text":     "need someone to walk my dog",
		"category": "service",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var result ai.Enhancement
	decode(t, w, &result)
	assert.Equal(t, "Dog Walker Wanted", result.Title)

	// Errors degrade to the fallback instead of failing the request.
	handlers.SetEnhancer(stubEnhancer{err: errors.New("quota exceeded")})
	w = doJSON(t, router, http.MethodPost, "/api/enhance", token, gin.H{
		"text":     "need someone to walk my dog",
		"category": "service",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	assert.Equal(t, "Service Request", result.Title)
}

func TestEnhanceUnknownCategory(t *testing.T) {
	router := newServer(t)
	w := doJSON(t, router, http.MethodPost, "/api/enhance", tokenFor(t, "u1"), gin.H{
		"text":     "hello",
		"category": "astral",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
