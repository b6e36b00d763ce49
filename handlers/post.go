package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/feed"
	"github.com/BharathDevanaboina/Linkup/models"
	"github.com/BharathDevanaboina/Linkup/store"
)

type CreateSignalRequest struct {
	Category          string   `json:"category" binding:"required"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Location          string   `json:"location"`
	Price             string   `json:"price"`
	Reward            string   `json:"reward"`
	Tags              []string `json:"tags"`
	IsAnonymous       bool     `json:"isAnonymous"`
	IsLocationPrivate bool     `json:"isLocationPrivate"`
	MinRating         *float64 `json:"minRating"`
	ExpiresInMinutes  *int     `json:"expiresInMinutes"`
	Difficulty        *int     `json:"difficulty"`
	IsHighStakes      bool     `json:"isHighStakes"`
	MediaURL          string   `json:"mediaUrl"`
}

// SignalView is a post plus the per-viewer derived display state.
type SignalView struct {
	models.Post
	Author               feed.Author `json:"author"`
	DisplayLocation      string      `json:"displayLocation"`
	Locked               bool        `json:"locked"`
	TimeRemainingSeconds *int64      `json:"timeRemainingSeconds,omitempty"`
	Countdown            string      `json:"countdown,omitempty"`
	Age                  string      `json:"age"`
	CategoryLabel        string      `json:"categoryLabel"`
	CategoryConfig       feed.Config `json:"categoryConfig"`
}

func signalView(p models.Post, viewerRating *float64, now time.Time) SignalView {
	view := SignalView{
		Post:            p,
		Author:          feed.DisplayAuthor(p),
		DisplayLocation: feed.DisplayLocation(p),
		Locked:          feed.IsLocked(p, viewerRating),
		Age:             relativeAge(p.CreatedAt, now),
		CategoryLabel:   feed.Label(p.Category),
		CategoryConfig:  feed.DisplayConfig(p.Category),
	}
	if remaining, ok := feed.TimeRemaining(p, now); ok {
		secs := int64(remaining / time.Second)
		view.TimeRemainingSeconds = &secs
		view.Countdown = feed.FormatCountdown(remaining)
	}
	return view
}

// viewerRating looks up the authenticated caller's reputation. A missing
// user yields nil, which the lifecycle rules treat as the lowest rating.
func viewerRating(ctx context.Context, c *gin.Context) *float64 {
	userID := c.GetString("userId")
	if userID == "" {
		return nil
	}
	user, err := db.UserByID(ctx, userID)
	if err != nil {
		return nil
	}
	return &user.Rating
}

func CreateSignal(c *gin.Context) {
	var req CreateSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := feed.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.GetString("userId")
	user, err := db.UserByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	// The author snapshot is redacted here, once, at creation. Anonymous
	// posts never carry the real identity anywhere downstream.
	snapshot := user
	snapshot.Email = ""
	snapshot.PasswordHash = ""
	if req.IsAnonymous {
		snapshot = models.User{ID: user.ID, Name: feed.AnonymousName, Handle: "anonymous"}
	}

	post := models.Post{
		UserID:            userID,
		User:              snapshot,
		Category:          category,
		Title:             req.Title,
		Description:       req.Description,
		Tags:              req.Tags,
		Location:          req.Location,
		IsLocationPrivate: req.IsLocationPrivate,
		Price:             req.Price,
		Reward:            req.Reward,
		IsAnonymous:       req.IsAnonymous,
		MinRating:         req.MinRating,
		Difficulty:        req.Difficulty,
		IsHighStakes:      req.IsHighStakes,
		MediaURL:          req.MediaURL,
		CreatedAt:         time.Now().Unix(),
	}
	if req.ExpiresInMinutes != nil {
		expires := time.Now().Add(time.Duration(*req.ExpiresInMinutes) * time.Minute).UnixMilli()
		post.ExpiresAt = &expires
	}

	if err := db.CreatePost(ctx, &post); err != nil {
		log.Printf("CreateSignal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create signal"})
		return
	}

	if wsManager != nil {
		wsManager.BroadcastSignalCreated(signalView(post, nil, time.Now()))
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Signal posted successfully",
		"signalId": post.ID,
	})
}

func GetFeed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pillarParam := c.DefaultQuery("pillar", string(feed.PillarEvents))
	pillar, ok := feed.ParsePillar(pillarParam)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pillar"})
		return
	}

	subCategory := c.DefaultQuery("category", feed.SubCategoryAll)
	if subCategory != feed.SubCategoryAll {
		if _, ok := feed.ParseCategory(subCategory); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
	}

	radarMode := c.Query("radar") == "true" || c.Query("radar") == "1"

	posts, err := db.Feed(ctx)
	if err != nil {
		log.Printf("GetFeed error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signals"})
		return
	}

	for _, bad := range feed.UnknownCategories(posts) {
		log.Printf("[GetFeed] data integrity: signal %s has unknown category %q", bad.ID, bad.Category)
	}

	visible := feed.Filter(posts, feed.ViewState{
		Pillar:        pillar,
		SubCategory:   subCategory,
		LocationQuery: c.Query("location"),
		RadarMode:     radarMode,
	})

	rating := viewerRating(ctx, c)
	now := time.Now()
	views := make([]SignalView, len(visible))
	for i, p := range visible {
		views[i] = signalView(p, rating, now)
	}

	c.JSON(http.StatusOK, views)
}

func GetSignal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := db.PostByID(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signal"})
		return
	}

	c.JSON(http.StatusOK, signalView(post, viewerRating(ctx, c), time.Now()))
}

func JoinSignal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := db.PostByID(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signal"})
		return
	}

	// Locked signals stay visible but are non-interactive.
	if feed.IsLocked(post, viewerRating(ctx, c)) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Signal is locked",
			"minRating": post.MinRating,
		})
		return
	}

	attendees, err := db.JoinPost(ctx, post.ID)
	if err != nil {
		log.Printf("JoinSignal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join signal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendees": attendees})
}

func GetMySignals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := db.PostsByUser(ctx, c.GetString("userId"))
	if err != nil {
		log.Printf("GetMySignals error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signals"})
		return
	}

	rating := viewerRating(ctx, c)
	now := time.Now()
	views := make([]SignalView, len(posts))
	for i, p := range posts {
		views[i] = signalView(p, rating, now)
	}
	c.JSON(http.StatusOK, views)
}

func GetUserSignals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := db.PostsByUser(ctx, c.Param("id"))
	if err != nil {
		log.Printf("GetUserSignals error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signals"})
		return
	}

	rating := viewerRating(ctx, c)
	now := time.Now()
	views := make([]SignalView, len(posts))
	for i, p := range posts {
		views[i] = signalView(p, rating, now)
	}
	c.JSON(http.StatusOK, views)
}
