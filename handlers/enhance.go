package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/ai"
	"github.com/BharathDevanaboina/Linkup/feed"
)

type EnhanceRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// EnhancePost rewrites a raw draft into listing copy. Enhancement never
// fails the request: any AI error degrades to the local fallback.
func EnhancePost(c *gin.Context) {
	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := feed.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	label := feed.Label(category)

	if enhancer == nil {
		c.JSON(http.StatusOK, ai.Fallback(req.Text, label))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := enhancer.Enhance(ctx, req.Text, label)
	if err != nil {
		log.Printf("EnhancePost falling back: %v", err)
		c.JSON(http.StatusOK, ai.Fallback(req.Text, label))
		return
	}

	c.JSON(http.StatusOK, result)
}
