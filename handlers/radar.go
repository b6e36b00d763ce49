package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/radar"
)

// GetRadar returns every signal as a radar blip. Radar deliberately bypasses
// pillar/category/location filtering; the spatial view shows it all.
func GetRadar(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := db.Feed(ctx)
	if err != nil {
		log.Printf("GetRadar error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signals"})
		return
	}

	blips := radar.Blips(posts)
	c.JSON(http.StatusOK, gin.H{
		"signals": len(blips),
		"blips":   blips,
	})
}
