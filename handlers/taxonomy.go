package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/feed"
)

// GetTaxonomy exposes the pillar -> categories mapping with display labels
// and configs, so clients render selectors from the server's taxonomy
// instead of hardcoding it.
func GetTaxonomy(c *gin.Context) {
	pillars := make([]gin.H, 0, len(feed.Pillars))
	for _, pillar := range feed.Pillars {
		categories := feed.CategoriesOf(pillar)
		members := make([]gin.H, len(categories))
		for i, cat := range categories {
			members[i] = gin.H{
				"id":     cat,
				"label":  feed.Label(cat),
				"config": feed.DisplayConfig(cat),
			}
		}
		pillars = append(pillars, gin.H{
			"id":         pillar,
			"label":      feed.PillarLabel(pillar),
			"categories": members,
		})
	}

	c.JSON(http.StatusOK, gin.H{"pillars": pillars})
}
