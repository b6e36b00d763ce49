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

type ReportRequest struct {
	PostID string `json:"postId" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

func ReportSignal(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.PostByID(ctx, req.PostID); errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signal not found"})
		return
	}

	report := models.Report{
		PostID:     req.PostID,
		ReporterID: c.GetString("userId"),
		Reason:     req.Reason,
		CreatedAt:  time.Now().Unix(),
	}
	if err := db.CreateReport(ctx, &report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted"})
}
