package handlers

import (
	"context"
	"net/http"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	Service *service.LeaderboardService
}

func NewLeaderboardHandler(s *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	weekly := c.DefaultQuery("period", "overall") == "weekly"
	entries, err := h.Service.Top(context.Background(), weekly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) Rank(c *gin.Context) {
	weekly := c.DefaultQuery("period", "overall") == "weekly"
	rank, err := h.Service.Rank(context.Background(), weekly, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rank"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rank": rank})
}
