package handlers

import (
	"context"
	"net/http"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"

	"github.com/gin-gonic/gin"
)

type PrefsHandler struct {
	Service *service.PrefsService
}

func NewPrefsHandler(s *service.PrefsService) *PrefsHandler {
	return &PrefsHandler{Service: s}
}

func (h *PrefsHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.Service.Get(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.Service.SetTheme(context.Background(), currentUserID(c), req.Theme)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PrefsHandler) MarkOnboardingSeen(c *gin.Context) {
	prefs, err := h.Service.MarkOnboardingSeen(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
