package handlers

import (
	"net/http"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/data"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static catalogs shipped with the app.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) ListVerses(c *gin.Context) {
	c.JSON(http.StatusOK, data.Verses)
}

func (h *ContentHandler) DailyVerse(c *gin.Context) {
	c.JSON(http.StatusOK, data.DailyVerse(time.Now()))
}

func (h *ContentHandler) RandomVerse(c *gin.Context) {
	c.JSON(http.StatusOK, data.RandomVerse())
}

func (h *ContentHandler) ListAvatars(c *gin.Context) {
	c.JSON(http.StatusOK, data.Avatars)
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

func (h *ContentHandler) ListDifficulties(c *gin.Context) {
	c.JSON(http.StatusOK, models.Difficulties)
}
