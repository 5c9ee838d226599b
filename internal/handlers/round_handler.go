package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/round"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var roundsFinished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quiz_rounds_finished_total",
		Help: "Total number of quiz rounds finished",
	},
	[]string{"outcome"},
)

type RoundHandler struct {
	Service *service.RoundService
}

func NewRoundHandler(s *service.RoundService) *RoundHandler {
	return &RoundHandler{Service: s}
}

func (h *RoundHandler) StartRound(c *gin.Context) {
	r := h.Service.StartRound(currentUserID(c))
	c.JSON(http.StatusCreated, r)
}

func (h *RoundHandler) GetRound(c *gin.Context) {
	r, err := h.Service.CurrentRound(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

type selectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

func (h *RoundHandler) SelectCategory(c *gin.Context) {
	var req selectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	r, err := h.Service.SelectCategory(currentUserID(c), models.Category(req.Category))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

type selectDifficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

func (h *RoundHandler) SelectDifficulty(c *gin.Context) {
	var req selectDifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidDifficulty(req.Difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}

	r, err := h.Service.SelectDifficulty(context.Background(), currentUserID(c), models.Difficulty(req.Difficulty))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoundHandler) CurrentQuestion(c *gin.Context) {
	q, err := h.Service.CurrentQuestion(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

type answerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required"`
}

func (h *RoundHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, r, err := h.Service.Answer(context.Background(), currentUserID(c), *req.OptionIndex)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if result.IsGameOver {
		if result.IsWin {
			roundsFinished.WithLabelValues("win").Inc()
		} else {
			roundsFinished.WithLabelValues("loss").Inc()
		}
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "round": r})
}

func (h *RoundHandler) ShowAchievements(c *gin.Context) {
	r, err := h.Service.ShowAchievements(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoundHandler) ReturnToCategorySelect(c *gin.Context) {
	r, err := h.Service.ReturnToCategorySelect(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoundHandler) Restart(c *gin.Context) {
	r, err := h.Service.Restart(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoundHandler) Results(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 20
	}

	results, err := h.Service.Results(context.Background(), currentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *RoundHandler) ListAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, round.Achievements)
}
