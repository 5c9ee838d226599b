package handlers

import (
	"context"
	"net/http"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var missionCompletions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "missions_completions_total",
		Help: "Total number of mission completion requests",
	},
	[]string{"status"},
)

type MissionHandler struct {
	Service *service.MissionService
}

func NewMissionHandler(s *service.MissionService) *MissionHandler {
	return &MissionHandler{Service: s}
}

func (h *MissionHandler) GetMissions(c *gin.Context) {
	set, err := h.Service.GetMissions(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load missions"})
		return
	}
	c.JSON(http.StatusOK, set)
}

func (h *MissionHandler) CompleteMission(c *gin.Context) {
	missionID := c.Param("id")
	result, err := h.Service.CompleteMission(context.Background(), currentUserID(c), missionID)
	if err != nil {
		missionCompletions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.AlreadyCompleted {
		missionCompletions.WithLabelValues("duplicate").Inc()
	} else {
		missionCompletions.WithLabelValues("success").Inc()
	}
	c.JSON(http.StatusOK, result)
}

func (h *MissionHandler) ResetMissions(c *gin.Context) {
	set, err := h.Service.ResetMissions(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset missions"})
		return
	}
	c.JSON(http.StatusOK, set)
}
