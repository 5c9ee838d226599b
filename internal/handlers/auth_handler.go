package handlers

import (
	"context"
	"net/http"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, fieldErrs, err := h.Service.Register(context.Background(), &req)
	if err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	if !fieldErrs.Empty() {
		registrationAttempts.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	registrationAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, fieldErrs, err := h.Service.Login(context.Background(), &req)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !fieldErrs.Empty() {
		loginAttempts.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"errors": fieldErrs})
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, session)
}
