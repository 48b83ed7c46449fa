package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybench/internal/repository"
	"psybench/internal/service"
)

// AssessmentHandler mantiene dependencias para endpoints de corridas y perfiles.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
	profiles    repository.ProfileRepository
}

func NewAssessmentHandler(
	logger *zap.Logger,
	assessments *service.AssessmentService,
	profiles repository.ProfileRepository,
) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		assessments: assessments,
		profiles:    profiles,
	}
}

// StartAssessment maneja POST /assessments. La corrida queda en segundo
// plano; la respuesta es el id para consultar estado.
func (h *AssessmentHandler) StartAssessment(c *gin.Context) {
	var req service.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	runID, err := h.assessments.StartRun(req)
	if err != nil {
		h.logger.Warn("assessment rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"run_id": runID})
}

// GetRunStatus maneja GET /assessments/:id.
func (h *AssessmentHandler) GetRunStatus(c *gin.Context) {
	status, ok, err := h.assessments.RunStatus(c.Param("id"))
	if err != nil {
		h.logger.Error("run status lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read run status"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetProfile maneja GET /profiles/:id.
func (h *AssessmentHandler) GetProfile(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ListProfiles maneja GET /profiles?model=...
func (h *AssessmentHandler) ListProfiles(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	model := c.Query("model")
	if model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing model query parameter"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	profiles, err := h.profiles.ListByModel(c.Request.Context(), model, limit)
	if err != nil {
		h.logger.Error("profile list failed", zap.Error(err), zap.String("model", model))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetSimilarProfiles maneja GET /profiles/:id/similar.
func (h *AssessmentHandler) GetSimilarProfiles(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	similar, err := h.profiles.FindSimilar(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.logger.Error("similarity search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar": similar})
}
