package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybench/internal/service"
)

// ScoreHandler puntúa sobres de muestras crudas sin muestrear.
type ScoreHandler struct {
	logger *zap.Logger
}

func NewScoreHandler(logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{logger: logger}
}

// Score maneja POST /score. La validación del sobre corre completa antes de
// puntuar; cualquier valor fuera de contrato rechaza el pedido entero.
func (h *ScoreHandler) Score(c *gin.Context) {
	var req service.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results, err := service.ScoreEnvelope(req)
	if err != nil {
		h.logger.Warn("score envelope rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
