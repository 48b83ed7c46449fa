package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybench/internal/service"
)

// AuthHandler emite tokens de acceso para clientes de la API.
type AuthHandler struct {
	logger    *zap.Logger
	jwtSvc    *service.JWTService
	apiSecret string
}

func NewAuthHandler(logger *zap.Logger, jwtSvc *service.JWTService, apiSecret string) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		jwtSvc:    jwtSvc,
		apiSecret: apiSecret,
	}
}

// IssueToken maneja POST /auth/token. El caller debe presentar el secreto
// compartido configurado; a cambio recibe un access token firmado.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if !h.jwtSvc.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "auth not configured"})
		return
	}

	var req struct {
		ClientID string `json:"client_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	presented := c.GetHeader("X-API-Secret")
	if subtle.ConstantTimeCompare([]byte(presented), []byte(h.apiSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api secret"})
		return
	}

	token, expiresIn, err := h.jwtSvc.IssueAccessToken(req.ClientID)
	if err != nil {
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"expires_in":   expiresIn,
	})
}
