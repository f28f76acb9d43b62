package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"b2bpro-backend/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCSRFToken issues a random token cookie for clients that submit forms.
func GetCSRFToken(c *gin.Context) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Get().Error("failed to generate csrf token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	token := hex.EncodeToString(buf)

	c.SetCookie("csrftoken", token, 3600, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"detail": "CSRF token obtained successfully."})
}
