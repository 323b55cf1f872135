package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextEmailKey is where JWTAuthMiddleware stores the verified email.
const ContextEmailKey = "email"

// TokenVerifier resolves a bearer token to the email it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// JWTAuthMiddleware requires a valid bearer token. A missing header is
// unauthorized; a token that fails verification is forbidden.
func JWTAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		email, err := verifier.VerifyToken(tokenString)
		if err != nil || email == "" {
			logger.Debug("token rejected", zap.String("ip", getClientIP(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
