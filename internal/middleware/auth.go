package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const adminRole = "admin"

// UserAuth validates the bearer token and injects the caller's userId into
// the context. Token issuance belongs to the auth service; this only
// verifies the signature and extracts the identity.
func UserAuth(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := parseToken(c, secret, logger)
		if !ok {
			return
		}
		c.Set("userId", userID)
		c.Next()
	}
}

// AdminAuth validates the bearer token and requires the admin role claim.
func AdminAuth(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := parseToken(c, secret, logger)
		if !ok {
			return
		}
		if role != adminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Set("userId", userID)
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string, logger *zap.Logger) (primitive.ObjectID, string, bool) {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return primitive.NilObjectID, "", false
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return primitive.NilObjectID, "", false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Warn("token validation failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, "", false
	}

	userIDValue, ok := claims["userId"].(string)
	if !ok || strings.TrimSpace(userIDValue) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, "", false
	}

	userID, err := primitive.ObjectIDFromHex(userIDValue)
	if err != nil {
		logger.Warn("invalid userId claim", zap.String("userId", userIDValue))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, "", false
	}

	role, _ := claims["role"].(string)
	return userID, role, true
}
