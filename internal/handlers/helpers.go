package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"restaurant-backend/internal/apperrors"
)

func handlePanic(c *gin.Context, logger *zap.Logger, route string) {
	if r := recover(); r != nil {
		logger.Error("panic recovered", zap.String("route", route), zap.Any("panic", r))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondWithServiceError maps a service failure to its HTTP response.
// Typed errors keep their message; anything else is logged and masked.
func respondWithServiceError(c *gin.Context, logger *zap.Logger, route string, err error) {
	status := apperrors.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.String("route", route), zap.Error(err))
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// userIDFromContext reads the id the auth middleware stored.
func userIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	value, ok := c.Get("userId")
	if !ok {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}

// requiredIDQuery parses a mandatory ObjectID query parameter.
func requiredIDQuery(c *gin.Context, key string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Query(key)))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "invalid "+key)
		return primitive.NilObjectID, false
	}
	return id, true
}

// optionalIDQuery parses an ObjectID query parameter that may be absent.
// A present but malformed value is still an error.
func optionalIDQuery(c *gin.Context, key string) (*primitive.ObjectID, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "invalid "+key)
		return nil, false
	}
	return &id, true
}

// requiredIDParam parses a mandatory ObjectID path parameter.
func requiredIDParam(c *gin.Context, key string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param(key)))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "invalid "+key)
		return primitive.NilObjectID, false
	}
	return id, true
}
