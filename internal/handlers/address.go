package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services"
)

type createAddressRequest struct {
	Label           string          `json:"label" binding:"required,min=1,max=50"`
	CompleteAddress string          `json:"completeAddress" binding:"required,min=1"`
	Location        locationRequest `json:"location" binding:"required"`
}

type updateAddressRequest struct {
	Label           *string          `json:"label" binding:"omitempty,min=1,max=50"`
	CompleteAddress *string          `json:"completeAddress" binding:"omitempty,min=1"`
	Location        *locationRequest `json:"location"`
}

// GetAddresses handles GET /addresses for the calling user.
func GetAddresses(svc *services.AddressService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /addresses"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		addressID, ok := optionalIDQuery(c, "addressId")
		if !ok {
			return
		}
		page, limit, err := pager.parse(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		addresses, err := svc.GetAddresses(ctx, userID, addressID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// CreateAddress handles POST /addresses.
func CreateAddress(svc *services.AddressService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /addresses"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		address, err := svc.CreateAddress(ctx, models.Address{
			Label:           strings.TrimSpace(req.Label),
			CompleteAddress: strings.TrimSpace(req.CompleteAddress),
			Location:        models.NewGeoPoint(req.Location.Coordinates),
		}, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("address created", zap.String("addressId", address.ID.Hex()))
		c.JSON(http.StatusCreated, address)
	}
}

// UpdateAddress handles PUT /addresses/:id. Addresses with a pending order
// cannot be edited.
func UpdateAddress(svc *services.AddressService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /addresses/:id"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		addressID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		var req updateAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		patch := models.AddressPatch{
			Label:           req.Label,
			CompleteAddress: req.CompleteAddress,
		}
		if req.Location != nil {
			location := models.NewGeoPoint(req.Location.Coordinates)
			patch.Location = &location
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.UpdateAddress(ctx, addressID, userID, patch); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("address updated", zap.String("addressId", addressID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "address updated"})
	}
}

// DeleteAddress handles DELETE /addresses/:id.
func DeleteAddress(svc *services.AddressService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /addresses/:id"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		addressID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.DeleteAddress(ctx, addressID, userID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("address deleted", zap.String("addressId", addressID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}
