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

type locationRequest struct {
	Coordinates []float64 `json:"coordinates" binding:"required,coordinates"`
}

type createBranchRequest struct {
	BranchName  string          `json:"branchName" binding:"required,min=1,max=50"`
	Location    locationRequest `json:"location" binding:"required"`
	PhoneNumber string          `json:"phoneNumber" binding:"required"`
	Services    []string        `json:"services" binding:"required,min=1"`
}

type updateBranchRequest struct {
	BranchName  *string          `json:"branchName" binding:"omitempty,min=1,max=50"`
	Location    *locationRequest `json:"location"`
	PhoneNumber *string          `json:"phoneNumber"`
	Services    []string         `json:"services" binding:"omitempty,min=1"`
	IsOpen      *bool            `json:"isOpen"`
}

// GetBranches handles GET /admin/branches.
func GetBranches(svc *services.BranchService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /admin/branches"
		defer handlePanic(c, logger, route)

		branchID, ok := optionalIDQuery(c, "branchId")
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

		branches, err := svc.GetBranches(ctx, branchID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, branches)
	}
}

// CreateBranch handles POST /admin/branches.
func CreateBranch(svc *services.BranchService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/branches"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createBranchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		branch, err := svc.CreateBranch(ctx, models.Branch{
			BranchName:  strings.TrimSpace(req.BranchName),
			Location:    models.NewGeoPoint(req.Location.Coordinates),
			PhoneNumber: strings.TrimSpace(req.PhoneNumber),
			Services:    req.Services,
		}, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("branch created", zap.String("branchId", branch.ID.Hex()))
		c.JSON(http.StatusCreated, branch)
	}
}

// UpdateBranch handles PUT /admin/branches/:id. Branches with pending
// orders cannot be edited.
func UpdateBranch(svc *services.BranchService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/branches/:id"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		branchID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		var req updateBranchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		patch := models.BranchPatch{
			BranchName:  req.BranchName,
			PhoneNumber: req.PhoneNumber,
			Services:    req.Services,
			IsOpen:      req.IsOpen,
		}
		if req.Location != nil {
			location := models.NewGeoPoint(req.Location.Coordinates)
			patch.Location = &location
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.UpdateBranch(ctx, branchID, patch, userID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("branch updated", zap.String("branchId", branchID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "branch updated"})
	}
}

// DeleteBranch handles DELETE /admin/branches/:id.
func DeleteBranch(svc *services.BranchService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/branches/:id"
		defer handlePanic(c, logger, route)

		branchID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.DeleteBranch(ctx, branchID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("branch deleted", zap.String("branchId", branchID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "branch deleted"})
	}
}
