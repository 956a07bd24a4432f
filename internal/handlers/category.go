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

type createCategoryRequest struct {
	CategoryName        string `json:"categoryName" binding:"required,min=1"`
	CategoryDescription string `json:"categoryDescription"`
	DisplayOrder        int    `json:"displayOrder" binding:"min=0"`
}

type updateCategoryRequest struct {
	CategoryName        *string `json:"categoryName"`
	CategoryDescription *string `json:"categoryDescription"`
	DisplayOrder        *int    `json:"displayOrder" binding:"omitempty,min=0"`
}

// GetCategories handles GET /categories, sorted by display order.
func GetCategories(svc *services.CategoryService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, logger, route)

		categoryID, ok := optionalIDQuery(c, "categoryId")
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

		categories, err := svc.GetCategories(ctx, categoryID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory handles POST /admin/categories.
func CreateCategory(svc *services.CategoryService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/categories"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		category, err := svc.CreateCategory(ctx, models.Category{
			CategoryName:        strings.TrimSpace(req.CategoryName),
			CategoryDescription: strings.TrimSpace(req.CategoryDescription),
			DisplayOrder:        req.DisplayOrder,
		}, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("category created", zap.String("categoryId", category.ID.Hex()))
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory handles PUT /admin/categories/:id.
func UpdateCategory(svc *services.CategoryService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/categories/:id"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		categoryID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		var req updateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		err := svc.UpdateCategory(ctx, categoryID, models.CategoryPatch{
			CategoryName:        req.CategoryName,
			CategoryDescription: req.CategoryDescription,
			DisplayOrder:        req.DisplayOrder,
		}, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("category updated", zap.String("categoryId", categoryID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "category updated"})
	}
}

// DeleteCategory handles DELETE /admin/categories/:id.
func DeleteCategory(svc *services.CategoryService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/categories/:id"
		defer handlePanic(c, logger, route)

		categoryID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.DeleteCategory(ctx, categoryID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("category deleted", zap.String("categoryId", categoryID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}
