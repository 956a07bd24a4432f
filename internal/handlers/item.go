package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services"
)

type createItemRequest struct {
	ItemName        string  `json:"itemName" binding:"required,min=1"`
	ItemDescription string  `json:"itemDescription"`
	CategoryID      string  `json:"categoryId" binding:"required"`
	Ingredients     string  `json:"ingredients"`
	Price           float64 `json:"price" binding:"required,gt=0"`
}

type updateItemRequest struct {
	ItemName        *string  `json:"itemName"`
	ItemDescription *string  `json:"itemDescription"`
	CategoryID      *string  `json:"categoryId"`
	Ingredients     *string  `json:"ingredients"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
}

// GetItems handles GET /items: the menu grouped by category, with optional
// text search and category/price filters.
func GetItems(svc *services.ItemService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /items"
		defer handlePanic(c, logger, route)

		page, limit, err := pager.parse(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		var filter models.ItemListFilter
		categoryID, ok := optionalIDQuery(c, "categoryId")
		if !ok {
			return
		}
		filter.CategoryID = categoryID

		if priceStr := strings.TrimSpace(c.Query("price")); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price <= 0 {
				respondWithError(c, http.StatusBadRequest, "invalid price")
				return
			}
			filter.MaxPrice = &price
		}

		searchTerms := make([]string, 0, 2)
		if name := strings.TrimSpace(c.Query("itemName")); name != "" {
			searchTerms = append(searchTerms, name)
		}
		if ingredients := strings.TrimSpace(c.Query("ingredients")); ingredients != "" {
			searchTerms = append(searchTerms, ingredients)
		}
		filter.SearchText = strings.Join(searchTerms, " ")

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		groups, err := svc.GetItems(ctx, filter, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// GetItem handles GET /items/details?itemId=... with the category join.
func GetItem(svc *services.ItemService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /items/details"
		defer handlePanic(c, logger, route)

		itemID, ok := requiredIDQuery(c, "itemId")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		detail, err := svc.GetItem(ctx, itemID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// CreateItem handles POST /admin/items.
func CreateItem(svc *services.ItemService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/items"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.CategoryID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid categoryId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		item, err := svc.CreateItem(ctx, models.Item{
			ItemName:        strings.TrimSpace(req.ItemName),
			ItemDescription: strings.TrimSpace(req.ItemDescription),
			CategoryID:      categoryID,
			Ingredients:     strings.TrimSpace(req.Ingredients),
			Price:           req.Price,
		}, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("item created", zap.String("itemId", item.ID.Hex()))
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateItem handles PUT /admin/items/:id. Items referenced by a pending
// order cannot be edited.
func UpdateItem(svc *services.ItemService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/items/:id"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		itemID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		patch := models.ItemPatch{
			ItemName:        req.ItemName,
			ItemDescription: req.ItemDescription,
			Ingredients:     req.Ingredients,
			Price:           req.Price,
		}
		if req.CategoryID != nil {
			categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(*req.CategoryID))
			if err != nil {
				respondWithError(c, http.StatusBadRequest, "invalid categoryId")
				return
			}
			patch.CategoryID = &categoryID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.UpdateItem(ctx, itemID, patch, userID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("item updated", zap.String("itemId", itemID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "item updated"})
	}
}

// DeleteItem handles DELETE /admin/items/:id.
func DeleteItem(svc *services.ItemService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/items/:id"
		defer handlePanic(c, logger, route)

		itemID, ok := requiredIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := svc.DeleteItem(ctx, itemID); err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("item deleted", zap.String("itemId", itemID.Hex()))
		c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
	}
}
