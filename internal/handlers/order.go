package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/services"
)

const requestTimeout = 5 * time.Second

type orderItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	OrderItems []orderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
	AddressID  string             `json:"addressId" binding:"required"`
}

type updateOrderRequest struct {
	OrderItems []orderItemRequest `json:"orderItems" binding:"omitempty,min=1,dive"`
	AddressID  string             `json:"addressId"`
}

func parseOrderItems(items []orderItemRequest) ([]services.OrderItemInput, bool) {
	inputs := make([]services.OrderItemInput, 0, len(items))
	for _, item := range items {
		itemID, err := primitive.ObjectIDFromHex(strings.TrimSpace(item.ItemID))
		if err != nil {
			return nil, false
		}
		inputs = append(inputs, services.OrderItemInput{ItemID: itemID, Quantity: item.Quantity})
	}
	return inputs, true
}

// CreateOrder handles POST /orders.
func CreateOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		orderItems, ok := parseOrderItems(req.OrderItems)
		if !ok {
			respondWithError(c, http.StatusBadRequest, "invalid itemId")
			return
		}
		addressID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.AddressID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid addressId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := svc.CreateOrder(ctx, userID, orderItems, addressID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("order created",
			zap.String("orderId", order.ID.Hex()),
			zap.String("userId", userID.Hex()),
			zap.Float64("totalPrice", order.TotalPrice),
		)
		c.JSON(http.StatusCreated, order)
	}
}

// UpdateOrder handles PUT /orders?orderId=... for pending orders.
func UpdateOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		orderID, ok := requiredIDQuery(c, "orderId")
		if !ok {
			return
		}

		var req updateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		var patch services.OrderPatch
		if req.OrderItems != nil {
			orderItems, ok := parseOrderItems(req.OrderItems)
			if !ok {
				respondWithError(c, http.StatusBadRequest, "invalid itemId")
				return
			}
			patch.OrderItems = orderItems
		}
		if strings.TrimSpace(req.AddressID) != "" {
			addressID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.AddressID))
			if err != nil {
				respondWithError(c, http.StatusBadRequest, "invalid addressId")
				return
			}
			patch.AddressID = &addressID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := svc.UpdateOrder(ctx, userID, orderID, patch)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("order updated", zap.String("orderId", order.ID.Hex()))
		c.JSON(http.StatusOK, order)
	}
}

// CancelOrder handles PUT /orders/cancel?orderId=... . A non-pending or
// foreign order yields matched=false, not an error.
func CancelOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/cancel"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		orderID, ok := requiredIDQuery(c, "orderId")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := svc.CancelOrder(ctx, orderID, userID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("order cancel attempted",
			zap.String("orderId", orderID.Hex()),
			zap.Bool("matched", result.Matched),
		)
		c.JSON(http.StatusOK, result)
	}
}

// GetOrders handles GET /orders/list: the caller's pending orders.
func GetOrders(svc *services.OrderService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /orders/list"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		page, limit, err := pager.parse(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orders, err := svc.GetOrders(ctx, userID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrder handles GET /orders/details?orderId=... with the joined view.
func GetOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/details"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		orderID, ok := requiredIDQuery(c, "orderId")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		detail, err := svc.GetOrder(ctx, userID, orderID)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// GetHistory handles GET /orders/history: the caller's settled orders.
func GetHistory(svc *services.OrderService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /orders/history"
		defer handlePanic(c, logger, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		page, limit, err := pager.parse(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orders, err := svc.GetHistory(ctx, userID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
