package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services"
)

// AdminOrders handles GET /admin/orders: the joined order view across all
// users, optionally narrowed to one order via ?orderId=.
func AdminOrders(svc *services.OrderService, logger *zap.Logger, cfg config.Config) gin.HandlerFunc {
	pager := newPagination(cfg)
	return func(c *gin.Context) {
		const route = "GET /admin/orders"
		defer handlePanic(c, logger, route)

		orderID, ok := optionalIDQuery(c, "orderId")
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

		details, err := svc.AdminOrders(ctx, orderID, page, limit)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// AcceptOrder handles PUT /admin/orders/accept?orderId=... .
func AcceptOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return transitionOrder(svc, logger, "PUT /admin/orders/accept", models.StatusAccepted)
}

// RejectOrder handles PUT /admin/orders/reject?orderId=... .
func RejectOrder(svc *services.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return transitionOrder(svc, logger, "PUT /admin/orders/reject", models.StatusRejected)
}

func transitionOrder(svc *services.OrderService, logger *zap.Logger, route string, target models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, logger, route)

		orderID, ok := requiredIDQuery(c, "orderId")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := svc.AcceptOrRejectOrder(ctx, orderID, target)
		if err != nil {
			respondWithServiceError(c, logger, route, err)
			return
		}

		logger.Info("order transition attempted",
			zap.String("orderId", orderID.Hex()),
			zap.String("target", string(target)),
			zap.Bool("matched", result.Matched),
		)
		c.JSON(http.StatusOK, result)
	}
}
