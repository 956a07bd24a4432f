package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/database"
	"restaurant-backend/internal/handlers"
	"restaurant-backend/internal/logging"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/internal/repository"
	"restaurant-backend/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	db := client.Database(cfg.DBName)
	logger.Info("mongodb connected", zap.String("database", db.Name()))

	if err := database.EnsureIndexes(db); err != nil {
		logger.Warn("index bootstrap warning", zap.Error(err))
	}

	orders := repository.NewOrderRepository(db)
	items := repository.NewItemRepository(db)
	categories := repository.NewCategoryRepository(db)
	branches := repository.NewBranchRepository(db)
	addresses := repository.NewAddressRepository(db)

	orderService := services.NewOrderService(orders, items, addresses, branches, services.OrderConfig{
		BranchMaxDistanceMeters: cfg.BranchMaxDistance,
	})
	itemService := services.NewItemService(items, orders)
	categoryService := services.NewCategoryService(categories)
	branchService := services.NewBranchService(branches, orders)
	addressService := services.NewAddressService(addresses, orders)

	handlers.RegisterValidators()

	r := gin.Default()

	r.GET("/items", handlers.GetItems(itemService, logger, cfg))
	r.GET("/items/details", handlers.GetItem(itemService, logger))
	r.GET("/categories", handlers.GetCategories(categoryService, logger, cfg))

	user := r.Group("", middleware.UserAuth(cfg.JWTSecret, logger))
	{
		user.GET("/orders/list", handlers.GetOrders(orderService, logger, cfg))
		user.GET("/orders/details", handlers.GetOrder(orderService, logger))
		user.GET("/orders/history", handlers.GetHistory(orderService, logger, cfg))
		user.POST("/orders", handlers.CreateOrder(orderService, logger))
		user.PUT("/orders", handlers.UpdateOrder(orderService, logger))
		user.PUT("/orders/cancel", handlers.CancelOrder(orderService, logger))

		user.GET("/addresses", handlers.GetAddresses(addressService, logger, cfg))
		user.POST("/addresses", handlers.CreateAddress(addressService, logger))
		user.PUT("/addresses/:id", handlers.UpdateAddress(addressService, logger))
		user.DELETE("/addresses/:id", handlers.DeleteAddress(addressService, logger))
	}

	admin := r.Group("/admin", middleware.AdminAuth(cfg.JWTSecret, logger))
	{
		admin.GET("/orders", handlers.AdminOrders(orderService, logger, cfg))
		admin.PUT("/orders/accept", handlers.AcceptOrder(orderService, logger))
		admin.PUT("/orders/reject", handlers.RejectOrder(orderService, logger))

		admin.POST("/items", handlers.CreateItem(itemService, logger))
		admin.PUT("/items/:id", handlers.UpdateItem(itemService, logger))
		admin.DELETE("/items/:id", handlers.DeleteItem(itemService, logger))

		admin.POST("/categories", handlers.CreateCategory(categoryService, logger))
		admin.PUT("/categories/:id", handlers.UpdateCategory(categoryService, logger))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(categoryService, logger))

		admin.GET("/branches", handlers.GetBranches(branchService, logger, cfg))
		admin.POST("/branches", handlers.CreateBranch(branchService, logger))
		admin.PUT("/branches/:id", handlers.UpdateBranch(branchService, logger))
		admin.DELETE("/branches/:id", handlers.DeleteBranch(branchService, logger))
	}

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
