package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/handler"
	"go-catalog-admin/internal/middleware"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/service"
	"go-catalog-admin/internal/storage"
	"go-catalog-admin/internal/ws"
	"go-catalog-admin/pkg/database"
	"go-catalog-admin/pkg/token"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup database
	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Admin{}, &model.Product{}, &model.Order{}, &model.Comment{})

	// 3. Upload storage
	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	// 4. Admin event feed
	hub := ws.NewHub()
	go hub.Run()

	// 5. Dependency injection (wiring layers)
	tokens := token.NewManager(cfg.JWTSecret, 24*time.Hour)

	adminRepo := repository.NewAdminRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	authService := service.NewAuthService(adminRepo, tokens, cfg.AdminSecretKey)
	productService := service.NewProductService(productRepo, store, hub)
	orderService := service.NewOrderService(orderRepo, hub)
	commentService := service.NewCommentService(commentRepo, productRepo, hub)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	commentHandler := handler.NewCommentHandler(commentService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Catalog Admin API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Static("/uploads", cfg.UploadDir)

	// 7. Routes
	auth := app.Group("/auth")
	auth.Post("/register/admin", authHandler.Register)
	auth.Post("/login/admin", authHandler.Login)

	// Everything under /admin requires a valid bearer token resolving to
	// a live admin record.
	admin := app.Group("/admin", middleware.RequireAdmin(adminRepo, tokens))
	api := admin.Group("/api/v1")

	api.Post("/product/create", productHandler.Create)
	api.Get("/products/get/all", productHandler.GetAll)
	api.Put("/product/update/:id", productHandler.Update)
	api.Delete("/product/delete/:id", productHandler.Delete)

	api.Post("/order/create", orderHandler.Create)
	api.Get("/orders/get/all", orderHandler.GetAll)
	api.Put("/order/update/:id", orderHandler.Update)
	api.Delete("/order/delete/:id", orderHandler.Delete)

	api.Post("/comment/create", commentHandler.Create)
	api.Get("/comments/get/by/productId/:productId", commentHandler.GetByProductID)
	api.Get("/comments/get/all", commentHandler.GetAll)

	// Live catalog event feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
