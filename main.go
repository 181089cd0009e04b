package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/template/html/v2"

	"istereg_backend/internals/configs"
	database "istereg_backend/internals/databases"
	"istereg_backend/internals/features/registration/repository"
	"istereg_backend/internals/features/registration/service"
	middlewares "istereg_backend/internals/middlewares"
	routes "istereg_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		// ConfigStd: map key terurut, supaya output stats stabil
		JSONEncoder:           sonic.ConfigStd.Marshal,
		JSONDecoder:           sonic.ConfigStd.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + migrate + pool. Tanpa DB, server tidak boleh jalan.
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ DB migration failed: %v", err)
	}
	database.TunePool(db)

	repo := repository.NewPostgresRepository(db)
	svc := service.NewRegistrationService(repo)

	routes.SetupRoutes(app, svc, db)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
