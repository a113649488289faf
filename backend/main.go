package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"contacts-manager/backend/config"
	"contacts-manager/backend/database"
	"contacts-manager/backend/handlers"
	"contacts-manager/backend/metrics"
	"contacts-manager/backend/repositories"
	"contacts-manager/backend/services"
	"contacts-manager/backend/system"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 0. Initialize Logger
	if err := system.InitLogger(cfg.Logging.Dir, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Printf("Warning: Could not initialize file logger: %v", err)
	}
	defer system.Close()

	system.Info("Contacts manager backend starting...")

	// 1. Setup Database
	db, err := database.Open(cfg.Database)
	if err != nil {
		system.Error("Failed to open database: %v", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	system.Info("Database connected (%s)", cfg.Database.Driver)

	// 2. Token revocation: Redis when configured, memory otherwise
	rdb, err := database.OpenRedis(context.Background(), cfg.Redis)
	if err != nil {
		system.Error("Failed to connect to Redis: %v", err)
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	var revocations services.RevocationList
	if rdb != nil {
		defer rdb.Close()
		revocations = services.NewRedisRevocationList(rdb)
		system.Info("Token revocation backed by Redis")
	} else {
		revocations = services.NewMemoryRevocationList()
		system.Info("Token revocation kept in memory")
	}

	// 3. Setup Services
	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, revocations)
	countriesRepo := repositories.NewCountriesRepository(db)
	persons := services.NewPersonService(repositories.NewPersonsRepository(db), countriesRepo)
	countries := services.NewCountriesService(countriesRepo)
	accounts := services.NewAccountService(repositories.NewUsersRepository(db), tokens)
	if n, err := accounts.SyncUserGauge(context.Background()); err != nil {
		system.Warn("Failed to count accounts: %v", err)
	} else {
		system.Info("%d accounts registered", n)
	}

	// 4. Setup Handlers
	h := handlers.NewHandler(db, rdb, persons, countries, accounts, tokens)

	app := fiber.New(fiber.Config{
		AppName:   "contacts-manager",
		BodyLimit: cfg.Server.MaxUploadSize,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     os.Stdout,
	}))
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	handlers.SetupRoutes(app, h)

	// 5. Serve Static Files (Frontend)
	if _, err := os.Stat(cfg.Server.FrontendDir); err == nil {
		app.Static("/", cfg.Server.FrontendDir, fiber.Static{
			ByteRange: true,
			MaxAge:    3600,
		})
		// SPA fallback
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(cfg.Server.FrontendDir, "index.html"))
		})
	} else {
		system.Info("Frontend directory %s not found, serving API only", cfg.Server.FrontendDir)
	}

	h.Events.Add(handlers.EventSuccess, "Contacts manager backend started")

	// Graceful Shutdown Handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		system.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			system.Error("Shutdown error: %v", err)
		}
	}()

	system.Info("Server starting on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		system.Error("Server stopped: %v", err)
		log.Fatal(err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	system.Info("Shutdown complete")
}
