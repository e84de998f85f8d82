package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/NiniolaX/alx-backend-user-data/internal/config"
	"github.com/NiniolaX/alx-backend-user-data/internal/handler"
	"github.com/NiniolaX/alx-backend-user-data/internal/handler/middleware"
	"github.com/NiniolaX/alx-backend-user-data/internal/repository/postgres"
	"github.com/NiniolaX/alx-backend-user-data/internal/service"
	"github.com/NiniolaX/alx-backend-user-data/pkg/hash"
	"github.com/NiniolaX/alx-backend-user-data/pkg/redact"
	"github.com/NiniolaX/alx-backend-user-data/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("Database connection established")

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSchema()
	if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	logger := redact.NewLogger(log.Default(), nil)
	validate := validator.NewValidator()
	hasher := hash.NewHasher(cfg.Auth.BcryptCost)

	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, hasher, logger)

	sessionAuth := middleware.NewSessionAuth(authService, cfg.Auth.SessionCookieName)

	var authenticator middleware.Authenticator = sessionAuth
	if cfg.Auth.Type == "basic" {
		authenticator = middleware.NewBasicAuth(authService)
	}

	authHandler := handler.NewAuthHandler(authService, sessionAuth, validate)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "User Auth Service v1.0",
		ErrorHandler: errorHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware(logger))
	app.Use(middleware.CORSMiddleware())
	app.Use(middleware.RequireAuth(authenticator, cfg.Auth.ExcludedPaths))

	handler.SetupRoutes(app, authHandler, healthHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("Server starting on %s (auth=%s, env=%s)", addr, cfg.Auth.Type, cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initDB initializes the PostgreSQL connection with retry logic.
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// errorHandler translates unhandled errors into JSON responses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf("Error handling request [%s %s]: %v", c.Method(), c.Path(), err)

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
