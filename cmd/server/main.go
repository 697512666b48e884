package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpdelivery "github.com/SeytekM/SmartBuilderPro/internal/delivery/http"
	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/internal/repository/memory"
	"github.com/SeytekM/SmartBuilderPro/internal/repository/overpass"
	"github.com/SeytekM/SmartBuilderPro/internal/repository/postgres"
	"github.com/SeytekM/SmartBuilderPro/internal/scoring"
	"github.com/SeytekM/SmartBuilderPro/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	if err := initLogger(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	// Stores: Postgres when configured and reachable, memory otherwise
	projects, territories, assessments := buildStores(cfg)

	// Dependency Injection: gateway, scoring engine, services
	gateway := overpass.NewGateway(cfg.OverpassURL)
	engine := scoring.NewEngine(scoring.DefaultConfig())

	assessmentSvc := service.NewAssessmentService(gateway, assessments, engine)
	territorySvc := service.NewTerritoryService(projects, territories, assessmentSvc)
	projectSvc := service.NewProjectService(projects, territories, assessments)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      httpdelivery.AppName + " v" + httpdelivery.AppVersion,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	httpdelivery.SetupRoutes(app, projectSvc, territorySvc, assessmentSvc)

	// Graceful shutdown
	go func() {
		zap.L().Info("server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Warn("server forced to shutdown", zap.Error(err))
	}
	zap.L().Info("server exited gracefully")
}

// Config holds the environment-driven server configuration.
type Config struct {
	DatabaseURL string
	OverpassURL string
	Port        string
	LogFormat   string
	LogLevel    string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		OverpassURL: getEnv("OVERPASS_URL", ""),
		Port:        getEnv("PORT", "8080"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// initLogger installs the global zap logger.
func initLogger(cfg *Config) error {
	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zapCfg.Level.SetLevel(level)

	zlog, err := zapCfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(zlog)
	return nil
}

// buildStores selects the storage backend. Assessment data is a cache of
// derived scores, so falling back to memory stores keeps the service usable
// without a database.
func buildStores(cfg *Config) (domain.ProjectStore, domain.TerritoryStore, domain.AssessmentStore) {
	if cfg.DatabaseURL == "" {
		zap.L().Info("using in-memory stores")
		return memory.NewProjectStore(), memory.NewTerritoryStore(), memory.NewAssessmentStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err == nil {
		err = postgres.EnsureSchema(ctx, pool)
	}
	if err != nil {
		zap.L().Warn("could not connect to database, using in-memory stores", zap.Error(err))
		return memory.NewProjectStore(), memory.NewTerritoryStore(), memory.NewAssessmentStore()
	}

	zap.L().Info("connected to PostgreSQL")
	return postgres.NewProjectStore(pool), postgres.NewTerritoryStore(pool), postgres.NewAssessmentStore(pool)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
