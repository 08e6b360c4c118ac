package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"catering/cmd"
	"catering/internal/adapters/out/postgres/bulkorderrepo"
	"catering/internal/adapters/out/postgres/chefdir"
	"catering/internal/adapters/out/postgres/collabrepo"
	"catering/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	rabbit, err := rabbitmq.Connect(configs.RabbitURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer rabbit.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, rabbit, logger)

	jobManager := app.CreateJobManager(configs)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	staleWindow, err := time.ParseDuration(envOrDefault("STALE_ORDER_WINDOW", "24h"))
	if err != nil {
		log.Fatalf("Invalid STALE_ORDER_WINDOW: %v", err)
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		RabbitURL:        os.Getenv("RABBITMQ_URL"),
		StaleOrderWindow: staleWindow,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&bulkorderrepo.BulkOrderDTO{},
		&bulkorderrepo.BulkOrderItemDTO{},
		&collabrepo.CollaborationRequestDTO{},
		&chefdir.ChefDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = collabrepo.EnsurePendingPairIndex(gormDB); err != nil {
		log.Fatalf("Error creating pending pair index: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
