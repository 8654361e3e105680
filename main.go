package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/TaddsTechnology/huematch-api/api"
	"github.com/TaddsTechnology/huematch-api/datastore"
	"github.com/TaddsTechnology/huematch-api/migrations"
	"github.com/TaddsTechnology/huematch-api/recommend"
	"github.com/TaddsTechnology/huematch-api/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseHost:       getEnv("DB_HOST", "localhost"),
		DatabaseName:       getEnv("DB_NAME", "huematch"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900), // 15 minutes
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		PrimarySourceURL:   getEnv("PRIMARY_SOURCE_URL", "https://api.huematch.app/v1/recommendations"),
		SecondarySourceURL: getEnv("SECONDARY_SOURCE_URL", "https://huematch-fallback.vercel.app/api/recommendations"),
		DevMode:            getEnvBool("DEV_MODE", true),
	}

	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseHost,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(config.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}
	defer dbConn.Close()

	// Run database migrations
	fmt.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create user repository
	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	// Create analysis repository
	analysisRepo, analysisRepoErr := datastore.NewAnalysisDatabase(dbConn)
	if analysisRepoErr != nil {
		log.Fatalf("Failed to create analysis repository: %v", analysisRepoErr)
	}

	// Remote recommendation tiers, cheapest authoritative source first
	httpClient := &http.Client{Timeout: 10 * time.Second}
	primary := recommend.NewHTTPSource("primary", config.PrimarySourceURL, httpClient)
	secondary := recommend.NewHTTPSource("secondary", config.SecondarySourceURL, httpClient)
	recommender := recommend.NewOrchestrator(primary, secondary)

	// Start remote source health monitoring
	probeInterval := time.Duration(getEnvInt("SOURCE_PROBE_INTERVAL", 300)) * time.Second
	sourceHealth := scheduler.NewMonitor(probeInterval, primary, secondary)
	sourceHealth.Start()

	// Create application
	app := &api.Application{
		Config:       config,
		UserRepo:     userRepo,
		AnalysisRepo: analysisRepo,
		Recommender:  recommender,
		SourceHealth: sourceHealth,
	}

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("Huematch Analysis API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
