package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/pavlenkodm/movie-stats/internal/handlers"
	"github.com/pavlenkodm/movie-stats/internal/jwt"
	"github.com/pavlenkodm/movie-stats/internal/logger"
	"github.com/pavlenkodm/movie-stats/internal/middlewares"
	"github.com/pavlenkodm/movie-stats/internal/repositories"
	"github.com/pavlenkodm/movie-stats/internal/services"
	"github.com/pavlenkodm/movie-stats/internal/storage"

	_ "github.com/go-sql-driver/mysql"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// usersTableDDL is the only schema this service owns; the movie
// reference tables are provisioned externally and read-only here.
const usersTableDDL = `
CREATE TABLE IF NOT EXISTS users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(255),
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// @title movie-stats API
// @version 1.0.0
// @description Authenticated REST API over a movie dataset: registration, login, and read-only aggregations
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, schemaPath := parseFlags()

	appHost, appPort, logLevel,
		dbHost, dbPort, dbUser, dbPassword, dbName,
		dbMaxOpenConns, dbMaxIdleConns,
		jwtSecret, jwtExpHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbHost, dbPort, dbUser, dbPassword, dbName,
		dbMaxOpenConns, dbMaxIdleConns,
		jwtSecret, jwtExpHour,
		schemaPath,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and an optional SQL seed script path.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	s := flag.String("s", "", "Path to an optional SQL seed script")
	flag.Parse()
	return *c, *s
}

// parseConfig loads environment variables from a file and returns all
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbHost string, dbPort int, dbUser, dbPassword, dbName string,
	dbMaxOpenConns, dbMaxIdleConns int,
	jwtSecretKey string, jwtExpHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MySQL config
	dbHost = getEnv("MYSQL_HOST", "localhost")
	dbUser = getEnv("MYSQL_USER", "root")
	dbPassword = getEnv("MYSQL_PASSWORD", "password")
	dbName = getEnv("MYSQL_DB", "moviestats")
	if dbPort, err = strconv.Atoi(getEnv("MYSQL_PORT", "3306")); err != nil {
		return
	}
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("MYSQL_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("MYSQL_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "dev-secret-change-me")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "24")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, and HTTP server. It provisions
// the owned schema, sets up routes and middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbHost string, dbPort int, dbUser, dbPassword, dbName string,
	dbMaxOpenConns, dbMaxIdleConns int,
	jwtSecretKey string, jwtExpHour int,
	schemaPath string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Provision the database before selecting it
	serverDSN := fmt.Sprintf("%s:%s@tcp(%s:%d)/", dbUser, dbPassword, dbHost, dbPort)
	if err := provisionDatabase(ctx, serverDSN, dbName); err != nil {
		logger.Log.Errorw("database provisioning failed", "err", err)
		return err
	}

	// Connect to MySQL with the schema selected
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		dbUser, dbPassword, dbHost, dbPort, dbName)
	logger.Log.Infof("Connecting to MySQL at %s:%d/%s", dbHost, dbPort, dbName)

	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		logger.Log.Errorw("MySQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)

	store := storage.New(db)

	if err := store.EnsureTable(ctx, usersTableDDL, "users"); err != nil {
		logger.Log.Errorw("failed to ensure users table", "err", err)
		return err
	}

	if schemaPath != "" {
		script, err := os.ReadFile(schemaPath)
		if err != nil {
			logger.Log.Errorw("failed to read seed script", "path", schemaPath, "err", err)
			return err
		}
		if err := store.RunScript(ctx, string(script)); err != nil {
			logger.Log.Errorw("seed script failed", "path", schemaPath, "err", err)
			return err
		}
		logger.Log.Infof("Seed script %s applied", schemaPath)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpHour)*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(store)
	userWriteRepo := repositories.NewUserWriteRepository(store)
	movieStatsRepo := repositories.NewMovieStatsRepository(store)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	statsService := services.NewMovieStatsService(movieStatsRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", handlers.NewHealthHandler())
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))

	// Protected routes behind the auth gate
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/api/me", handlers.NewMeHandler())
		r.Get("/api/movies/by-year", handlers.NewMoviesByYearHandler(statsService))
		r.Get("/api/movies/by-genre", handlers.NewMoviesByGenreHandler(statsService))
		r.Get("/api/movies/by-country", handlers.NewMoviesByCountryHandler(statsService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// provisionDatabase connects without a schema selected and creates the
// target database when absent.
func provisionDatabase(ctx context.Context, serverDSN, dbName string) error {
	db, err := sqlx.ConnectContext(ctx, "mysql", serverDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return storage.New(db).CreateDatabaseIfNotExists(ctx, dbName)
}
