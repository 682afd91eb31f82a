package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/db/generated"
	_ "github.com/Stasnislawe/TZ-1ST-IT-COMPANY/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Cash Flow Catalog API
// @version 1.0
// @description Catalog backend for the cash-flow record form: transaction types, categories, subcategories and statuses, plus the AJAX endpoints that drive the dependent selects.
// @host localhost:8080
// @BasePath /

var (
	repo   CatalogRepository
	logger = logrus.New()
)

func main() {
	cfg, err := loadConfig(".env", ".env.local")
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	configureLogger(logger, cfg.Log.Level, cfg.Log.Format)

	switch cfg.Storage {
	case storageMemory:
		memory := newMemoryRepository()
		if err := seedDefaults(context.Background(), memory); err != nil {
			logger.Fatalf("Failed to seed catalog: %v", err)
		}
		repo = memory
		logger.Info("Using in-memory catalog storage")
	default:
		pool, err := connectDatabase(cfg)
		if err != nil {
			logger.Fatalf("Failed to connect to database after retries: %v", err)
		}
		defer pool.Close()

		migrateDatabase(cfg)
		repo = newPgRepository(generated.New(pool))
	}

	r := setupRouter(cfg)

	logger.Infof("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

// connectDatabase opens the pool and waits until the database answers
func connectDatabase(cfg *Config) (*pgxpool.Pool, error) {
	var (
		pool *pgxpool.Pool
		err  error
	)

	for i := 0; i < cfg.Database.MaxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.ConnString())
		if err != nil {
			logger.Warnf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(cfg.Database.RetryInterval)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = pool.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warnf("Attempt %d: Error connecting to database: %v", i+1, err)
			pool.Close()
			time.Sleep(cfg.Database.RetryInterval)
			continue
		}

		logger.Info("Successfully connected to database")
		return pool, nil
	}

	return nil, err
}

func migrateDatabase(cfg *Config) {
	path := cfg.Migrations.Path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warnf("Migrations directory not found at %s, skipping migrations", path)
		return
	}

	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logger.Fatalf("Error opening migration connection: %v", err)
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := runMigrations(db, path); err != nil {
		logger.Fatalf("Error running migrations: %v", err)
	}

	if version, dirty, err := getMigrationVersion(db, path); err == nil {
		if dirty {
			logger.Warnf("Current migration version: %d (DIRTY - migration failed)", version)
		} else {
			logger.Infof("Current migration version: %d", version)
		}
	}
	logger.Info("Database migrations completed successfully")
}

// setupRouter builds the engine with middleware and all routes
func setupRouter(cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(instrumentRequests(logger))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "X-Requested-With", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Record form AJAX endpoints
	r.GET("/ajax/load-categories/", loadCategories)
	r.GET("/ajax/load-subcategories/", loadSubcategories)
	r.GET("/ajax/form-options/", loadFormOptions)
	r.GET("/admin/cash_flow/cashflowrecord/ajax/load-all-categories/", loadAllCategories)

	// Dictionaries
	api := r.Group("/api")
	{
		api.GET("/transaction-types", getTransactionTypes)
		api.POST("/transaction-types", createTransactionType)
		api.PUT("/transaction-types/:id", updateTransactionType)
		api.DELETE("/transaction-types/:id", deleteTransactionType)

		api.GET("/categories", getCategories)
		api.POST("/categories", createCategory)
		api.PUT("/categories/:id", updateCategory)
		api.DELETE("/categories/:id", deleteCategory)

		api.GET("/subcategories", getSubcategories)
		api.POST("/subcategories", createSubcategory)
		api.PUT("/subcategories/:id", updateSubcategory)
		api.DELETE("/subcategories/:id", deleteSubcategory)

		api.GET("/statuses", getStatuses)
		api.POST("/statuses", createStatus)
		api.PUT("/statuses/:id", updateStatus)
		api.DELETE("/statuses/:id", deleteStatus)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
