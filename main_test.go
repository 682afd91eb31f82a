package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	testRouter  *gin.Engine
	testConfig  *Config
	testDB      *pgxpool.Pool
	testQueries *generated.Queries

	testDBOnce sync.Once
	testDBErr  error
)

// TestMain sets up the test environment. TEST_STORAGE=postgres runs the
// handler tests against the TEST_DB_* database instead of memory.
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)

	if usePostgresStorage() {
		if err := ensureTestDB(); err != nil {
			log.Fatalf("Failed to setup test database: %v", err)
		}
	}

	// Setup test storage and router
	if err := cleanupTestData(); err != nil {
		log.Fatalf("Failed to setup test storage: %v", err)
	}
	setupTestRouter()

	code := m.Run()

	// Cleanup
	if err := teardownTestDB(); err != nil {
		log.Printf("Failed to cleanup test database: %v", err)
	}

	os.Exit(code)
}

func usePostgresStorage() bool {
	return os.Getenv("TEST_STORAGE") == storagePostgres
}

// ensureTestDB runs setupTestDB once per test binary
func ensureTestDB() error {
	testDBOnce.Do(func() { testDBErr = setupTestDB() })
	return testDBErr
}

// setupTestDB creates a test database and runs migrations
func setupTestDB() error {
	// Use test database configuration
	dbHost := getEnvOrDefault("TEST_DB_HOST", "localhost")
	dbPort := getEnvOrDefault("TEST_DB_PORT", "5433")
	dbUser := getEnvOrDefault("TEST_DB_USER", "postgres")
	dbPassword := getEnvOrDefault("TEST_DB_PASSWORD", "password")
	dbName := getEnvOrDefault("TEST_DB_NAME", "cashflow_test")

	// Create test database if it doesn't exist
	adminConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword)

	adminDB, err := sql.Open("postgres", adminConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to admin database: %w", err)
	}
	defer adminDB.Close()

	// Drop and recreate test database for clean state
	if _, err := adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		return fmt.Errorf("failed to drop test database: %w", err)
	}
	if _, err := adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}

	// Connect to test database
	testConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	pool, err := pgxpool.New(context.Background(), testConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to test database: %w", err)
	}

	// Run migrations
	testSQLDB, err := sql.Open("postgres", testConnStr)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to create SQL connection for migrations: %w", err)
	}
	defer testSQLDB.Close()

	if err := runMigrations(testSQLDB, "db/migrations"); err != nil {
		pool.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	testDB = pool
	testQueries = generated.New(testDB)
	return nil
}

// teardownTestDB cleans up the test database
func teardownTestDB() error {
	if testDB != nil {
		testDB.Close()
	}
	return nil
}

// truncateTestDB removes all data from test tables
func truncateTestDB() error {
	ctx := context.Background()

	// Clean in reverse dependency order
	for _, table := range []string{"subcategories", "categories", "transaction_types", "statuses"} {
		if _, err := testDB.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestRouter configures the test router with all routes
func setupTestRouter() {
	testConfig = &Config{Storage: storageMemory}
	testConfig.Server.Port = "8080"
	testConfig.Server.AllowedOrigins = []string{"http://localhost:3001"}

	testRouter = setupRouter(testConfig)
}

// cleanupTestData swaps in an empty catalog
func cleanupTestData() error {
	if !usePostgresStorage() {
		repo = newMemoryRepository()
		return nil
	}

	if err := truncateTestDB(); err != nil {
		return err
	}
	repo = newPgRepository(testQueries)
	return nil
}

// createTestTransactionType creates a test transaction type and returns the ID
func createTestTransactionType(name string) (string, error) {
	t, err := repo.CreateTransactionType(context.Background(), name)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// createTestCategory creates a test category and returns the ID
func createTestCategory(transactionTypeID, name string) (string, error) {
	c, err := repo.CreateCategory(context.Background(), transactionTypeID, name)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// createTestSubcategory creates a test subcategory and returns the ID
func createTestSubcategory(categoryID, name string) (string, error) {
	s, err := repo.CreateSubcategory(context.Background(), categoryID, name)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
