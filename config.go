package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends for the catalog.
const (
	storagePostgres = "postgres"
	storageMemory   = "memory"
)

// Config is the server configuration
type Config struct {
	Storage string `mapstructure:"storage"`

	Server struct {
		Port           string   `mapstructure:"port"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"server"`

	Database struct {
		Host          string        `mapstructure:"host"`
		Port          string        `mapstructure:"port"`
		User          string        `mapstructure:"user"`
		Password      string        `mapstructure:"password"`
		Name          string        `mapstructure:"name"`
		SSLMode       string        `mapstructure:"sslmode"`
		MaxRetries    int           `mapstructure:"max_retries"`
		RetryInterval time.Duration `mapstructure:"retry_interval"`
	} `mapstructure:"database"`

	Migrations struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"migrations"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// ConnString returns the libpq connection string for the catalog database
func (c *Config) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// envBindings keeps the plain variable names the deployment already uses.
var envBindings = map[string]string{
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.name":     "DB_NAME",
	"server.port":       "PORT",
}

// loadConfig reads defaults, an optional config.yaml, .env files and the
// environment, in increasing priority.
func loadConfig(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CASHFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, "CASHFLOW_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFiles loads the given dotenv files that exist. Missing files are skipped.
func loadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage", storagePostgres)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3001"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.name", "cashflow")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 30)
	v.SetDefault("database.retry_interval", 2*time.Second)

	v.SetDefault("migrations.path", "db/migrations")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func validateConfig(cfg *Config) error {
	if cfg.Storage != storagePostgres && cfg.Storage != storageMemory {
		return fmt.Errorf("invalid storage: %s (must be '%s' or '%s')", cfg.Storage, storagePostgres, storageMemory)
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("server.allowed_origins must list at least one origin")
	}
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed origin: %s", origin)
		}
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	if cfg.Database.MaxRetries < 1 {
		return fmt.Errorf("database.max_retries must be at least 1, got: %d", cfg.Database.MaxRetries)
	}
	return nil
}

// configureLogger applies level and format to l
func configureLogger(l *logrus.Logger, level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		l.Warnf("Invalid log level '%s', using 'info'", level)
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
