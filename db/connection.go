package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func GetConfigFromEnv() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "pgx"
	}

	return Config{
		Driver:   driver,
		Host:     getEnvWithDefault("DB_HOST", "localhost"),
		Port:     getEnvWithDefault("DB_PORT", "5432"),
		User:     getEnvWithDefault("DB_USER", "postgres"),
		Password: getEnvWithDefault("DB_PASSWORD", "postgres"),
		Database: getEnvWithDefault("DB_NAME", "smart_home"),
		SSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Store wraps the shared connection pool. It is constructed once at
// startup and passed explicitly to the handler layer.
type Store struct {
	db     *sql.DB
	driver string
}

func Connect() (*Store, error) {
	return ConnectWithConfig(GetConfigFromEnv())
}

func ConnectWithConfig(config Config) (*Store, error) {
	var dsn string

	if config.Driver == "sqlite" {
		dsn = config.Database
		if dsn == "" {
			dsn = ":memory:"
		}
	} else {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.Password, config.Database, config.SSLMode,
		)
	}

	conn, err := sql.Open(config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if config.Driver == "sqlite" {
		// A single connection keeps :memory: databases stable and makes
		// the pragma apply to every statement.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
	}

	return &Store{db: conn, driver: config.Driver}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) IsSQLite() bool {
	return s.driver == "sqlite"
}
