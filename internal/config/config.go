package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration
type Config struct {
	Env             string
	TeacherPassword string
	Server          ServerConfig
	Database        DatabaseConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	MigrationsPath  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	driver := getEnv("DB_DRIVER", DriverPostgres)

	cfg := &Config{
		Env:             getEnv("APP_ENV", "production"),
		TeacherPassword: os.Getenv("TEACHER_PASSWORD"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			StaticDir:    getEnv("STATIC_DIR", "./frontend/dist"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", defaultPort(driver)),
			Name:            getEnv("DB_NAME", getEnv("DATABASE", "wordquiz")),
			User:            getEnv("DB_USER", "wordquiz"),
			Password:        os.Getenv("DB_PASSWORD"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectRetries:  getInt("DB_CONNECT_RETRIES", 30),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		},
	}

	// Validate required fields
	if driver != DriverPostgres && driver != DriverMySQL {
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, driver)
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// DSN returns the connection string for the configured driver
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverMySQL {
		mc := mysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(d.Host, d.Port)
		mc.DBName = d.Name
		mc.ParseTime = true
		mc.MultiStatements = true
		// Count matched rows, not changed rows, so an unchanged UPDATE still finds its row
		mc.ClientFoundRows = true
		return mc.FormatDSN()
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
	)
}

// MigrationsURL returns the golang-migrate source URL for the configured driver
func (d DatabaseConfig) MigrationsURL() string {
	return "file://" + d.MigrationsPath + "/" + d.Driver
}

func defaultPort(driver string) string {
	if driver == DriverMySQL {
		return "3306"
	}
	return "5432"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
