package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	AppPort     string
	AdminSecret string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

var AppConfig *Config

var db *sql.DB

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the environment (an optional .env file first) into the
// global config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	AppConfig = &Config{
		AppPort:     env("APP_PORT", "8080"),
		AdminSecret: os.Getenv("ADMIN_SECRET"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "notas"),
		DBSSLMode:  env("DB_SSLMODE", "disable"),
	}
	if AppConfig.AdminSecret == "" {
		log.Println("Warning: ADMIN_SECRET is not set; admin mutations will be rejected")
	}
	return AppConfig
}

func (c *Config) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=10",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// InitDB opens the connection pool and fails fast when the database is
// unreachable.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	conn, err := sql.Open("postgres", AppConfig.dsn())
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = conn.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection: %v", err)
	}

	db = conn
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return db
}
