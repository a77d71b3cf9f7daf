package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	DB    *sql.DB
	Redis *redis.Client
	Port  int
}

var AppConfig *Config

// InitDB opens the PostgreSQL connection from the environment and verifies
// it with a ping. DATABASE_URL takes precedence; otherwise discrete PG*
// variables are used with local defaults.
func InitDB() {
	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := envOr("PGHOST", "localhost")
		port := envOr("PGPORT", "5432")
		user := envOr("PGUSER", "postgres")
		dbname := envOr("PGDATABASE", "eps_sms")
		password := os.Getenv("PGPASSWORD")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
		log.Printf("Connecting to PostgreSQL at %s:%s/%s", host, port, dbname)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:   db,
		Port: serverPort(),
	}
	log.Println("Database connected successfully")

	initRedis()
}

// initRedis wires the optional dashboard-stats cache. The application runs
// without it when REDIS_ADDR is unset.
func initRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, dashboard stats cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	AppConfig.Redis = client
	log.Printf("Redis cache configured at %s", addr)
}

func serverPort() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
		log.Printf("Invalid PORT value %q, falling back to 5000", raw)
	}
	return 5000
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetRedis() *redis.Client {
	return AppConfig.Redis
}

func GetPort() int {
	return AppConfig.Port
}
